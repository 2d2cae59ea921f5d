package grid

import (
	"fmt"
	"strings"

	"github.com/matzehuels/smartedge/pkg/geom"
)

// Cell is the occupancy state of a grid cell.
type Cell uint8

const (
	Free Cell = iota
	Blocked
)

// Point is an integer [col, row] index into a Grid.
type Point struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

func (p Point) String() string {
	return fmt.Sprintf("[%d,%d]", p.Col, p.Row)
}

// Grid is a rectangular occupancy grid anchored in graph space.
type Grid struct {
	Cols, Rows int
	Origin     geom.Point // graph-space position of cell [0,0]'s top-left corner
	Ratio      float64    // graph-space size of one cell

	cells []Cell
}

// New allocates a grid with every cell Free. The origin is (0,0) and the
// ratio 1 until set by the caller.
func New(cols, rows int) *Grid {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	return &Grid{
		Cols:  cols,
		Rows:  rows,
		Ratio: 1,
		cells: make([]Cell, cols*rows),
	}
}

// InBounds reports whether p addresses a cell of g.
func (g *Grid) InBounds(p Point) bool {
	return p.Col >= 0 && p.Row >= 0 && p.Col < g.Cols && p.Row < g.Rows
}

// At returns the state of the cell at p. Cells outside the grid are Blocked.
func (g *Grid) At(p Point) Cell {
	if !g.InBounds(p) {
		return Blocked
	}
	return g.cells[p.Row*g.Cols+p.Col]
}

// IsFree reports whether p is inside the grid and Free.
func (g *Grid) IsFree(p Point) bool {
	return g.At(p) == Free
}

// Set changes the state of the cell at p. Out-of-range points are ignored.
func (g *Grid) Set(p Point, c Cell) {
	if g.InBounds(p) {
		g.cells[p.Row*g.Cols+p.Col] = c
	}
}

// SetFree marks the cell at p Free.
func (g *Grid) SetFree(p Point) { g.Set(p, Free) }

// SetBlocked marks the cell at p Blocked.
func (g *Grid) SetBlocked(p Point) { g.Set(p, Blocked) }

// BlockedCount returns the number of Blocked cells.
func (g *Grid) BlockedCount() int {
	n := 0
	for _, c := range g.cells {
		if c == Blocked {
			n++
		}
	}
	return n
}

// Size returns the total number of cells.
func (g *Grid) Size() int { return len(g.cells) }

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	c := *g
	c.cells = append([]Cell(nil), g.cells...)
	return &c
}

// CellRect returns the graph-space rectangle covered by the cell at p.
func (g *Grid) CellRect(p Point) geom.BoundingBox {
	c := g.ToGraph(p)
	return geom.BoundingBox{XMin: c.X, XMax: c.X + g.Ratio, YMin: c.Y, YMax: c.Y + g.Ratio}
}

// CellCenter returns the graph-space center of the cell at p.
func (g *Grid) CellCenter(p Point) geom.Point {
	return g.ToGraph(p).Add(g.Ratio/2, g.Ratio/2)
}

// ToGraph maps p to the graph-space corner of its cell.
func (g *Grid) ToGraph(p Point) geom.Point {
	return ToGraphPoint(p, g.Origin, g.Ratio)
}

// Locate maps a graph-space point to the cell containing it, clamped into
// the grid.
func (g *Grid) Locate(pt geom.Point) Point {
	p := ToGridPoint(pt, g.Origin, g.Ratio)
	return Point{Col: clamp(p.Col, 0, g.Cols-1), Row: clamp(p.Row, 0, g.Rows-1)}
}

// String renders the grid as ASCII art: '.' for Free and '#' for Blocked.
func (g *Grid) String() string {
	return g.Overlay(nil)
}

// Overlay renders the grid with a path drawn over it: 'S' marks the first
// point, 'E' the last and '*' the points in between.
func (g *Grid) Overlay(path []Point) string {
	marks := make(map[Point]byte, len(path))
	for i, p := range path {
		switch i {
		case 0:
			marks[p] = 'S'
		case len(path) - 1:
			marks[p] = 'E'
		default:
			marks[p] = '*'
		}
	}

	var sb strings.Builder
	sb.Grow((g.Cols + 1) * g.Rows)
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			p := Point{Col: col, Row: row}
			if m, ok := marks[p]; ok {
				sb.WriteByte(m)
			} else if g.At(p) == Blocked {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Parse builds a grid from ASCII art: '#' or 'X' are Blocked, anything else
// is Free. Blank leading and trailing lines are ignored and every row must
// have the same width.
func Parse(s string) (*Grid, error) {
	lines := strings.Split(strings.Trim(s, "\n"), "\n")
	if len(lines) == 0 || lines[0] == "" {
		return New(0, 0), nil
	}

	g := New(len(lines[0]), len(lines))
	for row, line := range lines {
		if len(line) != g.Cols {
			return nil, fmt.Errorf("row %d has width %d, want %d", row, len(line), g.Cols)
		}
		for col := 0; col < len(line); col++ {
			if line[col] == '#' || line[col] == 'X' {
				g.SetBlocked(Point{Col: col, Row: row})
			}
		}
	}
	return g, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
