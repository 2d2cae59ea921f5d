package grid

import (
	"math"

	"github.com/matzehuels/smartedge/pkg/geom"
)

// BuildOption configures [Build].
type BuildOption func(*buildConfig)

type buildConfig struct {
	escape bool
}

// WithAnchorEscape clears a corridor from each anchor cell in the direction
// of the anchor's side until a cell that was already Free is reached.
func WithAnchorEscape() BuildOption {
	return func(c *buildConfig) { c.escape = true }
}

// Build rasterizes graphBox into a grid, marks the cells covered by
// nodeBoxes as Blocked and returns the grid with the start and end cells of
// the two anchors. A non-positive ratio falls back to 1.
func Build(graphBox geom.BoundingBox, nodeBoxes []geom.BoundingBox, source, target geom.AnchorPoint, ratio float64, opts ...BuildOption) (*Grid, Point, Point) {
	var cfg buildConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if !(ratio > 0) {
		ratio = 1
	}

	box := graphBox.Snap(ratio)
	if box.Width() == 0 {
		box.XMin -= ratio
		box.XMax += ratio
	}
	if box.Height() == 0 {
		box.YMin -= ratio
		box.YMax += ratio
	}

	g := New(cellCount(box.Width(), ratio), cellCount(box.Height(), ratio))
	g.Origin = box.Min()
	g.Ratio = ratio

	for _, nb := range nodeBoxes {
		g.block(nb)
	}

	start := g.Locate(source.Point)
	end := g.Locate(target.Point)

	for _, a := range []struct {
		cell Point
		side geom.Side
	}{{start, source.Side}, {end, target.Side}} {
		wasBlocked := !g.IsFree(a.cell)
		g.SetFree(a.cell)
		if cfg.escape && wasBlocked {
			g.escape(a.cell, a.side)
		}
	}
	return g, start, end
}

// block marks every cell whose center lies within nb.
func (g *Grid) block(nb geom.BoundingBox) {
	c0 := clamp(int(math.Floor((nb.XMin-g.Origin.X)/g.Ratio)), 0, g.Cols)
	c1 := clamp(int(math.Ceil((nb.XMax-g.Origin.X)/g.Ratio)), 0, g.Cols)
	r0 := clamp(int(math.Floor((nb.YMin-g.Origin.Y)/g.Ratio)), 0, g.Rows)
	r1 := clamp(int(math.Ceil((nb.YMax-g.Origin.Y)/g.Ratio)), 0, g.Rows)

	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			p := Point{Col: col, Row: row}
			if nb.Contains(g.CellCenter(p)) {
				g.SetBlocked(p)
			}
		}
	}
}

// escape frees cells from p outward along side until it steps onto a cell
// that is already Free or leaves the grid.
func (g *Grid) escape(p Point, side geom.Side) {
	dc, dr := sideStep(side)
	for {
		p = Point{Col: p.Col + dc, Row: p.Row + dr}
		if !g.InBounds(p) || g.IsFree(p) {
			return
		}
		g.SetFree(p)
	}
}

func sideStep(side geom.Side) (dc, dr int) {
	dx, dy := side.Normal()
	return int(dx), int(dy)
}

// cellCount returns ceil(length/ratio), ignoring floating-point noise, and
// at least 1.
func cellCount(length, ratio float64) int {
	n := int(math.Ceil(snapEps(length / ratio)))
	if n < 1 {
		return 1
	}
	return n
}
