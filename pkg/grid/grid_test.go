package grid

import (
	"math"
	"strings"
	"testing"

	"github.com/matzehuels/smartedge/pkg/geom"
)

func TestBuild_Dimensions(t *testing.T) {
	graphBox := geom.BoundingBox{XMin: -10, XMax: 110, YMin: -10, YMax: 60}
	g, start, end := Build(graphBox, nil, geom.Anchor(0, 0, geom.Bottom), geom.Anchor(100, 50, geom.Top), 10)

	if g.Cols != 12 || g.Rows != 7 {
		t.Errorf("grid = %dx%d, want 12x7", g.Cols, g.Rows)
	}
	if g.Origin != (geom.Point{X: -10, Y: -10}) {
		t.Errorf("origin = %v, want (-10,-10)", g.Origin)
	}
	if start != (Point{Col: 1, Row: 1}) {
		t.Errorf("start = %v, want [1,1]", start)
	}
	if end != (Point{Col: 11, Row: 6}) {
		t.Errorf("end = %v, want [11,6]", end)
	}
	if g.BlockedCount() != 0 {
		t.Errorf("empty scene has %d blocked cells", g.BlockedCount())
	}
}

func TestBuild_MarksNodeCells(t *testing.T) {
	graphBox := geom.BoundingBox{XMin: -10, XMax: 110, YMin: -10, YMax: 110}
	nodeBox := geom.BoundingBox{XMin: 40, XMax: 60, YMin: 40, YMax: 60}
	g, _, _ := Build(graphBox, []geom.BoundingBox{nodeBox}, geom.Anchor(0, 0, geom.Right), geom.Anchor(100, 100, geom.Left), 10)

	if got := g.BlockedCount(); got != 4 {
		t.Fatalf("blocked cells = %d, want 4\n%s", got, g)
	}
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			p := Point{Col: col, Row: row}
			under := nodeBox.Contains(g.CellCenter(p))
			if under != (g.At(p) == Blocked) {
				t.Errorf("cell %v blocked=%v, under node=%v", p, g.At(p) == Blocked, under)
			}
		}
	}
}

func TestBuild_AnchorInsidePaddingIsFreed(t *testing.T) {
	graphBox := geom.BoundingBox{XMin: -20, XMax: 120, YMin: -20, YMax: 100}
	nodeBox := geom.BoundingBox{XMin: -10, XMax: 110, YMin: -10, YMax: 50}
	src := geom.Anchor(50, 40, geom.Bottom)
	dst := geom.Anchor(50, 90, geom.Top)

	g, start, _ := Build(graphBox, []geom.BoundingBox{nodeBox}, src, dst, 10)

	if start != (Point{Col: 7, Row: 6}) {
		t.Fatalf("start = %v, want [7,6]", start)
	}
	if !g.IsFree(start) {
		t.Error("start cell inside padding should be forced free")
	}
	if g.IsFree(Point{Col: 7, Row: 5}) {
		t.Error("cell above the start should stay blocked")
	}
}

func TestBuild_AnchorEscape(t *testing.T) {
	graphBox := geom.BoundingBox{XMin: -40, XMax: 140, YMin: -40, YMax: 120}
	nodeBox := geom.BoundingBox{XMin: -30, XMax: 130, YMin: -30, YMax: 70}
	src := geom.Anchor(50, 40, geom.Bottom)
	dst := geom.Anchor(50, 110, geom.Top)

	plain, start, _ := Build(graphBox, []geom.BoundingBox{nodeBox}, src, dst, 10)
	below := Point{Col: start.Col, Row: start.Row + 1}
	if plain.IsFree(below) {
		t.Fatalf("without escape the cell below %v should be blocked\n%s", start, plain)
	}

	escaped, _, _ := Build(graphBox, []geom.BoundingBox{nodeBox}, src, dst, 10, WithAnchorEscape())
	for row := start.Row; row < escaped.Rows; row++ {
		p := Point{Col: start.Col, Row: row}
		if !escaped.IsFree(p) {
			t.Errorf("corridor cell %v should be free\n%s", p, escaped)
		}
	}
	if escaped.IsFree(Point{Col: start.Col - 1, Row: start.Row + 1}) {
		t.Error("escape should only clear the corridor column")
	}
	if diff := plain.BlockedCount() - escaped.BlockedCount(); diff != 2 {
		t.Errorf("escape cleared %d cells, want 2", diff)
	}
}

func TestBuild_DegenerateGraphBox(t *testing.T) {
	p := geom.Anchor(30, 30, geom.Top)
	g, start, end := Build(geom.BoxAround(p.Point), nil, p, p, 10)

	if g.Cols < 2 || g.Rows < 2 {
		t.Errorf("degenerate box produced %dx%d grid", g.Cols, g.Rows)
	}
	if start != end {
		t.Errorf("identical anchors mapped to %v and %v", start, end)
	}
	if !g.InBounds(start) {
		t.Errorf("start %v out of bounds", start)
	}
}

func TestCoordinateRoundTrip(t *testing.T) {
	origin := geom.Point{X: -40, Y: 20}
	ratios := []float64{10, 7.5, 0.1}
	points := []geom.Point{{X: 0, Y: 20}, {X: 13.7, Y: 99.2}, {X: -39.9, Y: 20.05}, {X: 250, Y: 1000}}

	for _, ratio := range ratios {
		for _, pt := range points {
			back := ToGraphPoint(ToGridPoint(pt, origin, ratio), origin, ratio)
			if math.Abs(back.X-pt.X) >= ratio+1e-9 || math.Abs(back.Y-pt.Y) >= ratio+1e-9 {
				t.Errorf("ratio %v: %v round-tripped to %v", ratio, pt, back)
			}
		}
	}
}

func TestToGridPoint_FloatNoise(t *testing.T) {
	p := ToGridPoint(geom.Point{X: 0.3, Y: 0.7}, geom.Point{}, 0.1)
	if p != (Point{Col: 3, Row: 7}) {
		t.Errorf("ToGridPoint = %v, want [3,7]", p)
	}
}

func TestParseAndOverlay(t *testing.T) {
	art := `
.....
.##..
.....`
	g, err := Parse(art)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if g.Cols != 5 || g.Rows != 3 || g.BlockedCount() != 2 {
		t.Fatalf("parsed %dx%d with %d blocked", g.Cols, g.Rows, g.BlockedCount())
	}
	if g.String() != strings.TrimPrefix(art, "\n")+"\n" {
		t.Errorf("String() = %q", g.String())
	}

	path := []Point{{0, 2}, {1, 2}, {2, 2}, {3, 1}, {4, 0}}
	want := "....E\n.##*.\nS**..\n"
	if got := g.Overlay(path); got != want {
		t.Errorf("Overlay() =\n%s\nwant\n%s", got, want)
	}

	if _, err := Parse("..\n..."); err == nil {
		t.Error("ragged rows should fail to parse")
	}
}

func TestGridOutOfBounds(t *testing.T) {
	g := New(3, 3)
	if g.At(Point{Col: -1, Row: 0}) != Blocked {
		t.Error("cells outside the grid should read as blocked")
	}
	g.SetBlocked(Point{Col: 5, Row: 5})
	if g.BlockedCount() != 0 {
		t.Error("out-of-range Set should be ignored")
	}

	c := g.Clone()
	c.SetBlocked(Point{Col: 1, Row: 1})
	if g.At(Point{Col: 1, Row: 1}) != Free {
		t.Error("Clone should not share cells")
	}
}
