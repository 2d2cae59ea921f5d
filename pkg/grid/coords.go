package grid

import (
	"math"

	"github.com/matzehuels/smartedge/pkg/geom"
)

// ToGraphPoint maps a grid cell to the graph-space position of its top-left
// corner: origin + index·ratio. It is total; any cell index maps.
func ToGraphPoint(p Point, origin geom.Point, ratio float64) geom.Point {
	return geom.Point{
		X: origin.X + float64(p.Col)*ratio,
		Y: origin.Y + float64(p.Row)*ratio,
	}
}

// ToGridPoint maps a graph-space point to the index of the cell containing
// it: floor((coord − origin)/ratio). The result is not clamped.
func ToGridPoint(pt geom.Point, origin geom.Point, ratio float64) Point {
	return Point{
		Col: int(math.Floor(snapEps((pt.X - origin.X) / ratio))),
		Row: int(math.Floor(snapEps((pt.Y - origin.Y) / ratio))),
	}
}

// snapEps rounds values within floating-point noise of an integer onto it,
// so 0.3/0.1 lands in cell 3 rather than 2.
func snapEps(v float64) float64 {
	if r := math.Round(v); math.Abs(v-r) < 1e-9 {
		return r
	}
	return v
}
