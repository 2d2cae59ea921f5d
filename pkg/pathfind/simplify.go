package pathfind

import (
	"math"

	"github.com/matzehuels/smartedge/pkg/grid"
)

// Simplify drops every interior cell that continues in the same direction as
// the step before it. The first and last cells are always kept and a path of
// one or two cells is returned unchanged.
func Simplify(path []grid.Point) []grid.Point {
	if len(path) <= 2 {
		return append([]grid.Point(nil), path...)
	}

	out := []grid.Point{path[0]}
	for i := 1; i < len(path)-1; i++ {
		if direction(path[i-1], path[i]) != direction(path[i], path[i+1]) {
			out = append(out, path[i])
		}
	}
	return append(out, path[len(path)-1])
}

// PathCost returns the Euclidean length of path measured in cells.
func PathCost(path []grid.Point) float64 {
	var total float64
	for i := 1; i < len(path); i++ {
		dc := float64(path[i].Col - path[i-1].Col)
		dr := float64(path[i].Row - path[i-1].Row)
		total += math.Hypot(dc, dr)
	}
	return total
}

// direction returns the unit step from a to b.
func direction(a, b grid.Point) grid.Point {
	return grid.Point{Col: sign(b.Col - a.Col), Row: sign(b.Row - a.Row)}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
