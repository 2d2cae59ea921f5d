package edge

import (
	"strings"

	"github.com/matzehuels/smartedge/pkg/geom"
)

// Step draws an axis-aligned polyline. Every diagonal leg of the route is
// replaced by an elbow; the first leg leaves along the source side's axis
// and the last leg arrives along the target side's axis.
var Step = RendererFunc(drawStep)

func drawStep(source, target geom.AnchorPoint, waypoints []geom.Point) string {
	pts := points(source, target, waypoints)
	legs := len(pts) - 1

	path := []geom.Point{pts[0]}
	vertical := source.Side.IsVertical()
	for i := 0; i < legs; i++ {
		a, b := pts[i], pts[i+1]
		endVertical := !vertical
		if i == legs-1 {
			endVertical = target.Side.IsVertical()
		}
		path = append(path, elbow(a, b, vertical, endVertical)...)
		path = append(path, b)
		vertical = !endVertical
	}

	path = dedupe(path)
	parts := make([]string, 0, 2*len(path))
	parts = append(parts, "M", pt(path[0]))
	for _, p := range path[1:] {
		parts = append(parts, "L", pt(p))
	}
	return strings.Join(parts, " ")
}

// elbow returns the corner points of an orthogonal leg from a to b that
// leaves vertically when startV is set and arrives vertically when endV is
// set. Legs that leave and arrive on the same axis bend at the midpoint.
func elbow(a, b geom.Point, startV, endV bool) []geom.Point {
	if a.X == b.X || a.Y == b.Y {
		return nil
	}
	switch {
	case startV && endV:
		y := (a.Y + b.Y) / 2
		return []geom.Point{{X: a.X, Y: y}, {X: b.X, Y: y}}
	case !startV && !endV:
		x := (a.X + b.X) / 2
		return []geom.Point{{X: x, Y: a.Y}, {X: x, Y: b.Y}}
	case startV:
		return []geom.Point{{X: a.X, Y: b.Y}}
	default:
		return []geom.Point{{X: b.X, Y: a.Y}}
	}
}

// dedupe drops consecutive duplicates and vertices that lie in the middle of
// a straight horizontal or vertical run.
func dedupe(path []geom.Point) []geom.Point {
	out := make([]geom.Point, 0, len(path))
	for _, p := range path {
		if n := len(out); n > 0 && out[n-1] == p {
			continue
		}
		if n := len(out); n >= 2 {
			a, b := out[n-2], out[n-1]
			if (a.X == b.X && b.X == p.X) || (a.Y == b.Y && b.Y == p.Y) {
				out[n-1] = p
				continue
			}
		}
		out = append(out, p)
	}
	return out
}
