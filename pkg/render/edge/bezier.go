package edge

import (
	"strings"

	"github.com/matzehuels/smartedge/pkg/geom"
)

// DefaultCurvature is the anchor tangent length as a fraction of the first
// and last leg.
const DefaultCurvature = 0.25

// Bezier draws cubic curves through every waypoint. At the anchors the
// tangent points outward along the anchor side, so the edge leaves and
// enters its nodes perpendicular to their borders; interior tangents follow
// a Catmull-Rom spline.
type Bezier struct {
	// Curvature scales the anchor tangents. Zero draws straight end legs.
	Curvature float64
}

// Draw implements [Renderer].
func (b Bezier) Draw(source, target geom.AnchorPoint, waypoints []geom.Point) string {
	pts := points(source, target, waypoints)
	last := len(pts) - 1

	var sb strings.Builder
	sb.WriteString("M " + pt(pts[0]))
	for i := 0; i < last; i++ {
		p0, p1 := pts[i], pts[i+1]

		var c1, c2 geom.Point
		if i == 0 {
			c1 = b.tangent(source, p0.Dist(p1))
		} else {
			prev := pts[i-1]
			c1 = p0.Add((p1.X-prev.X)/6, (p1.Y-prev.Y)/6)
		}
		if i+1 == last {
			c2 = b.tangent(target, p0.Dist(p1))
		} else {
			next := pts[i+2]
			c2 = p1.Add(-(next.X-p0.X)/6, -(next.Y-p0.Y)/6)
		}
		sb.WriteString(" C " + pt(c1) + " " + pt(c2) + " " + pt(p1))
	}
	return sb.String()
}

// tangent returns the control point pushed out of a along its side's normal.
func (b Bezier) tangent(a geom.AnchorPoint, leg float64) geom.Point {
	dx, dy := a.Side.Normal()
	d := b.Curvature * leg
	return a.Add(dx*d, dy*d)
}
