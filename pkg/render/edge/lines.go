package edge

import (
	"strings"

	"github.com/matzehuels/smartedge/pkg/geom"
)

// SmoothLine joins the midpoints between consecutive points with quadratic
// curves whose control points are the route's vertices. Every corner is
// rounded and the curve still starts and ends exactly at the anchors.
var SmoothLine = RendererFunc(drawSmooth)

func drawSmooth(source, target geom.AnchorPoint, waypoints []geom.Point) string {
	pts := points(source, target, waypoints)

	var sb strings.Builder
	sb.WriteString("M" + pt(pts[0]) + "M")
	prev := pts[0]
	for _, next := range pts {
		sb.WriteString(" " + pt(prev.Mid(next)))
		sb.WriteString("Q" + pt(next))
		prev = next
	}
	sb.WriteString(" " + pt(pts[len(pts)-1]))
	return sb.String()
}

// StraightLine draws a polyline from the source through every waypoint to
// the target.
var StraightLine = RendererFunc(drawStraight)

func drawStraight(source, target geom.AnchorPoint, waypoints []geom.Point) string {
	pts := points(source, target, waypoints)

	parts := make([]string, 0, 2*len(pts))
	parts = append(parts, "M", pt(pts[0]))
	for _, p := range pts[1:] {
		parts = append(parts, "L", pt(p))
	}
	return strings.Join(parts, " ")
}
