// Package edge draws routed edges as SVG path data.
//
// A [Renderer] receives the two anchors and the waypoints of a routed path,
// already mapped back to graph space, and returns the "d" attribute of an SVG
// path element. Four renderers are provided:
//
//   - [SmoothLine]: quadratic curves through the midpoints between points,
//     rounding every corner of the route (the default)
//   - [StraightLine]: a polyline through every waypoint
//   - [Step]: an orthogonal polyline that leaves and enters along the anchor
//     sides
//   - [Bezier]: cubic curves whose end tangents follow the anchor sides
//
// Numbers are printed in their shortest exact decimal form so identical
// inputs always produce byte-identical output.
package edge
