// Package nodelink exports routed scenes as Graphviz diagrams.
//
// # Overview
//
// [ToDOT] writes a scene and its route as Graphviz DOT source. Nodes are
// pinned boxes at their graph positions; the route is a chain of point-sized
// waypoint nodes joined by straight edges. The DOT can be:
//
//   - Rendered directly via [RenderSVG]
//   - Saved and processed with external Graphviz tools (neato -n2)
//   - Diffed to compare routes across option changes
//
// # Usage
//
//	dot := nodelink.ToDOT(req, res, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering with the neato engine.
package nodelink
