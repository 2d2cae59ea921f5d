// Package render groups the output stages of the router.
//
// # Edge Paths
//
// The [edge] subpackage turns a routed path into SVG path data. This is the
// output host applications consume:
//
//	d := edge.SmoothLine.Draw(source, target, waypoints)
//
// # Scene Previews
//
// The [preview] subpackage draws a whole routed scene (nodes, padding,
// blocked cells, route and label) as an SVG document for debugging:
//
//	svg := preview.RenderSVG(req, res, preview.Options{ShowGrid: true})
//
// # Graphviz Export
//
// The [nodelink] subpackage writes the scene as Graphviz DOT with every node
// pinned, and renders it in-process:
//
//	dot := nodelink.ToDOT(req, res, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// [edge]: github.com/matzehuels/smartedge/pkg/render/edge
// [preview]: github.com/matzehuels/smartedge/pkg/render/preview
// [nodelink]: github.com/matzehuels/smartedge/pkg/render/nodelink
package render
