// Package preview draws a routed scene as a standalone SVG document.
//
// The preview shows every node, the padded obstacle boxes the router
// avoided, optionally the blocked grid cells, and the routed edge with its
// anchors and label point. It is a debugging aid for tuning grid ratio and
// padding; host applications draw the edge path themselves.
//
//	res, _ := pipeline.Route(ctx, req, opts)
//	svg := preview.RenderSVG(req, res, preview.Options{ShowGrid: true})
//
// Shapes are drawn in whole graph units; the edge path is copied verbatim
// from the routing result.
package preview

import (
	"bytes"
	"fmt"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/matzehuels/smartedge/pkg/geom"
	"github.com/matzehuels/smartedge/pkg/grid"
	"github.com/matzehuels/smartedge/pkg/pipeline"
)

// DefaultScale is the pixel size of one graph unit.
const DefaultScale = 2.0

// Options configures the preview.
type Options struct {
	// Scale multiplies the document size. Zero means DefaultScale.
	Scale float64

	// ShowGrid shades blocked grid cells.
	ShowGrid bool

	// HidePadding omits the padded obstacle boxes.
	HidePadding bool
}

const (
	styleBackground = "fill:#ffffff"
	styleBlocked    = "fill:#f1f3f5;stroke:none"
	stylePadding    = "fill:none;stroke:#adb5bd;stroke-dasharray:4 3"
	styleNode       = "fill:#e7f5ff;stroke:#1c7ed6;stroke-width:1.5"
	styleNodeLabel  = "font-family:sans-serif;font-size:10px;fill:#1864ab;text-anchor:middle;dominant-baseline:middle"
	styleEdge       = "fill:none;stroke:#d6336c;stroke-width:2"
	styleSource     = "fill:#2b8a3e"
	styleTarget     = "fill:#c92a2a"
	styleLabel      = "fill:#f59f00;stroke:#ffffff;stroke-width:1"
)

// RenderSVG returns an SVG document showing req routed as res.
func RenderSVG(req pipeline.Request, res *pipeline.Result, opts Options) []byte {
	scale := opts.Scale
	if !(scale > 0) {
		scale = DefaultScale
	}

	view := viewBox(req, res)
	minX, minY := ifloor(view.XMin), ifloor(view.YMin)
	w, h := iceil(view.XMax)-minX, iceil(view.YMax)-minY

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Startview(int(float64(w)*scale), int(float64(h)*scale), minX, minY, w, h)
	canvas.Title("smartedge route")
	canvas.Rect(minX, minY, w, h, styleBackground)

	if opts.ShowGrid && res.Grid != nil {
		drawBlocked(canvas, res.Grid)
	}
	if !opts.HidePadding {
		canvas.Gid("padding")
		for _, b := range res.NodeBoxes {
			rect(canvas, b, stylePadding)
		}
		canvas.Gend()
	}

	canvas.Gid("nodes")
	for _, n := range req.Nodes {
		if !(geom.Point{X: n.X, Y: n.Y}).IsFinite() {
			continue
		}
		rect(canvas, n.Rect(), styleNode)
		if n.ID != "" {
			c := n.Center()
			canvas.Text(iround(c.X), iround(c.Y), n.ID, styleNodeLabel)
		}
	}
	canvas.Gend()

	canvas.Path(res.Path, styleEdge)
	canvas.Circle(iround(req.Source.X), iround(req.Source.Y), 3, styleSource)
	canvas.Circle(iround(req.Target.X), iround(req.Target.Y), 3, styleTarget)
	canvas.Circle(iround(res.LabelX), iround(res.LabelY), 4, styleLabel)
	canvas.End()
	return buf.Bytes()
}

// viewBox covers the graph box, every node and both anchors.
func viewBox(req pipeline.Request, res *pipeline.Result) geom.BoundingBox {
	box := res.GraphBox.Include(req.Source.Point).Include(req.Target.Point)
	for _, n := range req.Nodes {
		if r := n.Rect(); r.Min().IsFinite() && r.Max().IsFinite() {
			box = box.Union(r)
		}
	}
	return box
}

func drawBlocked(canvas *svg.SVG, g *grid.Grid) {
	canvas.Gid("blocked")
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			p := grid.Point{Col: col, Row: row}
			if !g.IsFree(p) {
				rect(canvas, g.CellRect(p), styleBlocked)
			}
		}
	}
	canvas.Gend()
}

func rect(canvas *svg.SVG, b geom.BoundingBox, style string) {
	x, y := iround(b.XMin), iround(b.YMin)
	canvas.Rect(x, y, iround(b.XMax)-x, iround(b.YMax)-y, style)
}

func iround(v float64) int { return int(math.Round(v)) }
func ifloor(v float64) int { return int(math.Floor(v)) }
func iceil(v float64) int  { return int(math.Ceil(v)) }

// Summary returns a one-line description of a routed scene for captions.
func Summary(res *pipeline.Result) string {
	return fmt.Sprintf("%dx%d grid, %d blocked, %d waypoints, length %.1f",
		res.Stats.Cols, res.Stats.Rows, res.Stats.Blocked, len(res.Waypoints), res.Stats.Length)
}
