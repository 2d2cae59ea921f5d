package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/smartedge/pkg/geom"
	"github.com/matzehuels/smartedge/pkg/pipeline"
)

// pointsPerInch converts graph units to Graphviz inches for node sizes.
const pointsPerInch = 72.0

// Options configures DOT generation.
type Options struct {
	// Detailed labels nodes with their position and size.
	Detailed bool

	// ShowPadding adds the padded obstacle boxes as dashed outlines.
	ShowPadding bool
}

// ToDOT converts a routed scene to Graphviz DOT. Every node is pinned at its
// graph position and the route is a chain of point-shaped waypoint nodes
// joined by straight edges, so the neato layout reproduces the scene exactly.
// Graph space has y pointing down; DOT positions are flipped to match.
func ToDOT(req pipeline.Request, res *pipeline.Result, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  inputscale=72;\n")
	buf.WriteString("  splines=line;\n")
	buf.WriteString("  outputorder=edgesfirst;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fixedsize=true, fontsize=10];\n")
	buf.WriteString("  edge [color=\"#d6336c\", penwidth=2];\n")
	buf.WriteString("\n")

	if opts.ShowPadding {
		for i, b := range res.NodeBoxes {
			fmt.Fprintf(&buf, "  \"pad%d\" [%s, label=\"\", style=dashed, color=grey];\n", i, boxAttrs(b))
		}
	}
	for i, n := range req.Nodes {
		r := n.Rect()
		if !r.Min().IsFinite() || !r.Max().IsFinite() {
			continue
		}
		fmt.Fprintf(&buf, "  %q [%s, label=%q];\n", nodeID(n, i), boxAttrs(r), fmtLabel(n, i, opts.Detailed))
	}

	buf.WriteString("\n")
	fmt.Fprintf(&buf, "  \"source\" [shape=point, width=0.08, color=\"#2b8a3e\", pos=%q];\n", pos(req.Source.Point))
	fmt.Fprintf(&buf, "  \"target\" [shape=point, width=0.08, color=\"#c92a2a\", pos=%q];\n", pos(req.Target.Point))
	fmt.Fprintf(&buf, "  \"label\" [shape=plaintext, label=\"label\", fontcolor=\"#f59f00\", pos=%q];\n", pos(res.Label()))
	for i, w := range res.Waypoints {
		fmt.Fprintf(&buf, "  \"w%d\" [shape=point, width=0.02, pos=%q];\n", i, pos(w))
	}

	buf.WriteString("\n")
	prev := "source"
	for i := range res.Waypoints {
		cur := "w" + strconv.Itoa(i)
		fmt.Fprintf(&buf, "  %q -- %q;\n", prev, cur)
		prev = cur
	}
	fmt.Fprintf(&buf, "  %q -- \"target\";\n", prev)

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(n geom.Node, i int) string {
	if n.ID != "" {
		return "node:" + n.ID
	}
	return fmt.Sprintf("node:#%d", i)
}

func fmtLabel(n geom.Node, i int, detailed bool) string {
	name := n.ID
	if name == "" {
		name = fmt.Sprintf("#%d", i)
	}
	if !detailed {
		return name
	}
	return fmt.Sprintf("%s\n(%g, %g)\n%gx%g", name, n.X, n.Y, n.Width, n.Height)
}

// boxAttrs pins a box by its center and sizes it in inches.
func boxAttrs(b geom.BoundingBox) string {
	c := b.Min().Mid(b.Max())
	return fmt.Sprintf("pos=%q, width=%s, height=%s",
		pos(c), num(b.Width()/pointsPerInch), num(b.Height()/pointsPerInch))
}

// pos formats a pinned Graphviz position, flipping y.
func pos(p geom.Point) string {
	return num(p.X) + "," + num(-p.Y) + "!"
}

func num(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// RenderSVG renders a DOT graph to SVG using the Graphviz neato engine,
// which honors the pinned positions written by [ToDOT].
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
