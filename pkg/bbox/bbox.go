// Package bbox derives the traversable graph area and the per-node obstacle
// boxes from raw node geometry.
//
// [Generate] is the first stage of the routing pipeline. Its output is
// aligned to the grid: every box edge lies on a multiple of the grid ratio,
// so obstacle edges fall exactly on cell boundaries when the area is
// rasterized.
//
// # Recovery
//
// Host frameworks occasionally report nodes before they are measured. Such
// nodes are not an error here:
//
//   - a non-finite or non-positive width or height becomes [MinNodeSize]
//   - a node with a non-finite position cannot be placed and is skipped
//
// Every recovery is reported in [Boxes.Warnings].
package bbox

import (
	"fmt"
	"math"

	"github.com/matzehuels/smartedge/pkg/geom"
)

const (
	// DefaultNodePadding is the inflation applied to each node when the
	// requested padding is negative or NaN.
	DefaultNodePadding = 10.0

	// DefaultGridRatio is the cell size used when the requested ratio is
	// non-positive or NaN.
	DefaultGridRatio = 10.0

	// MinNodeSize replaces missing or degenerate node dimensions.
	MinNodeSize = 1.0
)

// Boxes is the output of [Generate].
type Boxes struct {
	// Graph encloses every node box and both anchors with at least one
	// grid cell of margin on each side.
	Graph geom.BoundingBox

	// Nodes holds one padded, grid-aligned box per placed node, in input order.
	Nodes []geom.BoundingBox

	// Warnings describes every node whose geometry had to be recovered.
	Warnings []string
}

// Generate computes the node boxes and the graph box.
//
// Each node rectangle is expanded by padding on all sides and snapped outward
// to the grid. The graph box is the union of all node boxes and the two
// anchors, snapped outward and then expanded by one ratio of margin.
func Generate(nodes []geom.Node, source, target geom.Point, padding, ratio float64) Boxes {
	if math.IsNaN(padding) || padding < 0 {
		padding = DefaultNodePadding
	}
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) || ratio <= 0 {
		ratio = DefaultGridRatio
	}

	out := Boxes{Nodes: make([]geom.BoundingBox, 0, len(nodes))}
	for i, n := range nodes {
		rect, warn, ok := nodeRect(n)
		if warn != "" {
			out.Warnings = append(out.Warnings, fmt.Sprintf("node %s: %s", nodeName(n, i), warn))
		}
		if !ok {
			continue
		}
		out.Nodes = append(out.Nodes, rect.Expand(padding).Snap(ratio))
	}

	graph := geom.BoxAround(source).Include(target)
	for _, b := range out.Nodes {
		graph = graph.Union(b)
	}
	out.Graph = graph.Snap(ratio).Expand(ratio)
	return out
}

// nodeRect returns the node's rectangle after recovering degenerate sizes.
// ok is false when the node cannot be placed at all.
func nodeRect(n geom.Node) (rect geom.BoundingBox, warn string, ok bool) {
	if !(geom.Point{X: n.X, Y: n.Y}).IsFinite() {
		return rect, fmt.Sprintf("non-finite position (%v, %v), skipped", n.X, n.Y), false
	}

	w, h := n.Width, n.Height
	if !validSize(w) || !validSize(h) {
		warn = fmt.Sprintf("invalid size %vx%v, using minimum size", w, h)
		if !validSize(w) {
			w = MinNodeSize
		}
		if !validSize(h) {
			h = MinNodeSize
		}
	}
	return geom.BoundingBox{XMin: n.X, XMax: n.X + w, YMin: n.Y, YMax: n.Y + h}, warn, true
}

func validSize(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

func nodeName(n geom.Node, i int) string {
	if n.ID != "" {
		return n.ID
	}
	return fmt.Sprintf("#%d", i)
}
