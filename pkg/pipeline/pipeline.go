// Package pipeline routes a single smart edge end to end.
//
// This package composes the routing stages into one call that the CLI, the
// HTTP API and library users share, so every entry point produces the same
// path for the same scene.
//
// # Architecture
//
// A call runs five stages in order, each a pure function of the previous
// stage's output:
//
//  1. Boxes: pad and snap node rectangles, derive the graph area ([bbox])
//  2. Grid: rasterize the graph area and mark obstacles ([grid])
//  3. Search: find the cell path between the anchors ([pathfind])
//  4. Map: convert the simplified path back to graph space
//  5. Draw: render SVG path data and place the label ([edge])
//
// Nothing is cached or shared between calls; concurrent calls are safe.
//
// # Usage
//
//	res, err := pipeline.Route(ctx, pipeline.Request{
//	    Source: geom.Anchor(0, 0, geom.Bottom),
//	    Target: geom.Anchor(100, 100, geom.Top),
//	    Nodes:  nodes,
//	}, pipeline.DefaultOptions())
//	if errors.Is(err, errors.ErrCodeNoPathFound) {
//	    // draw a fallback edge
//	}
//	fmt.Println(res.Path, res.LabelX, res.LabelY)
//
// [bbox]: github.com/matzehuels/smartedge/pkg/bbox
// [grid]: github.com/matzehuels/smartedge/pkg/grid
// [pathfind]: github.com/matzehuels/smartedge/pkg/pathfind
// [edge]: github.com/matzehuels/smartedge/pkg/render/edge
package pipeline

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/smartedge/pkg/bbox"
	"github.com/matzehuels/smartedge/pkg/errors"
	"github.com/matzehuels/smartedge/pkg/geom"
	"github.com/matzehuels/smartedge/pkg/grid"
	"github.com/matzehuels/smartedge/pkg/pathfind"
	"github.com/matzehuels/smartedge/pkg/render/edge"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, API, and Library
// =============================================================================

const (
	// DefaultGridRatio is the graph-space size of one grid cell.
	DefaultGridRatio = bbox.DefaultGridRatio

	// DefaultNodePadding is the obstacle inflation around every node.
	DefaultNodePadding = bbox.DefaultNodePadding

	// DefaultMaxCells caps the grid size. A 2000x2000 grid costs 4 MB of
	// cell state and keeps a worst-case search well under a second.
	DefaultMaxCells = 4_000_000
)

// =============================================================================
// Options - Routing Configuration
// =============================================================================

// Options configures a routing call. Use [DefaultOptions] as a starting point;
// zero fields are filled by [Options.SetDefaults].
type Options struct {
	// GridRatio is the graph-space size of one grid cell. Zero means unset.
	GridRatio float64

	// NodePadding inflates every node box. Zero is a valid padding.
	NodePadding float64

	// DrawEdge renders the routed path. Nil selects [edge.SmoothLine].
	DrawEdge edge.Renderer

	// GeneratePath searches the grid. Nil selects the diagonal A*.
	GeneratePath pathfind.Strategy

	// DisableAnchorEscape keeps anchors buried in node padding. By default
	// a corridor is cleared out of the padding along each anchor's side, so
	// an anchor on a node border can leave its node.
	DisableAnchorEscape bool

	// MaxCells rejects grids with more cells. Zero means [DefaultMaxCells].
	MaxCells int

	// Logger receives debug events. Nil discards them.
	Logger *log.Logger
}

// DefaultOptions returns options with every field set to its default.
func DefaultOptions() Options {
	var o Options
	o.SetDefaults()
	return o
}

// SetDefaults fills unset fields. It is idempotent.
func (o *Options) SetDefaults() {
	if o.GridRatio == 0 {
		o.GridRatio = DefaultGridRatio
	}
	if o.DrawEdge == nil {
		o.DrawEdge = edge.SmoothLine
	}
	if o.GeneratePath == nil {
		o.GeneratePath = pathfind.NewAStarDiagonal()
	}
	if o.MaxCells == 0 {
		o.MaxCells = DefaultMaxCells
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate rejects out-of-range numeric options with CONFIG_OUT_OF_RANGE.
func (o *Options) Validate() error {
	if err := errors.ValidateGridRatio(o.GridRatio); err != nil {
		return err
	}
	if err := errors.ValidateNodePadding(o.NodePadding); err != nil {
		return err
	}
	if o.MaxCells < 0 {
		return errors.New(errors.ErrCodeConfigOutOfRange, "max cells must not be negative, got %d", o.MaxCells)
	}
	return nil
}

// =============================================================================
// Request and Result
// =============================================================================

// Request is one edge to route.
type Request struct {
	Source geom.AnchorPoint
	Target geom.AnchorPoint
	Nodes  []geom.Node
}

// Result is a routed edge. Path, LabelX and LabelY are in the same
// coordinate space as the request.
type Result struct {
	Path   string  `json:"path"`
	LabelX float64 `json:"labelX"`
	LabelY float64 `json:"labelY"`

	// Waypoints is the simplified path in graph space, as passed to the
	// renderer.
	Waypoints []geom.Point `json:"waypoints"`

	// Full and Smoothed are the grid-space paths.
	Full     []grid.Point `json:"-"`
	Smoothed []grid.Point `json:"-"`

	// Grid is the occupancy grid the search ran on.
	Grid *grid.Grid `json:"-"`

	GraphBox  geom.BoundingBox   `json:"graphBox"`
	NodeBoxes []geom.BoundingBox `json:"nodeBoxes"`
	Warnings  []string           `json:"warnings,omitempty"`
	Stats     Stats              `json:"stats"`
}

// Stats contains routing statistics.
type Stats struct {
	Cols     int           `json:"cols"`
	Rows     int           `json:"rows"`
	Blocked  int           `json:"blocked"`
	Expanded int           `json:"expanded"`
	Length   float64       `json:"length"` // graph-space length of the full path
	Duration time.Duration `json:"duration"`
}

// Label returns the label anchor as a point.
func (r *Result) Label() geom.Point {
	return geom.Point{X: r.LabelX, Y: r.LabelY}
}

// cellLimit estimates the cell count of box at ratio without allocating.
func cellLimit(box geom.BoundingBox, ratio float64) float64 {
	cols := math.Max(1, math.Ceil(box.Width()/ratio))
	rows := math.Max(1, math.Ceil(box.Height()/ratio))
	return cols * rows
}
