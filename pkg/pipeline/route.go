package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/smartedge/pkg/bbox"
	"github.com/matzehuels/smartedge/pkg/errors"
	"github.com/matzehuels/smartedge/pkg/geom"
	"github.com/matzehuels/smartedge/pkg/grid"
	"github.com/matzehuels/smartedge/pkg/observability"
	"github.com/matzehuels/smartedge/pkg/pathfind"
)

// Route computes an obstacle-avoiding edge between req.Source and
// req.Target.
//
// Errors carry a code from package errors: CONFIG_OUT_OF_RANGE for rejected
// options or an oversized grid, INVALID_GEOMETRY for non-finite anchors and
// NO_PATH_FOUND when the anchors are not connected through free cells. No
// fallback path is produced on failure.
func Route(ctx context.Context, req Request, opts Options) (*Result, error) {
	start := time.Now()
	hooks := observability.Route()
	hooks.OnRouteStart(ctx, len(req.Nodes))

	res, err := route(ctx, req, opts)
	if res != nil {
		res.Stats.Duration = time.Since(start)
	}
	hooks.OnRouteComplete(ctx, time.Since(start), err)
	return res, err
}

func route(ctx context.Context, req Request, opts Options) (*Result, error) {
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := validateAnchors(req.Source, req.Target); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logger := opts.Logger

	boxes := bbox.Generate(req.Nodes, req.Source.Point, req.Target.Point, opts.NodePadding, opts.GridRatio)
	for _, w := range boxes.Warnings {
		logger.Warn("recovered node geometry", "detail", w)
	}

	if cells := cellLimit(boxes.Graph, opts.GridRatio); cells > float64(opts.MaxCells) {
		return nil, errors.New(errors.ErrCodeConfigOutOfRange,
			"grid of %.0f cells exceeds limit of %d; increase the grid ratio", cells, opts.MaxCells)
	}

	var buildOpts []grid.BuildOption
	if !opts.DisableAnchorEscape {
		buildOpts = append(buildOpts, grid.WithAnchorEscape())
	}
	g, startCell, endCell := grid.Build(boxes.Graph, boxes.Nodes, req.Source, req.Target, opts.GridRatio, buildOpts...)
	blocked := g.BlockedCount()
	observability.Route().OnGridBuilt(ctx, g.Cols, g.Rows, blocked)
	logger.Debug("grid built", "cols", g.Cols, "rows", g.Rows, "blocked", blocked, "start", startCell, "end", endCell)

	found, err := opts.GeneratePath.FindPath(ctx, g, startCell, endCell)
	observability.Route().OnSearchComplete(ctx, found.Expanded, found.Cost, err)
	if err != nil {
		logger.Debug("search failed", "expanded", found.Expanded, "err", err)
		return nil, fmt.Errorf("route %v -> %v: %w", req.Source.Point, req.Target.Point, err)
	}
	if err := checkPath(found.Full, startCell, endCell); err != nil {
		return nil, err
	}
	smoothed := found.Smoothed
	if len(smoothed) == 0 {
		smoothed = pathfind.Simplify(found.Full)
	}
	logger.Debug("path found", "cells", len(found.Full), "waypoints", len(smoothed), "expanded", found.Expanded, "cost", found.Cost)

	waypoints := make([]geom.Point, len(smoothed))
	for i, p := range smoothed {
		waypoints[i] = g.ToGraph(p)
	}
	label := g.ToGraph(found.Full[len(found.Full)/2])

	return &Result{
		Path:      opts.DrawEdge.Draw(req.Source, req.Target, waypoints),
		LabelX:    label.X,
		LabelY:    label.Y,
		Waypoints: waypoints,
		Full:      found.Full,
		Smoothed:  smoothed,
		Grid:      g,
		GraphBox:  boxes.Graph,
		NodeBoxes: boxes.Nodes,
		Warnings:  boxes.Warnings,
		Stats: Stats{
			Cols:     g.Cols,
			Rows:     g.Rows,
			Blocked:  blocked,
			Expanded: found.Expanded,
			Length:   pathfind.PathCost(found.Full) * g.Ratio,
		},
	}, nil
}

func validateAnchors(source, target geom.AnchorPoint) error {
	for _, c := range []struct {
		name string
		v    float64
	}{
		{"source.x", source.X},
		{"source.y", source.Y},
		{"target.x", target.X},
		{"target.y", target.Y},
	} {
		if err := errors.ValidateCoordinate(c.name, c.v); err != nil {
			return err
		}
	}
	return nil
}

// checkPath guards against strategies that return a malformed path.
func checkPath(full []grid.Point, start, end grid.Point) error {
	if len(full) == 0 {
		return errors.New(errors.ErrCodeInternal, "path strategy returned an empty path")
	}
	if full[0] != start || full[len(full)-1] != end {
		return errors.New(errors.ErrCodeInternal, "path strategy returned %v -> %v, want %v -> %v",
			full[0], full[len(full)-1], start, end)
	}
	return nil
}
