// Package pkg provides the core libraries for smartedge edge routing.
//
// # Overview
//
// Smartedge routes a diagram edge between two anchor points so that it
// avoids every node on the canvas. The pkg directory is organized into:
//
//  1. [geom], [bbox] - Geometry primitives and the padded obstacle boxes
//  2. [grid] - The occupancy grid and grid/graph coordinate mapping
//  3. [pathfind] - A* search strategies and path simplification
//  4. [render] - SVG path renderers and scene previews
//  5. [pipeline] - Orchestration (boxes → grid → search → render)
//  6. [io] - JSON scenes, TOML option files and result export
//
// # Architecture
//
// The data flow of one routing call:
//
//	Request (anchors + nodes)
//	         ↓
//	    [bbox] package (padded node boxes + graph box)
//	         ↓
//	    [grid] package (rasterize into free and blocked cells)
//	         ↓
//	    [pathfind] package (A* search + simplification)
//	         ↓
//	    [render/edge] package (SVG path data)
//	         ↓
//	    Result (path + label position)
//
// # Quick Start
//
//	import (
//	    "context"
//	    "github.com/matzehuels/smartedge/pkg/geom"
//	    "github.com/matzehuels/smartedge/pkg/pipeline"
//	)
//
//	res, err := pipeline.Route(context.Background(), pipeline.Request{
//	    Source: geom.Anchor(0, 0, geom.Bottom),
//	    Target: geom.Anchor(100, 200, geom.Top),
//	    Nodes:  []geom.Node{{ID: "a", X: -50, Y: 80, Width: 100, Height: 40}},
//	}, pipeline.DefaultOptions())
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Path, res.LabelX, res.LabelY)
//
// # Error Handling
//
// Every package returns [errors.Error] values carrying a machine-readable
// code (INVALID_INPUT, INVALID_GEOMETRY, CONFIG_OUT_OF_RANGE, NO_PATH_FOUND,
// INTERNAL_ERROR). Use [errors.Is] to test for a code.
//
// # Observability
//
// Register [observability.RouteHooks] at startup to receive routing events
// without adding a metrics dependency to the library packages.
package pkg
