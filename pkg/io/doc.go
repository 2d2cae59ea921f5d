// Package io reads routing scenes and option files and writes routing
// results.
//
// # Scene Format
//
// A scene is one edge to route plus the nodes it must avoid:
//
//	{
//	  "source": {"x": 0, "y": 0, "side": "bottom"},
//	  "target": {"x": 100, "y": 200, "side": "top"},
//	  "nodes": [
//	    {"id": "a", "x": -50, "y": 80, "width": 100, "height": 40}
//	  ],
//	  "options": {"gridRatio": 10, "nodePadding": 10, "drawEdge": "smooth"}
//	}
//
// Node x and y are the top-left corner, as reported by host diagram
// frameworks. Missing sides default to bottom for the source and top for the
// target. The options object is optional; any key it omits keeps its
// default.
//
// # Option Files
//
// [LoadConfig] reads the same option keys from a TOML file:
//
//	gridRatio = 5
//	nodePadding = 20
//	drawEdge = "bezier"
//	generatePath = "astar"
//	escapeAnchors = false
//
// Options merge in order of precedence: command-line flags, then the option
// file, then the scene's embedded options, then the defaults.
//
// # Results
//
// [WriteResult] and [ExportResult] emit a routed edge as JSON:
//
//	{"path": "M0,0M ...", "labelX": 50, "labelY": 50, "waypoints": [...], ...}
//
// # Errors
//
// Malformed input is reported with code INVALID_INPUT; option values outside
// their range with CONFIG_OUT_OF_RANGE. Both wrap the underlying cause with the
// file path or field for context.
package io
