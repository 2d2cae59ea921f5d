// Package grid rasterizes the traversable graph area into a discrete
// occupancy grid and maps between grid cells and continuous coordinates.
//
// # Layout
//
// A [Grid] covers its graph box with Cols × Rows square cells of side Ratio.
// Cell (col, row) spans [Origin.X + col·Ratio, Origin.X + (col+1)·Ratio) and
// likewise on the y axis. Cells are stored row-major.
//
// # Building
//
// [Build] allocates the grid, marks every cell whose center lies within a
// node box as [Blocked], maps the two anchors to their cells and forces those
// cells [Free] so an anchor sitting inside node padding can still be routed:
//
//	g, start, end := grid.Build(boxes.Graph, boxes.Nodes, src, dst, 10)
//
// With [WithAnchorEscape], the builder also clears a corridor from each anchor
// cell outward along the anchor's side until it reaches free space.
//
// # Coordinate Mapping
//
// [ToGridPoint] and [ToGraphPoint] convert between spaces. Mapping a cell
// back yields its top-left corner, so a round trip lands within one ratio of
// the original point.
package grid
