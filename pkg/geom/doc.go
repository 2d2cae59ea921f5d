// Package geom defines the continuous-space value types shared by every
// stage of the routing pipeline.
//
// Coordinates are float64 values in the host diagram's coordinate space:
// x grows to the right and y grows downward, matching SVG.
//
// # Types
//
//   - [Point]: a position in graph space
//   - [AnchorPoint]: a routed edge endpoint plus the [Side] of the node it leaves
//   - [BoundingBox]: an axis-aligned rectangle with XMin ≤ XMax, YMin ≤ YMax
//   - [Node]: a host node descriptor (top-left position and size)
//
// All types are plain values. Methods never mutate their receiver; operations
// such as [BoundingBox.Expand] and [BoundingBox.Snap] return new boxes.
package geom
