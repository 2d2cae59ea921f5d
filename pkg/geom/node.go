package geom

// Node describes a diagram node as supplied by the host: the top-left
// position and the measured size.
type Node struct {
	ID     string  `json:"id,omitempty"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Rect returns the node's rectangle as a bounding box.
func (n Node) Rect() BoundingBox {
	return BoundingBox{XMin: n.X, XMax: n.X + n.Width, YMin: n.Y, YMax: n.Y + n.Height}
}

// Center returns the center point of the node.
func (n Node) Center() Point {
	return Point{X: n.X + n.Width/2, Y: n.Y + n.Height/2}
}

// Handle returns the anchor at the middle of the given side, the position a
// host framework would place an edge handle.
func (n Node) Handle(side Side) AnchorPoint {
	c := n.Center()
	switch side {
	case Top:
		return Anchor(c.X, n.Y, side)
	case Right:
		return Anchor(n.X+n.Width, c.Y, side)
	case Bottom:
		return Anchor(c.X, n.Y+n.Height, side)
	default:
		return Anchor(n.X, c.Y, Left)
	}
}
