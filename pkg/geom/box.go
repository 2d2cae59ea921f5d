package geom

import "math"

// BoundingBox is an axis-aligned rectangle in continuous space.
// Valid boxes satisfy XMin ≤ XMax and YMin ≤ YMax.
type BoundingBox struct {
	XMin float64 `json:"xMin"`
	XMax float64 `json:"xMax"`
	YMin float64 `json:"yMin"`
	YMax float64 `json:"yMax"`
}

// BoxAround returns the degenerate box containing only p.
func BoxAround(p Point) BoundingBox {
	return BoundingBox{XMin: p.X, XMax: p.X, YMin: p.Y, YMax: p.Y}
}

// Width returns XMax - XMin.
func (b BoundingBox) Width() float64 { return b.XMax - b.XMin }

// Height returns YMax - YMin.
func (b BoundingBox) Height() float64 { return b.YMax - b.YMin }

// Min returns the top-left corner.
func (b BoundingBox) Min() Point { return Point{X: b.XMin, Y: b.YMin} }

// Max returns the bottom-right corner.
func (b BoundingBox) Max() Point { return Point{X: b.XMax, Y: b.YMax} }

// Contains reports whether p lies inside b or on its boundary.
func (b BoundingBox) Contains(p Point) bool {
	return p.X >= b.XMin && p.X <= b.XMax && p.Y >= b.YMin && p.Y <= b.YMax
}

// ContainsStrict reports whether p lies in the open interior of b.
func (b BoundingBox) ContainsStrict(p Point) bool {
	return p.X > b.XMin && p.X < b.XMax && p.Y > b.YMin && p.Y < b.YMax
}

// ContainsBox reports whether o lies entirely inside b.
func (b BoundingBox) ContainsBox(o BoundingBox) bool {
	return o.XMin >= b.XMin && o.XMax <= b.XMax && o.YMin >= b.YMin && o.YMax <= b.YMax
}

// Overlaps reports whether the open interiors of b and o intersect.
func (b BoundingBox) Overlaps(o BoundingBox) bool {
	return b.XMin < o.XMax && o.XMin < b.XMax && b.YMin < o.YMax && o.YMin < b.YMax
}

// Expand grows the box by d on every side.
func (b BoundingBox) Expand(d float64) BoundingBox {
	return BoundingBox{XMin: b.XMin - d, XMax: b.XMax + d, YMin: b.YMin - d, YMax: b.YMax + d}
}

// Union returns the smallest box containing both b and o.
func (b BoundingBox) Union(o BoundingBox) BoundingBox {
	return BoundingBox{
		XMin: math.Min(b.XMin, o.XMin),
		XMax: math.Max(b.XMax, o.XMax),
		YMin: math.Min(b.YMin, o.YMin),
		YMax: math.Max(b.YMax, o.YMax),
	}
}

// Include returns the smallest box containing b and p.
func (b BoundingBox) Include(p Point) BoundingBox {
	return b.Union(BoxAround(p))
}

// Snap rounds the minimum corner down and the maximum corner up to the
// nearest multiple of step, so the result always contains b.
func (b BoundingBox) Snap(step float64) BoundingBox {
	return BoundingBox{
		XMin: RoundDown(b.XMin, step),
		XMax: RoundUp(b.XMax, step),
		YMin: RoundDown(b.YMin, step),
		YMax: RoundUp(b.YMax, step),
	}
}

// RoundDown returns the largest multiple of step that is ≤ v.
func RoundDown(v, step float64) float64 {
	return math.Floor(v/step) * step
}

// RoundUp returns the smallest multiple of step that is ≥ v.
func RoundUp(v, step float64) float64 {
	return math.Ceil(v/step) * step
}
