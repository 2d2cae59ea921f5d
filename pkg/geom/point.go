package geom

import (
	"fmt"
	"math"
	"strings"
)

// Point represents a coordinate in continuous graph space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// IsFinite reports whether both coordinates are finite numbers.
func (p Point) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

// Mid returns the midpoint between p and q.
func (p Point) Mid(q Point) Point {
	return Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Side is the side of a node an edge leaves or enters through.
type Side int

const (
	Top Side = iota
	Right
	Bottom
	Left
)

var sideNames = [...]string{"top", "right", "bottom", "left"}

// String returns the lower-case side name.
func (s Side) String() string {
	if s < Top || s > Left {
		return "unknown"
	}
	return sideNames[s]
}

// Normal returns the outward unit vector for the side.
func (s Side) Normal() (dx, dy float64) {
	switch s {
	case Top:
		return 0, -1
	case Right:
		return 1, 0
	case Bottom:
		return 0, 1
	case Left:
		return -1, 0
	}
	return 0, 0
}

// IsVertical reports whether an edge leaving through s starts vertically.
func (s Side) IsVertical() bool {
	return s == Top || s == Bottom
}

// ParseSide parses a side name. Matching is case-insensitive; the empty
// string parses as Bottom, the default source side of a host edge.
func ParseSide(name string) (Side, error) {
	if name == "" {
		return Bottom, nil
	}
	for i, n := range sideNames {
		if strings.EqualFold(n, name) {
			return Side(i), nil
		}
	}
	return Top, fmt.Errorf("unknown side %q (must be one of: top, right, bottom, left)", name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Side) UnmarshalText(text []byte) error {
	v, err := ParseSide(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// AnchorPoint is the fixed endpoint of a routed edge attached to a node side.
type AnchorPoint struct {
	Point
	Side Side `json:"side"`
}

// Anchor is a convenience constructor for an AnchorPoint.
func Anchor(x, y float64, side Side) AnchorPoint {
	return AnchorPoint{Point: Point{X: x, Y: y}, Side: side}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
