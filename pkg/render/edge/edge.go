package edge

import (
	"sort"
	"strconv"
	"strings"

	"github.com/matzehuels/smartedge/pkg/errors"
	"github.com/matzehuels/smartedge/pkg/geom"
)

// Renderer turns a routed edge into SVG path data.
type Renderer interface {
	Draw(source, target geom.AnchorPoint, waypoints []geom.Point) string
}

// RendererFunc adapts an ordinary function to the [Renderer] interface.
type RendererFunc func(source, target geom.AnchorPoint, waypoints []geom.Point) string

// Draw calls f(source, target, waypoints).
func (f RendererFunc) Draw(source, target geom.AnchorPoint, waypoints []geom.Point) string {
	return f(source, target, waypoints)
}

// Renderer names accepted by [Lookup].
const (
	NameSmooth   = "smooth"
	NameStraight = "straight"
	NameStep     = "step"
	NameBezier   = "bezier"
)

var renderers = map[string]Renderer{
	NameSmooth:   SmoothLine,
	NameStraight: StraightLine,
	NameStep:     Step,
	NameBezier:   Bezier{Curvature: DefaultCurvature},
}

// Names returns the registered renderer names in sorted order.
func Names() []string {
	names := make([]string, 0, len(renderers))
	for name := range renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns a renderer by name. Matching is case-insensitive and the
// empty name selects [SmoothLine].
func Lookup(name string) (Renderer, error) {
	if name == "" {
		return SmoothLine, nil
	}
	if err := errors.ValidateName("edge renderer", name, Names()); err != nil {
		return nil, err
	}
	return renderers[strings.ToLower(name)], nil
}

// points returns the full vertex list: source, waypoints, target.
func points(source, target geom.AnchorPoint, waypoints []geom.Point) []geom.Point {
	out := make([]geom.Point, 0, len(waypoints)+2)
	out = append(out, source.Point)
	out = append(out, waypoints...)
	return append(out, target.Point)
}

// num formats v in its shortest exact form, printing negative zero as 0.
func num(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// pt formats p as "x,y".
func pt(p geom.Point) string {
	return num(p.X) + "," + num(p.Y)
}
