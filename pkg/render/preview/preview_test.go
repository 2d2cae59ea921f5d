package preview

import (
	"bytes"
	"context"
	"encoding/xml"
	"io"
	"strings"
	"testing"

	"github.com/matzehuels/smartedge/pkg/geom"
	"github.com/matzehuels/smartedge/pkg/pipeline"
)

func routed(t *testing.T) (pipeline.Request, *pipeline.Result) {
	t.Helper()
	req := pipeline.Request{
		Source: geom.Anchor(0, 0, geom.Bottom),
		Target: geom.Anchor(0, 200, geom.Top),
		Nodes:  []geom.Node{{ID: "wall", X: -50, Y: 80, Width: 100, Height: 40}},
	}
	res, err := pipeline.Route(context.Background(), req, pipeline.DefaultOptions())
	if err != nil {
		t.Fatalf("Route: %v", err)
	}
	return req, res
}

func TestRenderSVG(t *testing.T) {
	req, res := routed(t)
	out := RenderSVG(req, res, Options{})
	s := string(out)

	if !strings.Contains(s, "<svg") || !strings.Contains(s, "</svg>") {
		t.Fatalf("not an SVG document:\n%s", s)
	}
	if !strings.Contains(s, `d="`+res.Path+`"`) {
		t.Error("edge path should be copied verbatim")
	}
	if !strings.Contains(s, ">wall<") {
		t.Error("node label missing")
	}
	if !strings.Contains(s, `viewBox="-70 -10 140 220"`) {
		t.Errorf("unexpected viewBox in:\n%s", s)
	}
	if strings.Contains(s, `id="blocked"`) {
		t.Error("blocked cells drawn without ShowGrid")
	}

	dec := xml.NewDecoder(bytes.NewReader(out))
	for {
		if _, err := dec.Token(); err != nil {
			if err != io.EOF {
				t.Fatalf("invalid XML: %v", err)
			}
			break
		}
	}
}

func TestRenderSVG_Options(t *testing.T) {
	req, res := routed(t)

	withGrid := string(RenderSVG(req, res, Options{ShowGrid: true, HidePadding: true}))
	if got := strings.Count(withGrid, styleBlocked); got != res.Stats.Blocked {
		t.Errorf("drew %d blocked cells, want %d", got, res.Stats.Blocked)
	}
	if strings.Contains(withGrid, `id="padding"`) {
		t.Error("padding drawn despite HidePadding")
	}

	big := string(RenderSVG(req, res, Options{Scale: 4}))
	if !strings.Contains(big, `width="560"`) || !strings.Contains(big, `height="880"`) {
		t.Errorf("scale not applied:\n%s", big[:200])
	}
}

func TestSummary(t *testing.T) {
	_, res := routed(t)
	if s := Summary(res); !strings.HasPrefix(s, "14x22 grid") {
		t.Errorf("Summary() = %q", s)
	}
}
