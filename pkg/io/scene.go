package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/smartedge/pkg/errors"
	"github.com/matzehuels/smartedge/pkg/geom"
	"github.com/matzehuels/smartedge/pkg/pipeline"
)

// Scene is the decoded form of a scene file.
type Scene struct {
	Source  Anchor       `json:"source"`
	Target  Anchor       `json:"target"`
	Nodes   []geom.Node  `json:"nodes"`
	Options SceneOptions `json:"options"`
}

// Anchor is an anchor point as written in a scene file. Side is kept as
// text so a missing side can default per endpoint.
type Anchor struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Side string  `json:"side,omitempty"`
}

// AnchorFrom converts an anchor point to its scene form.
func AnchorFrom(a geom.AnchorPoint) Anchor {
	return Anchor{X: a.X, Y: a.Y, Side: a.Side.String()}
}

func (a Anchor) resolve(name string, fallback geom.Side) (geom.AnchorPoint, error) {
	side := fallback
	if a.Side != "" {
		s, err := geom.ParseSide(a.Side)
		if err != nil {
			return geom.AnchorPoint{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "%s side", name)
		}
		side = s
	}
	return geom.Anchor(a.X, a.Y, side), nil
}

// Request converts the scene to a routing request. The source side defaults
// to bottom and the target side to top.
func (s *Scene) Request() (pipeline.Request, error) {
	src, err := s.Source.resolve("source", geom.Bottom)
	if err != nil {
		return pipeline.Request{}, err
	}
	dst, err := s.Target.resolve("target", geom.Top)
	if err != nil {
		return pipeline.Request{}, err
	}
	return pipeline.Request{Source: src, Target: dst, Nodes: s.Nodes}, nil
}

// SetRequest replaces the scene's anchors and nodes with those of req.
func (s *Scene) SetRequest(req pipeline.Request) {
	s.Source = AnchorFrom(req.Source)
	s.Target = AnchorFrom(req.Target)
	s.Nodes = req.Nodes
}

// ReadScene decodes a JSON scene from r.
//
// ReadScene returns an INVALID_INPUT error if the JSON is malformed. It does
// not validate geometry: non-finite anchors are rejected later by
// [pipeline.Route] and degenerate nodes are recovered there. ReadScene does
// not close r.
func ReadScene(r io.Reader) (*Scene, error) {
	var s Scene
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode scene")
	}
	return &s, nil
}

// ImportScene reads a JSON scene file at path.
func ImportScene(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()
	return ReadScene(f)
}

// WriteScene encodes s as indented JSON to w.
func WriteScene(s *Scene, w io.Writer) error {
	return writeJSON(s, w)
}

// ExportScene writes s as JSON to the file at path.
func ExportScene(s *Scene, path string) error {
	return exportFile(path, func(w io.Writer) error { return WriteScene(s, w) })
}
