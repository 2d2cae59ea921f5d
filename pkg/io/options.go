package io

import (
	"io"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/smartedge/pkg/errors"
	"github.com/matzehuels/smartedge/pkg/pathfind"
	"github.com/matzehuels/smartedge/pkg/pipeline"
	"github.com/matzehuels/smartedge/pkg/render/edge"
)

// SceneOptions holds routing options as written in a scene or option file.
// Nil and empty fields are unset, so an explicit zero can be told apart from
// an omitted key.
type SceneOptions struct {
	GridRatio     *float64 `json:"gridRatio,omitempty" toml:"gridRatio"`
	NodePadding   *float64 `json:"nodePadding,omitempty" toml:"nodePadding"`
	DrawEdge      string   `json:"drawEdge,omitempty" toml:"drawEdge"`
	GeneratePath  string   `json:"generatePath,omitempty" toml:"generatePath"`
	EscapeAnchors *bool    `json:"escapeAnchors,omitempty" toml:"escapeAnchors"`
	MaxCells      *int     `json:"maxCells,omitempty" toml:"maxCells"`
}

// Merge returns o with every field that is set in over replaced.
func (o SceneOptions) Merge(over SceneOptions) SceneOptions {
	if over.GridRatio != nil {
		o.GridRatio = over.GridRatio
	}
	if over.NodePadding != nil {
		o.NodePadding = over.NodePadding
	}
	if over.DrawEdge != "" {
		o.DrawEdge = over.DrawEdge
	}
	if over.GeneratePath != "" {
		o.GeneratePath = over.GeneratePath
	}
	if over.EscapeAnchors != nil {
		o.EscapeAnchors = over.EscapeAnchors
	}
	if over.MaxCells != nil {
		o.MaxCells = over.MaxCells
	}
	return o
}

// Apply writes the set fields into opts, resolving renderer and strategy
// names. An explicit grid ratio of zero is rejected rather than treated as
// unset.
func (o SceneOptions) Apply(opts *pipeline.Options) error {
	if o.GridRatio != nil {
		if err := errors.ValidateGridRatio(*o.GridRatio); err != nil {
			return err
		}
		opts.GridRatio = *o.GridRatio
	}
	if o.NodePadding != nil {
		if err := errors.ValidateNodePadding(*o.NodePadding); err != nil {
			return err
		}
		opts.NodePadding = *o.NodePadding
	}
	if o.DrawEdge != "" {
		r, err := edge.Lookup(o.DrawEdge)
		if err != nil {
			return err
		}
		opts.DrawEdge = r
	}
	if o.GeneratePath != "" {
		s, err := pathfind.Lookup(o.GeneratePath)
		if err != nil {
			return err
		}
		opts.GeneratePath = s
	}
	if o.EscapeAnchors != nil {
		opts.DisableAnchorEscape = !*o.EscapeAnchors
	}
	if o.MaxCells != nil {
		if *o.MaxCells <= 0 {
			return errors.New(errors.ErrCodeConfigOutOfRange, "max cells must be positive, got %d", *o.MaxCells)
		}
		opts.MaxCells = *o.MaxCells
	}
	return nil
}

// Options returns pipeline defaults overlaid with o.
func (o SceneOptions) Options() (pipeline.Options, error) {
	opts := pipeline.DefaultOptions()
	if err := o.Apply(&opts); err != nil {
		return pipeline.Options{}, err
	}
	return opts, nil
}

// ReadConfig decodes TOML options from r. Unknown keys are rejected so a
// misspelled option does not silently fall back to its default.
func ReadConfig(r io.Reader) (SceneOptions, error) {
	var o SceneOptions
	md, err := toml.NewDecoder(r).Decode(&o)
	if err != nil {
		return SceneOptions{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode options")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return SceneOptions{}, errors.New(errors.ErrCodeInvalidInput, "unknown option %q", undecoded[0].String())
	}
	return o, nil
}

// LoadConfig reads a TOML option file at path.
func LoadConfig(path string) (SceneOptions, error) {
	var o SceneOptions
	md, err := toml.DecodeFile(path, &o)
	if err != nil {
		return SceneOptions{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "load %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return SceneOptions{}, errors.New(errors.ErrCodeInvalidInput, "%s: unknown option %q", path, undecoded[0].String())
	}
	return o, nil
}
