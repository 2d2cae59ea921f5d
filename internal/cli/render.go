package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/smartedge/pkg/render/nodelink"
	"github.com/matzehuels/smartedge/pkg/render/preview"
)

const (
	formatSVG      = "svg"      // native preview drawn with svgo
	formatDOT      = "dot"      // Graphviz source with pinned positions
	formatGraphviz = "graphviz" // DOT laid out by the embedded Graphviz
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	sceneOpts
	output      string  // output file path, stdout when empty
	format      string  // svg, dot or graphviz
	scale       float64 // preview pixels per graph unit
	showGrid    bool    // shade blocked cells in the preview
	hidePadding bool    // omit padded obstacle boxes
	detailed    bool    // label DOT nodes with their geometry
}

// renderCommand creates the render command for visualizing a routed scene.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{format: formatSVG, scale: preview.DefaultScale}

	cmd := &cobra.Command{
		Use:   "render [scene.json|-]",
		Short: "Render a routed scene as SVG or Graphviz DOT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			return runRender(cmd, args[0], &opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), dot, graphviz")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "pixels per graph unit (svg)")
	cmd.Flags().BoolVar(&opts.showGrid, "show-grid", false, "shade blocked grid cells (svg)")
	cmd.Flags().BoolVar(&opts.hidePadding, "hide-padding", false, "omit padded obstacle boxes")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "label nodes with position and size (dot, graphviz)")

	return cmd
}

// validateFormat checks that the requested output format is supported.
func validateFormat(format string) error {
	switch format {
	case formatSVG, formatDOT, formatGraphviz:
		return nil
	}
	return fmt.Errorf("invalid format: %s (must be 'svg', 'dot', or 'graphviz')", format)
}

func runRender(cmd *cobra.Command, path string, opts *renderOpts) error {
	scene, err := opts.loadScene(cmd, path)
	if err != nil {
		return err
	}
	res, err := scene.route(cmd)
	if err != nil {
		return err
	}

	var data []byte
	switch opts.format {
	case formatSVG:
		data = preview.RenderSVG(scene.req, res, preview.Options{
			Scale:       opts.scale,
			ShowGrid:    opts.showGrid,
			HidePadding: opts.hidePadding,
		})
	default:
		dot := nodelink.ToDOT(scene.req, res, nodelink.Options{
			Detailed:    opts.detailed,
			ShowPadding: !opts.hidePadding,
		})
		data = []byte(dot)
		if opts.format == formatGraphviz {
			sp := newSpinner(cmd.Context(), cmd.ErrOrStderr(), "Running Graphviz layout", len(scene.req.Nodes), res)
			sp.Start()
			data, err = nodelink.RenderSVG(cmd.Context(), dot)
			if err != nil {
				sp.StopWithError("Graphviz layout failed")
				return fmt.Errorf("graphviz: %w", err)
			}
			sp.Stop()
		}
	}

	return writeOutput(cmd, opts.output, data)
}
