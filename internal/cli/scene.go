package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/smartedge/pkg/io"
	"github.com/matzehuels/smartedge/pkg/pipeline"
	"github.com/matzehuels/smartedge/pkg/render/edge"
)

// sceneOpts holds the routing flags shared by every command that loads a
// scene. Only flags the user actually set override the scene and config.
type sceneOpts struct {
	config        string  // TOML option file
	drawEdge      string  // edge renderer name
	generatePath  string  // path strategy name
	gridRatio     float64 // graph units per grid cell
	nodePadding   float64 // obstacle inflation around nodes
	escapeAnchors bool    // clear a corridor out of the padding at each anchor
	maxCells      int     // grid size limit
}

// register adds the routing flags to cmd.
func (o *sceneOpts) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&o.config, "config", "c", "", "TOML option file")
	f.StringVar(&o.drawEdge, "draw", "", "edge renderer: smooth (default), straight, step, bezier")
	f.StringVar(&o.generatePath, "finder", "", "path strategy: astar (default), orthogonal")
	f.Float64Var(&o.gridRatio, "grid-ratio", pipeline.DefaultGridRatio, "graph units per grid cell")
	f.Float64Var(&o.nodePadding, "padding", pipeline.DefaultNodePadding, "padding around every node")
	f.BoolVar(&o.escapeAnchors, "escape-anchors", true, "clear a corridor out of the padding at each anchor (--escape-anchors=false to turn off)")
	f.IntVar(&o.maxCells, "max-cells", pipeline.DefaultMaxCells, "reject grids with more cells")
}

// overrides returns the flags the user set on cmd as scene options.
func (o *sceneOpts) overrides(cmd *cobra.Command) io.SceneOptions {
	var so io.SceneOptions
	f := cmd.Flags()
	if f.Changed("draw") {
		so.DrawEdge = o.drawEdge
	}
	if f.Changed("finder") {
		so.GeneratePath = o.generatePath
	}
	if f.Changed("grid-ratio") {
		so.GridRatio = &o.gridRatio
	}
	if f.Changed("padding") {
		so.NodePadding = &o.nodePadding
	}
	if f.Changed("escape-anchors") {
		so.EscapeAnchors = &o.escapeAnchors
	}
	if f.Changed("max-cells") {
		so.MaxCells = &o.maxCells
	}
	return so
}

// settings resolves the option layers below the scene itself: the config
// file, then the command-line flags.
func (o *sceneOpts) settings(cmd *cobra.Command) (io.SceneOptions, error) {
	var so io.SceneOptions
	if o.config != "" {
		cfg, err := io.LoadConfig(o.config)
		if err != nil {
			return io.SceneOptions{}, err
		}
		so = cfg
	}
	return so.Merge(o.overrides(cmd)), nil
}

// loadedScene is a scene file resolved into a routing call.
type loadedScene struct {
	scene    *io.Scene
	req      pipeline.Request
	opts     pipeline.Options
	drawName string // resolved renderer name
}

// loadScene reads the scene at path ("-" for stdin) and resolves its options.
// Precedence, lowest first: defaults, scene options, config file, flags.
func (o *sceneOpts) loadScene(cmd *cobra.Command, path string) (*loadedScene, error) {
	var (
		scene *io.Scene
		err   error
	)
	if path == "-" {
		scene, err = io.ReadScene(cmd.InOrStdin())
	} else {
		scene, err = io.ImportScene(path)
	}
	if err != nil {
		return nil, err
	}

	settings, err := o.settings(cmd)
	if err != nil {
		return nil, err
	}
	merged := scene.Options.Merge(settings)
	opts, err := merged.Options()
	if err != nil {
		return nil, err
	}
	opts.Logger = loggerFromContext(cmd.Context())

	req, err := scene.Request()
	if err != nil {
		return nil, err
	}
	drawName := strings.ToLower(merged.DrawEdge)
	if drawName == "" {
		drawName = edge.NameSmooth
	}
	return &loadedScene{scene: scene, req: req, opts: opts, drawName: drawName}, nil
}

// route runs the pipeline for the loaded scene and logs the outcome.
// Recovered node geometry is logged by the pipeline itself.
func (s *loadedScene) route(cmd *cobra.Command) (*pipeline.Result, error) {
	prog := newProgress(loggerFromContext(cmd.Context()))
	res, err := pipeline.Route(cmd.Context(), s.req, s.opts)
	if err != nil {
		return nil, err
	}
	prog.done("Routed edge",
		"grid", gridSize(res),
		"expanded", res.Stats.Expanded,
		"waypoints", len(res.Waypoints))
	return res, nil
}

// writeOutput writes data to path, or to the command's stdout when path is
// empty.
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	printFile(path)
	return nil
}
