package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/smartedge/pkg/io"
)

// routeOpts holds the command-line flags for the route command.
type routeOpts struct {
	sceneOpts
	output      string // output file path, stdout when empty
	fingerprint bool   // print only the result fingerprint
}

// routeCommand creates the route command, which routes a scene and prints
// the result as JSON.
func (c *CLI) routeCommand() *cobra.Command {
	var opts routeOpts

	cmd := &cobra.Command{
		Use:   "route [scene.json|-]",
		Short: "Route the edge of a scene and print the result as JSON",
		Long: `Route the edge described by a JSON scene file.

The result holds the SVG path data, the label position, the simplified
waypoints and routing statistics. Options are taken from the scene, then
from --config, then from explicitly set flags.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoute(cmd, args[0], &opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&opts.fingerprint, "fingerprint", false, "print only the result fingerprint")

	return cmd
}

func runRoute(cmd *cobra.Command, path string, opts *routeOpts) error {
	scene, err := opts.loadScene(cmd, path)
	if err != nil {
		return err
	}
	res, err := scene.route(cmd)
	if err != nil {
		return err
	}

	if opts.fingerprint {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), res.Fingerprint())
		return err
	}

	if opts.output != "" {
		if err := io.ExportResult(res, opts.output); err != nil {
			return err
		}
		printFile(opts.output)
		return nil
	}
	return io.WriteResult(res, cmd.OutOrStdout())
}
