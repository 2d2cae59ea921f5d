package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/smartedge/pkg/pipeline"
)

// Overlay styles, keyed by the characters of [grid.Grid.Overlay].
var (
	styleCellFree    = lipgloss.NewStyle().Foreground(colorDim)
	styleCellBlocked = lipgloss.NewStyle().Foreground(colorGray)
	styleCellPath    = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
	styleCellStart   = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	styleCellEnd     = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
)

// gridOpts holds the command-line flags for the grid command.
type gridOpts struct {
	sceneOpts
	plain bool // print the overlay without colors or the stats table
}

// gridCommand creates the grid command, which prints the occupancy grid
// of a routed scene with the path drawn over it.
func (c *CLI) gridCommand() *cobra.Command {
	var opts gridOpts

	cmd := &cobra.Command{
		Use:   "grid [scene.json|-]",
		Short: "Print the occupancy grid and the routed path",
		Long: `Print the occupancy grid of a scene with the routed path drawn over it.

  .  free cell
  #  blocked cell
  *  path cell
  S  source cell
  E  target cell`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrid(cmd, args[0], &opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "print the raw overlay without colors or statistics")

	return cmd
}

func runGrid(cmd *cobra.Command, path string, opts *gridOpts) error {
	scene, err := opts.loadScene(cmd, path)
	if err != nil {
		return err
	}
	res, err := scene.route(cmd)
	if err != nil {
		return err
	}

	overlay := res.Grid.Overlay(res.Full)
	out := cmd.OutOrStdout()
	if opts.plain {
		_, err := fmt.Fprint(out, overlay)
		return err
	}
	fmt.Fprint(out, colorOverlay(overlay))
	fmt.Fprintln(out)
	fmt.Fprintln(out, statsTable(res))
	return nil
}

// colorOverlay styles each character of a grid overlay.
func colorOverlay(overlay string) string {
	var b strings.Builder
	for _, r := range overlay {
		s := string(r)
		switch r {
		case '.':
			b.WriteString(styleCellFree.Render(s))
		case '#':
			b.WriteString(styleCellBlocked.Render(s))
		case '*':
			b.WriteString(styleCellPath.Render(s))
		case 'S':
			b.WriteString(styleCellStart.Render(s))
		case 'E':
			b.WriteString(styleCellEnd.Render(s))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// statsTable renders the routing statistics of res.
func statsTable(res *pipeline.Result) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).PaddingRight(1)
	valueStyle := lipgloss.NewStyle().Foreground(colorCyan)

	rows := [][]string{
		{"grid", gridSize(res)},
		{"blocked", strconv.Itoa(res.Stats.Blocked)},
		{"expanded", strconv.Itoa(res.Stats.Expanded)},
		{"path cells", strconv.Itoa(len(res.Full))},
		{"waypoints", strconv.Itoa(len(res.Waypoints))},
		{"length", strconv.FormatFloat(res.Stats.Length, 'f', 2, 64)},
		{"label", res.Label().String()},
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Route", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return keyStyle
			}
			return valueStyle
		})
	return t.Render()
}

// gridSize formats the grid dimensions as "colsxrows".
func gridSize(res *pipeline.Result) string {
	return fmt.Sprintf("%dx%d", res.Stats.Cols, res.Stats.Rows)
}
