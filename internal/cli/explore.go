package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/smartedge/pkg/errors"
	"github.com/matzehuels/smartedge/pkg/geom"
	"github.com/matzehuels/smartedge/pkg/io"
	"github.com/matzehuels/smartedge/pkg/pipeline"
	"github.com/matzehuels/smartedge/pkg/render/edge"
)

// maxOverlayCells bounds the grid drawn in the explorer. Larger grids are
// summarized instead of drawn.
const maxOverlayCells = 160 * 60

var (
	exploreActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	exploreDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
	exploreErrorStyle  = lipgloss.NewStyle().Foreground(colorRed)
)

// sideCycle is the order the explorer steps through anchor sides.
var sideCycle = []geom.Side{geom.Top, geom.Right, geom.Bottom, geom.Left}

// =============================================================================
// ExploreModel - Interactive anchor placement
// =============================================================================

// ExploreModel is the bubbletea model for moving the anchors of a scene and
// watching the route update.
type ExploreModel struct {
	ctx  context.Context
	Req  pipeline.Request
	Opts pipeline.Options

	// MoveSource selects the anchor the arrow keys move.
	MoveSource bool

	// DrawName is the registry name of Opts.DrawEdge.
	DrawName string

	Result *pipeline.Result
	Err    error
}

// NewExploreModel creates an explorer for req and routes it once. drawName
// names the renderer in opts; an unknown name selects the default renderer.
func NewExploreModel(ctx context.Context, req pipeline.Request, opts pipeline.Options, drawName string) ExploreModel {
	r, err := edge.Lookup(drawName)
	if err != nil || drawName == "" {
		drawName = edge.NameSmooth
		r = edge.SmoothLine
	}
	opts.DrawEdge = r
	opts.SetDefaults()
	m := ExploreModel{ctx: ctx, Req: req, Opts: opts, DrawName: drawName}
	return m.reroute()
}

func (m ExploreModel) Init() tea.Cmd {
	return nil
}

func (m ExploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	step := m.Opts.GridRatio
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		m = m.move(0, -step)
	case "down", "j":
		m = m.move(0, step)
	case "left", "h":
		m = m.move(-step, 0)
	case "right", "l":
		m = m.move(step, 0)
	case "tab":
		m.MoveSource = !m.MoveSource
		return m, nil
	case "s":
		m = m.cycleSide()
	case "d":
		m = m.cycleRenderer()
	case "e":
		m.Opts.DisableAnchorEscape = !m.Opts.DisableAnchorEscape
	default:
		return m, nil
	}
	return m.reroute(), nil
}

// active returns a pointer to the anchor the keys currently move.
func (m *ExploreModel) active() *geom.AnchorPoint {
	if m.MoveSource {
		return &m.Req.Source
	}
	return &m.Req.Target
}

func (m ExploreModel) move(dx, dy float64) ExploreModel {
	a := m.active()
	a.X += dx
	a.Y += dy
	return m
}

func (m ExploreModel) cycleSide() ExploreModel {
	a := m.active()
	for i, s := range sideCycle {
		if s == a.Side {
			a.Side = sideCycle[(i+1)%len(sideCycle)]
			return m
		}
	}
	a.Side = sideCycle[0]
	return m
}

func (m ExploreModel) cycleRenderer() ExploreModel {
	names := edge.Names()
	next := names[0]
	for i, n := range names {
		if n == m.DrawName {
			next = names[(i+1)%len(names)]
			break
		}
	}
	if r, err := edge.Lookup(next); err == nil {
		m.Opts.DrawEdge = r
		m.DrawName = next
	}
	return m
}

func (m ExploreModel) reroute() ExploreModel {
	ctx := m.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	res, err := pipeline.Route(ctx, m.Req, m.Opts)
	m.Result, m.Err = res, err
	return m
}

func (m ExploreModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Smartedge Explorer"))
	b.WriteString("\n")
	b.WriteString(exploreDimStyle.Render("arrows/hjkl: move  tab: switch anchor  s: side  d: renderer  e: escape  q: quit"))
	b.WriteString("\n\n")

	b.WriteString(m.anchorLine("source", m.Req.Source, m.MoveSource))
	b.WriteString(m.anchorLine("target", m.Req.Target, !m.MoveSource))
	b.WriteString(exploreDimStyle.Render(fmt.Sprintf("  renderer %s  escape %v", m.DrawName, !m.Opts.DisableAnchorEscape)))
	b.WriteString("\n\n")

	if m.Err != nil {
		b.WriteString(exploreErrorStyle.Render(fmt.Sprintf("%s: %s", errors.GetCode(m.Err), errors.UserMessage(m.Err))))
		b.WriteString("\n")
		return b.String()
	}

	res := m.Result
	if res.Stats.Cols*res.Stats.Rows <= maxOverlayCells {
		b.WriteString(colorOverlay(res.Grid.Overlay(res.Full)))
	} else {
		b.WriteString(exploreDimStyle.Render(fmt.Sprintf("grid %s is too large to draw", gridSize(res))))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("path  ") + StyleValue.Render(truncate(res.Path, 120)))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("label ") + StyleNumber.Render(res.Label().String()))
	b.WriteString("\n")
	b.WriteString(exploreDimStyle.Render(fmt.Sprintf("grid %s · expanded %d · length %.1f", gridSize(res), res.Stats.Expanded, res.Stats.Length)))
	b.WriteString("\n")

	return b.String()
}

func (m ExploreModel) anchorLine(name string, a geom.AnchorPoint, active bool) string {
	cursor := "  "
	style := lipgloss.NewStyle().Foreground(colorWhite)
	if active {
		cursor = "> "
		style = exploreActiveStyle
	}
	return style.Render(fmt.Sprintf("%s%-7s (%g,%g) %s", cursor, name, a.X, a.Y, a.Side)) + "\n"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}

// =============================================================================
// explore command
// =============================================================================

// exploreCommand creates the explore command, an interactive view of a
// scene's route.
func (c *CLI) exploreCommand() *cobra.Command {
	var (
		opts sceneOpts
		save string
	)

	cmd := &cobra.Command{
		Use:   "explore [scene.json]",
		Short: "Move the anchors of a scene interactively and watch the route",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scene, err := opts.loadScene(cmd, args[0])
			if err != nil {
				return err
			}
			// Route warnings would draw over the TUI.
			scene.opts.Logger = nil

			final, err := tea.NewProgram(NewExploreModel(cmd.Context(), scene.req, scene.opts, scene.drawName)).Run()
			if err != nil {
				return err
			}
			m, ok := final.(ExploreModel)
			if !ok {
				return nil
			}
			if m.Err != nil {
				printWarning("Final anchors have no route: %s", errors.UserMessage(m.Err))
				return nil
			}
			printSuccess("Final anchors: source %s, target %s",
				anchorString(m.Req.Source), anchorString(m.Req.Target))
			if save == "" {
				return nil
			}
			scene.scene.SetRequest(m.Req)
			if err := io.ExportScene(scene.scene, save); err != nil {
				return err
			}
			printFile(save)
			return nil
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVar(&save, "save", "", "write the scene with the final anchors to this file")
	return cmd
}

func anchorString(a geom.AnchorPoint) string {
	return fmt.Sprintf("(%g,%g) %s", a.X, a.Y, a.Side)
}
