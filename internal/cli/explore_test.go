package cli

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/smartedge/pkg/errors"
	"github.com/matzehuels/smartedge/pkg/geom"
	"github.com/matzehuels/smartedge/pkg/pipeline"
	"github.com/matzehuels/smartedge/pkg/render/edge"
)

func openRequest() pipeline.Request {
	return pipeline.Request{
		Source: geom.Anchor(0, 0, geom.Bottom),
		Target: geom.Anchor(100, 100, geom.Top),
	}
}

func press(t *testing.T, m ExploreModel, keys ...tea.KeyMsg) ExploreModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		var ok bool
		if m, ok = next.(ExploreModel); !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNewExploreModel(t *testing.T) {
	m := NewExploreModel(context.Background(), openRequest(), pipeline.DefaultOptions(), "")
	if m.Err != nil {
		t.Fatalf("initial route: %v", m.Err)
	}
	if got := m.Result.Label(); got != (geom.Point{X: 50, Y: 50}) {
		t.Errorf("label = %v, want (50,50)", got)
	}
	if m.DrawName != edge.NameSmooth {
		t.Errorf("DrawName = %q, want %q", m.DrawName, edge.NameSmooth)
	}
	if m.MoveSource {
		t.Error("explorer should start on the target anchor")
	}
}

func TestExploreModel_MoveTarget(t *testing.T) {
	m := NewExploreModel(context.Background(), openRequest(), pipeline.DefaultOptions(), "")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyDown}, runeKey('l'))

	if m.Req.Target.X != 120 || m.Req.Target.Y != 110 {
		t.Errorf("target = %v, want (120,110)", m.Req.Target.Point)
	}
	if m.Req.Source.Point != (geom.Point{}) {
		t.Errorf("source moved to %v", m.Req.Source.Point)
	}
	if m.Err != nil {
		t.Fatalf("reroute: %v", m.Err)
	}
	if got := m.Result.Waypoints[len(m.Result.Waypoints)-1]; got != m.Req.Target.Point {
		t.Errorf("route ends at %v, want the moved target %v", got, m.Req.Target.Point)
	}
}

func TestExploreModel_SwitchAnchor(t *testing.T) {
	m := NewExploreModel(context.Background(), openRequest(), pipeline.DefaultOptions(), "")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab}, runeKey('h'), runeKey('k'))

	if !m.MoveSource {
		t.Fatal("tab should select the source anchor")
	}
	if m.Req.Source.X != -10 || m.Req.Source.Y != -10 {
		t.Errorf("source = %v, want (-10,-10)", m.Req.Source.Point)
	}
	if m.Req.Target.Point != (geom.Point{X: 100, Y: 100}) {
		t.Errorf("target moved to %v", m.Req.Target.Point)
	}
}

func TestExploreModel_CycleSide(t *testing.T) {
	m := NewExploreModel(context.Background(), openRequest(), pipeline.DefaultOptions(), "")

	want := []geom.Side{geom.Right, geom.Bottom, geom.Left, geom.Top}
	for _, side := range want {
		m = press(t, m, runeKey('s'))
		if m.Req.Target.Side != side {
			t.Fatalf("target side = %v, want %v", m.Req.Target.Side, side)
		}
	}
}

func TestExploreModel_CycleRenderer(t *testing.T) {
	m := NewExploreModel(context.Background(), openRequest(), pipeline.DefaultOptions(), edge.NameStraight)
	if !strings.HasPrefix(m.Result.Path, "M 0,0 L") {
		t.Fatalf("straight renderer not applied: %q", m.Result.Path)
	}

	names := edge.Names()
	seen := map[string]bool{m.DrawName: true}
	for range names[1:] {
		m = press(t, m, runeKey('d'))
		seen[m.DrawName] = true
	}
	if len(seen) != len(names) {
		t.Errorf("cycling visited %v, want all of %v", seen, names)
	}
}

func TestExploreModel_NoRoute(t *testing.T) {
	req := pipeline.Request{
		Source: geom.Anchor(0, -200, geom.Bottom),
		Target: geom.Anchor(0, 0, geom.Top),
		Nodes:  []geom.Node{{ID: "box", X: -50, Y: -50, Width: 100, Height: 100}},
	}
	opts := pipeline.DefaultOptions()
	opts.DisableAnchorEscape = true
	m := NewExploreModel(context.Background(), req, opts, "")
	if !errors.Is(m.Err, errors.ErrCodeNoPathFound) {
		t.Fatalf("err = %v, want NO_PATH_FOUND", m.Err)
	}
	if view := m.View(); !strings.Contains(view, string(errors.ErrCodeNoPathFound)) || !strings.Contains(view, "escape false") {
		t.Errorf("view should report the error and the escape state:\n%s", view)
	}

	m = press(t, m, runeKey('e'))
	if m.Err != nil {
		t.Errorf("escape toggle should find a route: %v", m.Err)
	}
}

func TestExploreModel_Quit(t *testing.T) {
	m := NewExploreModel(context.Background(), openRequest(), pipeline.DefaultOptions(), "")
	for _, key := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		_, cmd := m.Update(key)
		if cmd == nil {
			t.Fatalf("%q should quit", key.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%q did not return tea.Quit", key.String())
		}
	}
}

func TestExploreModel_View(t *testing.T) {
	m := NewExploreModel(context.Background(), openRequest(), pipeline.DefaultOptions(), "")
	view := m.View()
	for _, want := range []string{"Smartedge Explorer", "source", "target", "(50,50)", "12x12"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}
