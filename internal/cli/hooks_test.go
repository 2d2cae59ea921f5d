package cli

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/matzehuels/smartedge/pkg/io"
	"github.com/matzehuels/smartedge/pkg/observability"
)

func TestRegisterHooks_Route(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogDebug)
	c.RegisterHooks()
	defer observability.Reset()

	root := c.RootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"route", writeFile(t, "scene.json", openScene)})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("route: %v", err)
	}
	if !strings.Contains(buf.String(), "route done") {
		t.Errorf("log lacks the route outcome:\n%s", buf.String())
	}

	buf.Reset()
	root = c.RootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"route", writeFile(t, "scene.json", buriedScene)})
	if err := root.ExecuteContext(context.Background()); err == nil {
		t.Fatal("buried anchors should fail")
	}
	if !strings.Contains(buf.String(), "route failed") {
		t.Errorf("log lacks the route failure:\n%s", buf.String())
	}
}

func TestRegisterHooks_HTTP(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogDebug)
	c.RegisterHooks()
	defer observability.Reset()

	rec := post(t, newServer(c.Logger, io.SceneOptions{}, 0), openScene)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	for _, want := range []string{"request", "status=200", "path=/v1/route"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("log lacks %q:\n%s", want, buf.String())
		}
	}
}
