package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/smartedge/pkg/observability"
)

// logHooks writes routing calls and API requests to the CLI logger at debug
// level. The pipeline already logs its own stages through Options.Logger, so
// only the outcome of each call is reported here.
type logHooks struct {
	observability.NoopRouteHooks
	observability.NoopHTTPHooks
	logger *log.Logger
}

func (h logHooks) OnRouteComplete(_ context.Context, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("route failed", "took", d, "err", err)
		return
	}
	h.logger.Debug("route done", "took", d)
}

func (h logHooks) OnResponse(_ context.Context, method, path, id string, status int, d time.Duration) {
	h.logger.Debug("request", "method", method, "path", path, "status", status, "id", id, "took", d)
}
