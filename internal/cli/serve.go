package cli

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/smartedge/pkg/buildinfo"
	"github.com/matzehuels/smartedge/pkg/errors"
	"github.com/matzehuels/smartedge/pkg/io"
	"github.com/matzehuels/smartedge/pkg/observability"
	"github.com/matzehuels/smartedge/pkg/pipeline"
)

const (
	// headerRequestID carries the request ID in both directions.
	headerRequestID = "X-Request-ID"

	// maxSceneBytes bounds the size of a posted scene.
	maxSceneBytes = 4 << 20

	shutdownTimeout = 5 * time.Second
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	sceneOpts
	addr    string        // listen address
	timeout time.Duration // per-request routing timeout
}

// serveCommand creates the serve command, which exposes routing over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{addr: defaultAddr, timeout: 10 * time.Second}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the router over HTTP",
		Long: `Serve the router over HTTP.

  POST /v1/route   route a JSON scene, respond with the result
  GET  /healthz    liveness check

Options in a posted scene override the server's --config and flags, except
that maxCells can only lower the server's --max-cells. With --timeout, a
route still searching when the timeout expires is answered with 504.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defaults, err := opts.settings(cmd)
			if err != nil {
				return err
			}
			// Resolve once so a bad flag fails at startup, not per request.
			if _, err := defaults.Options(); err != nil {
				return err
			}
			return runServe(cmd.Context(), c.Logger, defaults, &opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", opts.timeout, "per-request routing timeout")

	return cmd
}

func runServe(ctx context.Context, logger *log.Logger, defaults io.SceneOptions, opts *serveOpts) error {
	srv := &http.Server{
		Addr:              opts.addr,
		Handler:           newServer(logger, defaults, opts.timeout),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("shutdown", "err", err)
		}
	}()

	logger.Info("Listening", "addr", opts.addr, "version", buildinfo.Version)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	logger.Info("Server stopped")
	return nil
}

// =============================================================================
// HTTP handlers
// =============================================================================

// server routes scenes posted over HTTP.
type server struct {
	logger   *log.Logger
	defaults io.SceneOptions
	maxCells int // grid size limit no posted scene can raise
}

// newServer returns the HTTP handler of the serve command. defaults are the
// server-wide options a posted scene's options are merged over.
func newServer(logger *log.Logger, defaults io.SceneOptions, timeout time.Duration) http.Handler {
	s := &server{logger: logger, defaults: defaults, maxCells: pipeline.DefaultMaxCells}
	if defaults.MaxCells != nil {
		s.maxCells = *defaults.MaxCells
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestID)
	if timeout > 0 {
		r.Use(middleware.Timeout(timeout))
	}

	r.Get("/healthz", s.handleHealth)
	r.Post("/v1/route", s.handleRoute)
	return r
}

// requestID assigns every request an ID, echoes it in the response and
// reports the request to the HTTP hooks.
func (s *server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(headerRequestID, id)

		hooks := observability.HTTP()
		hooks.OnRequest(r.Context(), r.Method, r.URL.Path, id)
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		hooks.OnResponse(r.Context(), r.Method, r.URL.Path, id, status, time.Since(start))
	})
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, http.StatusOK, map[string]string{"status": "ok", "version": buildinfo.Version})
}

func (s *server) handleRoute(w http.ResponseWriter, r *http.Request) {
	scene, err := io.ReadScene(http.MaxBytesReader(w, r.Body, maxSceneBytes))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts, err := s.defaults.Merge(scene.Options).Options()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if opts.MaxCells > s.maxCells {
		s.logger.Debug("scene max cells capped", "requested", opts.MaxCells, "limit", s.maxCells)
		opts.MaxCells = s.maxCells
	}
	opts.Logger = s.logger
	req, err := scene.Request()
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	res, err := pipeline.Route(r.Context(), req, opts)
	if ctxErr := r.Context().Err(); ctxErr != nil {
		// The timeout middleware answers a deadline; a canceled client has
		// nobody left to answer.
		s.logger.Warn("route abandoned", "path", r.URL.Path, "err", ctxErr)
		return
	}
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSONResponse(w, http.StatusOK, res)
}

// errorResponse is the body of a failed request.
type errorResponse struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"error"`
}

func (s *server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := errors.HTTPStatus(err)
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("route failed", "path", r.URL.Path, "err", err)
	}
	writeJSONResponse(w, status, errorResponse{Code: code, Message: errors.UserMessage(err)})
}

func writeJSONResponse(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
