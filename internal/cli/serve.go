package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/matzehuels/laserbox/pkg/buildinfo"
	"github.com/matzehuels/laserbox/pkg/config"
	errs "github.com/matzehuels/laserbox/pkg/errors"
	"github.com/matzehuels/laserbox/pkg/observability"
	"github.com/matzehuels/laserbox/pkg/pipeline"
)

// shutdownTimeout bounds how long in-flight requests may take after a signal.
const shutdownTimeout = 5 * time.Second

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve puzzles over HTTP",
		Long: `Serve puzzles over HTTP.

Routes:
  GET /healthz               build information
  GET /puzzles/{seed}        the puzzle for seed

Query parameters for /puzzles/{seed}:
  format    svg (default), png, pdf, json, dot
  style     simple, handdrawn
  type      diagram, graphviz
  scale     pixels per box unit
  label     false to omit the target label

Responses carry X-Laserbox-Id, X-Laserbox-Attempts and X-Laserbox-Complete
headers. Invalid parameters return 400 with a JSON error body; png and pdf
return 501 when rsvg-convert is not installed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("addr") {
				c.Config.Server.Addr = addr
			}
			return c.runServe(cmd.Context(), noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, else :8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runServe listens until ctx is cancelled, then shuts down gracefully.
func (c *CLI) runServe(ctx context.Context, noCache bool) error {
	logger := loggerFromContext(ctx)

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	if logger.GetLevel() <= log.DebugLevel {
		hooks := observability.NewLogHooks(logger)
		observability.SetPipelineHooks(hooks)
		observability.SetCacheHooks(hooks)
		defer observability.Reset()
	}

	srv := &http.Server{
		Addr:         c.Config.Server.Addr,
		Handler:      newServer(runner, c.Config, logger).routes(),
		ReadTimeout:  c.Config.Server.ReadTimeout,
		WriteTimeout: c.Config.Server.WriteTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// =============================================================================
// Server
// =============================================================================

// server serves puzzles from a shared runner. Every request builds its own
// options and generator, so handlers are safe to run concurrently.
type server struct {
	runner *pipeline.Runner
	cfg    config.Config
	logger *log.Logger
}

func newServer(runner *pipeline.Runner, cfg config.Config, logger *log.Logger) *server {
	return &server{runner: runner, cfg: cfg, logger: logger}
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Get("/puzzles/{seed}", s.handlePuzzle)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.writeError(w, errs.New(errs.ErrCodeNotFound, "no route for %s", r.URL.Path))
	})
	return r
}

// logRequests logs each request and reports it to the HTTP hooks.
func (s *server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		hooks := observability.HTTP()
		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)

		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		hooks.OnResponse(r.Context(), r.Method, route, ww.Status(), time.Since(start))
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start).Round(time.Microsecond),
			"request_id", middleware.GetReqID(r.Context()))
	})
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, buildinfo.Current())
}

func (s *server) handlePuzzle(w http.ResponseWriter, r *http.Request) {
	opts, format, err := s.puzzleOptions(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, err)
		return
	}
	data, ok := result.Artifacts[format]
	if !ok {
		s.writeError(w, errs.New(errs.ErrCodeInternal, "no %s artifact produced", format))
		return
	}

	l := result.Layout
	h := w.Header()
	h.Set("Content-Type", pipeline.ContentTypes[format])
	h.Set("Cache-Control", "public, max-age=86400")
	h.Set("X-Laserbox-Id", l.ID)
	h.Set("X-Laserbox-Attempts", strconv.Itoa(l.Attempts))
	h.Set("X-Laserbox-Complete", strconv.FormatBool(l.Complete()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// puzzleOptions builds pipeline options from the route and query on top of
// the server's config.
func (s *server) puzzleOptions(r *http.Request) (pipeline.Options, string, error) {
	seed, err := strconv.ParseUint(chi.URLParam(r, "seed"), 10, 64)
	if err != nil || seed == 0 {
		return pipeline.Options{}, "", errs.New(errs.ErrCodeInvalidSeed, "seed must be a positive integer, got %q", chi.URLParam(r, "seed"))
	}

	opts := s.cfg.Options(seed)
	q := r.URL.Query()
	if v := q.Get("style"); v != "" {
		opts.Style = v
	}
	if v := q.Get("type"); v != "" {
		opts.VizType = v
	}
	if v := q.Get("scale"); v != "" {
		scale, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return pipeline.Options{}, "", errs.New(errs.ErrCodeInvalidInput, "invalid scale: %q", v)
		}
		opts.Scale = scale
	}
	if v := q.Get("label"); v != "" {
		label, err := strconv.ParseBool(v)
		if err != nil {
			return pipeline.Options{}, "", errs.New(errs.ErrCodeInvalidInput, "invalid label: %q", v)
		}
		opts.NoLabel = !label
	}

	format := q.Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	opts.Formats = []string{format}

	if err := opts.ValidateAndSetDefaults(); err != nil {
		return pipeline.Options{}, "", err
	}
	if !pipeline.SupportsFormat(opts.VizType, format) {
		return pipeline.Options{}, "", errs.New(errs.ErrCodeInvalidFormat, "format %s is not available for type %s", format, opts.VizType)
	}
	return opts, format, nil
}

// errorBody is the JSON body of an error response.
type errorBody struct {
	Code  errs.Code `json:"code,omitempty"`
	Error string    `json:"error"`
}

func (s *server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errs.IsInvalid(err):
		status = http.StatusBadRequest
	case errs.Is(err, errs.ErrCodeNotFound):
		status = http.StatusNotFound
	case errs.Is(err, errs.ErrCodeUnsupported):
		status = http.StatusNotImplemented
	default:
		s.logger.Error("request failed", "err", err)
	}
	writeJSON(w, status, errorBody{Code: errs.GetCode(err), Error: errs.UserMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", pipeline.ContentTypes[pipeline.FormatJSON])
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
