// Package server implements the chartgrid HTTP render service.
//
// Every request gets a render ID, returned in the X-Render-ID header and
// passed to the server hooks. Errors are JSON objects with the message and
// the machine-readable code:
//
//	{"error": "grid must have at least one row and one column, got 0x1", "code": "INVALID_CHART"}
package server

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/matzehuels/chartgrid/pkg/buildinfo"
	"github.com/matzehuels/chartgrid/pkg/config"
	"github.com/matzehuels/chartgrid/pkg/errors"
	chartio "github.com/matzehuels/chartgrid/pkg/io"
	"github.com/matzehuels/chartgrid/pkg/observability"
	"github.com/matzehuels/chartgrid/pkg/pipeline"
)

const (
	// HeaderRenderID carries the per-request render ID.
	HeaderRenderID = "X-Render-ID"

	// DefaultMaxBody caps the size of a chart document.
	DefaultMaxBody = 4 << 20

	shutdownTimeout = 10 * time.Second
)

var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatPDF:  "application/pdf",
	pipeline.FormatJSON: "application/json",
}

type ctxKey int

const renderIDKey ctxKey = 0

// RenderID returns the render ID attached to ctx, or "".
func RenderID(ctx context.Context) string {
	id, _ := ctx.Value(renderIDKey).(string)
	return id
}

// Server renders chart documents over HTTP.
type Server struct {
	Runner  *pipeline.Runner
	Config  config.Config
	Logger  *log.Logger
	MaxBody int64
}

// New creates a server that renders with runner and the style configuration cfg.
func New(runner *pipeline.Runner, cfg config.Config, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{Runner: runner, Config: cfg, Logger: logger, MaxBody: DefaultMaxBody}
}

// Handler returns the service's routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.track)

	r.Get("/healthz", s.handleHealth)
	r.Post("/render", s.handleRender)
	r.Post("/layout", s.handleLayout)
	return r
}

// ListenAndServe serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return ctx.Err()
}

// track assigns the render ID and reports the request to the server hooks.
func (s *Server) track(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		ctx := context.WithValue(r.Context(), renderIDKey, id)
		w.Header().Set(HeaderRenderID, id)

		hooks := observability.Server()
		hooks.OnRequest(ctx, r.Method, r.URL.Path, id)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r.WithContext(ctx))

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		hooks.OnResponse(ctx, r.Method, r.URL.Path, status, time.Since(start))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	format := q.Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	opts, err := renderOptions(q.Get, format)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.execute(w, r, opts)
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	opts, err := renderOptions(r.URL.Query().Get, pipeline.FormatJSON)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.execute(w, r, opts)
}

func (s *Server) execute(w http.ResponseWriter, r *http.Request, opts pipeline.Options) {
	doc, err := s.readDocument(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	opts.Logger = s.Logger.With("render_id", RenderID(r.Context()))
	res, err := s.Runner.Execute(r.Context(), pipeline.Input{Chart: doc, Config: s.Config}, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	format := opts.Formats[0]
	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set("ETag", strconv.Quote(res.InputHash))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Artifacts[format])
}

// renderOptions parses the query parameters shared by the render endpoints.
func renderOptions(get func(string) string, format string) (pipeline.Options, error) {
	opts := pipeline.Options{Formats: []string{format}}
	for name, dst := range map[string]*float64{"width": &opts.Width, "height": &opts.Height, "scale": &opts.Scale} {
		v := get(name)
		if v == "" {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return pipeline.Options{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "query parameter %s", name)
		}
		*dst = f
	}
	if v := get("highlight"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return pipeline.Options{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "query parameter highlight")
		}
		opts.Highlight = b
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return pipeline.Options{}, err
	}
	return opts, nil
}

// readDocument decodes the request body as YAML or JSON depending on its Content-Type.
func (s *Server) readDocument(r *http.Request) (chartio.Document, error) {
	format := chartio.FormatJSON
	if ct := r.Header.Get("Content-Type"); ct != "" {
		mt, _, err := mime.ParseMediaType(ct)
		if err != nil {
			return chartio.Document{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "content type")
		}
		switch mt {
		case "application/yaml", "application/x-yaml", "text/yaml":
			format = chartio.FormatYAML
		}
	}
	body := io.LimitReader(r.Body, s.MaxBody+1)
	data, err := io.ReadAll(body)
	if err != nil {
		return chartio.Document{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "read body")
	}
	if int64(len(data)) > s.MaxBody {
		return chartio.Document{}, errors.New(errors.ErrCodeInvalidInput, "chart document exceeds %d bytes", s.MaxBody)
	}
	return chartio.ReadChart(bytes.NewReader(data), format)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.Logger.Error("request failed", "render_id", RenderID(r.Context()), "path", r.URL.Path, "err", err)
	}
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	writeJSON(w, status, map[string]string{
		"error": errors.UserMessage(err),
		"code":  string(code),
	})
}

// statusFor maps an error code to an HTTP status.
func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidChart,
		errors.ErrCodeInvalidConfig, errors.ErrCodeInvalidFormat:
		return http.StatusBadRequest
	case errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	}
	if stderrors.Is(err, context.Canceled) {
		return 499
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
