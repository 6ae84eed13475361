package server

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/chartgrid/pkg/observability"
)

// LogHooks logs requests and cache activity.
type LogHooks struct {
	observability.NoopServerHooks
	observability.NoopCacheHooks
	Logger *log.Logger
}

// NewLogHooks returns hooks that write to logger.
func NewLogHooks(logger *log.Logger) *LogHooks {
	return &LogHooks{Logger: logger}
}

// OnRequest logs the start of a request at debug level.
func (h *LogHooks) OnRequest(_ context.Context, method, path, renderID string) {
	h.Logger.Debug("request", "method", method, "path", path, "render_id", renderID)
}

// OnResponse logs the completed request.
func (h *LogHooks) OnResponse(ctx context.Context, method, path string, status int, d time.Duration) {
	h.Logger.Info("response",
		"method", method,
		"path", path,
		"status", status,
		"render_id", RenderID(ctx),
		"duration", d.Round(time.Microsecond))
}

// OnCacheHit logs an artifact cache hit at debug level.
func (h *LogHooks) OnCacheHit(ctx context.Context, format string) {
	h.Logger.Debug("cache hit", "format", format, "render_id", RenderID(ctx))
}

var (
	_ observability.ServerHooks = (*LogHooks)(nil)
	_ observability.CacheHooks  = (*LogHooks)(nil)
)
