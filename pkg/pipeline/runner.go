package pipeline

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/chartgrid/pkg/buildinfo"
	"github.com/matzehuels/chartgrid/pkg/cache"
	"github.com/matzehuels/chartgrid/pkg/errors"
	"github.com/matzehuels/chartgrid/pkg/fonts"
	"github.com/matzehuels/chartgrid/pkg/observability"
	"github.com/matzehuels/chartgrid/pkg/render/chartgrid"
)

// Runner encapsulates pipeline execution with caching.
//
// A Runner may be shared by concurrent callers. When Retain is set it also
// remembers its last result, which is returned again for input without data
// (a watched chart file that is mid-write, for example).
type Runner struct {
	Cache    cache.Cache
	Keyer    cache.Keyer
	Logger   *log.Logger
	Measurer fonts.Measurer

	// Retain keeps the last successful result for input without data.
	Retain bool

	mu       sync.Mutex
	renderer chartgrid.Renderer
	last     *Result
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute lays out, builds and renders in, using cached artifacts where possible.
func (r *Runner) Execute(ctx context.Context, in Input, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if err := in.Config.Validate(); err != nil {
		return nil, err
	}

	props := in.Props(opts)
	if !r.renderer.ShouldUpdate(props) {
		if last := r.Last(); r.Retain && last != nil {
			opts.Logger.Debug("chart has no data, keeping previous render")
			skipped := *last
			skipped.Skipped = true
			return &skipped, nil
		}
		return nil, errors.New(errors.ErrCodeInvalidChart, "chart has no data")
	}

	result := &Result{Artifacts: make(map[string][]byte, len(opts.Formats))}
	cp := props.ChartProps
	result.Stats.Series = len(cp.Data)
	result.Stats.Rows, result.Stats.Cols = cp.Grid.Rows, cp.Grid.Cols

	// Stage 1: Layout
	hooks := observability.Render()
	hooks.OnLayoutStart(ctx, cp.Grid.Rows, cp.Grid.Cols, len(cp.Data))
	layoutStart := time.Now()
	l, err := chartgrid.ComputeLayout(props, r.Measurer)
	result.Stats.LayoutTime = time.Since(layoutStart)
	hooks.OnLayoutComplete(ctx, result.Stats.LayoutTime, err)
	if err != nil {
		return nil, err
	}
	result.Layout = l

	opts.Logger.Debug("computed layout",
		"rows", cp.Grid.Rows,
		"cols", cp.Grid.Cols,
		"series", len(cp.Data),
		"chart_area", l.ChartArea,
		"duration", result.Stats.LayoutTime)

	// Stage 2: Build
	tree, err := chartgrid.BuildLayout(props, l, r.Measurer)
	if err != nil {
		return nil, err
	}
	result.Tree = tree

	// Stage 3: Render
	hash, err := cache.HashJSON(struct {
		Props   chartgrid.Props
		Version string
	}{props, buildinfo.Version})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "hash input")
	}
	result.InputHash = hash

	hooks.OnRenderStart(ctx, opts.Formats)
	renderStart := time.Now()
	err = r.renderAll(ctx, result, props, opts)
	result.Stats.RenderTime = time.Since(renderStart)
	hooks.OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, err
	}
	result.CacheInfo.RenderHit = result.CacheInfo.Misses == 0

	opts.Logger.Info("rendered chart grid",
		"formats", opts.Formats,
		"cache_hits", result.CacheInfo.Hits,
		"duration", result.Stats.LayoutTime+result.Stats.RenderTime)

	r.mu.Lock()
	r.last = result
	r.mu.Unlock()
	return result, nil
}

func (r *Runner) renderAll(ctx context.Context, result *Result, props chartgrid.Props, opts Options) error {
	cacheHooks := observability.Cache()
	for _, format := range opts.Formats {
		if _, done := result.Artifacts[format]; done {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		key := r.Keyer.ArtifactKey(result.InputHash, opts.ArtifactKeyOpts(format))

		if !opts.Refresh {
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil {
				opts.Logger.Warn("cache lookup failed", "format", format, "err", err)
			}
			if err == nil && hit {
				cacheHooks.OnCacheHit(ctx, format)
				result.Artifacts[format] = data
				result.CacheInfo.Hits++
				continue
			}
		}
		cacheHooks.OnCacheMiss(ctx, format)
		result.CacheInfo.Misses++

		data, err := Render(format, result.Tree, result.Layout, props, opts)
		if err != nil {
			return err
		}
		result.Artifacts[format] = data

		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
			opts.Logger.Warn("cache store failed", "format", format, "err", err)
			continue
		}
		cacheHooks.OnCacheSet(ctx, format, len(data))
	}
	return nil
}

// Last returns the most recent successful result, or nil.
func (r *Runner) Last() *Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
