// Package cli implements the chartgrid command-line interface.
//
// # Commands
//
//   - render: Render a chart document to SVG, PNG, PDF or a JSON layout
//   - inspect: Browse the computed grid cells interactively
//   - serve: Run the HTTP render service
//   - config: Print or check style configuration files
//   - cache: Manage the local artifact cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging and
// --log-format text|json|logfmt. The logger lives on the [CLI] value and is
// handed to the pipeline runner.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/chartgrid/pkg/buildinfo"
	"github.com/matzehuels/chartgrid/pkg/cache"
	"github.com/matzehuels/chartgrid/pkg/config"
	chartio "github.com/matzehuels/chartgrid/pkg/io"
	"github.com/matzehuels/chartgrid/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "chartgrid"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "chartgrid renders small-multiple XY charts",
		Long:         `chartgrid lays out a grid of small-multiple line, column and dot charts that share one y scale, and renders it to SVG, PNG, PDF or a JSON layout.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	cache, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cache, nil, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the cache directory using XDG standard (~/.cache/chartgrid/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// loadInput reads the chart document and the style configuration.
// An empty configPath selects the built-in defaults.
func loadInput(chartPath, configPath string) (pipeline.Input, error) {
	doc, err := chartio.ReadChartFile(chartPath)
	if err != nil {
		return pipeline.Input{}, err
	}
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return pipeline.Input{}, err
	}
	return pipeline.Input{Chart: doc, Config: cfg}, nil
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
