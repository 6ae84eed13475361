package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/chartgrid/pkg/errors"
	"github.com/matzehuels/chartgrid/pkg/pipeline"
)

// watchDebounce coalesces the burst of events an editor save produces.
const watchDebounce = 150 * time.Millisecond

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output     string // output file (single format) or base path
	formats    string // comma-separated output formats
	configPath string // TOML style configuration
	noCache    bool
	watch      bool
	pipeline   pipeline.Options
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var ro renderOpts

	cmd := &cobra.Command{
		Use:   "render [chart.json|chart.yaml]",
		Short: "Render a chart document",
		Long: `Render a chart document to SVG, PNG, PDF or a JSON layout.

The output path defaults to the input path with the format's extension.
With several formats, -o names the base path. Use -o - to write a single
format to stdout.

Rendered artifacts are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ro.pipeline.Formats = parseFormats(ro.formats)
			if err := pipeline.ValidateFormats(ro.pipeline.Formats); err != nil {
				return err
			}
			if ro.output == "-" && len(ro.pipeline.Formats) > 1 {
				return errors.New(errors.ErrCodeInvalidInput, "cannot write %d formats to stdout", len(ro.pipeline.Formats))
			}
			return c.runRender(cmd.Context(), args[0], ro)
		},
	}

	cmd.Flags().StringVarP(&ro.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&ro.formats, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().StringVarP(&ro.configPath, "config", "c", "", "style configuration file (TOML)")
	cmd.Flags().Float64Var(&ro.pipeline.Width, "width", 0, "frame width (default: document, then 600)")
	cmd.Flags().Float64Var(&ro.pipeline.Height, "height", 0, "frame height (default: document, then 400)")
	cmd.Flags().Float64Var(&ro.pipeline.Scale, "scale", pipeline.DefaultScale, "PNG pixel density")
	cmd.Flags().BoolVar(&ro.pipeline.Highlight, "highlight", false, "outline editable cells on hover (svg)")
	cmd.Flags().BoolVar(&ro.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVarP(&ro.watch, "watch", "w", false, "re-render when the chart or config file changes")

	return cmd
}

// runRender renders input once, and then on every change when watching.
func (c *CLI) runRender(ctx context.Context, input string, ro renderOpts) error {
	runner, err := c.newRunner(ro.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	ro.pipeline.Standalone = true
	ro.pipeline.Logger = c.Logger
	runner.Retain = ro.watch

	err = c.renderOnce(ctx, runner, input, ro)
	if !ro.watch {
		return err
	}
	if err != nil {
		printError("%s", errors.UserMessage(err))
	}

	paths := []string{input}
	if ro.configPath != "" {
		paths = append(paths, ro.configPath)
	}
	printInfo("Watching %s for changes (ctrl+c to stop)", strings.Join(paths, ", "))

	return watchFiles(ctx, paths, watchDebounce, func(changed string) {
		c.Logger.Debug("file changed", "path", changed)
		if err := c.renderOnce(ctx, runner, input, ro); err != nil {
			printError("%s", errors.UserMessage(err))
		}
	})
}

// renderOnce runs the pipeline and writes every artifact.
func (c *CLI) renderOnce(ctx context.Context, runner *pipeline.Runner, input string, ro renderOpts) error {
	spinner := newSpinner(ctx, os.Stderr, "Loading "+filepath.Base(input))
	spinner.Start()

	in, err := loadInput(input, ro.configPath)
	if err != nil {
		spinner.Stop()
		return err
	}

	tm := startTimer(c.Logger)
	spinner.SetMessage("Rendering " + strings.Join(ro.pipeline.Formats, ", "))
	res, err := runner.Execute(ctx, in, ro.pipeline)
	if err != nil {
		if spinner.Cancelled() {
			spinner.Stop()
		} else {
			spinner.StopWithError("Render failed")
		}
		return err
	}
	spinner.Stop()

	if res.Skipped {
		printWarning("%s has no data, keeping previous output", input)
		return nil
	}

	paths := outputPaths(ro.pipeline.Formats, input, ro.output)
	for _, format := range ro.pipeline.Formats {
		if err := writeOutput(paths[format], res.Artifacts[format]); err != nil {
			return err
		}
	}
	if ro.output == "-" {
		return nil
	}

	printSuccess("Rendered %s", input)
	printStats(res)
	for _, format := range ro.pipeline.Formats {
		printFile(paths[format])
	}
	tm.done("rendered", "input", input, "artifacts", len(res.Artifacts), "cache_hits", res.CacheInfo.Hits)
	return nil
}

// outputPaths maps each format to its output path. A derived path never
// overwrites the input: a JSON layout of fruit.json goes to fruit.layout.json.
func outputPaths(formats []string, input, output string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" {
		paths[formats[0]] = output
		return paths
	}
	base := basePath(output, input)
	for _, f := range formats {
		p := base + "." + f
		if filepath.Clean(p) == filepath.Clean(input) {
			p = base + ".layout." + f
		}
		paths[f] = p
	}
	return paths
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .pdf, etc.), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if slices.Contains(pipeline.ValidFormats, strings.TrimPrefix(ext, ".")) {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// writeOutput writes data to path, or to stdout when path is "-".
func writeOutput(path string, data []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "write %s", path)
	}
	return nil
}
