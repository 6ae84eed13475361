package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/chartgrid/internal/server"
	"github.com/matzehuels/chartgrid/pkg/cache"
	"github.com/matzehuels/chartgrid/pkg/config"
	"github.com/matzehuels/chartgrid/pkg/observability"
	"github.com/matzehuels/chartgrid/pkg/pipeline"
)

// redisAddrEnv names the environment variable read when --redis is not set.
const redisAddrEnv = "CHARTGRID_REDIS_ADDR"

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr       string
	redisAddr  string
	configPath string
	noCache    bool
}

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{addr: ":8080"}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP render service",
		Long: `Run the HTTP render service.

Endpoints:
  POST /render?format=svg|png|pdf|json   render a chart document
  POST /layout                           compute the JSON layout
  GET  /healthz                          liveness probe

Chart documents are sent as JSON, or as YAML with Content-Type
application/yaml. Artifacts are cached in Redis when --redis (or
` + redisAddrEnv + `) is set, and in the local cache directory otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.redisAddr == "" {
				opts.redisAddr = os.Getenv(redisAddrEnv)
			}
			return c.runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.redisAddr, "redis", "", "Redis address for the shared artifact cache (default $"+redisAddrEnv+")")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "style configuration file (TOML)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts serveOpts) error {
	cfg, err := config.LoadOrDefault(opts.configPath)
	if err != nil {
		return err
	}

	runner, err := c.newServeRunner(ctx, opts)
	if err != nil {
		return err
	}
	defer runner.Close()

	hooks := server.NewLogHooks(c.Logger)
	observability.SetServerHooks(hooks)
	observability.SetCacheHooks(hooks)
	defer observability.Reset()

	srv := server.New(runner, cfg, c.Logger)
	printInfo("Listening on %s", opts.addr)
	printNextStep("Try", fmt.Sprintf("curl -X POST --data-binary @chart.json 'http://localhost%s/render?format=svg'", opts.addr))
	return srv.ListenAndServe(ctx, opts.addr)
}

// newServeRunner creates a runner backed by Redis when an address is
// configured, and by the local cache otherwise.
func (c *CLI) newServeRunner(ctx context.Context, opts serveOpts) (*pipeline.Runner, error) {
	if opts.noCache || opts.redisAddr == "" {
		return c.newRunner(opts.noCache)
	}
	rc, err := cache.NewRedisCache(ctx, opts.redisAddr)
	if err != nil {
		return nil, fmt.Errorf("connect to redis at %s: %w", opts.redisAddr, err)
	}
	c.Logger.Info("using redis artifact cache", "addr", opts.redisAddr)
	return pipeline.NewRunner(rc, cache.NewScopedKeyer(nil, appName+":"), c.Logger), nil
}
