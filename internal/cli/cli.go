// Package cli implements the sekaimcp command-line interface.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/sekaimcp/sekaimcp/internal/config"
	"github.com/sekaimcp/sekaimcp/internal/mcpserver"
	"github.com/sekaimcp/sekaimcp/pkg/assets"
	"github.com/sekaimcp/sekaimcp/pkg/buildinfo"
	"github.com/sekaimcp/sekaimcp/pkg/httputil"
	"github.com/sekaimcp/sekaimcp/pkg/integrations"
	"github.com/sekaimcp/sekaimcp/pkg/integrations/masterdb"
	"github.com/sekaimcp/sekaimcp/pkg/integrations/strapi"
	"github.com/sekaimcp/sekaimcp/pkg/observability"
	"github.com/sekaimcp/sekaimcp/pkg/query"
	"github.com/sekaimcp/sekaimcp/pkg/snapshot"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the binary name used in help text.
const appName = "sekaimcp"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	cfg        config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    config.Defaults(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Project Sekai game data over the Model Context Protocol",
		Long: `sekaimcp serves read-only query tools over the Project Sekai master data
snapshot (cards, characters, music, events) and the sekai.best announcement
feed to MCP clients, over HTTP or stdio.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "path to a TOML config file")

	root.AddCommand(c.serveCommand())
	root.AddCommand(c.stdioCommand())
	root.AddCommand(c.toolsCommand())
	root.AddCommand(c.callCommand())
	root.AddCommand(c.snapshotCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads configuration and installs the logger and hooks before any
// subcommand runs.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.cfg = cfg

	useFormat(c.Logger, cfg.LogFormat)

	hooks := newLogHooks(c.Logger)
	observability.SetToolHooks(hooks)
	observability.SetCacheHooks(hooks)
	observability.SetHTTPHooks(hooks)

	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}

// =============================================================================
// Application Wiring
// =============================================================================

// app is the fully wired server for one process.
type app struct {
	store  *snapshot.Store
	svc    *query.Service
	server *mcpserver.Server
}

// newApp builds the upstream clients, cache, query service and MCP server
// from cfg.
func newApp(cfg config.Config, logger *log.Logger) *app {
	opts := integrations.Options{
		Timeout: cfg.HTTPTimeout,
		Retry:   httputil.Policy{Attempts: cfg.RetryAttempts, Delay: httputil.DefaultPolicy.Delay},
	}
	store := snapshot.NewStore(masterdb.NewClient(cfg.MasterDataURL, opts))
	svc := query.NewService(store, strapi.NewClient(cfg.StrapiURL, opts), query.Options{
		Assets: assets.NewResolver(cfg.AssetURL),
		Logger: logger,
	})
	return &app{
		store:  store,
		svc:    svc,
		server: mcpserver.NewServer(svc, mcpserver.Options{Logger: logger}),
	}
}

// prefetch warms every collection in the background when enabled.
func (a *app) prefetch(ctx context.Context, enabled bool, logger *log.Logger) {
	if !enabled {
		return
	}
	go func() {
		prog := startProgress(logger, "prefetch")
		if err := a.store.Warm(ctx); err != nil {
			logger.Warn("prefetch failed; collections will load on first use", "error", err)
			return
		}
		prog.done("prefetched master data")
	}()
}
