package cli

import (
	"net"

	"github.com/spf13/cobra"
)

// serveCommand creates the serve command for the HTTP transports.
func (c *CLI) serveCommand() *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve MCP over HTTP (SSE and streamable)",
		Long: `Serve MCP tools over HTTP.

Routes:
  GET  /sse        SSE event stream
  POST /sse        SSE client messages (announced by the stream)
  POST /messages   alias of POST /sse
       /mcp        streamable HTTP transport
  GET  /healthz    cache status and version

The listen address defaults to :$PORT (3000).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg := c.cfg
			if listen != "" {
				cfg.Listen = listen
			}

			a := newApp(cfg, logger)
			a.prefetch(ctx, cfg.Prefetch, logger)

			if _, port, err := net.SplitHostPort(cfg.Addr()); err == nil {
				logger.Info("SSE endpoint", "url", "http://localhost:"+port+"/sse")
			}
			return a.server.ListenAndServe(ctx, cfg.Addr(), a.server.Handler(a.store.Status))
		},
	}

	cmd.Flags().StringVarP(&listen, "listen", "l", "", "listen address (overrides config)")
	return cmd
}

// stdioCommand creates the stdio command used by desktop MCP clients.
func (c *CLI) stdioCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stdio",
		Short: "Serve MCP over stdin/stdout",
		Long: `Serve MCP tools over stdin/stdout. Logs go to stderr so the protocol
stream stays clean. Configure your client with:

  {"command": "sekaimcp", "args": ["stdio"]}`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			a := newApp(c.cfg, logger)
			a.prefetch(ctx, c.cfg.Prefetch, logger)

			logger.Debug("serving stdio")
			return a.server.Run(ctx)
		},
	}
}
