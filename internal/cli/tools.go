package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/sekaimcp/sekaimcp/pkg/buildinfo"
	"github.com/sekaimcp/sekaimcp/pkg/errors"
)

// toolsCommand lists the registered tools.
func (c *CLI) toolsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List available MCP tools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			session, err := c.connect(ctx)
			if err != nil {
				return err
			}
			defer session.Close()

			res, err := session.ListTools(ctx, nil)
			if err != nil {
				return fmt.Errorf("list tools: %w", err)
			}
			for _, tool := range res.Tools {
				printKeyValue(cmd.OutOrStdout(), tool.Name, tool.Description)
			}
			return nil
		},
	}
}

// callCommand invokes one tool in-process and prints its result.
func (c *CLI) callCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "call <tool> [json-arguments]",
		Short: "Invoke a tool in-process and print the result",
		Long: `Invoke a tool against the live data sources without running a server.

Examples:
  sekaimcp call search_cards '{"keyword": "miku", "rarity": 4}'
  sekaimcp call get_events '{"limit": 3}'
  sekaimcp call get_current_event`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			arguments := map[string]any{}
			if len(args) == 2 {
				if err := json.Unmarshal([]byte(args[1]), &arguments); err != nil {
					return errors.Wrap(errors.ErrCodeInvalidInput, err, "arguments must be a JSON object")
				}
			}

			session, err := c.connect(ctx)
			if err != nil {
				return err
			}
			defer session.Close()

			spinner := newSpinner(ctx, cmd.ErrOrStderr(), "Calling "+args[0]+"...")
			spinner.Start()
			res, err := session.CallTool(ctx, &sdkmcp.CallToolParams{Name: args[0], Arguments: arguments})
			spinner.Stop()
			if spinner.Cancelled() {
				return ctx.Err()
			}
			if err != nil {
				return fmt.Errorf("call %s: %w", args[0], err)
			}

			text := resultText(res)
			if res.IsError {
				return fmt.Errorf("%s: %s", args[0], text)
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
}

// connect wires a fresh app to an in-memory client session.
func (c *CLI) connect(ctx context.Context) (*sdkmcp.ClientSession, error) {
	a := newApp(c.cfg, loggerFromContext(ctx))

	serverT, clientT := sdkmcp.NewInMemoryTransports()
	if _, err := a.server.MCPServer.Connect(ctx, serverT, nil); err != nil {
		return nil, fmt.Errorf("connect server: %w", err)
	}
	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: appName + "-cli", Version: buildinfo.Version}, nil)
	session, err := client.Connect(ctx, clientT, nil)
	if err != nil {
		return nil, fmt.Errorf("connect client: %w", err)
	}
	return session, nil
}

func resultText(res *sdkmcp.CallToolResult) string {
	var parts []string
	for _, content := range res.Content {
		if tc, ok := content.(*sdkmcp.TextContent); ok {
			parts = append(parts, tc.Text)
		}
	}
	return strings.Join(parts, "\n")
}
