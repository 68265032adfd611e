// Package mcpserver exposes the query service as MCP tools and serves them
// over stdio, SSE and streamable HTTP.
package mcpserver

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/sekaimcp/sekaimcp/pkg/buildinfo"
	sekaierrors "github.com/sekaimcp/sekaimcp/pkg/errors"
	"github.com/sekaimcp/sekaimcp/pkg/observability"
	"github.com/sekaimcp/sekaimcp/pkg/query"
)

// Options configures a Server.
type Options struct {
	Logger *log.Logger
}

// Server wraps the MCP SDK server and the query service behind it.
type Server struct {
	MCPServer *sdkmcp.Server

	svc    *query.Service
	logger *log.Logger
}

// NewServer creates an MCP server with every tool registered.
func NewServer(svc *query.Service, opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	s := &Server{
		svc:    svc,
		logger: opts.Logger,
	}
	s.MCPServer = sdkmcp.NewServer(
		&sdkmcp.Implementation{Name: buildinfo.Name, Version: buildinfo.Version},
		nil,
	)
	s.registerTools()
	return s
}

// Run serves the stdio transport until ctx ends or the client disconnects.
func (s *Server) Run(ctx context.Context) error {
	return s.MCPServer.Run(ctx, &sdkmcp.StdioTransport{})
}

// toolFunc is the core of a tool: validated input in, result value out.
// A string result is returned verbatim; anything else is rendered as
// indented JSON.
type toolFunc[In any] func(ctx context.Context, in In) (any, error)

// handler adapts fn to the SDK handler signature, adding logging and hooks.
func handler[In any](s *Server, name string, fn toolFunc[In]) sdkmcp.ToolHandlerFor[In, any] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, in In) (*sdkmcp.CallToolResult, any, error) {
		logger := s.logger.With("tool", name, "call", uuid.NewString())
		hooks := observability.Tool()

		start := time.Now()
		hooks.OnToolStart(ctx, name)
		v, err := fn(ctx, in)
		hooks.OnToolComplete(ctx, name, time.Since(start), err)

		if err != nil {
			logger.Warn("tool failed", "error", err, "duration", time.Since(start))
			return nil, nil, err
		}
		text, err := render(v)
		if err != nil {
			logger.Error("encode result", "error", err)
			return nil, nil, err
		}
		logger.Debug("tool completed", "duration", time.Since(start))
		return &sdkmcp.CallToolResult{
			Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: text}},
		}, nil, nil
	}
}

func render(v any) (string, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", sekaierrors.Wrap(sekaierrors.ErrCodeInternal, err, "encode %T result", v)
	}
	return string(data), nil
}
