// Package mcpserver exposes the tool surface to Model Context Protocol
// clients over stdio.
package mcpserver

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/manash/floralgen/internal/tools"
	"github.com/manash/floralgen/internal/version"
)

const ServerName = "floral-arrangement-aesthetics"

type Server struct {
	mcp      *server.MCPServer
	registry *tools.Registry
	logger   *slog.Logger
}

// New registers every tool under its protocol name.
func New(svc *tools.Service) *Server {
	s := &Server{
		mcp: server.NewMCPServer(ServerName, version.Version,
			server.WithToolCapabilities(false),
			server.WithRecovery(),
		),
		registry: svc.Tools(),
		logger:   svc.Logger,
	}

	for _, t := range s.registry.List() {
		s.mcp.AddTool(toolDefinition(t), s.handler(t))
	}
	return s
}

// MCP returns the underlying protocol server.
func (s *Server) MCP() *server.MCPServer {
	return s.mcp
}

// ServeStdio serves until stdin closes or the process is signalled.
// Nothing but protocol messages may be written to stdout.
func (s *Server) ServeStdio() error {
	s.logger.Info("mcp server starting", "transport", "stdio", "tools", len(s.registry.List()))
	errLog := slog.NewLogLogger(s.logger.Handler(), slog.LevelError)
	return server.ServeStdio(s.mcp, server.WithErrorLogger(errLog))
}

func toolDefinition(t *tools.Tool) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(t.Description)}
	for _, p := range t.Params {
		propOpts := []mcp.PropertyOption{mcp.Description(p.Description)}
		if p.Required {
			propOpts = append(propOpts, mcp.Required())
		}
		switch p.Type {
		case tools.ParamInteger:
			if n, ok := p.Default.(int); ok {
				propOpts = append(propOpts, mcp.DefaultNumber(float64(n)))
			}
			opts = append(opts, mcp.WithNumber(p.Name, propOpts...))
		default:
			if d, ok := p.Default.(string); ok && d != "" {
				propOpts = append(propOpts, mcp.DefaultString(d))
			}
			opts = append(opts, mcp.WithString(p.Name, propOpts...))
		}
	}
	return mcp.NewTool(t.ProtocolName, opts...)
}

func (s *Server) handler(t *tools.Tool) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		out, err := s.registry.Call(ctx, t.ProtocolName, tools.Args(req.GetArguments()))
		if err != nil {
			s.logger.Warn("tool call failed", "tool", t.ProtocolName, "err", err)
			return mcp.NewToolResultError(err.Error()), nil
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return nil, err
		}
		return mcp.NewToolResultText(string(data)), nil
	}
}
