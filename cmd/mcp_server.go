package cmd

import (
	"context"
	"fmt"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/radux/radux-launch/internal/launcher"
	"github.com/radux/radux-launch/internal/platform"
	"gopkg.in/yaml.v3"
)

// mcpServer wraps the MCP server with the launcher and pointer locator.
type mcpServer struct {
	launch     *launcher.Launcher
	locator    platform.PointerLocator
	defaultCLI string
	runMu      sync.Mutex
	mcp        *mcpserver.MCPServer
}

// MCPConfig holds MCP server configuration.
type MCPConfig struct {
	Transport string
	Port      int
}

// newMCPServer creates and configures an MCP server with the launcher tools.
func newMCPServer() (*mcpServer, error) {
	cfg, settings, err := loadLauncherConfig("")
	if err != nil {
		return nil, err
	}
	provider, err := platform.NewProvider()
	if err != nil {
		return nil, err
	}

	s := &mcpServer{
		launch:     launcher.New(cfg, provider.Locator),
		locator:    provider.Locator,
		defaultCLI: settings.CLIConfig,
	}

	s.mcp = mcpserver.NewMCPServer(
		"radux-launch",
		"1.0.0",
	)

	s.registerTools()
	return s, nil
}

// serve starts the MCP server with the configured transport.
func (s *mcpServer) serve(cfg MCPConfig) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *mcpServer) registerTools() {
	// menu_open
	s.mcp.AddTool(
		mcp.NewTool("menu_open",
			mcp.WithDescription("Open the radux radial menu at a screen position. Omit x and y to open at the current pointer position."),
			mcp.WithNumber("x", mcp.Description("X screen coordinate (requires y)")),
			mcp.WithNumber("y", mcp.Description("Y screen coordinate (requires x)")),
			mcp.WithString("cli", mcp.Description("Configuration override passed to radux-menu via --cli")),
		),
		s.handleMenuOpen,
	)

	// pointer_position
	s.mcp.AddTool(
		mcp.NewTool("pointer_position",
			mcp.WithDescription("Return the current global pointer position"),
		),
		s.handlePointerPosition,
	)
}

// resultToText serializes a result struct to YAML for the MCP response.
func resultToText(v interface{}) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("ok: false\nerror: %s", err)
	}
	return string(b)
}

func (s *mcpServer) handleMenuOpen(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	x, hasX := numberParam(params, "x")
	y, hasY := numberParam(params, "y")
	if hasX != hasY {
		return mcp.NewToolResultError("x and y must be given together"), nil
	}

	opts := launcher.RunOptions{ConfigOverride: s.defaultCLI}
	if cli := stringParam(params, "cli"); cli != "" {
		opts.ConfigOverride = cli
	}
	if hasX {
		opts.X, opts.Y = &x, &y
	}

	// The menu is modal; one at a time.
	s.runMu.Lock()
	defer s.runMu.Unlock()

	outcome, err := s.launch.Run(opts)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := OpenResult{
		OK:      outcome.Status == launcher.StatusOK,
		Action:  "open",
		X:       outcome.X,
		Y:       outcome.Y,
		Command: outcome.Args,
		Error:   outcome.Detail,
	}
	if !result.OK {
		return mcp.NewToolResultError(resultToText(result)), nil
	}
	return mcp.NewToolResultText(resultToText(result)), nil
}

func (s *mcpServer) handlePointerPosition(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	x, y, err := s.locator.PointerPosition()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(resultToText(PointerResult{OK: true, Action: "pointer", X: x, Y: y})), nil
}
