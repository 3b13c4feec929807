package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daisy-days/daisyd/internal/adapters/driving/mcp"
)

var (
	mcpHTTP bool
	mcpAddr string
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

By default, the server communicates over stdio using JSON-RPC and can be
used with Claude Desktop and other MCP-compatible AI assistants.

Use --http to serve the streamable HTTP transport instead, which enables:
  - Testing with MCP Inspector web UI
  - Remote access via HTTP

Examples:
  # Stdio mode (default, for Claude Desktop)
  daisyd mcp serve

  # HTTP mode on the configured address
  daisyd mcp serve --http

  # HTTP mode on an explicit address
  daisyd mcp serve --http --addr :9090

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "daisyd": {
        "command": "/path/to/daisyd",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().BoolVar(&mcpHTTP, "http", false, "serve over HTTP instead of stdio")
	mcpServeCmd.Flags().StringVar(&mcpAddr, "addr", "", "HTTP listen address (default from settings)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	ports := &mcp.Ports{
		Docs:     docService,
		Concepts: conceptService,
		Layouts:  layoutService,
		Snippets: snippetService,
		Settings: settingsService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	stopWatcher, err := startWatcher(cmd.Context())
	if err != nil {
		return err
	}
	defer stopWatcher()

	if mcpHTTP {
		addr := mcpAddr
		if addr == "" {
			if settingsService == nil {
				return errors.New("settings service not configured")
			}
			settings, err := settingsService.Get()
			if err != nil {
				return fmt.Errorf("reading settings: %w", err)
			}
			addr = settings.HTTPAddr
		}
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on %s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
