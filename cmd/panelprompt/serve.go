package main

import (
	"context"

	"github.com/spf13/cobra"

	"panelprompt/internal/mcp"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server over stdio",
		RunE:  runServe,
	}
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	ws, err := openWorkspace(ctx)
	if err != nil {
		return err
	}
	defer ws.Close(ctx)

	server := mcp.NewServer(ws.lib, ws.project, version)
	return server.Run(ctx, &sdk.StdioTransport{})
}
