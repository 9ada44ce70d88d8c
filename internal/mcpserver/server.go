// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// New creates a configured MCP server with the dashboard tools registered.
func New(version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "suaps",
		Title:   "SUAPS Dashboard",
		Version: version,
	}, nil)

	registerTools(server)
	return server
}

// Run creates and runs the MCP server on the given transport.
// It blocks until the client disconnects or ctx is canceled.
func Run(ctx context.Context, version string, transport mcp.Transport) error {
	server := New(version)
	return server.Run(ctx, transport)
}
