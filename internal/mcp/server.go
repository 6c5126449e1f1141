// Package mcp exposes the feasibility analyses as MCP tools so agents can
// run them over stdio or SSE.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ServerConfig contains configuration for creating an MCP server
type ServerConfig struct {
	Name    string
	Version string
}

// CreateServer creates and configures the MCP server
func CreateServer(cfg ServerConfig) *mcp.Server {
	s := mcp.NewServer(&mcp.Implementation{
		Name:    cfg.Name,
		Version: cfg.Version,
	}, nil)

	RegisterAnalyzeDirectoryTool(s)
	RegisterAnalyzeFilesTool(s)
	RegisterAnalyzeQueriesTool(s)

	return s
}
