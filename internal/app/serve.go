package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/pflag"

	"github.com/dijital/ragnostics/internal/config"
	mcputil "github.com/dijital/ragnostics/internal/mcp"
)

// ServeParams contains dependencies for the serve function
type ServeParams struct {
	LoadSettings      func(*pflag.FlagSet) (*config.Settings, error)
	ValidSettings     func(*config.Settings) error
	StartSSEServer    func(*mcp.Server, *config.Settings) error
	CreateServer      func(*config.Settings) *mcp.Server
	CustomIOTransport mcp.Transport // Optional: for testing with custom IO
}

// DefaultServeParams returns production dependencies
func DefaultServeParams() ServeParams {
	return ServeParams{
		LoadSettings:   config.LoadSettingsWithFlags,
		ValidSettings:  config.ValidateSettings,
		StartSSEServer: StartSSEServer,
		CreateServer:   CreateMCPServer,
	}
}

// ConfigureLogging routes slog to stderr so stdout stays clean for reports
// and the stdio transport.
func ConfigureLogging() {
	handler := slog.NewTextHandler(os.Stderr, nil)
	slog.SetDefault(slog.New(handler))
}

// RunServeWithDeps starts the MCP server with the provided dependencies
func RunServeWithDeps(ctx context.Context, params ServeParams, flags *pflag.FlagSet, version string) error {
	settings, err := params.LoadSettings(flags)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	if err := params.ValidSettings(settings); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ConfigureLogging()

	slog.Info("Starting ragnostics MCP server", "version", version)
	config.Log(settings)

	mcpServer := params.CreateServer(settings)

	if settings.Serve.Transport == config.TransportStdio {
		// Use custom transport if provided (for testing), otherwise use stdio
		transport := params.CustomIOTransport
		if transport == nil {
			transport = &mcp.StdioTransport{}
		}
		return mcpServer.Run(ctx, transport)
	}

	slog.Info("Starting SSE server", "host", settings.Serve.Host, "port", settings.Serve.Port)
	return params.StartSSEServer(mcpServer, settings)
}

// CreateMCPServer creates the MCP server with the analysis tools registered
func CreateMCPServer(settings *config.Settings) *mcp.Server {
	return mcputil.CreateServer(mcputil.ServerConfig{
		Name:    "ragnostics",
		Version: "1.0.0",
	})
}
