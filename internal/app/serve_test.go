package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/pflag"

	"github.com/dijital/ragnostics/internal/config"
)

// noopValidate is a no-op validation function for tests
func noopValidate(*config.Settings) error {
	return nil
}

func TestRunServeWithDeps_ErrorCases(t *testing.T) {
	tests := []struct {
		name           string
		params         ServeParams
		wantErrContain string
	}{
		{
			name: "LoadSettings error",
			params: ServeParams{
				LoadSettings: func(*pflag.FlagSet) (*config.Settings, error) {
					return nil, errors.New("settings error")
				},
				ValidSettings: noopValidate,
			},
			wantErrContain: "failed to load settings",
		},
		{
			name: "ValidSettings error",
			params: ServeParams{
				LoadSettings: func(*pflag.FlagSet) (*config.Settings, error) {
					return &config.Settings{Serve: config.ServeSettings{Transport: config.TransportSSE}}, nil
				},
				ValidSettings: func(*config.Settings) error {
					return errors.New("validation error")
				},
			},
			wantErrContain: "invalid configuration",
		},
		{
			name: "SSE server error",
			params: ServeParams{
				LoadSettings: func(*pflag.FlagSet) (*config.Settings, error) {
					return &config.Settings{Serve: config.ServeSettings{Transport: config.TransportSSE}}, nil
				},
				ValidSettings: noopValidate,
				CreateServer:  CreateMCPServer,
				StartSSEServer: func(*mcp.Server, *config.Settings) error {
					return errors.New("listen error")
				},
			},
			wantErrContain: "listen error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RunServeWithDeps(context.Background(), tt.params, nil, "test")
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErrContain) {
				t.Errorf("error %q should contain %q", err, tt.wantErrContain)
			}
		})
	}
}

func TestCreateMCPServer(t *testing.T) {
	server := CreateMCPServer(&config.Settings{})
	if server == nil {
		t.Fatal("expected a server")
	}
}
