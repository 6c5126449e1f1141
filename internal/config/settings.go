package config

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Transport type constants for the serve mode.
const (
	TransportStdio = "stdio"
	TransportSSE   = "sse"
)

// ProbeSettings bounds the optional lexical retrieval probe.
type ProbeSettings struct {
	MaxFileSize int64 `mapstructure:"max_file_size"`
	MaxFiles    int   `mapstructure:"max_files"`
}

// ServeSettings configures the MCP serve mode.
type ServeSettings struct {
	Transport string   `mapstructure:"transport"`
	Host      string   `mapstructure:"host"`
	Port      int      `mapstructure:"port"`
	APIKeys   []string `mapstructure:"api_keys"`
}

// Settings application settings
type Settings struct {
	Serve ServeSettings `mapstructure:"serve"`
	Probe ProbeSettings `mapstructure:"probe"`
}

// LoadSettings loads settings from environment variables and optional .env file
func LoadSettings() (*Settings, error) {
	return LoadSettingsWithFlags(nil)
}

// LoadSettingsWithFlags loads settings with optional CLI flag overrides.
// Priority: CLI flags > environment variables > .env file > defaults.
// If flags is nil, only env vars and defaults are used.
func LoadSettingsWithFlags(flags *pflag.FlagSet) (*Settings, error) {
	v := viper.New()

	// Default values
	v.SetDefault("serve.transport", TransportStdio)
	v.SetDefault("serve.host", "0.0.0.0")
	v.SetDefault("serve.port", 8080)
	v.SetDefault("probe.max_file_size", int64(256*1024)) // 256KB
	v.SetDefault("probe.max_files", 500)

	// Environment variables
	v.SetEnvPrefix("RAGNOSTICS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Bind specific env vars for nested config
	_ = v.BindEnv("serve.transport", "RAGNOSTICS_SERVE_TRANSPORT")
	_ = v.BindEnv("serve.host", "RAGNOSTICS_SERVE_HOST")
	_ = v.BindEnv("serve.port", "RAGNOSTICS_SERVE_PORT")
	_ = v.BindEnv("serve.api_keys", "RAGNOSTICS_SERVE_API_KEYS")
	_ = v.BindEnv("probe.max_file_size", "RAGNOSTICS_PROBE_MAX_FILE_SIZE")
	_ = v.BindEnv("probe.max_files", "RAGNOSTICS_PROBE_MAX_FILES")

	// Bind CLI flags if provided (highest priority)
	if flags != nil {
		_ = v.BindPFlag("serve.transport", flags.Lookup("transport"))
		_ = v.BindPFlag("serve.host", flags.Lookup("host"))
		_ = v.BindPFlag("serve.port", flags.Lookup("port"))
		_ = v.BindPFlag("serve.api_keys", flags.Lookup("api-keys"))
		_ = v.BindPFlag("probe.max_file_size", flags.Lookup("probe-max-file-size"))
		_ = v.BindPFlag("probe.max_files", flags.Lookup("probe-max-files"))
	}

	// Helper to look for .env file
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // Ignore error if .env doesn't exist

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, err
	}

	// Handle explicit parsing of API keys if provided via env var as comma-separated string
	apiKeysEnv := os.Getenv("RAGNOSTICS_SERVE_API_KEYS")
	if apiKeysEnv != "" {
		if len(settings.Serve.APIKeys) == 0 || (len(settings.Serve.APIKeys) == 1 && strings.Contains(settings.Serve.APIKeys[0], ",")) {
			settings.Serve.APIKeys = strings.Split(apiKeysEnv, ",")
		}
	}

	// Trim spaces and drop empty API keys
	var keys []string
	for _, key := range settings.Serve.APIKeys {
		key = strings.TrimSpace(key)
		if key != "" {
			keys = append(keys, key)
		}
	}
	settings.Serve.APIKeys = keys

	return &settings, nil
}

// ValidateSettings checks for invalid or conflicting configurations.
func ValidateSettings(s *Settings) error {
	switch s.Serve.Transport {
	case TransportStdio, TransportSSE:
		// valid
	default:
		return errors.New("transport must be 'stdio' or 'sse', got: " + s.Serve.Transport)
	}

	if s.Serve.Transport == TransportStdio && len(s.Serve.APIKeys) > 0 {
		return errors.New("api-keys only apply to the sse transport")
	}

	if s.Serve.Port <= 0 || s.Serve.Port > 65535 {
		return errors.New("port must be in (0, 65535]")
	}

	if s.Probe.MaxFileSize <= 0 {
		return errors.New("probe-max-file-size must be positive")
	}

	if s.Probe.MaxFiles <= 0 {
		return errors.New("probe-max-files must be positive")
	}

	return nil
}
