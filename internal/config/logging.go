package config

import (
	"context"
	"log/slog"
)

// Log logs the resolved settings in a granular way, skipping irrelevant ones
func Log(s *Settings) {
	LogWithLogger(s, slog.Default())
}

// LogWithLogger logs the resolved settings using the provided logger
func LogWithLogger(s *Settings, logger *slog.Logger) {
	ctx := context.Background()
	logger.InfoContext(ctx, "Config: serve.transport", "value", s.Serve.Transport)
	if s.Serve.Transport == TransportSSE {
		logger.InfoContext(ctx, "Config: serve.host", "value", s.Serve.Host)
		logger.InfoContext(ctx, "Config: serve.port", "value", s.Serve.Port)
		logger.InfoContext(ctx, "Config: serve.api_keys", "count", len(s.Serve.APIKeys))
	}
	logger.InfoContext(ctx, "Config: probe.max_file_size", "value", s.Probe.MaxFileSize)
	logger.InfoContext(ctx, "Config: probe.max_files", "value", s.Probe.MaxFiles)
}

// SettingsLogValue returns a slog.Value for Settings with API keys masked
func SettingsLogValue(s Settings) slog.Value {
	keys := make([]string, len(s.Serve.APIKeys))
	for i := range s.Serve.APIKeys {
		keys[i] = "****"
	}
	return slog.GroupValue(
		slog.String("transport", s.Serve.Transport),
		slog.String("host", s.Serve.Host),
		slog.Int("port", s.Serve.Port),
		slog.Any("api_keys", keys),
		slog.Int64("probe_max_file_size", s.Probe.MaxFileSize),
		slog.Int("probe_max_files", s.Probe.MaxFiles),
	)
}
