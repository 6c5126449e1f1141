package config

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLogWithLogger_MasksNothingSensitiveForStdio(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	s := &Settings{
		Serve: ServeSettings{Transport: TransportStdio, Host: "0.0.0.0", Port: 8080},
		Probe: ProbeSettings{MaxFileSize: 1024, MaxFiles: 10},
	}
	LogWithLogger(s, logger)

	out := buf.String()
	if !strings.Contains(out, "serve.transport") {
		t.Error("transport should always be logged")
	}
	if strings.Contains(out, "serve.host") {
		t.Error("host is irrelevant for stdio and should be skipped")
	}
}

func TestSettingsLogValue_MasksAPIKeys(t *testing.T) {
	s := Settings{
		Serve: ServeSettings{Transport: TransportSSE, APIKeys: []string{"super-secret"}},
	}

	val := SettingsLogValue(s)
	if strings.Contains(val.String(), "super-secret") {
		t.Error("API keys must be masked in log values")
	}
}
