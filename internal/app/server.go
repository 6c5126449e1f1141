package app

import (
	"crypto/subtle"
	"fmt"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dijital/ragnostics/internal/config"
)

// StartSSEServer starts the SSE server, with API-key auth when keys are set
func StartSSEServer(s *mcp.Server, settings *config.Settings) error {
	srv := NewSSEServer(s, settings)
	return srv.ListenAndServe()
}

// NewSSEServer creates the SSE server with health endpoint and middleware
func NewSSEServer(s *mcp.Server, settings *config.Settings) *http.Server {
	sseHandler := mcp.NewSSEHandler(func(r *http.Request) *mcp.Server {
		return s
	}, nil)

	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.Handle("/sse", sseHandler)

	var handler http.Handler = mux
	if len(settings.Serve.APIKeys) > 0 {
		handler = apiKeyMiddleware(settings.Serve.APIKeys, mux)
	}

	return &http.Server{
		Addr:    fmt.Sprintf("%s:%d", settings.Serve.Host, settings.Serve.Port),
		Handler: handler,
	}
}

// apiKeyMiddleware requires a valid X-API-Key header on every path except
// the health check.
func apiKeyMiddleware(keys []string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			next.ServeHTTP(w, r)
			return
		}

		provided := r.Header.Get("X-API-Key")
		for _, key := range keys {
			if subtle.ConstantTimeCompare([]byte(provided), []byte(key)) == 1 {
				next.ServeHTTP(w, r)
				return
			}
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	})
}
