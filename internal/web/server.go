// Package web serves the HTTP API and the live frame stream.
package web

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"sync"

	"zigbee-zcl/internal/sniffer"
)

// ServerOption customizes a Server at construction.
type ServerOption func(*Server)

// WithAPIKey requires the X-API-Key header on /api/ requests.
func WithAPIKey(key string) ServerOption {
	return func(s *Server) {
		s.apiKey = key
	}
}

// WithAllowedOrigins sets allowed CORS and WebSocket origin patterns.
func WithAllowedOrigins(origins []string) ServerOption {
	return func(s *Server) {
		s.allowedOrigins = origins
	}
}

// WithVersion sets the version reported by /api/version.
func WithVersion(v string) ServerOption {
	return func(s *Server) {
		s.version = v
	}
}

// Server is the HTTP server for the sniffer API.
type Server struct {
	pipeline       *sniffer.Pipeline
	wsHub          *WSHub
	logger         *slog.Logger
	mux            *http.ServeMux
	apiKey         string
	allowedOrigins []string
	version        string
	wg             sync.WaitGroup
	unsubEvents    func()
}

func NewServer(p *sniffer.Pipeline, logger *slog.Logger, opts ...ServerOption) *Server {
	s := &Server{
		pipeline: p,
		logger:   logger.With("component", "web"),
		mux:      http.NewServeMux(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.wsHub = NewWSHub(s.logger)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.wsHub.Run()
	}()

	s.unsubEvents = p.Events().OnAll(func(event sniffer.Event) {
		s.wsHub.Broadcast(event)
	})

	s.routes()
	return s
}

// Stop shuts down the WebSocket hub and waits for its goroutine.
func (s *Server) Stop() {
	if s.unsubEvents != nil {
		s.unsubEvents()
	}
	s.wsHub.Stop()
	s.wg.Wait()
}

func (s *Server) routes() {
	// Registry
	s.mux.HandleFunc("GET /api/clusters", s.handleAPIListClusters)
	s.mux.HandleFunc("GET /api/clusters/{key}", s.handleAPIGetCluster)
	s.mux.HandleFunc("GET /api/commands/global", s.handleAPIGlobalCommands)

	// Codec
	s.mux.HandleFunc("POST /api/decode", s.handleAPIDecode)
	s.mux.HandleFunc("POST /api/encode", s.handleAPIEncode)

	// Captures
	s.mux.HandleFunc("GET /api/captures", s.handleAPIListCaptures)
	s.mux.HandleFunc("GET /api/captures/{id}", s.handleAPIGetCapture)
	s.mux.HandleFunc("DELETE /api/captures/{id}", s.handleAPIDeleteCapture)

	s.mux.HandleFunc("GET /api/stats", s.handleAPIStats)
	s.mux.HandleFunc("GET /api/version", s.handleAPIVersion)

	// WebSocket
	s.mux.HandleFunc("GET /ws", s.handleWS)
}

// ServeHTTP applies the origin policy and the API key before routing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !s.checkOrigin(w, r) {
		return
	}
	// Browsers cannot add headers to a WebSocket upgrade, so the key only
	// guards /api/.
	if strings.HasPrefix(r.URL.Path, "/api/") && !s.authorized(r) {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	s.mux.ServeHTTP(w, r)
}

// checkOrigin answers preflight requests and rejects cross-origin writes
// from origins outside the allow list. It returns false when the response
// has been written. Without an allow list every origin passes.
func (s *Server) checkOrigin(w http.ResponseWriter, r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if len(s.allowedOrigins) == 0 || origin == "" {
		return true
	}
	allowed := s.isOriginAllowed(origin)
	if allowed {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Add("Vary", "Origin")
	}

	switch {
	case r.Method == http.MethodOptions && allowed:
		h := w.Header()
		h.Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type, X-API-Key")
		h.Set("Access-Control-Max-Age", "3600")
		w.WriteHeader(http.StatusNoContent)
		return false
	case r.Method != http.MethodGet && !allowed:
		http.Error(w, "Forbidden", http.StatusForbidden)
		return false
	}
	return true
}

func (s *Server) authorized(r *http.Request) bool {
	if s.apiKey == "" {
		return true
	}
	key := r.Header.Get("X-API-Key")
	return subtle.ConstantTimeCompare([]byte(key), []byte(s.apiKey)) == 1
}

// isOriginAllowed reports whether origin is listed or "*" is.
func (s *Server) isOriginAllowed(origin string) bool {
	return slices.ContainsFunc(s.allowedOrigins, func(allowed string) bool {
		return allowed == "*" || allowed == origin
	})
}

func (s *Server) handleAPIVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"version": s.version})
}
