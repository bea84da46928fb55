// Package api provides the REST and WebSocket API server. Handlers
// resolve editions through the source registry and compute values
// through the core gematria registry, with a shared LRU in front of
// word computations.
package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/metaxiamultimedia/scriptures-core/internal/cache"
	"github.com/metaxiamultimedia/scriptures-core/internal/config"
	"github.com/metaxiamultimedia/scriptures-core/internal/lexicon"
	"github.com/metaxiamultimedia/scriptures-core/internal/logging"
	"github.com/metaxiamultimedia/scriptures-core/internal/sources"
)

// Server is the API server.
type Server struct {
	cfg      config.ServerConfig
	sources  *sources.Registry
	lexicons []*lexicon.Lexicon
	values   cache.Cache[string, int]
	hub      *Hub
	start    time.Time
}

// NewServer assembles a server over the given registries. The value
// cache may be nil, in which case computations are uncached.
func NewServer(cfg config.ServerConfig, reg *sources.Registry, lexicons []*lexicon.Lexicon, values cache.Cache[string, int]) *Server {
	s := &Server{
		cfg:      cfg,
		sources:  reg,
		lexicons: lexicons,
		values:   values,
		hub:      NewHub(),
		start:    time.Now(),
	}
	go s.hub.Run()
	return s
}

// Handler returns the server's full route tree with middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/", s.handleRoot)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/api/v1/methods", s.handleMethods)
	mux.HandleFunc("/api/v1/compute", s.handleCompute)
	mux.HandleFunc("/api/v1/detect", s.handleDetect)
	mux.HandleFunc("/api/v1/editions", s.handleEditions)
	mux.HandleFunc("/api/v1/verse", s.handleVerse)
	mux.HandleFunc("/api/v1/chapter", s.handleChapter)
	mux.HandleFunc("/api/v1/lexicon/", s.handleLexicon)
	mux.HandleFunc("/ws", s.handleWebSocket)

	return requestLogger(mux)
}

// ListenAndServe runs the server until it fails. TLS is used when the
// configuration carries both a certificate and a key.
func (s *Server) ListenAndServe() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	protocol := "http"
	if s.cfg.TLSCert != "" {
		protocol = "https"
	}
	logging.ServerStartup("rest_api", protocol, s.cfg.Port,
		"editions", len(s.sources.Keys()))

	if s.cfg.TLSCert != "" {
		return srv.ListenAndServeTLS(s.cfg.TLSCert, s.cfg.TLSKey)
	}
	return srv.ListenAndServe()
}

// statusRecorder captures the status code for request logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The websocket upgrade hijacks the connection and needs the
		// raw ResponseWriter.
		if r.URL.Path == "/ws" {
			next.ServeHTTP(w, r)
			return
		}
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)
		logging.HTTPRequest(r.Method, r.URL.Path, r.RemoteAddr, rec.status, time.Since(start))
	})
}
