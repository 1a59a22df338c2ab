package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/venicelabs/modelcatalog/internal/catalog"
	"github.com/venicelabs/modelcatalog/internal/config"
	"github.com/venicelabs/modelcatalog/internal/pricing"
	"github.com/venicelabs/modelcatalog/internal/venice"
)

// Server exposes the catalog engine over HTTP. It is a thin facade: all
// filtering and pricing semantics live in the catalog and pricing packages.
type Server struct {
	cfg      *config.Config
	store    *catalog.Store
	resolver *pricing.Resolver
	loader   *venice.Loader
	logger   *log.Logger

	httpServer *http.Server
}

// NewServer creates an API server over the given store, resolver and loader.
func NewServer(cfg *config.Config, store *catalog.Store, resolver *pricing.Resolver, loader *venice.Loader, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		cfg:      cfg,
		store:    store,
		resolver: resolver,
		loader:   loader,
		logger:   logger,
	}
}

// Start runs the server on the given port, blocking until it stops.
func (s *Server) Start(port int) error {
	router := s.setupRoutes()

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	s.logger.Info("catalog API listening", "port", port)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// Handler returns the configured router, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.setupRoutes()
}

func (s *Server) setupRoutes() *mux.Router {
	router := mux.NewRouter()

	router.Use(s.requestIDMiddleware)
	router.Use(s.corsMiddleware)
	router.Use(s.loggingMiddleware)

	api := router.PathPrefix("/api/v1").Subrouter()

	// OPTIONS is matched so the CORS middleware can answer preflights; mux
	// middleware only runs on matched routes.
	api.HandleFunc("/health", s.handleHealth).Methods("GET", "OPTIONS")
	api.HandleFunc("/models", s.handleListModels).Methods("GET", "OPTIONS")
	api.HandleFunc("/models/refresh", s.handleRefresh).Methods("POST", "OPTIONS")
	api.HandleFunc("/models/{id:.+}/price", s.handleModelPrice).Methods("GET", "OPTIONS")
	api.HandleFunc("/models/{id:.+}", s.handleGetModel).Methods("GET", "OPTIONS")

	return router
}

func (s *Server) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start),
		)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status": "ok",
		"models": s.store.Len(),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("encode response", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
