package rest

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// Server represents the REST API server
type Server struct {
	port   string
	server *http.Server
	router *mux.Router
}

// NewServer creates a new REST API server. mcpHandler is mounted at /mcp
// when non-nil.
func NewServer(port string, handler *Handler, mcpHandler http.Handler) *Server {
	router := mux.NewRouter()

	router.Use(RecoveryMiddleware)
	router.Use(LoggingMiddleware)
	router.Use(CORSMiddleware)

	// Health check
	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	// HTML dashboard
	router.HandleFunc("/", handler.DashboardPage).Methods("GET")

	// API v1 routes
	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/players/resolve", handler.ResolvePlayer).Methods("GET", "OPTIONS")
	api.HandleFunc("/teams/resolve", handler.ResolveTeam).Methods("GET", "OPTIONS")
	api.HandleFunc("/dashboard", handler.GetDashboard).Methods("GET", "OPTIONS")
	api.HandleFunc("/dashboard/chart.svg", handler.GetChart).Methods("GET", "OPTIONS")

	if mcpHandler != nil {
		router.PathPrefix("/mcp").Handler(mcpHandler)
	}

	return &Server{
		port:   port,
		router: router,
		server: &http.Server{
			Addr:              fmt.Sprintf(":%s", port),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Handler returns the routed handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the REST API server
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
