package server

import (
	"net/http"
)

// setupRoutes configures all HTTP routes for the server.
func (s *Server) setupRoutes() {
	// API routes
	s.router.HandleFunc("POST /api/calculate", s.handleCalculate)
	s.router.HandleFunc("GET /api/calculate", s.handleCalculateQuery)
	s.router.HandleFunc("GET /api/units", s.handleListUnits)
	s.router.HandleFunc("GET /api/presets", s.handleListPresets)
	s.router.HandleFunc("GET /api/strings", s.handleStrings)

	// Health check
	s.router.HandleFunc("GET /api/health", s.handleHealth)

	// Static files (embedded form)
	s.router.HandleFunc("GET /{path...}", s.handleStatic)
}

// handleHealth returns a simple health check response.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}
