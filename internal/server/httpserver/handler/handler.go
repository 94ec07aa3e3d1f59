// Package handler provides HTTP request handlers for stagepass.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/improvlabs/stagepass/internal/core/service"
	"github.com/improvlabs/stagepass/internal/telemetry/logger"
	"github.com/improvlabs/stagepass/internal/telemetry/metric"
)

// Handler is the main HTTP handler that routes requests to the
// endpoint handlers.
type Handler struct {
	tokenSvc *service.TokenService
	metrics  *metric.Registry
	logger   logger.Logger
	mux      *http.ServeMux
}

// New creates a new Handler with the given service.
func New(tokenSvc *service.TokenService, metrics *metric.Registry, log logger.Logger) *Handler {
	h := &Handler{
		tokenSvc: tokenSvc,
		metrics:  metrics,
		logger:   log,
		mux:      http.NewServeMux(),
	}

	h.registerRoutes()
	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// registerRoutes registers all HTTP routes.
func (h *Handler) registerRoutes() {
	// Token endpoint
	h.mux.HandleFunc("GET /token", h.handleToken)

	// Health endpoints
	h.mux.HandleFunc("GET /health", h.handleHealth)
	h.mux.HandleFunc("GET /ready", h.handleReady)
}

// writeJSON writes a JSON response body.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

// writeError writes an error response.
func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, ErrorResponse{Error: message})
}
