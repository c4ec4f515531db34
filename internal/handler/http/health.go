package http

import (
	"context"
	"net/http"
	"time"

	"smartlinks/internal/repository"

	"go.uber.org/zap"
)

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	storage repository.Storage
	log     *zap.Logger
}

func NewHealthHandler(storage repository.Storage, log *zap.Logger) *HealthHandler {
	return &HealthHandler{
		storage: storage,
		log:     log,
	}
}

// HealthResponse is the health probe payload.
type HealthResponse struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp"`
	Uptime    string    `json:"uptime,omitempty"`
}

var startTime = time.Now()

// Health reports service and database status
//
//	@Summary		Health check
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	HealthResponse
//	@Failure		503	{object}	HealthResponse	"Database unreachable"
//	@Router			/health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	status := "healthy"
	dbStatus := "connected"
	statusCode := http.StatusOK

	if _, err := h.storage.CountActiveLinks(ctx); err != nil {
		h.log.Error("database health check failed", zap.Error(err))
		status = "unhealthy"
		dbStatus = "disconnected"
		statusCode = http.StatusServiceUnavailable
	}

	writeJSON(w, HealthResponse{
		Status:    status,
		Database:  dbStatus,
		Timestamp: time.Now().UTC(),
		Uptime:    time.Since(startTime).Round(time.Second).String(),
	}, statusCode)
}

// Root serves the API info payload at "/".
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{
		"message": "SmartLinks API",
		"version": "1.0.0",
		"status":  "running",
	}, http.StatusOK)
}

// Ready reports whether the service can accept traffic
//
//	@Summary		Readiness check
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Failure		503	{object}	map[string]string
//	@Router			/ready [get]
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := h.storage.CountActiveLinks(ctx); err != nil {
		writeJSON(w, map[string]string{"status": "not ready"}, http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, map[string]string{"status": "ready"}, http.StatusOK)
}
