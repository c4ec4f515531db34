package http

import (
	"net/http"
	"strconv"

	"smartlinks/internal/analytics"

	"go.uber.org/zap"
)

// AnalyticsHandler serves the read-only aggregate endpoints.
type AnalyticsHandler struct {
	aggregator *analytics.Aggregator
	log        *zap.Logger
}

func NewAnalyticsHandler(aggregator *analytics.Aggregator, log *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		aggregator: aggregator,
		log:        log,
	}
}

// Stats returns the dashboard overview
//
//	@Summary		Analytics overview
//	@Description	Totals, top links over 30 days, recent clicks and category breakdown
//	@Tags			Analytics
//	@Produce		json
//	@Success		200	{object}	analytics.Overview
//	@Router			/api/analytics/stats [get]
func (h *AnalyticsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	overview, err := h.aggregator.GetOverview(r.Context())
	if err != nil {
		h.log.Error("failed to build overview", zap.Error(err))
		writeError(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, overview, http.StatusOK)
}

// Trends returns daily and hourly click trends
//
//	@Summary		Click trends
//	@Description	Daily click counts over a trailing window plus today's hourly breakdown
//	@Tags			Analytics
//	@Produce		json
//	@Param			days	query		int	false	"Window size in days (default 30)"
//	@Success		200		{object}	analytics.Trends
//	@Router			/api/analytics/trends [get]
func (h *AnalyticsHandler) Trends(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	days := 0
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeError(w, "Invalid days parameter", http.StatusBadRequest)
			return
		}
		days = parsed
	}

	trends, err := h.aggregator.GetTrends(r.Context(), days)
	if err != nil {
		h.log.Error("failed to build trends", zap.Error(err))
		writeError(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, trends, http.StatusOK)
}

// Performance returns weekly comparison and category rollup
//
//	@Summary		Performance comparison
//	@Description	Top links for this week vs last week and per-category click rollup
//	@Tags			Analytics
//	@Produce		json
//	@Success		200	{object}	analytics.Performance
//	@Router			/api/analytics/performance [get]
func (h *AnalyticsHandler) Performance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	perf, err := h.aggregator.GetPerformance(r.Context())
	if err != nil {
		h.log.Error("failed to build performance", zap.Error(err))
		writeError(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, perf, http.StatusOK)
}

// Insights returns derived usage observations
//
//	@Summary		Usage insights
//	@Description	Heuristic observations about link engagement and usage patterns
//	@Tags			Analytics
//	@Produce		json
//	@Success		200	{object}	analytics.Insights
//	@Router			/api/analytics/insights [get]
func (h *AnalyticsHandler) Insights(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	insights, err := h.aggregator.GetInsights(r.Context())
	if err != nil {
		h.log.Error("failed to build insights", zap.Error(err))
		writeError(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, insights, http.StatusOK)
}
