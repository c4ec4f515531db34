package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"smartlinks/internal/service"
	"smartlinks/internal/suggest"

	"go.uber.org/zap"
)

// SuggestHandler serves the URL analysis endpoints and smart-create.
type SuggestHandler struct {
	analyzer    suggest.Analyzer
	smartCreate *service.SmartCreateService
	log         *zap.Logger
}

func NewSuggestHandler(analyzer suggest.Analyzer, smartCreate *service.SmartCreateService, log *zap.Logger) *SuggestHandler {
	return &SuggestHandler{
		analyzer:    analyzer,
		smartCreate: smartCreate,
		log:         log,
	}
}

// AnalyzeURLRequest is the body of an analysis request.
type AnalyzeURLRequest struct {
	URL string `json:"url"`
}

// AnalyzeURL analyzes a URL for metadata suggestions
//
//	@Summary		Analyze a URL
//	@Description	Produce title, description, category and keyword suggestions for a URL
//	@Tags			AI
//	@Accept			json
//	@Produce		json
//	@Param			request	body		AnalyzeURLRequest	true	"URL to analyze"
//	@Success		200		{object}	suggest.Analysis
//	@Failure		400		{object}	map[string]string	"URL missing"
//	@Failure		500		{object}	map[string]string	"Analysis failed"
//	@Router			/api/ai/analyze-url [post]
func (h *SuggestHandler) AnalyzeURL(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req AnalyzeURLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.URL == "" {
		writeError(w, "URL is required", http.StatusBadRequest)
		return
	}

	analysis, err := h.analyzer.AnalyzeURL(r.Context(), req.URL)
	if err != nil {
		h.log.Error("url analysis failed", zap.String("url", req.URL), zap.Error(err))
		writeError(w, "URL analysis failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, analysis, http.StatusOK)
}

// SuggestKeywordsRequest is the body of a keyword suggestion request.
type SuggestKeywordsRequest struct {
	Text     string   `json:"text"`
	Existing []string `json:"existing,omitempty"`
}

// SuggestKeywordsResponse wraps the suggested keywords.
type SuggestKeywordsResponse struct {
	Keywords []string `json:"keywords"`
}

// SuggestKeywords proposes keywords for free text
//
//	@Summary		Suggest keywords
//	@Description	Generate candidate go-link keywords for a text, avoiding existing ones
//	@Tags			AI
//	@Accept			json
//	@Produce		json
//	@Param			request	body		SuggestKeywordsRequest	true	"Text to generate keywords for"
//	@Success		200		{object}	SuggestKeywordsResponse
//	@Failure		400		{object}	map[string]string	"Text missing"
//	@Router			/api/ai/suggest-keywords [post]
func (h *SuggestHandler) SuggestKeywords(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req SuggestKeywordsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == "" {
		writeError(w, "Text is required", http.StatusBadRequest)
		return
	}

	keywords, err := h.analyzer.SuggestKeywords(r.Context(), req.Text, req.Existing)
	if err != nil {
		h.log.Error("keyword suggestion failed", zap.Error(err))
		writeError(w, "Keyword suggestion failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, SuggestKeywordsResponse{Keywords: keywords}, http.StatusOK)
}

// Test checks the analysis capability
//
//	@Summary		Analysis capability check
//	@Description	Verify the configured analyzer is reachable
//	@Tags			AI
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Failure		503	{object}	map[string]string	"Analyzer unreachable"
//	@Router			/api/ai/test [get]
func (h *SuggestHandler) Test(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := h.analyzer.Ping(ctx); err != nil {
		h.log.Error("analyzer ping failed", zap.Error(err))
		writeJSON(w, map[string]string{"status": "error", "message": err.Error()}, http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, map[string]string{"status": "ok", "message": "AI connection successful"}, http.StatusOK)
}

// SmartCreateRequest is the body of a smart-create request.
type SmartCreateRequest struct {
	URL string `json:"url"`
}

// SmartCreate proposes a link for a URL
//
//	@Summary		Propose a go-link
//	@Description	Analyze a URL and suggest an available keyword; nothing is persisted
//	@Tags			AI
//	@Accept			json
//	@Produce		json
//	@Param			request	body		SmartCreateRequest	true	"URL to propose a link for"
//	@Success		200		{object}	service.Proposal
//	@Failure		400		{object}	map[string]string	"URL missing"
//	@Failure		500		{object}	map[string]string	"Analysis failed"
//	@Router			/api/links/smart-create [post]
func (h *SuggestHandler) SmartCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req SmartCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.URL == "" {
		writeError(w, "URL is required", http.StatusBadRequest)
		return
	}

	proposal, err := h.smartCreate.ProposeLink(r.Context(), req.URL)
	if err != nil {
		if errors.Is(err, service.ErrAnalysisFailed) {
			writeError(w, "URL analysis failed", http.StatusInternalServerError)
			return
		}
		h.log.Error("smart-create failed", zap.String("url", req.URL), zap.Error(err))
		writeError(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, proposal, http.StatusOK)
}
