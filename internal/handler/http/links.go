package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"smartlinks/internal/analytics"
	"smartlinks/internal/repository"
	"smartlinks/internal/service"

	"go.uber.org/zap"
)

// LinksHandler serves link CRUD and per-link analytics.
type LinksHandler struct {
	links      *service.LinkService
	aggregator *analytics.Aggregator
	log        *zap.Logger
}

func NewLinksHandler(links *service.LinkService, aggregator *analytics.Aggregator, log *zap.Logger) *LinksHandler {
	return &LinksHandler{
		links:      links,
		aggregator: aggregator,
		log:        log,
	}
}

// CreateLinkRequest is the body of a link creation request.
type CreateLinkRequest struct {
	Keyword     string  `json:"keyword"`
	URL         string  `json:"url"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Category    string  `json:"category,omitempty"`
	UseAI       bool    `json:"use_ai,omitempty"`
}

// ListLinksResponse wraps the link listing.
type ListLinksResponse struct {
	Links []*service.LinkInfo `json:"links"`
	Total int                 `json:"total"`
}

// CreateLink creates a new go-link
//
//	@Summary		Create a go-link
//	@Description	Create a new keyword to URL mapping
//	@Tags			Links
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateLinkRequest	true	"Link creation request"
//	@Success		201		{object}	service.LinkInfo	"Link created"
//	@Failure		400		{object}	map[string]string	"Invalid keyword or URL"
//	@Failure		409		{object}	map[string]string	"Keyword already taken"
//	@Router			/api/links [post]
func (h *LinksHandler) CreateLink(w http.ResponseWriter, r *http.Request) {
	in, ok := h.decodeCreate(w, r)
	if !ok {
		return
	}

	info, err := h.links.Create(r.Context(), in)
	if err != nil {
		h.writeServiceError(w, err, "failed to create link")
		return
	}

	h.log.Info("link created",
		zap.String("keyword", info.Keyword),
		zap.String("url", info.URL),
		zap.String("created_by", info.CreatedBy))
	writeJSON(w, info, http.StatusCreated)
}

// CreateEnhanced creates a go-link with optional AI-filled metadata
//
//	@Summary		Create a go-link with analysis
//	@Description	Create a link, filling missing title/description/category from URL analysis when use_ai is set
//	@Tags			Links
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateLinkRequest	true	"Link creation request"
//	@Success		201		{object}	service.LinkInfo	"Link created"
//	@Failure		400		{object}	map[string]string	"Invalid keyword or URL"
//	@Failure		409		{object}	map[string]string	"Keyword already taken"
//	@Router			/api/links/enhanced [post]
func (h *LinksHandler) CreateEnhanced(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req CreateLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	info, err := h.links.CreateEnhanced(r.Context(), service.CreateInput{
		Keyword:     req.Keyword,
		URL:         req.URL,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		CreatedBy:   extractIPAddress(r),
	}, req.UseAI)
	if err != nil {
		h.writeServiceError(w, err, "failed to create enhanced link")
		return
	}

	h.log.Info("link created",
		zap.String("keyword", info.Keyword),
		zap.Bool("enhanced", req.UseAI))
	writeJSON(w, info, http.StatusCreated)
}

// ListLinks lists active links
//
//	@Summary		List go-links
//	@Description	List active links with derived click counts, optionally filtered
//	@Tags			Links
//	@Produce		json
//	@Param			category	query		string	false	"Filter by category"
//	@Param			search		query		string	false	"Substring match on keyword, title, description"
//	@Param			limit		query		int		false	"Maximum number of results"
//	@Success		200			{object}	ListLinksResponse
//	@Router			/api/links [get]
func (h *LinksHandler) ListLinks(w http.ResponseWriter, r *http.Request) {
	filter := repository.ListFilter{
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("search"),
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			writeError(w, "Invalid limit parameter", http.StatusBadRequest)
			return
		}
		filter.Limit = limit
	}

	infos, err := h.links.List(r.Context(), filter)
	if err != nil {
		h.writeServiceError(w, err, "failed to list links")
		return
	}

	writeJSON(w, ListLinksResponse{Links: infos, Total: len(infos)}, http.StatusOK)
}

// GetLink returns one active link with its click count.
func (h *LinksHandler) GetLink(w http.ResponseWriter, r *http.Request, keyword string) {
	info, err := h.links.Get(r.Context(), keyword)
	if err != nil {
		h.writeServiceError(w, err, "failed to get link")
		return
	}
	writeJSON(w, info, http.StatusOK)
}

// UpdateLinkRequest is the body of a partial link update. Absent fields are
// left untouched; the keyword itself is immutable.
type UpdateLinkRequest struct {
	URL         *string `json:"url,omitempty"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`
}

// UpdateLink partially updates a go-link
//
//	@Summary		Update a go-link
//	@Description	Partial update of url, title, description, category
//	@Tags			Links
//	@Accept			json
//	@Produce		json
//	@Param			keyword	path		string				true	"Link keyword"
//	@Param			request	body		UpdateLinkRequest	true	"Fields to update"
//	@Success		200		{object}	service.LinkInfo
//	@Failure		404		{object}	map[string]string	"Link not found"
//	@Router			/api/links/{keyword} [put]
func (h *LinksHandler) UpdateLink(w http.ResponseWriter, r *http.Request, keyword string) {
	var req UpdateLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	info, err := h.links.Update(r.Context(), keyword, repository.LinkUpdate{
		URL:         req.URL,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
	})
	if err != nil {
		h.writeServiceError(w, err, "failed to update link")
		return
	}

	h.log.Info("link updated", zap.String("keyword", keyword))
	writeJSON(w, info, http.StatusOK)
}

// DeleteLink soft-deletes a go-link
//
//	@Summary		Delete a go-link
//	@Description	Deactivate a link; its keyword stays reserved and history persists
//	@Tags			Links
//	@Produce		json
//	@Param			keyword	path		string	true	"Link keyword"
//	@Success		200		{object}	map[string]string
//	@Failure		404		{object}	map[string]string	"Link not found"
//	@Router			/api/links/{keyword} [delete]
func (h *LinksHandler) DeleteLink(w http.ResponseWriter, r *http.Request, keyword string) {
	if err := h.links.Delete(r.Context(), keyword); err != nil {
		h.writeServiceError(w, err, "failed to delete link")
		return
	}

	h.log.Info("link deleted", zap.String("keyword", keyword))
	writeJSON(w, map[string]string{"message": "Link '" + keyword + "' deleted"}, http.StatusOK)
}

// LinkAnalytics returns per-link click analytics
//
//	@Summary		Per-link analytics
//	@Description	All-time click count, 30-day daily histogram and device breakdown for one link
//	@Tags			Analytics
//	@Produce		json
//	@Param			keyword	path		string	true	"Link keyword"
//	@Success		200		{object}	analytics.LinkAnalytics
//	@Failure		404		{object}	map[string]string	"Link not found"
//	@Router			/api/links/{keyword}/analytics [get]
func (h *LinksHandler) LinkAnalytics(w http.ResponseWriter, r *http.Request, keyword string) {
	if r.Method != http.MethodGet {
		writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	payload, err := h.aggregator.GetLinkAnalytics(r.Context(), keyword)
	if err != nil {
		h.writeServiceError(w, err, "failed to get link analytics")
		return
	}
	writeJSON(w, payload, http.StatusOK)
}

func (h *LinksHandler) decodeCreate(w http.ResponseWriter, r *http.Request) (service.CreateInput, bool) {
	var req CreateLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Debug("invalid create link request", zap.Error(err))
		writeError(w, "Invalid request format", http.StatusBadRequest)
		return service.CreateInput{}, false
	}

	return service.CreateInput{
		Keyword:     req.Keyword,
		URL:         req.URL,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		CreatedBy:   extractIPAddress(r),
	}, true
}

// writeServiceError maps service and storage errors onto HTTP statuses.
func (h *LinksHandler) writeServiceError(w http.ResponseWriter, err error, logMsg string) {
	switch {
	case errors.Is(err, repository.ErrKeywordNotFound):
		writeError(w, "Link not found", http.StatusNotFound)
	case errors.Is(err, repository.ErrKeywordExists):
		writeError(w, "Keyword already exists", http.StatusConflict)
	case errors.Is(err, service.ErrInvalidKeyword),
		errors.Is(err, service.ErrInvalidURL),
		errors.Is(err, service.ErrInvalidCategory):
		writeError(w, err.Error(), http.StatusBadRequest)
	default:
		h.log.Error(logMsg, zap.Error(err))
		writeError(w, "Internal server error", http.StatusInternalServerError)
	}
}
