package http

import (
	"errors"
	"net/http"

	"smartlinks/internal/repository"
	"smartlinks/internal/service"

	"go.uber.org/zap"
)

// DevHandler serves development-only helpers. It is registered only when the
// debug flag is set.
type DevHandler struct {
	links *service.LinkService
	log   *zap.Logger
}

func NewDevHandler(links *service.LinkService, log *zap.Logger) *DevHandler {
	return &DevHandler{
		links: links,
		log:   log,
	}
}

// SampleLinks creates a handful of sample links for manual testing. Keywords
// that already exist are skipped.
func (h *DevHandler) SampleLinks(w http.ResponseWriter, r *http.Request) {
	samples := []service.CreateInput{
		{
			Keyword:     "meet",
			URL:         "https://meet.google.com",
			Title:       strPtr("Google Meet"),
			Description: strPtr("Video conferencing"),
			Category:    "Communication",
			CreatedBy:   "dev",
		},
		{
			Keyword:     "drive",
			URL:         "https://drive.google.com",
			Title:       strPtr("Google Drive"),
			Description: strPtr("Cloud storage"),
			Category:    "Productivity",
			CreatedBy:   "dev",
		},
		{
			Keyword:     "calendar",
			URL:         "https://calendar.google.com",
			Title:       strPtr("Google Calendar"),
			Description: strPtr("Calendar and scheduling"),
			Category:    "Productivity",
			CreatedBy:   "dev",
		},
	}

	created := make([]string, 0, len(samples))
	for _, sample := range samples {
		if _, err := h.links.Create(r.Context(), sample); err != nil {
			if errors.Is(err, repository.ErrKeywordExists) {
				continue
			}
			h.log.Error("failed to create sample link", zap.String("keyword", sample.Keyword), zap.Error(err))
			writeError(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		created = append(created, sample.Keyword)
	}

	writeJSON(w, map[string]interface{}{
		"message": "sample links created",
		"created": created,
	}, http.StatusOK)
}

func strPtr(s string) *string {
	return &s
}
