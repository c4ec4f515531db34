package http

import (
	"errors"
	"net"
	"net/http"
	"strings"

	"smartlinks/internal/repository"

	"go.uber.org/zap"
)

// RedirectHandler resolves "/{keyword}" to the target URL. The click row is
// written in the same transaction as the lookup; a failed write fails the
// redirect.
type RedirectHandler struct {
	storage repository.Storage
	log     *zap.Logger
}

func NewRedirectHandler(storage repository.Storage, log *zap.Logger) *RedirectHandler {
	return &RedirectHandler{
		storage: storage,
		log:     log,
	}
}

// HandleRedirect resolves a keyword and responds with 302
//
//	@Summary		Follow a go-link
//	@Description	Resolve a keyword to its target URL, recording a click
//	@Tags			Redirect
//	@Param			keyword	path	string	true	"Link keyword"
//	@Success		302		"Redirect to target URL"
//	@Failure		404		"Keyword not found or inactive"
//	@Router			/{keyword} [get]
func (h *RedirectHandler) HandleRedirect(w http.ResponseWriter, r *http.Request) {
	keyword := strings.TrimPrefix(r.URL.Path, "/")
	keyword = strings.TrimPrefix(keyword, "go/")

	if keyword == "" || isSystemPath(r.URL.Path) || strings.Contains(keyword, "/") {
		http.NotFound(w, r)
		return
	}

	meta := repository.ClickMeta{
		IPAddress: extractIPAddress(r),
		UserAgent: r.UserAgent(),
		Referrer:  r.Referer(),
	}

	link, err := h.storage.ResolveAndRecordClick(r.Context(), keyword, meta)
	if err != nil {
		if errors.Is(err, repository.ErrKeywordNotFound) {
			h.log.Debug("keyword not found", zap.String("keyword", keyword))
			http.NotFound(w, r)
			return
		}
		h.log.Error("failed to process redirect", zap.String("keyword", keyword), zap.Error(err))
		writeError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.log.Info("redirect",
		zap.String("keyword", keyword),
		zap.String("url", link.URL),
		zap.String("ip", meta.IPAddress))

	http.Redirect(w, r, link.URL, http.StatusFound)
}

// isSystemPath reports whether the path belongs to the API surface rather
// than the redirect namespace.
func isSystemPath(path string) bool {
	systemPaths := []string{
		"/api/",
		"/health",
		"/ready",
		"/swagger/",
	}

	for _, systemPath := range systemPaths {
		if strings.HasPrefix(path, systemPath) {
			return true
		}
	}
	return false
}

// extractIPAddress pulls the client IP, honoring proxy headers in priority
// order before falling back to the socket address.
func extractIPAddress(r *http.Request) string {
	if ip := r.Header.Get("X-Forwarded-For"); ip != "" {
		// X-Forwarded-For may hold a comma separated chain
		parts := strings.Split(ip, ",")
		return strings.TrimSpace(parts[0])
	}

	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return strings.TrimSpace(ip)
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
