package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"smartlinks/internal/analytics"
	"smartlinks/internal/config"
	"smartlinks/internal/repository"
	"smartlinks/internal/service"
	"smartlinks/internal/suggest"

	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// Server wires the HTTP handlers onto a mux. The bare "/{keyword}" redirect
// route is registered last so every API path wins over it.
type Server struct {
	linksHandler     *LinksHandler
	redirectHandler  *RedirectHandler
	analyticsHandler *AnalyticsHandler
	suggestHandler   *SuggestHandler
	devHandler       *DevHandler
	healthHandler    *HealthHandler
	cfg              *config.Config
	log              *zap.Logger
}

func NewServer(
	storage repository.Storage,
	links *service.LinkService,
	smartCreate *service.SmartCreateService,
	aggregator *analytics.Aggregator,
	analyzer suggest.Analyzer,
	cfg *config.Config,
	log *zap.Logger,
) *Server {
	return &Server{
		linksHandler:     NewLinksHandler(links, aggregator, log),
		redirectHandler:  NewRedirectHandler(storage, log),
		analyticsHandler: NewAnalyticsHandler(aggregator, log),
		suggestHandler:   NewSuggestHandler(analyzer, smartCreate, log),
		devHandler:       NewDevHandler(links, log),
		healthHandler:    NewHealthHandler(storage, log),
		cfg:              cfg,
		log:              log,
	}
}

// SetupRoutes builds the route table and wraps it with the middleware chain.
func (s *Server) SetupRoutes() http.Handler {
	mux := http.NewServeMux()

	// Health checks
	mux.HandleFunc("/health", s.healthHandler.Health)
	mux.HandleFunc("/ready", s.healthHandler.Ready)

	// Link CRUD; the trailing-slash route also dispatches per-keyword
	// analytics and smart-create by path suffix
	mux.HandleFunc("/api/links", s.handleLinksCollection)
	mux.HandleFunc("/api/links/", s.handleLinksItem)

	// Analytics
	mux.HandleFunc("/api/analytics/stats", s.analyticsHandler.Stats)
	mux.HandleFunc("/api/analytics/trends", s.analyticsHandler.Trends)
	mux.HandleFunc("/api/analytics/performance", s.analyticsHandler.Performance)
	mux.HandleFunc("/api/analytics/insights", s.analyticsHandler.Insights)

	// URL analysis capability
	mux.HandleFunc("/api/ai/analyze-url", s.suggestHandler.AnalyzeURL)
	mux.HandleFunc("/api/ai/suggest-keywords", s.suggestHandler.SuggestKeywords)
	mux.HandleFunc("/api/ai/test", s.suggestHandler.Test)

	// Development-only surface
	if s.cfg.Debug {
		mux.HandleFunc("/api/dev/sample-links", s.devHandler.SampleLinks)
		mux.Handle("/swagger/", httpSwagger.WrapHandler)
	}

	// Redirects; must be last
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			s.healthHandler.Root(w, r)
			return
		}
		s.redirectHandler.HandleRedirect(w, r)
	})

	var handler http.Handler = mux
	handler = s.withCORS(handler)
	handler = s.withRequestLog(handler)
	if s.cfg.Env == "production" {
		handler = s.withTrustedHosts(handler)
	}
	return handler
}

// handleLinksCollection serves the /api/links collection.
func (s *Server) handleLinksCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.linksHandler.ListLinks(w, r)
	case http.MethodPost:
		s.linksHandler.CreateLink(w, r)
	default:
		writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleLinksItem dispatches /api/links/{keyword} and its sub-resources.
func (s *Server) handleLinksItem(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/links/")

	switch {
	case rest == "smart-create":
		s.suggestHandler.SmartCreate(w, r)
	case rest == "enhanced":
		s.linksHandler.CreateEnhanced(w, r)
	case strings.HasSuffix(rest, "/analytics"):
		keyword := strings.TrimSuffix(rest, "/analytics")
		s.linksHandler.LinkAnalytics(w, r, keyword)
	case rest != "" && !strings.Contains(rest, "/"):
		switch r.Method {
		case http.MethodGet:
			s.linksHandler.GetLink(w, r, rest)
		case http.MethodPut:
			s.linksHandler.UpdateLink(w, r, rest)
		case http.MethodDelete:
			s.linksHandler.DeleteLink(w, r, rest)
		default:
			writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	default:
		http.NotFound(w, r)
	}
}

func writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, message string, statusCode int) {
	writeJSON(w, map[string]string{"error": message}, statusCode)
}
