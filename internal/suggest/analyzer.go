package suggest

import (
	"context"
	"net/http"
	"strings"

	"smartlinks/internal/config"
	"smartlinks/internal/domain"

	"go.uber.org/zap"
)

// Analysis is the suggestion capability's verdict on a URL: proposed display
// metadata, a category from the fixed set, and candidate go-link keywords in
// preference order.
type Analysis struct {
	Title                string   `json:"title"`
	Description          string   `json:"description"`
	Category             string   `json:"category"`
	Keywords             []string `json:"keywords"`
	ContentType          string   `json:"content_type"`
	ExtractedTitle       string   `json:"extracted_title,omitempty"`
	ExtractedDescription string   `json:"extracted_description,omitempty"`
}

// Analyzer produces link metadata suggestions. Implementations are selected
// at startup by configuration and injected; callers never branch on the mode.
type Analyzer interface {
	// AnalyzeURL inspects a URL and returns metadata suggestions. An error
	// means the analysis failed outright; there is no partial result.
	AnalyzeURL(ctx context.Context, url string) (*Analysis, error)
	// SuggestKeywords proposes keywords for free text, avoiding existing ones.
	SuggestKeywords(ctx context.Context, text string, existing []string) ([]string, error)
	// Ping verifies the capability is reachable.
	Ping(ctx context.Context) error
}

// New builds the analyzer selected by cfg.Mode. Unknown modes fall back to
// the mock analyzer so a misconfigured deployment still serves suggestions.
func New(cfg *config.Suggest, log *zap.Logger) Analyzer {
	httpClient := &http.Client{Timeout: cfg.Timeout}

	switch cfg.Mode {
	case "openai":
		return NewOpenAIAnalyzer(cfg.APIKey, cfg.Model, httpClient, log)
	case "mock":
		return NewMockAnalyzer(httpClient, log)
	default:
		log.Warn("unknown suggest mode, using mock analyzer", zap.String("mode", cfg.Mode))
		return NewMockAnalyzer(httpClient, log)
	}
}

// normalizeCategory clamps a suggested category to the fixed set.
func normalizeCategory(category string) string {
	category = strings.TrimSpace(category)
	if domain.ValidCategory(category) {
		return category
	}
	return domain.CategoryGeneral
}
