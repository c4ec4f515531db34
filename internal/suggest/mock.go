package suggest

import (
	"context"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"smartlinks/internal/domain"
	"smartlinks/pkg/webpage"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MockAnalyzer produces deterministic suggestions without any AI backend:
// a lookup table for well-known domains plus keyword-scoring heuristics for
// everything else. Page content is still fetched for real so titles and
// descriptions reflect the actual page where possible.
type MockAnalyzer struct {
	httpClient *http.Client
	log        *zap.Logger
}

func NewMockAnalyzer(httpClient *http.Client, log *zap.Logger) *MockAnalyzer {
	return &MockAnalyzer{httpClient: httpClient, log: log}
}

// knownDomains maps common tool domains to canned analyses.
var knownDomains = map[string]Analysis{
	"github.com": {
		Title:       "GitHub - Code Repository Platform",
		Description: "Platform for version control and collaborative software development",
		Category:    domain.CategoryDevelopment,
		Keywords:    []string{"github", "code", "repo", "git", "dev-tools"},
	},
	"docs.google.com": {
		Title:       "Google Docs - Document Collaboration",
		Description: "Create and edit documents online with real-time collaboration",
		Category:    domain.CategoryProductivity,
		Keywords:    []string{"docs", "google-docs", "document", "collaborate", "write"},
	},
	"drive.google.com": {
		Title:       "Google Drive - Cloud Storage",
		Description: "Store, sync, and share files across all your devices",
		Category:    domain.CategoryProductivity,
		Keywords:    []string{"drive", "storage", "files", "cloud", "sync"},
	},
	"slack.com": {
		Title:       "Slack - Team Communication",
		Description: "Messaging platform for teams and workplace collaboration",
		Category:    domain.CategoryCommunication,
		Keywords:    []string{"slack", "chat", "team", "message", "communicate"},
	},
	"zoom.us": {
		Title:       "Zoom - Video Conferencing",
		Description: "Video meetings and webinars for remote collaboration",
		Category:    domain.CategoryCommunication,
		Keywords:    []string{"zoom", "video", "meeting", "call", "conference"},
	},
	"notion.so": {
		Title:       "Notion - All-in-One Workspace",
		Description: "Notes, docs, tasks, and databases in one collaborative workspace",
		Category:    domain.CategoryProductivity,
		Keywords:    []string{"notion", "notes", "workspace", "organize", "docs"},
	},
	"figma.com": {
		Title:       "Figma - Design Platform",
		Description: "Collaborative interface design and prototyping tool",
		Category:    domain.CategoryDevelopment,
		Keywords:    []string{"figma", "design", "ui", "prototype", "collaborate"},
	},
	"calendar.google.com": {
		Title:       "Google Calendar - Schedule Management",
		Description: "Organize your schedule and share events with others",
		Category:    domain.CategoryProductivity,
		Keywords:    []string{"calendar", "schedule", "meeting", "event", "plan"},
	},
	"trello.com": {
		Title:       "Trello - Project Management",
		Description: "Organize projects with boards, lists, and cards",
		Category:    domain.CategoryProductivity,
		Keywords:    []string{"trello", "project", "board", "organize", "task"},
	},
	"linkedin.com": {
		Title:       "LinkedIn - Professional Network",
		Description: "Professional networking and career development platform",
		Category:    domain.CategoryHR,
		Keywords:    []string{"linkedin", "network", "career", "professional", "jobs"},
	},
}

// categoryKeywords scores page text against each category for unknown domains.
var categoryKeywords = map[string][]string{
	domain.CategoryDevelopment:   {"code", "dev", "git", "api", "programming", "software", "tech"},
	domain.CategoryProductivity:  {"doc", "file", "note", "organize", "plan", "manage", "tool"},
	domain.CategoryCommunication: {"chat", "message", "mail", "talk", "meet", "call", "social"},
	domain.CategoryHR:            {"hire", "job", "career", "employee", "work", "recruit", "people"},
	domain.CategoryMarketing:     {"market", "campaign", "brand", "promo", "ads", "analytics", "social"},
	domain.CategoryFinance:       {"money", "pay", "bank", "finance", "budget", "invoice", "expense"},
}

var stopwords = map[string]bool{
	"the": true, "and": true, "or": true, "but": true, "in": true, "on": true,
	"at": true, "to": true, "for": true, "of": true, "with": true, "by": true,
	"a": true, "an": true, "is": true, "are": true, "was": true, "were": true,
	"be": true, "been": true, "have": true, "has": true, "had": true, "do": true,
	"does": true, "did": true, "will": true, "would": true, "could": true,
	"should": true, "may": true, "might": true, "can": true, "this": true,
	"that": true, "these": true, "those": true,
}

var wordRe = regexp.MustCompile(`\b\w+\b`)

func (m *MockAnalyzer) AnalyzeURL(ctx context.Context, url string) (*Analysis, error) {
	content := webpage.Fetch(ctx, m.httpClient, url)
	host := webpage.Domain(url)

	if canned, ok := knownDomains[host]; ok {
		analysis := canned
		// Prefer the page's own metadata when it says more than the canned one.
		if len(content.Title) > len(analysis.Title) {
			analysis.Title = content.Title
		}
		if len(content.Description) > len(analysis.Description) {
			analysis.Description = content.Description
		}
		analysis.ContentType = content.ContentType
		analysis.ExtractedTitle = content.Title
		analysis.ExtractedDescription = content.Description
		return &analysis, nil
	}

	title := content.Title
	if title == "" {
		title = titleFromDomain(host)
	}
	description := content.Description
	if description == "" {
		description = descriptionFromContent(content, host)
	}

	analysis := &Analysis{
		Title:                clip(title, 60),
		Description:          clip(description, 150),
		Category:             m.predictCategory(url, content),
		Keywords:             m.generateKeywords(host, title, content),
		ContentType:          content.ContentType,
		ExtractedTitle:       content.Title,
		ExtractedDescription: content.Description,
	}

	m.log.Debug("mock analysis complete",
		zap.String("url", url),
		zap.String("category", analysis.Category),
		zap.Strings("keywords", analysis.Keywords))
	return analysis, nil
}

// SuggestKeywords extracts candidate keywords from free text, skipping
// stopwords and anything already taken.
func (m *MockAnalyzer) SuggestKeywords(_ context.Context, text string, existing []string) ([]string, error) {
	taken := make(map[string]bool, len(existing))
	for _, k := range existing {
		taken[k] = true
	}

	var keywords []string
	seen := make(map[string]bool)
	for _, word := range wordRe.FindAllString(strings.ToLower(text), -1) {
		if len(word) < 2 || len(word) > 15 || stopwords[word] || taken[word] || seen[word] || !isAlpha(word) {
			continue
		}
		keywords = append(keywords, word)
		seen[word] = true
		if len(keywords) >= 5 {
			break
		}
	}

	// Pad with numeric variants when the text gave us too few.
	if len(keywords) < 5 {
		bases := keywords
		if len(bases) > 2 {
			bases = bases[:2]
		}
		if len(bases) == 0 {
			bases = []string{"link"}
		}
	pad:
		for _, base := range bases {
			for i := 2; i < 10; i++ {
				variant := base + strconv.Itoa(i)
				if !taken[variant] && !seen[variant] {
					keywords = append(keywords, variant)
					seen[variant] = true
					if len(keywords) >= 5 {
						break pad
					}
				}
			}
		}
	}

	return keywords, nil
}

// Ping always succeeds; there is no backend to reach.
func (m *MockAnalyzer) Ping(context.Context) error {
	return nil
}

func (m *MockAnalyzer) predictCategory(url string, content *webpage.Content) string {
	text := strings.ToLower(url + " " + content.Title + " " + content.Description + " " + content.Body)

	bestCategory := domain.CategoryGeneral
	bestScore := 0
	for _, category := range domain.Categories {
		score := 0
		for _, keyword := range categoryKeywords[category] {
			score += strings.Count(text, keyword)
		}
		if score > bestScore {
			bestCategory, bestScore = category, score
		}
	}
	return bestCategory
}

func (m *MockAnalyzer) generateKeywords(host, title string, content *webpage.Content) []string {
	var keywords []string
	seen := make(map[string]bool)

	add := func(word string) bool {
		if word == "" || seen[word] {
			return false
		}
		keywords = append(keywords, word)
		seen[word] = true
		return len(keywords) >= 5
	}

	base := strings.ToLower(strings.SplitN(host, ".", 2)[0])
	if len(base) >= 2 {
		add(base)
	}

	for _, word := range wordRe.FindAllString(strings.ToLower(title), -1) {
		if len(word) >= 2 && len(word) <= 12 {
			if add(word) {
				return keywords
			}
		}
	}

	for _, word := range wordRe.FindAllString(strings.ToLower(content.Body), -1) {
		if len(word) >= 2 && len(word) <= 12 && !stopwords[word] && isAlpha(word) {
			if add(word) {
				return keywords
			}
		}
	}

	// Always propose at least three candidates. The variant counter advances
	// on its own so a collision with an already harvested word cannot stall
	// the padding.
	pad := base
	if pad == "" {
		pad = "link"
	}
	for i := 2; len(keywords) < 3 && i < 10; i++ {
		add(pad + strconv.Itoa(i))
	}

	return keywords
}

func titleFromDomain(host string) string {
	base := strings.SplitN(host, ".", 2)[0]
	base = strings.NewReplacer("-", " ", "_", " ").Replace(base)
	title := cases.Title(language.English).String(base)

	switch {
	case strings.Contains(host, "app"):
		title += " - Web Application"
	case strings.Contains(host, "docs"):
		title += " - Documentation"
	case strings.Contains(host, "api"):
		title += " - API Service"
	case strings.Contains(host, "blog"):
		title += " - Blog"
	default:
		title += " - Website"
	}
	return title
}

func descriptionFromContent(content *webpage.Content, host string) string {
	body := content.Body
	if len(body) > 50 {
		firstSentence, _, _ := strings.Cut(body, ".")
		if len(firstSentence) < 150 {
			return strings.TrimSpace(firstSentence) + "."
		}
		return strings.TrimSpace(body[:100]) + "..."
	}
	return "Web resource hosted on " + host
}

func clip(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}

func isAlpha(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
