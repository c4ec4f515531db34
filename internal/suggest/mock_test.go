package suggest

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"smartlinks/internal/config"
	"smartlinks/internal/domain"
	"smartlinks/pkg/webpage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// errTransport fails every request so page fetching always falls back.
type errTransport struct{}

func (errTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, errors.New("no network in tests")
}

func offlineClient() *http.Client {
	return &http.Client{Transport: errTransport{}}
}

func TestAnalyzeURL_KnownDomain(t *testing.T) {
	analyzer := NewMockAnalyzer(offlineClient(), zap.NewNop())

	analysis, err := analyzer.AnalyzeURL(context.Background(), "https://github.com/myorg/myrepo")
	require.NoError(t, err)

	assert.Equal(t, domain.CategoryDevelopment, analysis.Category)
	assert.Equal(t, "GitHub - Code Repository Platform", analysis.Title)
	require.NotEmpty(t, analysis.Keywords)
	assert.Equal(t, "github", analysis.Keywords[0])
}

func TestAnalyzeURL_KnownDomainWithWWW(t *testing.T) {
	analyzer := NewMockAnalyzer(offlineClient(), zap.NewNop())

	analysis, err := analyzer.AnalyzeURL(context.Background(), "https://www.slack.com")
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryCommunication, analysis.Category)
}

func TestAnalyzeURL_UnknownDomainUsesPageContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><head>
			<title>Deploy Tool</title>
			<meta name="description" content="Continuous deployment for our services">
			</head><body>
			<p>Automate code deployment with git based pipelines for software teams.</p>
			</body></html>`))
	}))
	defer srv.Close()

	analyzer := NewMockAnalyzer(srv.Client(), zap.NewNop())

	analysis, err := analyzer.AnalyzeURL(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Equal(t, "Deploy Tool", analysis.Title)
	assert.Equal(t, "Continuous deployment for our services", analysis.Description)
	assert.Equal(t, domain.CategoryDevelopment, analysis.Category)
	assert.GreaterOrEqual(t, len(analysis.Keywords), 3)
	assert.LessOrEqual(t, len(analysis.Keywords), 5)
	assert.Equal(t, "webpage", analysis.ContentType)
}

func TestAnalyzeURL_UnreachablePageFallsBack(t *testing.T) {
	analyzer := NewMockAnalyzer(offlineClient(), zap.NewNop())

	analysis, err := analyzer.AnalyzeURL(context.Background(), "https://intranet.example.com")
	require.NoError(t, err)

	assert.NotEmpty(t, analysis.Title)
	assert.NotEmpty(t, analysis.Description)
	assert.GreaterOrEqual(t, len(analysis.Keywords), 3)
	assert.Equal(t, "external", analysis.ContentType)
}

func TestGenerateKeywords_PaddingSkipsCollidingVariant(t *testing.T) {
	analyzer := NewMockAnalyzer(offlineClient(), zap.NewNop())

	// The title already contains the first numeric variant of the host base,
	// so padding has to move on to the next one instead of retrying it.
	keywords := analyzer.generateKeywords("go.example.com", "go2", &webpage.Content{})

	assert.GreaterOrEqual(t, len(keywords), 3)
	assert.Contains(t, keywords, "go")
	assert.Contains(t, keywords, "go2")
	assert.Contains(t, keywords, "go3")
}

func TestSuggestKeywords_FromText(t *testing.T) {
	analyzer := NewMockAnalyzer(offlineClient(), zap.NewNop())

	keywords, err := analyzer.SuggestKeywords(context.Background(), "team wiki handbook", nil)
	require.NoError(t, err)

	assert.Len(t, keywords, 5)
	assert.Contains(t, keywords, "team")
	assert.Contains(t, keywords, "wiki")
	assert.Contains(t, keywords, "handbook")
}

func TestSuggestKeywords_SkipsExistingAndStopwords(t *testing.T) {
	analyzer := NewMockAnalyzer(offlineClient(), zap.NewNop())

	keywords, err := analyzer.SuggestKeywords(context.Background(), "the docs and wiki", []string{"docs"})
	require.NoError(t, err)

	require.NotEmpty(t, keywords)
	assert.Equal(t, "wiki", keywords[0])
	assert.NotContains(t, keywords, "docs")
	assert.NotContains(t, keywords, "the")
	assert.NotContains(t, keywords, "and")
}

func TestSuggestKeywords_EmptyTextStillSuggests(t *testing.T) {
	analyzer := NewMockAnalyzer(offlineClient(), zap.NewNop())

	keywords, err := analyzer.SuggestKeywords(context.Background(), "", nil)
	require.NoError(t, err)
	assert.NotEmpty(t, keywords)
}

func TestPing(t *testing.T) {
	analyzer := NewMockAnalyzer(offlineClient(), zap.NewNop())
	assert.NoError(t, analyzer.Ping(context.Background()))
}

func TestNormalizeCategory(t *testing.T) {
	assert.Equal(t, domain.CategoryFinance, normalizeCategory("Finance"))
	assert.Equal(t, domain.CategoryGeneral, normalizeCategory("Gaming"))
	assert.Equal(t, domain.CategoryGeneral, normalizeCategory(""))
	assert.Equal(t, domain.CategoryHR, normalizeCategory(" HR "))
}

func TestStripFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripFences(`{"a":1}`))
}

func testSuggestConfig(mode string) *config.Suggest {
	return &config.Suggest{Mode: mode, Model: "gpt-4o-mini", Timeout: time.Second}
}

func TestNew_SelectsAnalyzer(t *testing.T) {
	cfg := testSuggestConfig("mock")
	_, ok := New(cfg, zap.NewNop()).(*MockAnalyzer)
	assert.True(t, ok)

	cfg = testSuggestConfig("openai")
	_, ok = New(cfg, zap.NewNop()).(*OpenAIAnalyzer)
	assert.True(t, ok)

	// unknown modes fall back to the mock
	cfg = testSuggestConfig("something-else")
	_, ok = New(cfg, zap.NewNop()).(*MockAnalyzer)
	assert.True(t, ok)
}
