package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "smartlinks/docs"
	"smartlinks/internal/analytics"
	"smartlinks/internal/config"
	"smartlinks/internal/repository/memory"
	"smartlinks/internal/service"
	"smartlinks/internal/suggest"
	"smartlinks/pkg/useragent"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type errTransport struct{}

func (errTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, errors.New("no network in tests")
}

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	log := zap.NewNop()
	storage := memory.New()
	analyzer := suggest.NewMockAnalyzer(&http.Client{Transport: errTransport{}}, log)
	parser, err := useragent.New("", log)
	require.NoError(t, err)

	linkService := service.NewLink(storage, analyzer, log)
	smartCreate := service.NewSmartCreate(storage, analyzer, log)
	aggregator := analytics.NewAggregator(storage, parser, log)

	cfg := &config.Config{
		Env:   "local",
		Debug: true,
		CORS:  config.CORS{AllowedOrigins: []string{"*"}},
	}

	server := NewServer(storage, linkService, smartCreate, aggregator, analyzer, cfg, log)
	return server.SetupRoutes()
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestLinkLifecycleScenario(t *testing.T) {
	handler := newTestServer(t)

	// create
	rec := doJSON(t, handler, http.MethodPost, "/api/links", map[string]interface{}{
		"keyword": "eng",
		"url":     "https://eng.example.com",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		Keyword    string `json:"keyword"`
		ClickCount int64  `json:"click_count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "eng", created.Keyword)
	assert.Zero(t, created.ClickCount)

	// redirect records a click
	rec = doJSON(t, handler, http.MethodGet, "/eng", nil)
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://eng.example.com", rec.Header().Get("Location"))

	rec = doJSON(t, handler, http.MethodGet, "/api/links/eng", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var fetched struct {
		ClickCount int64 `json:"click_count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.Equal(t, int64(1), fetched.ClickCount)

	// soft delete
	rec = doJSON(t, handler, http.MethodDelete, "/api/links/eng", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// inactive keyword no longer resolves
	rec = doJSON(t, handler, http.MethodGet, "/eng", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// and stays reserved
	rec = doJSON(t, handler, http.MethodPost, "/api/links", map[string]interface{}{
		"keyword": "eng",
		"url":     "https://other.example.com",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCreateLink_Validation(t *testing.T) {
	handler := newTestServer(t)

	rec := doJSON(t, handler, http.MethodPost, "/api/links", map[string]interface{}{
		"keyword": "x",
		"url":     "https://x.example.com",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, handler, http.MethodPost, "/api/links", map[string]interface{}{
		"keyword": "valid",
		"url":     "not-a-url",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRedirect_UnknownKeyword(t *testing.T) {
	handler := newTestServer(t)

	rec := doJSON(t, handler, http.MethodGet, "/nothing-here", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRedirect_GoPrefix(t *testing.T) {
	handler := newTestServer(t)

	rec := doJSON(t, handler, http.MethodPost, "/api/links", map[string]interface{}{
		"keyword": "wiki",
		"url":     "https://wiki.example.com",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, handler, http.MethodGet, "/go/wiki", nil)
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://wiki.example.com", rec.Header().Get("Location"))
}

func TestListLinks_Filtered(t *testing.T) {
	handler := newTestServer(t)

	for _, link := range []map[string]interface{}{
		{"keyword": "repo", "url": "https://git.example.com", "category": "Development"},
		{"keyword": "payroll", "url": "https://pay.example.com", "category": "Finance"},
	} {
		rec := doJSON(t, handler, http.MethodPost, "/api/links", link)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doJSON(t, handler, http.MethodGet, "/api/links?category=Development", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ListLinksResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "repo", resp.Links[0].Keyword)
}

func TestUpdateLink(t *testing.T) {
	handler := newTestServer(t)

	rec := doJSON(t, handler, http.MethodPost, "/api/links", map[string]interface{}{
		"keyword": "hr",
		"url":     "https://hr.example.com",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, handler, http.MethodPut, "/api/links/hr", map[string]interface{}{
		"title":    "People Portal",
		"category": "HR",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var updated struct {
		Title    *string `json:"title"`
		Category string  `json:"category"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	require.NotNil(t, updated.Title)
	assert.Equal(t, "People Portal", *updated.Title)
	assert.Equal(t, "HR", updated.Category)

	rec = doJSON(t, handler, http.MethodPut, "/api/links/missing", map[string]interface{}{
		"title": "Nope",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateEnhanced_FillsMetadata(t *testing.T) {
	handler := newTestServer(t)

	rec := doJSON(t, handler, http.MethodPost, "/api/links/enhanced", map[string]interface{}{
		"keyword": "gh",
		"url":     "https://github.com",
		"use_ai":  true,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		Title    *string `json:"title"`
		Category string  `json:"category"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotNil(t, created.Title)
	assert.Equal(t, "GitHub - Code Repository Platform", *created.Title)
	assert.Equal(t, "Development", created.Category)
}

func TestAnalyticsEndpoints(t *testing.T) {
	handler := newTestServer(t)

	rec := doJSON(t, handler, http.MethodPost, "/api/links", map[string]interface{}{
		"keyword": "docs",
		"url":     "https://docs.example.com",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = doJSON(t, handler, http.MethodGet, "/docs", nil)
	require.Equal(t, http.StatusFound, rec.Code)

	rec = doJSON(t, handler, http.MethodGet, "/api/analytics/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var overview analytics.Overview
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &overview))
	assert.Equal(t, int64(1), overview.TotalLinks)
	assert.Equal(t, int64(1), overview.TotalClicks)

	rec = doJSON(t, handler, http.MethodGet, "/api/analytics/trends?days=7", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, handler, http.MethodGet, "/api/analytics/performance", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, handler, http.MethodGet, "/api/analytics/insights", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, handler, http.MethodGet, "/api/links/docs/analytics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestSmartCreateEndpoint(t *testing.T) {
	handler := newTestServer(t)

	rec := doJSON(t, handler, http.MethodPost, "/api/links/smart-create", map[string]interface{}{
		"url": "https://github.com/myorg/myrepo",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var proposal service.Proposal
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &proposal))
	assert.True(t, proposal.KeywordAvailable)
	assert.Equal(t, "github", proposal.SuggestedKeyword)
	require.NotNil(t, proposal.Analysis)

	rec = doJSON(t, handler, http.MethodPost, "/api/links/smart-create", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyzeURLEndpoint(t *testing.T) {
	handler := newTestServer(t)

	rec := doJSON(t, handler, http.MethodPost, "/api/ai/analyze-url", map[string]interface{}{
		"url": "https://slack.com",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var analysis suggest.Analysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &analysis))
	assert.Equal(t, "Communication", analysis.Category)

	rec = doJSON(t, handler, http.MethodPost, "/api/ai/analyze-url", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthEndpoints(t *testing.T) {
	handler := newTestServer(t)

	rec := doJSON(t, handler, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, handler, http.MethodGet, "/ready", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSwaggerDocServed(t *testing.T) {
	handler := newTestServer(t)

	rec := doJSON(t, handler, http.MethodGet, "/swagger/doc.json", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"SmartLinks API"`)
	assert.Contains(t, rec.Body.String(), `"/api/links"`)
}

func TestRootServiceInfo(t *testing.T) {
	handler := newTestServer(t)

	rec := doJSON(t, handler, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "SmartLinks API", resp["message"])
	assert.Equal(t, "running", resp["status"])
}

func TestDevSampleLinks(t *testing.T) {
	handler := newTestServer(t)

	rec := doJSON(t, handler, http.MethodGet, "/api/dev/sample-links", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// idempotent; existing keywords are skipped
	rec = doJSON(t, handler, http.MethodGet, "/api/dev/sample-links", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Created []string `json:"created"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Created)
}

func TestCORSPreflightAndHeaders(t *testing.T) {
	handler := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/links", nil)
	req.Header.Set("Origin", "https://dashboard.example.com")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://dashboard.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestIDHeader(t *testing.T) {
	handler := newTestServer(t)

	rec := doJSON(t, handler, http.MethodGet, "/health", nil)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
