package service

import (
	"context"
	"errors"
	"testing"

	"smartlinks/internal/domain"
	"smartlinks/internal/repository"
	"smartlinks/internal/repository/memory"
	"smartlinks/internal/suggest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubAnalyzer returns fixed analysis results or a fixed error.
type stubAnalyzer struct {
	analysis *suggest.Analysis
	keywords []string
	err      error
}

func (s *stubAnalyzer) AnalyzeURL(context.Context, string) (*suggest.Analysis, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.analysis, nil
}

func (s *stubAnalyzer) SuggestKeywords(context.Context, string, []string) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.keywords, nil
}

func (s *stubAnalyzer) Ping(context.Context) error {
	return s.err
}

func newLinkService(analyzer suggest.Analyzer) (*LinkService, *memory.MemStorage) {
	storage := memory.New()
	if analyzer == nil {
		analyzer = &stubAnalyzer{}
	}
	return NewLink(storage, analyzer, zap.NewNop()), storage
}

func TestCreate_ReturnsZeroClickCount(t *testing.T) {
	svc, _ := newLinkService(nil)

	info, err := svc.Create(context.Background(), CreateInput{
		Keyword: "docs",
		URL:     "https://docs.example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "docs", info.Keyword)
	assert.Zero(t, info.ClickCount)
	assert.Equal(t, domain.CategoryGeneral, info.Category)
	assert.Equal(t, "anonymous", info.CreatedBy)
	assert.True(t, info.IsActive)
}

func TestCreate_Validation(t *testing.T) {
	svc, _ := newLinkService(nil)
	ctx := context.Background()

	tests := []struct {
		name    string
		input   CreateInput
		wantErr error
	}{
		{"keyword too short", CreateInput{Keyword: "a", URL: "https://a.example.com"}, ErrInvalidKeyword},
		{"keyword with spaces", CreateInput{Keyword: "my docs", URL: "https://a.example.com"}, ErrInvalidKeyword},
		{"keyword with slash", CreateInput{Keyword: "a/b", URL: "https://a.example.com"}, ErrInvalidKeyword},
		{"relative url", CreateInput{Keyword: "docs", URL: "/docs"}, ErrInvalidURL},
		{"ftp url", CreateInput{Keyword: "docs", URL: "ftp://files.example.com"}, ErrInvalidURL},
		{"empty url", CreateInput{Keyword: "docs", URL: ""}, ErrInvalidURL},
		{"unknown category", CreateInput{Keyword: "docs", URL: "https://a.example.com", Category: "Gaming"}, ErrInvalidCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreate_KeywordNeverRecycled(t *testing.T) {
	svc, _ := newLinkService(nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateInput{Keyword: "eng", URL: "https://eng.example.com"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, "eng"))

	_, err = svc.Create(ctx, CreateInput{Keyword: "eng", URL: "https://eng.example.com"})
	assert.ErrorIs(t, err, repository.ErrKeywordExists)
}

func TestCreateEnhanced_FillsMissingFields(t *testing.T) {
	analyzer := &stubAnalyzer{analysis: &suggest.Analysis{
		Title:       "Engineering Wiki",
		Description: "Internal engineering documentation",
		Category:    domain.CategoryDevelopment,
		Keywords:    []string{"wiki"},
	}}
	svc, _ := newLinkService(analyzer)

	info, err := svc.CreateEnhanced(context.Background(), CreateInput{
		Keyword: "wiki",
		URL:     "https://wiki.example.com",
	}, true)
	require.NoError(t, err)
	require.NotNil(t, info.Title)
	assert.Equal(t, "Engineering Wiki", *info.Title)
	assert.Equal(t, domain.CategoryDevelopment, info.Category)
}

func TestCreateEnhanced_CallerFieldsWin(t *testing.T) {
	analyzer := &stubAnalyzer{analysis: &suggest.Analysis{
		Title:    "Generated Title",
		Category: domain.CategoryDevelopment,
	}}
	svc, _ := newLinkService(analyzer)

	title := "My Title"
	info, err := svc.CreateEnhanced(context.Background(), CreateInput{
		Keyword:  "mine",
		URL:      "https://mine.example.com",
		Title:    &title,
		Category: domain.CategoryHR,
	}, true)
	require.NoError(t, err)
	assert.Equal(t, "My Title", *info.Title)
	assert.Equal(t, domain.CategoryHR, info.Category)
}

func TestCreateEnhanced_AnalysisFailureIsNonFatal(t *testing.T) {
	analyzer := &stubAnalyzer{err: errors.New("capability down")}
	svc, _ := newLinkService(analyzer)

	info, err := svc.CreateEnhanced(context.Background(), CreateInput{
		Keyword: "plain",
		URL:     "https://plain.example.com",
	}, true)
	require.NoError(t, err)
	assert.Nil(t, info.Title)
	assert.Equal(t, domain.CategoryGeneral, info.Category)
}

func TestList_DerivedClickCounts(t *testing.T) {
	svc, storage := newLinkService(nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateInput{Keyword: "popular", URL: "https://popular.example.com"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateInput{Keyword: "fresh", URL: "https://fresh.example.com"})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := storage.ResolveAndRecordClick(ctx, "popular", repository.ClickMeta{})
		require.NoError(t, err)
	}

	infos, err := svc.List(ctx, repository.ListFilter{})
	require.NoError(t, err)
	require.Len(t, infos, 2)

	byKeyword := make(map[string]int64)
	for _, info := range infos {
		byKeyword[info.Keyword] = info.ClickCount
	}
	assert.Equal(t, int64(3), byKeyword["popular"])
	assert.Zero(t, byKeyword["fresh"])
}

func TestList_InvalidCategory(t *testing.T) {
	svc, _ := newLinkService(nil)

	_, err := svc.List(context.Background(), repository.ListFilter{Category: "Bogus"})
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestUpdate_Validation(t *testing.T) {
	svc, _ := newLinkService(nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateInput{Keyword: "upd", URL: "https://upd.example.com"})
	require.NoError(t, err)

	bad := "not a url"
	_, err = svc.Update(ctx, "upd", repository.LinkUpdate{URL: &bad})
	assert.ErrorIs(t, err, ErrInvalidURL)

	badCat := "Gaming"
	_, err = svc.Update(ctx, "upd", repository.LinkUpdate{Category: &badCat})
	assert.ErrorIs(t, err, ErrInvalidCategory)

	goodCat := domain.CategoryFinance
	info, err := svc.Update(ctx, "upd", repository.LinkUpdate{Category: &goodCat})
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryFinance, info.Category)
}

func TestDelete_MissingLink(t *testing.T) {
	svc, _ := newLinkService(nil)

	err := svc.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrKeywordNotFound)
}
