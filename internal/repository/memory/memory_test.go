package memory

import (
	"context"
	"testing"
	"time"

	"smartlinks/internal/domain"
	"smartlinks/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLink(keyword, url, category string) *domain.Link {
	return &domain.Link{
		Keyword:  keyword,
		URL:      url,
		Category: category,
		IsActive: true,
	}
}

func TestCreateLink_DuplicateKeyword(t *testing.T) {
	storage := New()
	ctx := context.Background()

	require.NoError(t, storage.CreateLink(ctx, newLink("docs", "https://docs.example.com", domain.CategoryGeneral)))

	err := storage.CreateLink(ctx, newLink("docs", "https://other.example.com", domain.CategoryGeneral))
	assert.ErrorIs(t, err, repository.ErrKeywordExists)
}

func TestCreateLink_SoftDeletedKeywordStaysReserved(t *testing.T) {
	storage := New()
	ctx := context.Background()

	require.NoError(t, storage.CreateLink(ctx, newLink("eng", "https://eng.example.com", domain.CategoryGeneral)))
	require.NoError(t, storage.DeleteLink(ctx, "eng"))

	_, err := storage.GetLink(ctx, "eng")
	assert.ErrorIs(t, err, repository.ErrKeywordNotFound)

	err = storage.CreateLink(ctx, newLink("eng", "https://new.example.com", domain.CategoryGeneral))
	assert.ErrorIs(t, err, repository.ErrKeywordExists)
}

func TestResolveAndRecordClick(t *testing.T) {
	storage := New()
	ctx := context.Background()

	require.NoError(t, storage.CreateLink(ctx, newLink("wiki", "https://wiki.example.com", domain.CategoryGeneral)))

	meta := repository.ClickMeta{IPAddress: "10.0.0.1", UserAgent: "test-agent", Referrer: "https://mail.example.com"}
	link, err := storage.ResolveAndRecordClick(ctx, "wiki", meta)
	require.NoError(t, err)
	assert.Equal(t, "https://wiki.example.com", link.URL)

	count, err := storage.CountClicks(ctx, link.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestResolveAndRecordClick_UnknownKeywordWritesNothing(t *testing.T) {
	storage := New()
	ctx := context.Background()

	_, err := storage.ResolveAndRecordClick(ctx, "unknown", repository.ClickMeta{})
	assert.ErrorIs(t, err, repository.ErrKeywordNotFound)

	total, err := storage.CountAllClicks(ctx)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestResolveAndRecordClick_ClickTimesMonotonic(t *testing.T) {
	storage := New()
	ctx := context.Background()

	require.NoError(t, storage.CreateLink(ctx, newLink("ci", "https://ci.example.com", domain.CategoryDevelopment)))

	link, err := storage.GetLink(ctx, "ci")
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		_, err := storage.ResolveAndRecordClick(ctx, "ci", repository.ClickMeta{})
		require.NoError(t, err)
	}

	clicks, err := storage.ClicksForLink(ctx, link.ID, 10)
	require.NoError(t, err)
	require.Len(t, clicks, 5)

	// newest first
	for i := 1; i < len(clicks); i++ {
		assert.False(t, clicks[i-1].ClickedAt.Before(clicks[i].ClickedAt))
	}
}

func TestCountActiveLinks_ExcludesInactive(t *testing.T) {
	storage := New()
	ctx := context.Background()

	require.NoError(t, storage.CreateLink(ctx, newLink("one", "https://one.example.com", domain.CategoryGeneral)))
	require.NoError(t, storage.CreateLink(ctx, newLink("two", "https://two.example.com", domain.CategoryGeneral)))

	_, err := storage.ResolveAndRecordClick(ctx, "two", repository.ClickMeta{})
	require.NoError(t, err)
	require.NoError(t, storage.DeleteLink(ctx, "two"))

	active, err := storage.CountActiveLinks(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), active)

	// clicks against deactivated links still count
	total, err := storage.CountAllClicks(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestCountUnusedLinks(t *testing.T) {
	storage := New()
	ctx := context.Background()

	require.NoError(t, storage.CreateLink(ctx, newLink("used", "https://used.example.com", domain.CategoryGeneral)))
	require.NoError(t, storage.CreateLink(ctx, newLink("idle", "https://idle.example.com", domain.CategoryGeneral)))

	_, err := storage.ResolveAndRecordClick(ctx, "used", repository.ClickMeta{})
	require.NoError(t, err)

	unused, err := storage.CountUnusedLinks(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), unused)
}

func TestListLinks_Filters(t *testing.T) {
	storage := New()
	ctx := context.Background()

	title := "Team Wiki"
	wiki := newLink("wiki", "https://wiki.example.com", domain.CategoryProductivity)
	wiki.Title = &title
	require.NoError(t, storage.CreateLink(ctx, wiki))
	require.NoError(t, storage.CreateLink(ctx, newLink("repo", "https://git.example.com", domain.CategoryDevelopment)))
	require.NoError(t, storage.CreateLink(ctx, newLink("old", "https://old.example.com", domain.CategoryGeneral)))
	require.NoError(t, storage.DeleteLink(ctx, "old"))

	all, err := storage.ListLinks(ctx, repository.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	dev, err := storage.ListLinks(ctx, repository.ListFilter{Category: domain.CategoryDevelopment})
	require.NoError(t, err)
	require.Len(t, dev, 1)
	assert.Equal(t, "repo", dev[0].Keyword)

	// case-insensitive substring match on the title
	byTitle, err := storage.ListLinks(ctx, repository.ListFilter{Search: "team w"})
	require.NoError(t, err)
	require.Len(t, byTitle, 1)
	assert.Equal(t, "wiki", byTitle[0].Keyword)
}

func TestListAllKeywords_IncludesInactive(t *testing.T) {
	storage := New()
	ctx := context.Background()

	require.NoError(t, storage.CreateLink(ctx, newLink("alive", "https://a.example.com", domain.CategoryGeneral)))
	require.NoError(t, storage.CreateLink(ctx, newLink("dead", "https://d.example.com", domain.CategoryGeneral)))
	require.NoError(t, storage.DeleteLink(ctx, "dead"))

	keywords, err := storage.ListAllKeywords(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"alive", "dead"}, keywords)
}

func TestTopLinks_OrderAndTieBreak(t *testing.T) {
	storage := New()
	ctx := context.Background()

	require.NoError(t, storage.CreateLink(ctx, newLink("first", "https://1.example.com", domain.CategoryGeneral)))
	require.NoError(t, storage.CreateLink(ctx, newLink("second", "https://2.example.com", domain.CategoryGeneral)))
	require.NoError(t, storage.CreateLink(ctx, newLink("third", "https://3.example.com", domain.CategoryGeneral)))

	for i := 0; i < 3; i++ {
		_, err := storage.ResolveAndRecordClick(ctx, "second", repository.ClickMeta{})
		require.NoError(t, err)
	}
	_, err := storage.ResolveAndRecordClick(ctx, "first", repository.ClickMeta{})
	require.NoError(t, err)
	_, err = storage.ResolveAndRecordClick(ctx, "third", repository.ClickMeta{})
	require.NoError(t, err)

	now := time.Now().UTC()
	top, err := storage.TopLinks(ctx, now.AddDate(0, 0, -30), now.Add(time.Minute), 10)
	require.NoError(t, err)
	require.Len(t, top, 3)

	assert.Equal(t, "second", top[0].Keyword)
	assert.Equal(t, int64(3), top[0].Clicks)
	// tie between first and third goes to the lower id
	assert.Equal(t, "first", top[1].Keyword)
	assert.Equal(t, "third", top[2].Keyword)
}

func TestTopLinks_TitleFallsBackToKeyword(t *testing.T) {
	storage := New()
	ctx := context.Background()

	require.NoError(t, storage.CreateLink(ctx, newLink("bare", "https://bare.example.com", domain.CategoryGeneral)))
	_, err := storage.ResolveAndRecordClick(ctx, "bare", repository.ClickMeta{})
	require.NoError(t, err)

	now := time.Now().UTC()
	top, err := storage.TopLinks(ctx, now.AddDate(0, 0, -1), now.Add(time.Minute), 10)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "bare", top[0].Title)
}

func TestCategoryCounts(t *testing.T) {
	storage := New()
	ctx := context.Background()

	require.NoError(t, storage.CreateLink(ctx, newLink("a", "https://a.example.com", domain.CategoryDevelopment)))
	require.NoError(t, storage.CreateLink(ctx, newLink("b", "https://b.example.com", domain.CategoryDevelopment)))
	require.NoError(t, storage.CreateLink(ctx, newLink("c", "https://c.example.com", domain.CategoryHR)))

	counts, err := storage.CategoryCounts(ctx)
	require.NoError(t, err)
	require.Len(t, counts, 2)

	byCategory := make(map[string]int64)
	for _, c := range counts {
		byCategory[c.Category] = c.Count
	}
	assert.Equal(t, int64(2), byCategory[domain.CategoryDevelopment])
	assert.Equal(t, int64(1), byCategory[domain.CategoryHR])
}

func TestCategoryPerformance_ZeroClickCategoryAppears(t *testing.T) {
	storage := New()
	ctx := context.Background()

	require.NoError(t, storage.CreateLink(ctx, newLink("busy", "https://busy.example.com", domain.CategoryMarketing)))
	require.NoError(t, storage.CreateLink(ctx, newLink("quiet", "https://quiet.example.com", domain.CategoryFinance)))

	_, err := storage.ResolveAndRecordClick(ctx, "busy", repository.ClickMeta{})
	require.NoError(t, err)

	perf, err := storage.CategoryPerformance(ctx)
	require.NoError(t, err)
	require.Len(t, perf, 2)

	byCategory := make(map[string]domain.CategoryPerformance)
	for _, p := range perf {
		byCategory[p.Category] = p
	}
	assert.Equal(t, int64(1), byCategory[domain.CategoryMarketing].TotalClicks)
	assert.Equal(t, int64(0), byCategory[domain.CategoryFinance].TotalClicks)
	assert.Equal(t, int64(1), byCategory[domain.CategoryFinance].TotalLinks)
}

func TestTopHourOfDay_NoClicks(t *testing.T) {
	storage := New()

	hour, clicks, err := storage.TopHourOfDay(context.Background())
	require.NoError(t, err)
	assert.Equal(t, -1, hour)
	assert.Zero(t, clicks)
}

func TestMostActiveDay_NoClicks(t *testing.T) {
	storage := New()

	day, clicks, err := storage.MostActiveDay(context.Background())
	require.NoError(t, err)
	assert.True(t, day.IsZero())
	assert.Zero(t, clicks)
}

func TestHourlyClicks_TodayOnly(t *testing.T) {
	storage := New()
	ctx := context.Background()

	require.NoError(t, storage.CreateLink(ctx, newLink("now", "https://now.example.com", domain.CategoryGeneral)))
	_, err := storage.ResolveAndRecordClick(ctx, "now", repository.ClickMeta{})
	require.NoError(t, err)

	nowUTC := time.Now().UTC()
	today := time.Date(nowUTC.Year(), nowUTC.Month(), nowUTC.Day(), 0, 0, 0, 0, time.UTC)

	hourly, err := storage.HourlyClicks(ctx, today)
	require.NoError(t, err)
	require.Len(t, hourly, 1)
	assert.Equal(t, nowUTC.Hour(), hourly[0].Hour)
	assert.Equal(t, int64(1), hourly[0].Clicks)

	yesterday := today.AddDate(0, 0, -1)
	empty, err := storage.HourlyClicks(ctx, yesterday)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestUpdateLink_PartialUpdate(t *testing.T) {
	storage := New()
	ctx := context.Background()

	require.NoError(t, storage.CreateLink(ctx, newLink("hr", "https://hr.example.com", domain.CategoryHR)))

	newURL := "https://people.example.com"
	updated, err := storage.UpdateLink(ctx, "hr", repository.LinkUpdate{URL: &newURL})
	require.NoError(t, err)
	assert.Equal(t, newURL, updated.URL)
	assert.Equal(t, domain.CategoryHR, updated.Category)

	_, err = storage.UpdateLink(ctx, "missing", repository.LinkUpdate{URL: &newURL})
	assert.ErrorIs(t, err, repository.ErrKeywordNotFound)
}
