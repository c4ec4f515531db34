package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"smartlinks/internal/domain"
	"smartlinks/internal/repository"
)

// MemStorage is an in-memory Storage implementation used by unit tests and
// local development. Aggregate queries replicate the SQL semantics of the
// PostgreSQL implementation, including tie-breaks and UTC day bucketing.
type MemStorage struct {
	mu           sync.RWMutex
	links        map[string]*domain.Link // keyed by keyword, active and inactive
	clicks       []*domain.Click
	linkCounter  int64
	clickCounter int64
}

func New() *MemStorage {
	return &MemStorage{
		links: make(map[string]*domain.Link),
	}
}

// --- Link Methods ---

func (s *MemStorage) CreateLink(_ context.Context, link *domain.Link) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Keywords stay reserved even after soft delete.
	if _, exists := s.links[link.Keyword]; exists {
		return repository.ErrKeywordExists
	}

	s.linkCounter++
	link.ID = s.linkCounter
	now := time.Now().UTC()
	if link.CreatedAt.IsZero() {
		link.CreatedAt = now
	}
	link.UpdatedAt = now
	link.IsActive = true

	stored := *link
	s.links[link.Keyword] = &stored
	return nil
}

func (s *MemStorage) GetLink(_ context.Context, keyword string) (*domain.Link, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	link, ok := s.links[keyword]
	if !ok || !link.IsActive {
		return nil, repository.ErrKeywordNotFound
	}
	cp := *link
	return &cp, nil
}

func (s *MemStorage) UpdateLink(_ context.Context, keyword string, upd repository.LinkUpdate) (*domain.Link, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	link, ok := s.links[keyword]
	if !ok || !link.IsActive {
		return nil, repository.ErrKeywordNotFound
	}

	if upd.URL != nil {
		link.URL = *upd.URL
	}
	if upd.Title != nil {
		title := *upd.Title
		link.Title = &title
	}
	if upd.Description != nil {
		desc := *upd.Description
		link.Description = &desc
	}
	if upd.Category != nil {
		link.Category = *upd.Category
	}
	link.UpdatedAt = time.Now().UTC()

	cp := *link
	return &cp, nil
}

func (s *MemStorage) DeleteLink(_ context.Context, keyword string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	link, ok := s.links[keyword]
	if !ok || !link.IsActive {
		return repository.ErrKeywordNotFound
	}
	link.IsActive = false
	link.UpdatedAt = time.Now().UTC()
	return nil
}

func (s *MemStorage) ListLinks(_ context.Context, filter repository.ListFilter) ([]*domain.Link, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var links []*domain.Link
	for _, link := range s.links {
		if !link.IsActive {
			continue
		}
		if filter.Category != "" && link.Category != filter.Category {
			continue
		}
		if filter.Search != "" && !matchesSearch(link, filter.Search) {
			continue
		}
		cp := *link
		links = append(links, &cp)
	}

	sort.Slice(links, func(i, j int) bool {
		if links[i].CreatedAt.Equal(links[j].CreatedAt) {
			return links[i].ID > links[j].ID
		}
		return links[i].CreatedAt.After(links[j].CreatedAt)
	})

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	if len(links) > limit {
		links = links[:limit]
	}
	return links, nil
}

func matchesSearch(link *domain.Link, search string) bool {
	needle := strings.ToLower(search)
	if strings.Contains(strings.ToLower(link.Keyword), needle) {
		return true
	}
	if link.Title != nil && strings.Contains(strings.ToLower(*link.Title), needle) {
		return true
	}
	if link.Description != nil && strings.Contains(strings.ToLower(*link.Description), needle) {
		return true
	}
	return false
}

func (s *MemStorage) ListAllKeywords(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keywords := make([]string, 0, len(s.links))
	for keyword := range s.links {
		keywords = append(keywords, keyword)
	}
	sort.Strings(keywords)
	return keywords, nil
}

func (s *MemStorage) ResolveAndRecordClick(_ context.Context, keyword string, meta repository.ClickMeta) (*domain.Link, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	link, ok := s.links[keyword]
	if !ok || !link.IsActive {
		return nil, repository.ErrKeywordNotFound
	}

	s.clickCounter++
	click := &domain.Click{
		ID:        s.clickCounter,
		LinkID:    link.ID,
		ClickedAt: time.Now().UTC(),
	}
	if meta.IPAddress != "" {
		ip := meta.IPAddress
		click.IPAddress = &ip
	}
	if meta.UserAgent != "" {
		ua := meta.UserAgent
		click.UserAgent = &ua
	}
	if meta.Referrer != "" {
		ref := meta.Referrer
		click.Referrer = &ref
	}
	s.clicks = append(s.clicks, click)

	cp := *link
	return &cp, nil
}

// --- Counters ---

func (s *MemStorage) CountClicks(_ context.Context, linkID int64) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	for _, click := range s.clicks {
		if click.LinkID == linkID {
			count++
		}
	}
	return count, nil
}

func (s *MemStorage) CountActiveLinks(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	for _, link := range s.links {
		if link.IsActive {
			count++
		}
	}
	return count, nil
}

func (s *MemStorage) CountAllClicks(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.clicks)), nil
}

func (s *MemStorage) CountUnusedLinks(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	clicked := make(map[int64]bool)
	for _, click := range s.clicks {
		clicked[click.LinkID] = true
	}

	var count int64
	for _, link := range s.links {
		if link.IsActive && !clicked[link.ID] {
			count++
		}
	}
	return count, nil
}

// --- Aggregate Queries ---

func (s *MemStorage) TopLinks(_ context.Context, from, to time.Time, limit int) ([]domain.LinkClickCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byLink := make(map[int64]int64)
	for _, click := range s.clicks {
		if click.ClickedAt.Before(from) || !click.ClickedAt.Before(to) {
			continue
		}
		byLink[click.LinkID]++
	}

	var top []domain.LinkClickCount
	for _, link := range s.links {
		if !link.IsActive {
			continue
		}
		clicks, ok := byLink[link.ID]
		if !ok {
			continue
		}
		top = append(top, domain.LinkClickCount{
			LinkID:  link.ID,
			Keyword: link.Keyword,
			Title:   link.DisplayTitle(),
			Clicks:  clicks,
		})
	}

	// Ties broken by lowest id, matching the SQL ORDER BY.
	sort.Slice(top, func(i, j int) bool {
		if top[i].Clicks == top[j].Clicks {
			return top[i].LinkID < top[j].LinkID
		}
		return top[i].Clicks > top[j].Clicks
	})

	if len(top) > limit {
		top = top[:limit]
	}
	return top, nil
}

func (s *MemStorage) RecentClicks(_ context.Context, limit int) ([]domain.RecentClick, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	linksByID := make(map[int64]*domain.Link)
	for _, link := range s.links {
		if link.IsActive {
			linksByID[link.ID] = link
		}
	}

	var recent []domain.RecentClick
	// Clicks are append-only, so walking backwards yields newest first.
	for i := len(s.clicks) - 1; i >= 0 && len(recent) < limit; i-- {
		click := s.clicks[i]
		link, ok := linksByID[click.LinkID]
		if !ok {
			continue
		}
		rc := domain.RecentClick{
			Keyword:   link.Keyword,
			Title:     link.DisplayTitle(),
			ClickedAt: click.ClickedAt,
		}
		if click.IPAddress != nil {
			rc.IPAddress = *click.IPAddress
		}
		recent = append(recent, rc)
	}
	return recent, nil
}

func (s *MemStorage) CategoryCounts(_ context.Context) ([]domain.CategoryCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byCategory := make(map[string]int64)
	for _, link := range s.links {
		if link.IsActive {
			byCategory[link.Category]++
		}
	}

	counts := make([]domain.CategoryCount, 0, len(byCategory))
	for category, count := range byCategory {
		counts = append(counts, domain.CategoryCount{Category: category, Count: count})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count == counts[j].Count {
			return counts[i].Category < counts[j].Category
		}
		return counts[i].Count > counts[j].Count
	})
	return counts, nil
}

func (s *MemStorage) ClicksPerDay(_ context.Context, linkID int64, since time.Time) ([]domain.DailyClicks, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byDay := make(map[time.Time]int64)
	for _, click := range s.clicks {
		if click.LinkID != linkID || click.ClickedAt.Before(since) {
			continue
		}
		byDay[dayOf(click.ClickedAt)]++
	}
	return sortedDaily(byDay), nil
}

func (s *MemStorage) DailyTrends(_ context.Context, since time.Time) ([]domain.DailyTrend, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	type bucket struct {
		clicks int64
		links  map[int64]bool
	}
	byDay := make(map[time.Time]*bucket)
	for _, click := range s.clicks {
		if click.ClickedAt.Before(since) {
			continue
		}
		day := dayOf(click.ClickedAt)
		b, ok := byDay[day]
		if !ok {
			b = &bucket{links: make(map[int64]bool)}
			byDay[day] = b
		}
		b.clicks++
		b.links[click.LinkID] = true
	}

	trends := make([]domain.DailyTrend, 0, len(byDay))
	for day, b := range byDay {
		trends = append(trends, domain.DailyTrend{
			Day:         day,
			Clicks:      b.clicks,
			UniqueLinks: int64(len(b.links)),
		})
	}
	sort.Slice(trends, func(i, j int) bool { return trends[i].Day.Before(trends[j].Day) })
	return trends, nil
}

func (s *MemStorage) HourlyClicks(_ context.Context, day time.Time) ([]domain.HourlyClicks, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)

	byHour := make(map[int]int64)
	for _, click := range s.clicks {
		if click.ClickedAt.Before(dayStart) || !click.ClickedAt.Before(dayEnd) {
			continue
		}
		byHour[click.ClickedAt.UTC().Hour()]++
	}

	hourly := make([]domain.HourlyClicks, 0, len(byHour))
	for hour, clicks := range byHour {
		hourly = append(hourly, domain.HourlyClicks{Hour: hour, Clicks: clicks})
	}
	sort.Slice(hourly, func(i, j int) bool { return hourly[i].Hour < hourly[j].Hour })
	return hourly, nil
}

func (s *MemStorage) CategoryPerformance(_ context.Context) ([]domain.CategoryPerformance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	clicksByLink := make(map[int64]int64)
	for _, click := range s.clicks {
		clicksByLink[click.LinkID]++
	}

	perfByCategory := make(map[string]*domain.CategoryPerformance)
	for _, link := range s.links {
		if !link.IsActive {
			continue
		}
		p, ok := perfByCategory[link.Category]
		if !ok {
			p = &domain.CategoryPerformance{Category: link.Category}
			perfByCategory[link.Category] = p
		}
		p.TotalLinks++
		p.TotalClicks += clicksByLink[link.ID]
	}

	perf := make([]domain.CategoryPerformance, 0, len(perfByCategory))
	for _, p := range perfByCategory {
		perf = append(perf, *p)
	}
	sort.Slice(perf, func(i, j int) bool {
		if perf[i].TotalClicks == perf[j].TotalClicks {
			return perf[i].Category < perf[j].Category
		}
		return perf[i].TotalClicks > perf[j].TotalClicks
	})
	return perf, nil
}

func (s *MemStorage) TopHourOfDay(_ context.Context) (int, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byHour := make(map[int]int64)
	for _, click := range s.clicks {
		byHour[click.ClickedAt.UTC().Hour()]++
	}
	if len(byHour) == 0 {
		return -1, 0, nil
	}

	topHour, topClicks := -1, int64(0)
	for hour, clicks := range byHour {
		if clicks > topClicks || (clicks == topClicks && hour < topHour) {
			topHour, topClicks = hour, clicks
		}
	}
	return topHour, topClicks, nil
}

func (s *MemStorage) MostActiveDay(_ context.Context) (time.Time, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byDay := make(map[time.Time]int64)
	for _, click := range s.clicks {
		byDay[dayOf(click.ClickedAt)]++
	}
	if len(byDay) == 0 {
		return time.Time{}, 0, nil
	}

	var topDay time.Time
	var topClicks int64
	for day, clicks := range byDay {
		if clicks > topClicks || (clicks == topClicks && day.Before(topDay)) {
			topDay, topClicks = day, clicks
		}
	}
	return topDay, topClicks, nil
}

func (s *MemStorage) ClicksForLink(_ context.Context, linkID int64, limit int) ([]*domain.Click, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var clicks []*domain.Click
	for i := len(s.clicks) - 1; i >= 0; i-- {
		if s.clicks[i].LinkID != linkID {
			continue
		}
		cp := *s.clicks[i]
		clicks = append(clicks, &cp)
		if limit > 0 && len(clicks) == limit {
			break
		}
	}
	return clicks, nil
}

// --- Helpers ---

func dayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func sortedDaily(byDay map[time.Time]int64) []domain.DailyClicks {
	daily := make([]domain.DailyClicks, 0, len(byDay))
	for day, clicks := range byDay {
		daily = append(daily, domain.DailyClicks{Day: day, Clicks: clicks})
	}
	sort.Slice(daily, func(i, j int) bool { return daily[i].Day.Before(daily[j].Day) })
	return daily
}
