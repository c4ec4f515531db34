package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"smartlinks/internal/domain"
	"smartlinks/internal/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PostgresStorage implements the Storage interface for PostgreSQL.
type PostgresStorage struct {
	db  *gorm.DB
	log *zap.Logger
}

// New creates a new PostgreSQL storage instance.
func New(db *gorm.DB, log *zap.Logger) *PostgresStorage {
	return &PostgresStorage{
		db:  db,
		log: log,
	}
}

// --- Link Methods ---

// CreateLink saves a new link. The keyword unique index is the real
// uniqueness guarantee; the losing side of a concurrent create gets
// ErrKeywordExists from the constraint violation.
func (s *PostgresStorage) CreateLink(ctx context.Context, link *domain.Link) error {
	// Pre-check across all links, active or not: soft-deleted keywords stay
	// reserved.
	var count int64
	err := s.db.WithContext(ctx).Model(&domain.Link{}).Where("keyword = ?", link.Keyword).Count(&count).Error
	if err != nil {
		s.log.Error("failed to check keyword existence", zap.String("keyword", link.Keyword), zap.Error(err))
		return fmt.Errorf("failed to check keyword: %w", err)
	}
	if count > 0 {
		return repository.ErrKeywordExists
	}

	if err := s.db.WithContext(ctx).Create(link).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return repository.ErrKeywordExists
		}
		s.log.Error("failed to create link", zap.String("keyword", link.Keyword), zap.Error(err))
		return fmt.Errorf("failed to create link: %w", err)
	}

	s.log.Info("created link", zap.String("keyword", link.Keyword), zap.String("category", link.Category))
	return nil
}

// GetLink returns the active link for keyword.
func (s *PostgresStorage) GetLink(ctx context.Context, keyword string) (*domain.Link, error) {
	var link domain.Link

	err := s.db.WithContext(ctx).Where("keyword = ? AND is_active = ?", keyword, true).First(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrKeywordNotFound
	}
	if err != nil {
		s.log.Error("failed to get link", zap.String("keyword", keyword), zap.Error(err))
		return nil, fmt.Errorf("failed to get link: %w", err)
	}

	return &link, nil
}

// UpdateLink applies a partial update to the active link for keyword and
// returns the updated row.
func (s *PostgresStorage) UpdateLink(ctx context.Context, keyword string, upd repository.LinkUpdate) (*domain.Link, error) {
	var link domain.Link

	err := s.db.WithContext(ctx).Where("keyword = ? AND is_active = ?", keyword, true).First(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrKeywordNotFound
	}
	if err != nil {
		s.log.Error("failed to get link for update", zap.String("keyword", keyword), zap.Error(err))
		return nil, fmt.Errorf("failed to get link: %w", err)
	}

	updates := map[string]interface{}{}
	if upd.URL != nil {
		updates["url"] = *upd.URL
	}
	if upd.Title != nil {
		updates["title"] = *upd.Title
	}
	if upd.Description != nil {
		updates["description"] = *upd.Description
	}
	if upd.Category != nil {
		updates["category"] = *upd.Category
	}
	updates["updated_at"] = time.Now().UTC()

	if err := s.db.WithContext(ctx).Model(&link).Updates(updates).Error; err != nil {
		s.log.Error("failed to update link", zap.String("keyword", keyword), zap.Error(err))
		return nil, fmt.Errorf("failed to update link: %w", err)
	}

	s.log.Info("updated link", zap.String("keyword", keyword))
	return &link, nil
}

// DeleteLink soft-deletes a link. The row and its click history persist and
// the keyword stays reserved.
func (s *PostgresStorage) DeleteLink(ctx context.Context, keyword string) error {
	result := s.db.WithContext(ctx).Model(&domain.Link{}).
		Where("keyword = ? AND is_active = ?", keyword, true).
		Updates(map[string]interface{}{"is_active": false, "updated_at": time.Now().UTC()})
	if result.Error != nil {
		s.log.Error("failed to delete link", zap.String("keyword", keyword), zap.Error(result.Error))
		return fmt.Errorf("failed to delete link: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return repository.ErrKeywordNotFound
	}

	s.log.Info("deleted link", zap.String("keyword", keyword))
	return nil
}

// ListLinks returns active links, optionally filtered by category and a
// substring search over keyword, title and description.
func (s *PostgresStorage) ListLinks(ctx context.Context, filter repository.ListFilter) ([]*domain.Link, error) {
	query := s.db.WithContext(ctx).Where("is_active = ?", true)

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("keyword LIKE ? OR title LIKE ? OR description LIKE ?", pattern, pattern, pattern)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}

	var links []*domain.Link
	if err := query.Order("created_at DESC").Limit(limit).Find(&links).Error; err != nil {
		s.log.Error("failed to list links", zap.Error(err))
		return nil, fmt.Errorf("failed to list links: %w", err)
	}

	return links, nil
}

// ListAllKeywords returns every keyword ever assigned, including keywords of
// soft-deleted links.
func (s *PostgresStorage) ListAllKeywords(ctx context.Context) ([]string, error) {
	var keywords []string
	if err := s.db.WithContext(ctx).Model(&domain.Link{}).Pluck("keyword", &keywords).Error; err != nil {
		s.log.Error("failed to list keywords", zap.Error(err))
		return nil, fmt.Errorf("failed to list keywords: %w", err)
	}
	return keywords, nil
}

// ResolveAndRecordClick resolves keyword to its active link and records the
// click in one transaction. A failed click write rolls back and fails the
// resolution.
func (s *PostgresStorage) ResolveAndRecordClick(ctx context.Context, keyword string, meta repository.ClickMeta) (*domain.Link, error) {
	var link domain.Link

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("keyword = ? AND is_active = ?", keyword, true).First(&link).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrKeywordNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to get link: %w", err)
		}

		click := domain.Click{
			LinkID:    link.ID,
			ClickedAt: time.Now().UTC(),
		}
		if meta.IPAddress != "" {
			click.IPAddress = &meta.IPAddress
		}
		if meta.UserAgent != "" {
			click.UserAgent = &meta.UserAgent
		}
		if meta.Referrer != "" {
			click.Referrer = &meta.Referrer
		}

		if err := tx.Create(&click).Error; err != nil {
			return fmt.Errorf("failed to create click: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrKeywordNotFound) {
			return nil, err
		}
		s.log.Error("failed to resolve and record click", zap.String("keyword", keyword), zap.Error(err))
		return nil, err
	}

	return &link, nil
}

// --- Counters ---

// CountClicks returns the all-time click count for one link.
func (s *PostgresStorage) CountClicks(ctx context.Context, linkID int64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&domain.Click{}).Where("link_id = ?", linkID).Count(&count).Error
	if err != nil {
		s.log.Error("failed to count clicks", zap.Int64("link_id", linkID), zap.Error(err))
		return 0, fmt.Errorf("failed to count clicks: %w", err)
	}
	return count, nil
}

func (s *PostgresStorage) CountActiveLinks(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&domain.Link{}).Where("is_active = ?", true).Count(&count).Error
	if err != nil {
		s.log.Error("failed to count active links", zap.Error(err))
		return 0, fmt.Errorf("failed to count active links: %w", err)
	}
	return count, nil
}

// CountAllClicks counts every click regardless of the owning link's state.
func (s *PostgresStorage) CountAllClicks(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&domain.Click{}).Count(&count).Error
	if err != nil {
		s.log.Error("failed to count clicks", zap.Error(err))
		return 0, fmt.Errorf("failed to count clicks: %w", err)
	}
	return count, nil
}

// CountUnusedLinks counts active links that were never clicked.
func (s *PostgresStorage) CountUnusedLinks(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&domain.Link{}).
		Where("is_active = ?", true).
		Where("NOT EXISTS (SELECT 1 FROM clicks WHERE clicks.link_id = links.id)").
		Count(&count).Error
	if err != nil {
		s.log.Error("failed to count unused links", zap.Error(err))
		return 0, fmt.Errorf("failed to count unused links: %w", err)
	}
	return count, nil
}

// --- Aggregate Queries ---

type linkClickRow struct {
	LinkID     int64  `gorm:"column:link_id"`
	Keyword    string `gorm:"column:keyword"`
	Title      string `gorm:"column:title"`
	ClickCount int64  `gorm:"column:click_count"`
}

// TopLinks returns the most-clicked active links in [from, to), ties broken
// by lowest link id.
func (s *PostgresStorage) TopLinks(ctx context.Context, from, to time.Time, limit int) ([]domain.LinkClickCount, error) {
	var rows []linkClickRow

	err := s.db.WithContext(ctx).Table("clicks").
		Select("links.id AS link_id, links.keyword AS keyword, COALESCE(NULLIF(links.title, ''), links.keyword) AS title, COUNT(clicks.id) AS click_count").
		Joins("JOIN links ON links.id = clicks.link_id").
		Where("links.is_active = ? AND clicks.clicked_at >= ? AND clicks.clicked_at < ?", true, from, to).
		Group("links.id, links.keyword, links.title").
		Order("click_count DESC, links.id ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		s.log.Error("failed to query top links", zap.Error(err))
		return nil, fmt.Errorf("failed to query top links: %w", err)
	}

	top := make([]domain.LinkClickCount, len(rows))
	for i, r := range rows {
		top[i] = domain.LinkClickCount{LinkID: r.LinkID, Keyword: r.Keyword, Title: r.Title, Clicks: r.ClickCount}
	}
	return top, nil
}

type recentClickRow struct {
	Keyword   string    `gorm:"column:keyword"`
	Title     string    `gorm:"column:title"`
	ClickedAt time.Time `gorm:"column:clicked_at"`
	IPAddress *string   `gorm:"column:ip_address"`
}

// RecentClicks returns the newest clicks joined to active links.
func (s *PostgresStorage) RecentClicks(ctx context.Context, limit int) ([]domain.RecentClick, error) {
	var rows []recentClickRow

	err := s.db.WithContext(ctx).Table("clicks").
		Select("links.keyword AS keyword, COALESCE(NULLIF(links.title, ''), links.keyword) AS title, clicks.clicked_at, clicks.ip_address").
		Joins("JOIN links ON links.id = clicks.link_id").
		Where("links.is_active = ?", true).
		Order("clicks.clicked_at DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		s.log.Error("failed to query recent clicks", zap.Error(err))
		return nil, fmt.Errorf("failed to query recent clicks: %w", err)
	}

	recent := make([]domain.RecentClick, len(rows))
	for i, r := range rows {
		rc := domain.RecentClick{Keyword: r.Keyword, Title: r.Title, ClickedAt: r.ClickedAt}
		if r.IPAddress != nil {
			rc.IPAddress = *r.IPAddress
		}
		recent[i] = rc
	}
	return recent, nil
}

// CategoryCounts groups active links by category. Categories without links do
// not appear.
func (s *PostgresStorage) CategoryCounts(ctx context.Context) ([]domain.CategoryCount, error) {
	var rows []struct {
		Category string `gorm:"column:category"`
		Count    int64  `gorm:"column:link_count"`
	}

	err := s.db.WithContext(ctx).Model(&domain.Link{}).
		Select("category, COUNT(id) AS link_count").
		Where("is_active = ?", true).
		Group("category").
		Order("link_count DESC").
		Scan(&rows).Error
	if err != nil {
		s.log.Error("failed to query category counts", zap.Error(err))
		return nil, fmt.Errorf("failed to query category counts: %w", err)
	}

	counts := make([]domain.CategoryCount, len(rows))
	for i, r := range rows {
		counts[i] = domain.CategoryCount{Category: r.Category, Count: r.Count}
	}
	return counts, nil
}

type dayCountRow struct {
	Day         time.Time `gorm:"column:day"`
	ClickCount  int64     `gorm:"column:click_count"`
	UniqueLinks int64     `gorm:"column:unique_links"`
}

// ClicksPerDay buckets one link's clicks by UTC day since the given time.
// Days without clicks are omitted, not zero-filled.
func (s *PostgresStorage) ClicksPerDay(ctx context.Context, linkID int64, since time.Time) ([]domain.DailyClicks, error) {
	var rows []dayCountRow

	err := s.db.WithContext(ctx).Model(&domain.Click{}).
		Select("DATE(clicked_at) AS day, COUNT(id) AS click_count").
		Where("link_id = ? AND clicked_at >= ?", linkID, since).
		Group("DATE(clicked_at)").
		Order("day ASC").
		Scan(&rows).Error
	if err != nil {
		s.log.Error("failed to query clicks per day", zap.Int64("link_id", linkID), zap.Error(err))
		return nil, fmt.Errorf("failed to query clicks per day: %w", err)
	}

	daily := make([]domain.DailyClicks, len(rows))
	for i, r := range rows {
		daily[i] = domain.DailyClicks{Day: r.Day, Clicks: r.ClickCount}
	}
	return daily, nil
}

// DailyTrends buckets all clicks by UTC day with distinct-link counts.
func (s *PostgresStorage) DailyTrends(ctx context.Context, since time.Time) ([]domain.DailyTrend, error) {
	var rows []dayCountRow

	err := s.db.WithContext(ctx).Model(&domain.Click{}).
		Select("DATE(clicked_at) AS day, COUNT(id) AS click_count, COUNT(DISTINCT link_id) AS unique_links").
		Where("clicked_at >= ?", since).
		Group("DATE(clicked_at)").
		Order("day ASC").
		Scan(&rows).Error
	if err != nil {
		s.log.Error("failed to query daily trends", zap.Error(err))
		return nil, fmt.Errorf("failed to query daily trends: %w", err)
	}

	trends := make([]domain.DailyTrend, len(rows))
	for i, r := range rows {
		trends[i] = domain.DailyTrend{Day: r.Day, Clicks: r.ClickCount, UniqueLinks: r.UniqueLinks}
	}
	return trends, nil
}

type hourCountRow struct {
	Hour       int   `gorm:"column:hour"`
	ClickCount int64 `gorm:"column:click_count"`
}

// HourlyClicks buckets clicks by hour within the UTC day starting at day.
func (s *PostgresStorage) HourlyClicks(ctx context.Context, day time.Time) ([]domain.HourlyClicks, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)

	var rows []hourCountRow
	err := s.db.WithContext(ctx).Model(&domain.Click{}).
		Select("CAST(EXTRACT(HOUR FROM clicked_at) AS int) AS hour, COUNT(id) AS click_count").
		Where("clicked_at >= ? AND clicked_at < ?", dayStart, dayEnd).
		Group("EXTRACT(HOUR FROM clicked_at)").
		Order("hour ASC").
		Scan(&rows).Error
	if err != nil {
		s.log.Error("failed to query hourly clicks", zap.Error(err))
		return nil, fmt.Errorf("failed to query hourly clicks: %w", err)
	}

	hourly := make([]domain.HourlyClicks, len(rows))
	for i, r := range rows {
		hourly[i] = domain.HourlyClicks{Hour: r.Hour, Clicks: r.ClickCount}
	}
	return hourly, nil
}

// CategoryPerformance rolls up active links per category with total clicks.
// The outer join keeps categories whose links were never clicked, with zero
// clicks. The average is derived by the caller.
func (s *PostgresStorage) CategoryPerformance(ctx context.Context) ([]domain.CategoryPerformance, error) {
	var rows []struct {
		Category    string `gorm:"column:category"`
		TotalLinks  int64  `gorm:"column:total_links"`
		TotalClicks int64  `gorm:"column:total_clicks"`
	}

	err := s.db.WithContext(ctx).Table("links").
		Select("links.category, COUNT(DISTINCT links.id) AS total_links, COUNT(clicks.id) AS total_clicks").
		Joins("LEFT JOIN clicks ON clicks.link_id = links.id").
		Where("links.is_active = ?", true).
		Group("links.category").
		Order("total_clicks DESC").
		Scan(&rows).Error
	if err != nil {
		s.log.Error("failed to query category performance", zap.Error(err))
		return nil, fmt.Errorf("failed to query category performance: %w", err)
	}

	perf := make([]domain.CategoryPerformance, len(rows))
	for i, r := range rows {
		perf[i] = domain.CategoryPerformance{Category: r.Category, TotalLinks: r.TotalLinks, TotalClicks: r.TotalClicks}
	}
	return perf, nil
}

// TopHourOfDay returns the hour of day with the most clicks across all
// history, or -1 when there are no clicks. Ties resolve to the lowest hour.
func (s *PostgresStorage) TopHourOfDay(ctx context.Context) (int, int64, error) {
	var rows []hourCountRow

	err := s.db.WithContext(ctx).Model(&domain.Click{}).
		Select("CAST(EXTRACT(HOUR FROM clicked_at) AS int) AS hour, COUNT(id) AS click_count").
		Group("EXTRACT(HOUR FROM clicked_at)").
		Order("click_count DESC, hour ASC").
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		s.log.Error("failed to query top hour", zap.Error(err))
		return -1, 0, fmt.Errorf("failed to query top hour: %w", err)
	}
	if len(rows) == 0 {
		return -1, 0, nil
	}
	return rows[0].Hour, rows[0].ClickCount, nil
}

// MostActiveDay returns the UTC day with the most clicks, or the zero time
// when there are no clicks. Ties resolve to the earliest day.
func (s *PostgresStorage) MostActiveDay(ctx context.Context) (time.Time, int64, error) {
	var rows []dayCountRow

	err := s.db.WithContext(ctx).Model(&domain.Click{}).
		Select("DATE(clicked_at) AS day, COUNT(id) AS click_count").
		Group("DATE(clicked_at)").
		Order("click_count DESC, day ASC").
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		s.log.Error("failed to query most active day", zap.Error(err))
		return time.Time{}, 0, fmt.Errorf("failed to query most active day: %w", err)
	}
	if len(rows) == 0 {
		return time.Time{}, 0, nil
	}
	return rows[0].Day, rows[0].ClickCount, nil
}

// ClicksForLink returns raw click rows for one link, newest first.
func (s *PostgresStorage) ClicksForLink(ctx context.Context, linkID int64, limit int) ([]*domain.Click, error) {
	var clicks []*domain.Click

	query := s.db.WithContext(ctx).Where("link_id = ?", linkID).Order("clicked_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&clicks).Error; err != nil {
		s.log.Error("failed to list clicks", zap.Int64("link_id", linkID), zap.Error(err))
		return nil, fmt.Errorf("failed to list clicks: %w", err)
	}

	return clicks, nil
}
