package repository

import (
	"context"
	"errors"
	"time"

	"smartlinks/internal/domain"
)

var (
	ErrKeywordNotFound = errors.New("keyword not found")
	ErrKeywordExists   = errors.New("keyword already exists")
)

// ListFilter narrows ListLinks results. Search matches keyword, title and
// description by substring. A zero Limit means the implementation default.
type ListFilter struct {
	Category string
	Search   string
	Limit    int
}

// LinkUpdate carries a partial update; nil fields are left untouched.
type LinkUpdate struct {
	URL         *string
	Title       *string
	Description *string
	Category    *string
}

// ClickMeta is the best-effort request metadata recorded with a click.
type ClickMeta struct {
	IPAddress string
	UserAgent string
	Referrer  string
}

// Storage is the persistence contract shared by the PostgreSQL and in-memory
// implementations. Click counts are always derived by counting click rows,
// never stored on the link.
type Storage interface {
	// Link methods
	CreateLink(ctx context.Context, link *domain.Link) error
	GetLink(ctx context.Context, keyword string) (*domain.Link, error)
	UpdateLink(ctx context.Context, keyword string, upd LinkUpdate) (*domain.Link, error)
	DeleteLink(ctx context.Context, keyword string) error
	ListLinks(ctx context.Context, filter ListFilter) ([]*domain.Link, error)
	// ListAllKeywords returns every keyword ever assigned, active or not.
	ListAllKeywords(ctx context.Context) ([]string, error)

	// ResolveAndRecordClick looks up the active link for keyword and appends a
	// click row in the same transaction. A failed click write fails the whole
	// resolution; there is no redirect-but-drop-the-click mode.
	ResolveAndRecordClick(ctx context.Context, keyword string, meta ClickMeta) (*domain.Link, error)

	// Click counters
	CountClicks(ctx context.Context, linkID int64) (int64, error)
	CountActiveLinks(ctx context.Context) (int64, error)
	// CountAllClicks counts every click, including those against inactive links.
	CountAllClicks(ctx context.Context) (int64, error)
	CountUnusedLinks(ctx context.Context) (int64, error)

	// Aggregate queries, all filtered to active links unless noted otherwise.
	TopLinks(ctx context.Context, from, to time.Time, limit int) ([]domain.LinkClickCount, error)
	RecentClicks(ctx context.Context, limit int) ([]domain.RecentClick, error)
	CategoryCounts(ctx context.Context) ([]domain.CategoryCount, error)
	ClicksPerDay(ctx context.Context, linkID int64, since time.Time) ([]domain.DailyClicks, error)
	DailyTrends(ctx context.Context, since time.Time) ([]domain.DailyTrend, error)
	// HourlyClicks buckets clicks by hour within the UTC day starting at day.
	HourlyClicks(ctx context.Context, day time.Time) ([]domain.HourlyClicks, error)
	CategoryPerformance(ctx context.Context) ([]domain.CategoryPerformance, error)
	// TopHourOfDay returns the busiest hour across all history, or hour -1
	// when no clicks exist.
	TopHourOfDay(ctx context.Context) (hour int, clicks int64, err error)
	// MostActiveDay returns the UTC day with the most clicks; the zero time
	// when no clicks exist.
	MostActiveDay(ctx context.Context) (time.Time, int64, error)
	// ClicksForLink returns raw click rows for one link, newest first.
	ClicksForLink(ctx context.Context, linkID int64, limit int) ([]*domain.Click, error)
}
