package domain

import "time"

// Aggregate row types returned by the storage layer. The analytics aggregator
// composes these into response payloads; storage implementations only run the
// grouping queries.

// LinkClickCount is one link with its click count over some window.
type LinkClickCount struct {
	LinkID  int64  `json:"-"`
	Keyword string `json:"keyword"`
	Title   string `json:"title"`
	Clicks  int64  `json:"clicks"`
}

// RecentClick is a click joined to its (active) link.
type RecentClick struct {
	Keyword   string    `json:"keyword"`
	Title     string    `json:"title"`
	ClickedAt time.Time `json:"clicked_at"`
	IPAddress string    `json:"ip_address,omitempty"`
}

// CategoryCount is the number of active links in one category.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// DailyClicks is a one-day click bucket. Day is the UTC calendar date.
type DailyClicks struct {
	Day    time.Time `json:"-"`
	Clicks int64     `json:"clicks"`
}

// DailyTrend is a one-day bucket of clicks plus distinct links clicked.
type DailyTrend struct {
	Day         time.Time `json:"-"`
	Clicks      int64     `json:"clicks"`
	UniqueLinks int64     `json:"unique_links"`
}

// HourlyClicks is a one-hour click bucket within a single UTC day.
type HourlyClicks struct {
	Hour   int   `json:"hour"`
	Clicks int64 `json:"clicks"`
}

// CategoryPerformance is the per-category rollup: active link count, total
// clicks (0 for categories whose links were never clicked) and the derived
// average, computed by the aggregator.
type CategoryPerformance struct {
	Category         string  `json:"category"`
	TotalLinks       int64   `json:"total_links"`
	TotalClicks      int64   `json:"total_clicks"`
	AvgClicksPerLink float64 `json:"avg_clicks_per_link"`
}
