package analytics

import (
	"context"
	"fmt"
	"time"

	"smartlinks/internal/domain"
	"smartlinks/internal/repository"
	"smartlinks/pkg/useragent"

	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// Aggregator composes read-only analytics payloads from the storage layer's
// grouping queries. All time windows are anchored to UTC.
type Aggregator struct {
	storage repository.Storage
	ua      *useragent.Parser
	log     *zap.Logger
}

func NewAggregator(storage repository.Storage, ua *useragent.Parser, log *zap.Logger) *Aggregator {
	return &Aggregator{
		storage: storage,
		ua:      ua,
		log:     log,
	}
}

// Overview is the dashboard summary payload.
type Overview struct {
	TotalLinks   int64                  `json:"total_links"`
	TotalClicks  int64                  `json:"total_clicks"`
	TopLinks     []domain.LinkClickCount `json:"top_links"`
	RecentClicks []domain.RecentClick   `json:"recent_clicks"`
	Categories   []domain.CategoryCount `json:"categories"`
}

// GetOverview returns active-link and click totals, the trailing-30-day top
// ten, the last ten clicks and the per-category breakdown. TotalClicks counts
// every click, including those against links that were later deactivated.
func (a *Aggregator) GetOverview(ctx context.Context) (*Overview, error) {
	totalLinks, err := a.storage.CountActiveLinks(ctx)
	if err != nil {
		return nil, err
	}
	totalClicks, err := a.storage.CountAllClicks(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	topLinks, err := a.storage.TopLinks(ctx, now.AddDate(0, 0, -30), now, 10)
	if err != nil {
		return nil, err
	}
	recentClicks, err := a.storage.RecentClicks(ctx, 10)
	if err != nil {
		return nil, err
	}
	categories, err := a.storage.CategoryCounts(ctx)
	if err != nil {
		return nil, err
	}

	return &Overview{
		TotalLinks:   totalLinks,
		TotalClicks:  totalClicks,
		TopLinks:     topLinks,
		RecentClicks: recentClicks,
		Categories:   categories,
	}, nil
}

// DayBucket is a single calendar-day click count. Days without clicks are
// omitted, not zero-filled.
type DayBucket struct {
	Date   string `json:"date"`
	Clicks int64  `json:"clicks"`
}

// DeviceBreakdown tallies parsed User-Agent strings for one link's clicks.
type DeviceBreakdown struct {
	DeviceTypes map[string]int64 `json:"device_types"`
	Browsers    map[string]int64 `json:"browsers"`
	Systems     map[string]int64 `json:"operating_systems"`
}

// LinkAnalytics is the per-link detail payload.
type LinkAnalytics struct {
	Keyword        string          `json:"keyword"`
	TotalClicks    int64           `json:"total_clicks"`
	CreatedAt      time.Time       `json:"created_at"`
	ClicksOverTime []DayBucket     `json:"clicks_over_time"`
	Devices        DeviceBreakdown `json:"devices"`
}

// deviceSampleLimit caps how many click rows are parsed for the device
// breakdown on a single request.
const deviceSampleLimit = 1000

// GetLinkAnalytics returns the all-time click count, a 30-day daily histogram
// and a device breakdown for one active link.
func (a *Aggregator) GetLinkAnalytics(ctx context.Context, keyword string) (*LinkAnalytics, error) {
	link, err := a.storage.GetLink(ctx, keyword)
	if err != nil {
		return nil, err
	}

	totalClicks, err := a.storage.CountClicks(ctx, link.ID)
	if err != nil {
		return nil, err
	}

	since := time.Now().UTC().AddDate(0, 0, -30)
	daily, err := a.storage.ClicksPerDay(ctx, link.ID, since)
	if err != nil {
		return nil, err
	}
	buckets := make([]DayBucket, len(daily))
	for i, d := range daily {
		buckets[i] = DayBucket{Date: d.Day.Format(dateLayout), Clicks: d.Clicks}
	}

	devices, err := a.deviceBreakdown(ctx, link.ID)
	if err != nil {
		return nil, err
	}

	return &LinkAnalytics{
		Keyword:        link.Keyword,
		TotalClicks:    totalClicks,
		CreatedAt:      link.CreatedAt,
		ClicksOverTime: buckets,
		Devices:        devices,
	}, nil
}

func (a *Aggregator) deviceBreakdown(ctx context.Context, linkID int64) (DeviceBreakdown, error) {
	breakdown := DeviceBreakdown{
		DeviceTypes: make(map[string]int64),
		Browsers:    make(map[string]int64),
		Systems:     make(map[string]int64),
	}

	clicks, err := a.storage.ClicksForLink(ctx, linkID, deviceSampleLimit)
	if err != nil {
		return breakdown, err
	}

	for _, click := range clicks {
		ua := ""
		if click.UserAgent != nil {
			ua = *click.UserAgent
		}
		info := a.ua.ParseUserAgent(ua)
		breakdown.DeviceTypes[info.DeviceType]++
		breakdown.Browsers[info.Browser]++
		breakdown.Systems[info.OS]++
	}
	return breakdown, nil
}

// TrendDay is a daily trend bucket: total clicks and distinct links clicked.
type TrendDay struct {
	Date        string `json:"date"`
	Clicks      int64  `json:"clicks"`
	UniqueLinks int64  `json:"unique_links"`
}

// Trends is the time-series payload: daily buckets over the requested window
// plus an hourly breakdown for the current UTC day.
type Trends struct {
	DailyTrends       []TrendDay            `json:"daily_trends"`
	HourlyTrends      []domain.HourlyClicks `json:"hourly_trends"`
	PeriodDays        int                   `json:"period_days"`
	TotalPeriodClicks int64                 `json:"total_period_clicks"`
}

// GetTrends returns daily click trends for the trailing days window (30 when
// days <= 0) and an hourly histogram for today.
func (a *Aggregator) GetTrends(ctx context.Context, days int) (*Trends, error) {
	if days <= 0 {
		days = 30
	}

	now := time.Now().UTC()
	daily, err := a.storage.DailyTrends(ctx, now.AddDate(0, 0, -days))
	if err != nil {
		return nil, err
	}

	trendDays := make([]TrendDay, len(daily))
	var periodClicks int64
	for i, d := range daily {
		trendDays[i] = TrendDay{
			Date:        d.Day.Format(dateLayout),
			Clicks:      d.Clicks,
			UniqueLinks: d.UniqueLinks,
		}
		periodClicks += d.Clicks
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	hourly, err := a.storage.HourlyClicks(ctx, today)
	if err != nil {
		return nil, err
	}

	return &Trends{
		DailyTrends:       trendDays,
		HourlyTrends:      hourly,
		PeriodDays:        days,
		TotalPeriodClicks: periodClicks,
	}, nil
}

// Performance compares the trailing week against the week before it and rolls
// up click totals per category.
type Performance struct {
	ThisWeekTop         []domain.LinkClickCount      `json:"this_week_top"`
	LastWeekTop         []domain.LinkClickCount      `json:"last_week_top"`
	CategoryPerformance []domain.CategoryPerformance `json:"category_performance"`
}

// GetPerformance returns the top ten links for this week and last week plus
// the per-category rollup. The category average is total clicks over total
// links as floating point, 0 when a category has no links.
func (a *Aggregator) GetPerformance(ctx context.Context) (*Performance, error) {
	now := time.Now().UTC()
	weekAgo := now.AddDate(0, 0, -7)
	twoWeeksAgo := now.AddDate(0, 0, -14)

	thisWeek, err := a.storage.TopLinks(ctx, weekAgo, now, 10)
	if err != nil {
		return nil, err
	}
	lastWeek, err := a.storage.TopLinks(ctx, twoWeeksAgo, weekAgo, 10)
	if err != nil {
		return nil, err
	}

	categories, err := a.storage.CategoryPerformance(ctx)
	if err != nil {
		return nil, err
	}
	for i := range categories {
		categories[i].AvgClicksPerLink = safeAverage(categories[i].TotalClicks, categories[i].TotalLinks)
	}

	return &Performance{
		ThisWeekTop:         thisWeek,
		LastWeekTop:         lastWeek,
		CategoryPerformance: categories,
	}, nil
}

// Insight is one derived observation about link usage.
type Insight struct {
	Type    string `json:"type"`
	Icon    string `json:"icon"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// InsightStats is the raw numbers the insights were derived from.
type InsightStats struct {
	TotalLinks       int64   `json:"total_links"`
	TotalClicks      int64   `json:"total_clicks"`
	AvgClicksPerLink float64 `json:"avg_clicks_per_link"`
	UnusedLinks      int64   `json:"unused_links"`
	MostActiveDay    *string `json:"most_active_day"`
	MostPopularHour  *int    `json:"most_popular_hour"`
}

// Insights is the heuristic observations payload.
type Insights struct {
	Insights []Insight    `json:"insights"`
	Stats    InsightStats `json:"stats"`
}

// GetInsights derives best-effort usage observations: engagement level from
// the average clicks per link, unused active links, and whether the busiest
// hour of day falls inside work hours.
func (a *Aggregator) GetInsights(ctx context.Context) (*Insights, error) {
	totalLinks, err := a.storage.CountActiveLinks(ctx)
	if err != nil {
		return nil, err
	}
	totalClicks, err := a.storage.CountAllClicks(ctx)
	if err != nil {
		return nil, err
	}
	unusedLinks, err := a.storage.CountUnusedLinks(ctx)
	if err != nil {
		return nil, err
	}
	activeDay, _, err := a.storage.MostActiveDay(ctx)
	if err != nil {
		return nil, err
	}
	popularHour, _, err := a.storage.TopHourOfDay(ctx)
	if err != nil {
		return nil, err
	}

	avgClicks := safeAverage(totalClicks, totalLinks)

	insights := make([]Insight, 0, 3)
	if totalClicks > 0 && totalLinks > 0 {
		if avgClicks > 5 {
			insights = append(insights, Insight{
				Type:    "positive",
				Icon:    "🎉",
				Title:   "Great Engagement!",
				Message: fmt.Sprintf("Your links average %.1f clicks each - that's excellent adoption!", avgClicks),
			})
		} else if avgClicks < 1 {
			insights = append(insights, Insight{
				Type:    "suggestion",
				Icon:    "💡",
				Title:   "Boost Usage",
				Message: "Consider promoting your go links in team channels or adding them to documentation.",
			})
		}
	}

	if unusedLinks > 0 {
		insights = append(insights, Insight{
			Type:    "warning",
			Icon:    "⚠️",
			Title:   "Unused Links",
			Message: fmt.Sprintf("You have %d links with no clicks. Consider removing or promoting them.", unusedLinks),
		})
	}

	if popularHour >= 0 {
		if popularHour >= 9 && popularHour <= 17 {
			insights = append(insights, Insight{
				Type:    "info",
				Icon:    "⏰",
				Title:   "Peak Usage",
				Message: fmt.Sprintf("Most clicks happen at %d:00 - prime work hours!", popularHour),
			})
		} else {
			insights = append(insights, Insight{
				Type:    "info",
				Icon:    "🌙",
				Title:   "After Hours Activity",
				Message: fmt.Sprintf("Peak usage at %d:00 suggests flexible work schedules.", popularHour),
			})
		}
	}

	stats := InsightStats{
		TotalLinks:       totalLinks,
		TotalClicks:      totalClicks,
		AvgClicksPerLink: avgClicks,
		UnusedLinks:      unusedLinks,
	}
	if !activeDay.IsZero() {
		day := activeDay.Format(dateLayout)
		stats.MostActiveDay = &day
	}
	if popularHour >= 0 {
		stats.MostPopularHour = &popularHour
	}

	return &Insights{Insights: insights, Stats: stats}, nil
}

// safeAverage divides clicks by links in floating point, returning 0 when
// there are no links.
func safeAverage(clicks, links int64) float64 {
	if links == 0 {
		return 0
	}
	return float64(clicks) / float64(links)
}
