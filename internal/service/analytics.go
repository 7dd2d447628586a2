package service

import (
	"context"
	"fmt"
	"sort"
	"time"
)

const topN = 10

type DateCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type NameCount struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

type LinkSummary struct {
	ID           int64     `json:"id"`
	ShortCode    string    `json:"short_code"`
	FullShortURL string    `json:"full_short_url"`
	OriginalURL  string    `json:"original_url"`
	CreatedAt    time.Time `json:"created_at"`
}

type LinkAnalytics struct {
	Link           LinkSummary `json:"link"`
	TotalClicks    int64       `json:"total_clicks"`
	ClicksOverTime []DateCount `json:"clicks_over_time"`
	TopCountries   []NameCount `json:"top_countries"`
	TopDevices     []NameCount `json:"top_devices"`
	TopReferrers   []NameCount `json:"top_referrers"`
}

// AnalyticsService aggregates committed click records into the per-link
// dashboard summary.
type AnalyticsService struct {
	links  LinkStore
	clicks ClickStore
}

func NewAnalyticsService(links LinkStore, clicks ClickStore) *AnalyticsService {
	return &AnalyticsService{links: links, clicks: clicks}
}

func (s *AnalyticsService) Summary(ctx context.Context, linkID, userID int64) (*LinkAnalytics, error) {
	link, err := s.links.LinkByID(ctx, linkID, userID)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, fmt.Errorf("%w: link %d", ErrNotFound, linkID)
	}

	clicks, err := s.clicks.ClicksByLink(ctx, linkID)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]int64)
	byCountry := make(map[string]int64)
	byDevice := make(map[string]int64)
	byReferrer := make(map[string]int64)
	for _, c := range clicks {
		byDate[c.Timestamp.UTC().Format("2006-01-02")]++
		byCountry[orDefault(c.Country, "Unknown")]++
		byDevice[orDefault(c.Device, "Other")]++
		byReferrer[orDefault(c.Referrer, "Direct")]++
	}

	return &LinkAnalytics{
		Link: LinkSummary{
			ID:           link.ID,
			ShortCode:    link.ShortCode,
			FullShortURL: link.FullShortURL,
			OriginalURL:  link.OriginalURL,
			CreatedAt:    link.CreatedAt,
		},
		TotalClicks:    int64(len(clicks)),
		ClicksOverTime: datesAscending(byDate),
		TopCountries:   topByValue(byCountry, topN),
		TopDevices:     topByValue(byDevice, len(byDevice)),
		TopReferrers:   topByValue(byReferrer, topN),
	}, nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func datesAscending(m map[string]int64) []DateCount {
	out := make([]DateCount, 0, len(m))
	for date, count := range m {
		out = append(out, DateCount{Date: date, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

func topByValue(m map[string]int64, limit int) []NameCount {
	out := make([]NameCount, 0, len(m))
	for name, value := range m {
		out = append(out, NameCount{Name: name, Value: value})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value > out[j].Value
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
