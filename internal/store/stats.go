package store

import (
	"fmt"
	"time"
)

// Stats is the admin dashboard summary.
type Stats struct {
	TotalVisitors    int64      `json:"total_visitors"`
	UniqueVisitors   int64      `json:"unique_visitors"`
	VisitorsToday    int64      `json:"visitors_today"`
	VisitorsThisWeek int64      `json:"visitors_this_week"`
	TotalLinks       int64      `json:"total_links"`
	TotalClicks      int64      `json:"total_clicks"`
	TopLinks         []LinkStat `json:"top_links"`
	RecentVisitors   []Visitor  `json:"recent_visitors"`
}

// Stats gathers visitor and link figures. "Today" starts at local midnight.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}
	now := s.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	counts := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{&stats.TotalVisitors, `SELECT COUNT(*) FROM visitors`, nil},
		{&stats.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, nil},
		{&stats.VisitorsToday, `SELECT COUNT(*) FROM visitors WHERE seen_at >= ?`, []any{midnight.Unix()}},
		{&stats.VisitorsThisWeek, `SELECT COUNT(*) FROM visitors WHERE seen_at >= ?`, []any{now.AddDate(0, 0, -7).Unix()}},
		{&stats.TotalLinks, `SELECT COUNT(*) FROM links`, nil},
		{&stats.TotalClicks, `SELECT COALESCE(SUM(clicks), 0) FROM links`, nil},
	}
	for _, c := range counts {
		if err := s.db.QueryRow(c.query, c.args...).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("stats %q: %w", c.query, err)
		}
	}

	var err error
	if stats.TopLinks, err = s.queryLinks(10); err != nil {
		return nil, err
	}
	if stats.RecentVisitors, err = s.RecentVisitors(50); err != nil {
		return nil, err
	}
	return stats, nil
}
