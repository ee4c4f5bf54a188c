package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "site.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLinkClicks(t *testing.T) {
	s := openTestStore(t)

	if err := s.SyncLink("github", "https://github.com/old"); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if _, err := s.RecordClick("github"); err != nil {
			t.Fatal(err)
		}
	}
	// Re-syncing updates the target but keeps the counter.
	if err := s.SyncLink("github", "https://github.com/carcruz97/"); err != nil {
		t.Fatal(err)
	}
	url, err := s.RecordClick("github")
	if err != nil {
		t.Fatal(err)
	}
	if url != "https://github.com/carcruz97/" {
		t.Errorf("url = %q", url)
	}

	links, err := s.Links()
	if err != nil {
		t.Fatal(err)
	}
	if len(links) != 1 || links[0].Clicks != 4 {
		t.Fatalf("links = %+v", links)
	}

	if err := s.ResetClicks("github"); err != nil {
		t.Fatal(err)
	}
	links, _ = s.Links()
	if links[0].Clicks != 0 {
		t.Errorf("clicks after reset = %d", links[0].Clicks)
	}
}

func TestUnknownLink(t *testing.T) {
	s := openTestStore(t)

	if _, err := s.RecordClick("nope"); !errors.Is(err, ErrLinkNotFound) {
		t.Errorf("RecordClick err = %v", err)
	}
	if err := s.ResetClicks("nope"); !errors.Is(err, ErrLinkNotFound) {
		t.Errorf("ResetClicks err = %v", err)
	}
}

func TestVisitorStatsAndCleanup(t *testing.T) {
	s := openTestStore(t)
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	visits := []struct {
		at time.Time
		ip string
	}{
		{now.AddDate(-2, 0, 0), "aaaa"},
		{now.AddDate(0, 0, -3), "bbbb"},
		{now.Add(-2 * time.Hour), "bbbb"},
		{now, "cccc"},
	}
	for _, v := range visits {
		at := v.at
		s.now = func() time.Time { return at }
		if err := s.RecordVisit(v.ip, "test-agent", "/"); err != nil {
			t.Fatal(err)
		}
	}
	s.now = func() time.Time { return now }
	s.SyncLink("medium", "https://medium.com/@carcruz97")
	s.RecordClick("medium")

	stats, err := s.Stats()
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalVisitors != 4 || stats.UniqueVisitors != 3 {
		t.Errorf("total=%d unique=%d", stats.TotalVisitors, stats.UniqueVisitors)
	}
	if stats.VisitorsToday != 2 || stats.VisitorsThisWeek != 3 {
		t.Errorf("today=%d week=%d", stats.VisitorsToday, stats.VisitorsThisWeek)
	}
	if stats.TotalLinks != 1 || stats.TotalClicks != 1 {
		t.Errorf("links=%d clicks=%d", stats.TotalLinks, stats.TotalClicks)
	}
	if len(stats.RecentVisitors) != 4 || stats.RecentVisitors[0].HashedIP != "cccc" {
		t.Errorf("recent = %+v", stats.RecentVisitors)
	}

	n, err := s.CleanupVisitors(now.AddDate(-1, 0, 0))
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("cleanup removed %d, want 1", n)
	}
}
