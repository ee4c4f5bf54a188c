// Package store keeps the site's privacy-conscious visitor log and the
// social link click counters in SQLite.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	_ "modernc.org/sqlite"
)

// ErrLinkNotFound is returned for slugs that were never synced.
var ErrLinkNotFound = errors.New("link not found")

type Store struct {
	db  *sql.DB
	now func() time.Time
}

const schema = `
CREATE TABLE IF NOT EXISTS visitors (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	hashed_ip TEXT NOT NULL,  -- never the raw address
	user_agent TEXT,
	path TEXT,
	seen_at INTEGER NOT NULL  -- unix seconds
);
CREATE INDEX IF NOT EXISTS visitors_seen_at ON visitors(seen_at);

CREATE TABLE IF NOT EXISTS links (
	slug TEXT PRIMARY KEY,
	url TEXT NOT NULL,
	clicks INTEGER NOT NULL DEFAULT 0,
	created_at INTEGER NOT NULL
);`

// Open opens (creating if needed) the database at path and applies the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	// One writer keeps SQLITE_BUSY away from the tracking goroutines.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate %s: %w", path, err)
	}
	return &Store{db: db, now: time.Now}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Visitor is one tracked page view.
type Visitor struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

func (s *Store) RecordVisit(hashedIP, userAgent, path string) error {
	_, err := s.db.Exec(`
		INSERT INTO visitors (hashed_ip, user_agent, path, seen_at)
		VALUES (?, ?, ?, ?)
	`, hashedIP, userAgent, path, s.now().Unix())
	if err != nil {
		return fmt.Errorf("record visit: %w", err)
	}
	return nil
}

// RecentVisitors returns up to limit visitors, newest first.
func (s *Store) RecentVisitors(limit int) ([]Visitor, error) {
	rows, err := s.db.Query(`
		SELECT id, hashed_ip, COALESCE(user_agent, ''), COALESCE(path, ''), seen_at
		FROM visitors
		ORDER BY seen_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query visitors: %w", err)
	}
	defer rows.Close()

	var visitors []Visitor
	for rows.Next() {
		var v Visitor
		var seen int64
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &seen); err != nil {
			return nil, fmt.Errorf("scan visitor: %w", err)
		}
		v.Timestamp = time.Unix(seen, 0)
		visitors = append(visitors, v)
	}
	return visitors, rows.Err()
}

// CleanupVisitors deletes visitors recorded before cutoff and reports how many went.
func (s *Store) CleanupVisitors(cutoff time.Time) (int64, error) {
	result, err := s.db.Exec(`DELETE FROM visitors WHERE seen_at < ?`, cutoff.Unix())
	if err != nil {
		return 0, fmt.Errorf("cleanup visitors: %w", err)
	}
	n, _ := result.RowsAffected()
	if n > 0 {
		log.Printf("Privacy cleanup: Removed %d visitor records older than %s", n, cutoff.Format("2006-01-02"))
	}
	return n, nil
}

// LinkStat is a social link with its click counter.
type LinkStat struct {
	Slug      string    `json:"slug"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
	Clicks    int64     `json:"clicks"`
}

// SyncLink inserts or updates a link target without touching its clicks.
func (s *Store) SyncLink(slug, url string) error {
	_, err := s.db.Exec(`
		INSERT INTO links (slug, url, clicks, created_at) VALUES (?, ?, 0, ?)
		ON CONFLICT(slug) DO UPDATE SET url = excluded.url
	`, slug, url, s.now().Unix())
	if err != nil {
		return fmt.Errorf("sync link %s: %w", slug, err)
	}
	return nil
}

// RecordClick bumps the counter for slug and returns its target.
func (s *Store) RecordClick(slug string) (string, error) {
	var url string
	err := s.db.QueryRow(`
		UPDATE links SET clicks = clicks + 1 WHERE slug = ? RETURNING url
	`, slug).Scan(&url)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrLinkNotFound
	}
	if err != nil {
		return "", fmt.Errorf("record click %s: %w", slug, err)
	}
	return url, nil
}

func (s *Store) ResetClicks(slug string) error {
	result, err := s.db.Exec(`UPDATE links SET clicks = 0 WHERE slug = ?`, slug)
	if err != nil {
		return fmt.Errorf("reset clicks %s: %w", slug, err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ErrLinkNotFound
	}
	return nil
}

// Links returns every link, most clicked first.
func (s *Store) Links() ([]LinkStat, error) {
	return s.queryLinks(-1)
}

func (s *Store) queryLinks(limit int) ([]LinkStat, error) {
	rows, err := s.db.Query(`
		SELECT slug, url, created_at, clicks
		FROM links
		ORDER BY clicks DESC, slug ASC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query links: %w", err)
	}
	defer rows.Close()

	var out []LinkStat
	for rows.Next() {
		var l LinkStat
		var created int64
		if err := rows.Scan(&l.Slug, &l.URL, &created, &l.Clicks); err != nil {
			return nil, fmt.Errorf("scan link: %w", err)
		}
		l.CreatedAt = time.Unix(created, 0)
		out = append(out, l)
	}
	return out, rows.Err()
}
