package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/dixxanta08/dixxanta-portfoilio/internal/content"
)

const metaModTime = "mod_time"

// Store is an sqlite-backed content.Store. Records are kept as JSON
// documents alongside the columns used for lookup and ordering.
type Store struct{ db *sql.DB }

var (
	_ content.Store     = (*Store)(nil)
	_ content.TagLister = (*Store)(nil)
)

// openSQLite connects using the modernc.org/sqlite driver and migrates.
func openSQLite(ctx context.Context, dsn string) (*Store, error) {
	path := strings.TrimPrefix(strings.TrimSpace(dsn), scheme)
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	dbh, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// set WAL mode
	if _, err := dbh.ExecContext(ctx, `PRAGMA journal_mode=WAL;`); err != nil {
		_ = dbh.Close()
		return nil, err
	}
	// enforce foreign keys
	if _, err := dbh.ExecContext(ctx, `PRAGMA foreign_keys=ON;`); err != nil {
		_ = dbh.Close()
		return nil, err
	}
	if err := migrate(ctx, dbh); err != nil {
		_ = dbh.Close()
		return nil, err
	}
	return &Store{db: dbh}, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS blogs (
  slug TEXT PRIMARY KEY,
  position INTEGER NOT NULL,
  title TEXT NOT NULL,
  published TEXT NOT NULL,
  hash TEXT NOT NULL,
  doc TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_blogs_position ON blogs(position);
CREATE TABLE IF NOT EXISTS projects (
  id TEXT PRIMARY KEY,
  position INTEGER NOT NULL,
  name TEXT NOT NULL,
  hash TEXT NOT NULL,
  doc TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_projects_position ON projects(position);
CREATE TABLE IF NOT EXISTS project_tags (
  project_id TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
  tag TEXT NOT NULL,
  PRIMARY KEY (project_id, tag)
);
CREATE INDEX IF NOT EXISTS idx_project_tags_tag ON project_tags(tag, project_id);
CREATE TABLE IF NOT EXISTS landing (
  id INTEGER PRIMARY KEY CHECK (id = 1),
  hash TEXT NOT NULL,
  doc TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS meta (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
`)
	return err
}

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) Landing(ctx context.Context) (content.Landing, error) {
	var doc string
	err := s.db.QueryRowContext(ctx, `SELECT doc FROM landing WHERE id=1`).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return content.Landing{}, nil
	}
	if err != nil {
		return content.Landing{}, err
	}
	var l content.Landing
	if err := json.Unmarshal([]byte(doc), &l); err != nil {
		return content.Landing{}, fmt.Errorf("decode landing: %w", err)
	}
	return l, nil
}

func (s *Store) Blogs(ctx context.Context) ([]content.BlogPost, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT doc FROM blogs ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []content.BlogPost
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		var b content.BlogPost
		if err := json.Unmarshal([]byte(doc), &b); err != nil {
			return nil, fmt.Errorf("decode blog: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (s *Store) Blog(ctx context.Context, slug string) (content.BlogPost, error) {
	var doc string
	err := s.db.QueryRowContext(ctx, `SELECT doc FROM blogs WHERE slug=?`, slug).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return content.BlogPost{}, content.NotFound("blog", slug)
	}
	if err != nil {
		return content.BlogPost{}, err
	}
	var b content.BlogPost
	if err := json.Unmarshal([]byte(doc), &b); err != nil {
		return content.BlogPost{}, fmt.Errorf("decode blog %q: %w", slug, err)
	}
	return b, nil
}

func (s *Store) Projects(ctx context.Context) ([]content.Project, error) {
	return s.queryProjects(ctx, `SELECT doc FROM projects ORDER BY position ASC`)
}

// ProjectsByTag lists projects carrying tag, compared case-insensitively.
func (s *Store) ProjectsByTag(ctx context.Context, tag string) ([]content.Project, error) {
	return s.queryProjects(ctx, `
SELECT p.doc FROM projects p
JOIN project_tags t ON t.project_id = p.id
WHERE t.tag = ?
ORDER BY p.position ASC`, normalizeTag(tag))
}

func (s *Store) queryProjects(ctx context.Context, q string, args ...any) ([]content.Project, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []content.Project
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		var p content.Project
		if err := json.Unmarshal([]byte(doc), &p); err != nil {
			return nil, fmt.Errorf("decode project: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *Store) Project(ctx context.Context, id string) (content.Project, error) {
	var doc string
	err := s.db.QueryRowContext(ctx, `SELECT doc FROM projects WHERE id=?`, id).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return content.Project{}, content.NotFound("project", id)
	}
	if err != nil {
		return content.Project{}, err
	}
	var p content.Project
	if err := json.Unmarshal([]byte(doc), &p); err != nil {
		return content.Project{}, fmt.Errorf("decode project %q: %w", id, err)
	}
	return p, nil
}

func (s *Store) ModTime(ctx context.Context) (time.Time, error) {
	var v string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key=?`, metaModTime).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, err
	}
	return time.Parse(time.RFC3339Nano, v)
}

func normalizeTag(t string) string { return strings.ToLower(strings.TrimSpace(t)) }

// uniqueTags lowercases, trims and dedupes tags, keeping first-seen order.
func uniqueTags(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = normalizeTag(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
