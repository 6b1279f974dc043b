package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dixxanta08/dixxanta-portfoilio/internal/content"
)

// ImportResult counts what an Import changed.
type ImportResult struct {
	Blogs    Counts `json:"blogs"`
	Projects Counts `json:"projects"`
	Landing  bool   `json:"landing_changed"`
}

// Counts tallies rows per table.
type Counts struct {
	Added     int `json:"added"`
	Updated   int `json:"updated"`
	Unchanged int `json:"unchanged"`
	Removed   int `json:"removed"`
}

func (c Counts) String() string {
	return fmt.Sprintf("%d added, %d updated, %d unchanged, %d removed", c.Added, c.Updated, c.Unchanged, c.Removed)
}

// Import replaces the stored content with snap in a single transaction.
// Rows whose hash matches are left untouched; rows absent from snap are
// removed.
func (s *Store) Import(ctx context.Context, snap content.Snapshot) (ImportResult, error) {
	var res ImportResult
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return res, err
	}
	defer func() { _ = tx.Rollback() }()

	if res.Blogs, err = importBlogs(ctx, tx, snap.Blogs); err != nil {
		return res, fmt.Errorf("import blogs: %w", err)
	}
	if res.Projects, err = importProjects(ctx, tx, snap.Projects); err != nil {
		return res, fmt.Errorf("import projects: %w", err)
	}
	if res.Landing, err = importLanding(ctx, tx, snap.Landing); err != nil {
		return res, fmt.Errorf("import landing: %w", err)
	}

	mod := snap.ModTime
	if mod.IsZero() {
		mod = time.Now()
	}
	if _, err := tx.ExecContext(ctx, `
INSERT INTO meta(key, value) VALUES(?, ?)
ON CONFLICT(key) DO UPDATE SET value=excluded.value`,
		metaModTime, mod.UTC().Format(time.RFC3339Nano)); err != nil {
		return res, err
	}
	return res, tx.Commit()
}

// existingHashes maps key to hash for every row in table.
func existingHashes(ctx context.Context, tx *sql.Tx, table, key string) (map[string]string, error) {
	rows, err := tx.QueryContext(ctx, fmt.Sprintf(`SELECT %s, hash FROM %s`, key, table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := map[string]string{}
	for rows.Next() {
		var k, h string
		if err := rows.Scan(&k, &h); err != nil {
			return nil, err
		}
		out[k] = h
	}
	return out, rows.Err()
}

// tally classifies one incoming row against the stored hashes.
func tally(c *Counts, have map[string]string, key, hash string) (write bool) {
	old, ok := have[key]
	delete(have, key)
	switch {
	case !ok:
		c.Added++
		return true
	case old != hash:
		c.Updated++
		return true
	default:
		c.Unchanged++
		return false
	}
}

func removeStale(ctx context.Context, tx *sql.Tx, table, key string, stale map[string]string) (int, error) {
	for k := range stale {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE %s=?`, table, key), k); err != nil {
			return 0, err
		}
	}
	return len(stale), nil
}

func importBlogs(ctx context.Context, tx *sql.Tx, blogs []content.BlogPost) (Counts, error) {
	var c Counts
	have, err := existingHashes(ctx, tx, "blogs", "slug")
	if err != nil {
		return c, err
	}
	for i, b := range blogs {
		slug := strings.TrimSpace(b.Slug)
		if slug == "" {
			return c, fmt.Errorf("record %d has no slug", i)
		}
		b.Slug = slug
		h := b.Hash()
		write := tally(&c, have, slug, h)
		if !write {
			// position may still have moved
			if _, err := tx.ExecContext(ctx, `UPDATE blogs SET position=? WHERE slug=?`, i, slug); err != nil {
				return c, err
			}
			continue
		}
		doc, err := json.Marshal(b)
		if err != nil {
			return c, err
		}
		if _, err := tx.ExecContext(ctx, `
INSERT INTO blogs(slug, position, title, published, hash, doc) VALUES(?, ?, ?, ?, ?, ?)
ON CONFLICT(slug) DO UPDATE SET
  position=excluded.position, title=excluded.title, published=excluded.published,
  hash=excluded.hash, doc=excluded.doc`,
			slug, i, b.Title, b.PublishedDate, h, string(doc)); err != nil {
			return c, err
		}
	}
	c.Removed, err = removeStale(ctx, tx, "blogs", "slug", have)
	return c, err
}

func importProjects(ctx context.Context, tx *sql.Tx, projects []content.Project) (Counts, error) {
	var c Counts
	have, err := existingHashes(ctx, tx, "projects", "id")
	if err != nil {
		return c, err
	}
	for i, p := range projects {
		id := strings.TrimSpace(p.ID)
		if id == "" {
			return c, fmt.Errorf("record %d has no id", i)
		}
		p.ID = id
		h := p.Hash()
		if !tally(&c, have, id, h) {
			if _, err := tx.ExecContext(ctx, `UPDATE projects SET position=? WHERE id=?`, i, id); err != nil {
				return c, err
			}
			continue
		}
		doc, err := json.Marshal(p)
		if err != nil {
			return c, err
		}
		if _, err := tx.ExecContext(ctx, `
INSERT INTO projects(id, position, name, hash, doc) VALUES(?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  position=excluded.position, name=excluded.name, hash=excluded.hash, doc=excluded.doc`,
			id, i, p.Name, h, string(doc)); err != nil {
			return c, err
		}
		if err := replaceTags(ctx, tx, id, p.Tags); err != nil {
			return c, err
		}
	}
	// foreign_keys is per connection, so tags are not left to the cascade
	for id := range have {
		if _, err := tx.ExecContext(ctx, `DELETE FROM project_tags WHERE project_id=?`, id); err != nil {
			return c, err
		}
	}
	c.Removed, err = removeStale(ctx, tx, "projects", "id", have)
	return c, err
}

func replaceTags(ctx context.Context, tx *sql.Tx, id string, tags []string) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM project_tags WHERE project_id=?`, id); err != nil {
		return err
	}
	for _, t := range uniqueTags(tags) {
		if _, err := tx.ExecContext(ctx, `INSERT INTO project_tags(project_id, tag) VALUES(?, ?)`, id, t); err != nil {
			return err
		}
	}
	return nil
}

func importLanding(ctx context.Context, tx *sql.Tx, l content.Landing) (bool, error) {
	h := l.Hash()
	var old string
	err := tx.QueryRowContext(ctx, `SELECT hash FROM landing WHERE id=1`).Scan(&old)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return false, err
	}
	if old == h {
		return false, nil
	}
	doc, err := json.Marshal(l)
	if err != nil {
		return false, err
	}
	_, err = tx.ExecContext(ctx, `
INSERT INTO landing(id, hash, doc) VALUES(1, ?, ?)
ON CONFLICT(id) DO UPDATE SET hash=excluded.hash, doc=excluded.doc`, h, string(doc))
	return err == nil, err
}
