package db

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dixxanta08/dixxanta-portfoilio/internal/content"
)

func setupTestDB(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "site.db")
	s, err := Open(context.Background(), "sqlite://"+path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func testSnapshot() content.Snapshot {
	return content.Snapshot{
		Landing: content.Landing{Hero: content.Hero{Name: "Dixanta"}},
		Blogs: []content.BlogPost{
			{Slug: "first", Title: "First", PublishedDate: "2025-03-04"},
			{Slug: "second", Title: "Second", PublishedDate: "2025-04-01"},
		},
		Projects: []content.Project{
			{ID: "shop", Name: "Shop", Tags: []string{"E-commerce", "Web"}},
			{ID: "notes", Name: "Notes", Tags: []string{"web", " Web "}},
		},
		ModTime: time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestOpenRejectsUnknownScheme(t *testing.T) {
	_, err := Open(context.Background(), "postgres://localhost/site")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database url")
	assert.True(t, IsDSN(" sqlite:///tmp/x.db"))
	assert.False(t, IsDSN("content"))
}

func TestEmptyStore(t *testing.T) {
	ctx := context.Background()
	s := setupTestDB(t)

	blogs, err := s.Blogs(ctx)
	require.NoError(t, err)
	assert.Empty(t, blogs)
	l, err := s.Landing(ctx)
	require.NoError(t, err)
	assert.Equal(t, content.Landing{}, l)
	mt, err := s.ModTime(ctx)
	require.NoError(t, err)
	assert.True(t, mt.IsZero())
}

func TestImportAndRead(t *testing.T) {
	ctx := context.Background()
	s := setupTestDB(t)

	res, err := s.Import(ctx, testSnapshot())
	require.NoError(t, err)
	assert.Equal(t, Counts{Added: 2}, res.Blogs)
	assert.Equal(t, Counts{Added: 2}, res.Projects)
	assert.True(t, res.Landing)

	blogs, err := s.Blogs(ctx)
	require.NoError(t, err)
	require.Len(t, blogs, 2)
	assert.Equal(t, "first", blogs[0].Slug)

	b, err := s.Blog(ctx, "second")
	require.NoError(t, err)
	assert.Equal(t, "2025-04-01", b.PublishedDate)

	p, err := s.Project(ctx, "shop")
	require.NoError(t, err)
	assert.Equal(t, []string{"E-commerce", "Web"}, p.Tags)

	l, err := s.Landing(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Dixanta", l.Hero.Name)

	mt, err := s.ModTime(ctx)
	require.NoError(t, err)
	assert.True(t, mt.Equal(testSnapshot().ModTime))
}

func TestNotFound(t *testing.T) {
	ctx := context.Background()
	s := setupTestDB(t)
	_, err := s.Blog(ctx, "nope")
	assert.ErrorIs(t, err, content.ErrNotFound)
	_, err = s.Project(ctx, "nope")
	assert.ErrorIs(t, err, content.ErrNotFound)
}

func TestReimportCountsChanges(t *testing.T) {
	ctx := context.Background()
	s := setupTestDB(t)
	snap := testSnapshot()
	_, err := s.Import(ctx, snap)
	require.NoError(t, err)

	res, err := s.Import(ctx, snap)
	require.NoError(t, err)
	assert.Equal(t, Counts{Unchanged: 2}, res.Blogs)
	assert.False(t, res.Landing)

	// reorder, edit one, drop one
	snap.Blogs = []content.BlogPost{
		{Slug: "second", Title: "Second", PublishedDate: "2025-04-01"},
		{Slug: "third", Title: "Third"},
	}
	snap.Projects[0].Name = "Shop v2"
	snap.Projects = snap.Projects[:1]
	res, err = s.Import(ctx, snap)
	require.NoError(t, err)
	assert.Equal(t, Counts{Added: 1, Unchanged: 1, Removed: 1}, res.Blogs)
	assert.Equal(t, Counts{Updated: 1, Removed: 1}, res.Projects)

	blogs, err := s.Blogs(ctx)
	require.NoError(t, err)
	require.Len(t, blogs, 2)
	assert.Equal(t, "second", blogs[0].Slug)
	assert.Equal(t, "third", blogs[1].Slug)

	_, err = s.Blog(ctx, "first")
	assert.ErrorIs(t, err, content.ErrNotFound)
	p, err := s.Project(ctx, "shop")
	require.NoError(t, err)
	assert.Equal(t, "Shop v2", p.Name)
}

func TestImportRejectsMissingKey(t *testing.T) {
	ctx := context.Background()
	s := setupTestDB(t)
	snap := testSnapshot()
	snap.Projects = append(snap.Projects, content.Project{Name: "no id"})
	_, err := s.Import(ctx, snap)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "import projects")

	// the failed import leaves nothing behind
	blogs, err := s.Blogs(ctx)
	require.NoError(t, err)
	assert.Empty(t, blogs)
}

func TestProjectsByTag(t *testing.T) {
	ctx := context.Background()
	s := setupTestDB(t)
	_, err := s.Import(ctx, testSnapshot())
	require.NoError(t, err)

	web, err := s.ProjectsByTag(ctx, "WEB")
	require.NoError(t, err)
	require.Len(t, web, 2)
	assert.Equal(t, "shop", web[0].ID)
	assert.Equal(t, "notes", web[1].ID)

	shop, err := s.ProjectsByTag(ctx, "e-commerce")
	require.NoError(t, err)
	require.Len(t, shop, 1)

	none, err := s.ProjectsByTag(ctx, "mobile")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestUniqueTags(t *testing.T) {
	assert.Equal(t, []string{"web", "api"}, uniqueTags([]string{"Web", " api", "WEB", ""}))
	assert.Nil(t, uniqueTags(nil))
}

func TestImportTrimsKeys(t *testing.T) {
	ctx := context.Background()
	s := setupTestDB(t)
	snap := testSnapshot()
	snap.Blogs = []content.BlogPost{{Slug: " hello ", Title: "Hello"}}
	snap.Projects = []content.Project{{ID: " shop", Name: "Shop"}}
	_, err := s.Import(ctx, snap)
	require.NoError(t, err)

	blogs, err := s.Blogs(ctx)
	require.NoError(t, err)
	require.Len(t, blogs, 1)
	assert.Equal(t, "hello", blogs[0].Slug)
	_, err = s.Blog(ctx, blogs[0].Slug)
	assert.NoError(t, err)

	projects, err := s.Projects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "shop", projects[0].ID)
	_, err = s.Project(ctx, projects[0].ID)
	assert.NoError(t, err)
}
