package build

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dixxanta08/dixxanta-portfoilio/internal/content"
	"github.com/dixxanta08/dixxanta-portfoilio/internal/seo"
	"github.com/dixxanta08/dixxanta-portfoilio/internal/site"
)

func setup(t *testing.T, blogs string) (content.Store, *site.Renderer, string) {
	t.Helper()
	root := t.TempDir()
	dir := filepath.Join(root, "content")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "blogs.json"), []byte(blogs), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "projects.json"), []byte(`[{"id":"shop","name":"Shop"},{"id":"notes","name":"Notes"}]`), 0o600))
	static := filepath.Join(root, "static", "img")
	require.NoError(t, os.MkdirAll(static, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "static", "style.css"), []byte("body{}"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(static, "a.png"), []byte("png"), 0o600))

	store, err := content.OpenDir(dir)
	require.NoError(t, err)
	pages, err := site.New(site.Options{Site: seo.Site{Name: "Dixanta", Title: "Dixanta", BaseURL: "https://example.com"}})
	require.NoError(t, err)
	return store, pages, root
}

func TestSiteWritesEveryRoute(t *testing.T) {
	store, pages, root := setup(t, `[{"slug":"first","title":"First","content":{"sections":[{"heading":"H","content":"**b**"}]}}]`)
	out := filepath.Join(root, "public")
	require.NoError(t, os.MkdirAll(out, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(out, "stale.html"), []byte("old"), 0o600))

	res, err := Site(context.Background(), store, pages, Options{
		OutputDir:  out,
		StaticDir:  filepath.Join(root, "static"),
		BaseURL:    "https://example.com",
		ExtraPaths: []string{"/about"},
		Now:        time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"index.html",
		"projects/index.html",
		"projects/shop/index.html",
		"projects/notes/index.html",
		"blogs/first/index.html",
	}, res.Pages)
	assert.Equal(t, []string{"404.html", "sitemap.xml", "robots.txt"}, res.Files)

	for _, rel := range append(res.Pages, res.Files...) {
		assert.FileExists(t, filepath.Join(out, filepath.FromSlash(rel)))
	}
	blog, err := os.ReadFile(filepath.Join(out, "blogs", "first", "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(blog), "<strong>b</strong>")

	sm, err := os.ReadFile(filepath.Join(out, "sitemap.xml"))
	require.NoError(t, err)
	assert.Contains(t, string(sm), "<loc>https://example.com/about</loc>")

	assert.FileExists(t, filepath.Join(out, "static", "style.css"))
	assert.FileExists(t, filepath.Join(out, "static", "img", "a.png"))
	assert.NoFileExists(t, filepath.Join(out, "stale.html"))
}

func TestSiteRejectsUnsafeKeys(t *testing.T) {
	store, pages, root := setup(t, `[{"slug":"../escape"}]`)
	_, err := Site(context.Background(), store, pages, Options{OutputDir: filepath.Join(root, "public")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be used as a path")
}

func TestPrepareOutputGuards(t *testing.T) {
	_, err := prepareOutput("")
	assert.Error(t, err)
	_, err = prepareOutput("/")
	assert.Error(t, err)
	wd, err := os.Getwd()
	require.NoError(t, err)
	_, err = prepareOutput(wd)
	assert.Error(t, err)
}

func TestPrepareOutputRefusesSourceDirs(t *testing.T) {
	root := t.TempDir()
	static := filepath.Join(root, "static")
	contentDir := filepath.Join(root, "content")
	require.NoError(t, os.MkdirAll(static, 0o755))
	require.NoError(t, os.MkdirAll(contentDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(static, "style.css"), []byte("body{}"), 0o600))

	for name, out := range map[string]string{
		"same as static":   static,
		"inside static":    filepath.Join(static, "public"),
		"contains sources": root,
		"same as content":  contentDir,
		"relative static":  filepath.Join(static, "..", "static"),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := prepareOutput(out, static, contentDir)
			assert.ErrorContains(t, err, "overlaps")
		})
	}
	_, err := os.Stat(filepath.Join(static, "style.css"))
	assert.NoError(t, err)

	out, err := prepareOutput(filepath.Join(root, "public"), static, contentDir, "")
	require.NoError(t, err)
	assert.DirExists(t, out)
}

func TestSiteKeepsStaticWhenOutputIsStatic(t *testing.T) {
	store, pages, root := setup(t, `[]`)
	static := filepath.Join(root, "static")
	_, err := Site(context.Background(), store, pages, Options{OutputDir: static, StaticDir: static})
	require.Error(t, err)
	assert.FileExists(t, filepath.Join(static, "style.css"))
}
