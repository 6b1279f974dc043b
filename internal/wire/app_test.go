package wire

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dixxanta08/dixxanta-portfoilio/internal/config"
	"github.com/dixxanta08/dixxanta-portfoilio/internal/content"
	"github.com/dixxanta08/dixxanta-portfoilio/internal/db"
)

func loadConfig(t *testing.T) *viper.Viper {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	v := viper.New()
	require.NoError(t, config.Load(context.Background(), v))
	v.Set("log.level", "error")
	return v
}

func TestContentFromDirectory(t *testing.T) {
	v := loadConfig(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "projects.json"), []byte(`[{"id":"a","name":"A"}]`), 0o600))
	v.Set("content_dir", dir)

	app, err := BuildApp(context.Background(), v)
	require.NoError(t, err)
	defer app.Close()

	s, err := app.Content(context.Background())
	require.NoError(t, err)
	assert.IsType(t, &content.FileStore{}, s)
	again, err := app.Content(context.Background())
	require.NoError(t, err)
	assert.Same(t, s, again)

	p, err := s.Project(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, "A", p.Name)
}

func TestContentFromSQLite(t *testing.T) {
	v := loadConfig(t)
	v.Set("store", "sqlite://"+filepath.Join(t.TempDir(), "site.db"))

	app, err := BuildApp(context.Background(), v)
	require.NoError(t, err)
	s, err := app.Content(context.Background())
	require.NoError(t, err)
	assert.IsType(t, &db.Store{}, s)
	assert.NoError(t, app.Close())
}

func TestBuildAppRejectsBadLogMode(t *testing.T) {
	v := loadConfig(t)
	v.Set("log.mode", "loud")
	_, err := BuildApp(context.Background(), v)
	assert.Error(t, err)
}

func TestOptionsFromConfig(t *testing.T) {
	v := loadConfig(t)
	v.Set("site.base_url", "https://example.com/")
	v.Set("tls.http3", true)
	v.Set("tls.domain", " example.com ")
	v.Set("watch.debounce_ms", 150)

	app, err := BuildApp(context.Background(), v)
	require.NoError(t, err)

	assert.Equal(t, "https://example.com", app.Site().BaseURL)
	opts := app.ServerOptions()
	assert.Equal(t, "https://example.com", opts.BaseURL)
	assert.Equal(t, []string{"/about", "/contact"}, opts.ExtraPaths)
	tlsOpts := app.TLSOptions()
	assert.Equal(t, "example.com", tlsOpts.Domain)
	assert.True(t, tlsOpts.HTTP3)
	assert.Equal(t, "150ms", app.Debounce().String())

	pages, err := app.Pages(false)
	require.NoError(t, err)
	assert.NotNil(t, pages)
}
