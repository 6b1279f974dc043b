package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	return dir
}

func TestLoadDefaults(t *testing.T) {
	dir := isolate(t)
	v := viper.New()
	require.NoError(t, Load(context.Background(), v))

	assert.Equal(t, "content", v.GetString("content_dir"))
	assert.Equal(t, "file", v.GetString("store"))
	assert.Equal(t, 300, v.GetInt("watch.debounce_ms"))
	assert.Equal(t, []string{"/about", "/contact"}, v.GetStringSlice("sitemap.extra_paths"))
	assert.Equal(t, filepath.Join(dir, "data", "portfolio", "portfolio.db"), v.GetString("db_path"))
	require.NoError(t, CheckConfigValidity(v))
}

func TestLoadPrecedence(t *testing.T) {
	dir := isolate(t)
	cfg := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("content_dir = \"posts\"\nhttp_addr = \":9000\"\n[site]\nname = \"From File\"\n"), 0o600))
	t.Setenv("PORTFOLIO_HTTP_ADDR", ":9100")
	t.Setenv("PORTFOLIO_CORS_ORIGINS", "https://a.example, https://b.example,")

	v := viper.New()
	v.SetConfigFile(cfg)
	require.NoError(t, Load(context.Background(), v))

	assert.Equal(t, "posts", v.GetString("content_dir"))
	assert.Equal(t, "From File", v.GetString("site.name"))
	assert.Equal(t, ":9100", v.GetString("http_addr"))
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, v.GetStringSlice("cors.origins"))
}

func TestLoadExplicitMissingFile(t *testing.T) {
	dir := isolate(t)
	v := viper.New()
	v.SetConfigFile(filepath.Join(dir, "nope.toml"))
	assert.Error(t, Load(context.Background(), v))
}

func TestCheckConfigValidityInvalid(t *testing.T) {
	isolate(t)
	v := viper.New()
	require.NoError(t, Load(context.Background(), v))
	v.Set("content_dir", " ")
	v.Set("site.base_url", "ftp//nowhere")
	v.Set("store", "postgres://db")
	v.Set("watch.debounce_ms", 0)
	v.Set("output.width", -1)
	v.Set("log.mode", "verbose")
	v.Set("log.level", "loud")
	v.Set("tls.cert_file", "cert.pem")
	v.Set("tls.http3", true)

	err := CheckConfigValidity(v)
	require.Error(t, err)
	msg := err.Error()
	for _, want := range []string{
		"content_dir is required",
		"site.base_url must use http or https",
		"store must be",
		"watch.debounce_ms must be greater than 0",
		"output.width must be greater than 0",
		`unknown log mode "verbose"`,
		`unknown log level "loud"`,
		"tls.cert_file requires tls.key_file",
	} {
		assert.Contains(t, msg, want)
	}
	// cert_file counts as a TLS source even without its key
	assert.NotContains(t, msg, "tls.http3 requires")
}

func TestCheckConfigValidityHTTP3NeedsTLS(t *testing.T) {
	isolate(t)
	v := viper.New()
	require.NoError(t, Load(context.Background(), v))
	v.Set("tls.http3", true)
	err := CheckConfigValidity(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tls.http3 requires tls.domain or tls.cert_file")

	v.Set("tls.domain", "example.com")
	assert.NoError(t, CheckConfigValidity(v))
}

func TestRenderDefaultTOMLParses(t *testing.T) {
	out := RenderDefaultTOML()
	var doc map[string]any
	require.NoError(t, toml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "content", doc["content_dir"])
	site, ok := doc["site"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Dixanta Nath Shrestha", site["name"])
	assert.Less(t, strings.Index(out, "live_reload"), strings.Index(out, "[site]"))
}

func TestUpdateTOML(t *testing.T) {
	existing := "content_dir = \"posts\"\nlegacy = 1\n[site]\nname = \"Me\"\n"
	out, changed := UpdateTOML(existing)
	require.True(t, changed)

	assert.Contains(t, out, "# OUTDATED: option removed from config schema\n# legacy = 1")
	assert.Contains(t, out, `content_dir = "posts"`)
	assert.Equal(t, 1, strings.Count(out, "content_dir ="))
	assert.Contains(t, out, `name = "Me"`)

	var doc map[string]any
	require.NoError(t, toml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "static", doc["static_dir"])
	tls, ok := doc["tls"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, false, tls["http3"])

	again, changed := UpdateTOML(out)
	assert.False(t, changed)
	assert.Equal(t, out, again)
}
