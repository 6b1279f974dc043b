package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const appName = "portfolio"

// applyDefaults seeds Viper with defaults defined in GetConfigOptions.
func applyDefaults(v *viper.Viper) {
	for _, o := range GetConfigOptions() {
		v.SetDefault(o.Key, o.Default)
	}
}

// listKeys may be given as comma-separated strings through the environment.
var listKeys = []string{"site.keywords", "sitemap.extra_paths", "cors.origins"}

// Load resolves configuration with precedence: defaults < file < env.
// The provided Viper instance is mutated with defaults, file contents, and env.
// A missing config file is not an error unless one was set explicitly.
func Load(ctx context.Context, v *viper.Viper) error {
	explicit := v.ConfigFileUsed() != ""
	if !explicit {
		v.SetConfigName("config")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, appName))
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", appName))
		}
		v.AddConfigPath(".")
	}

	applyDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	// PORTFOLIO_SITE_BASE_URL overrides site.base_url and so on
	v.SetEnvPrefix(appName)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if strings.TrimSpace(v.GetString("db_path")) == "" {
		v.Set("db_path", DefaultDBPath())
	}
	for _, key := range listKeys {
		raw := v.Get(key)
		s, ok := raw.(string)
		if !ok {
			continue
		}
		v.Set(key, splitList(s))
	}
	return nil
}

func splitList(s string) []string {
	out := []string{}
	for _, p := range strings.Split(s, ",") {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// defaultDataDir resolves default data dir: $XDG_DATA_HOME/portfolio or ~/.local/share/portfolio
func defaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", appName)
}

// DefaultConfigPath resolves the standard config.toml location.
func DefaultConfigPath() string {
	xdg := os.Getenv("XDG_CONFIG_HOME")
	if xdg == "" {
		home, _ := os.UserHomeDir()
		xdg = filepath.Join(home, ".config")
	}
	return filepath.Join(xdg, appName, "config.toml")
}

// DefaultDBPath is where import writes when no --db is given.
func DefaultDBPath() string {
	return filepath.Join(defaultDataDir(), appName+".db")
}

type ConfigOption struct {
	Key     string
	Default any
	Comment string
}

// GetConfigOptions returns the default configuration options and their meanings.
// This is the single source of truth for default values and generator output.
func GetConfigOptions() []ConfigOption {
	return []ConfigOption{
		// Content and build paths
		{Key: "content_dir", Default: "content", Comment: "Directory holding blogs, projects and landing-content (.json or .yaml)"},
		{Key: "static_dir", Default: "static", Comment: "Static assets served under /static"},
		{Key: "output_dir", Default: "public", Comment: "Static build output directory"},
		{Key: "store", Default: "file", Comment: `Content source: "file" or a sqlite://path url`},
		{Key: "db_path", Default: DefaultDBPath(), Comment: "Default sqlite file written by import"},

		{Key: "http_addr", Default: ":8080", Comment: "HTTP listen address"},
		{Key: "live_reload", Default: false, Comment: "Inject the live-reload script and serve /_live"},

		{Key: "site.name", Default: "Dixanta Nath Shrestha", Comment: "Site and author name"},
		{Key: "site.title", Default: "Dixanta Nath Shrestha - Full-Stack Developer", Comment: "Default page title"},
		{Key: "site.description", Default: "Full-Stack Developer specializing in the MERN stack. Building scalable, maintainable web applications with modern technologies.", Comment: "Default meta description"},
		{Key: "site.base_url", Default: "https://www.dixantashrestha.com.np", Comment: "Canonical base url, no trailing slash"},
		{Key: "site.email", Default: "dixanta@example.com", Comment: "Contact address used by mailto links"},
		{Key: "site.keywords", Default: []string{"Dixanta Nath Shrestha", "Full-Stack Developer", "MERN Stack", "React", "Node.js", "MongoDB", "Express"}, Comment: "Default meta keywords"},

		{Key: "sitemap.extra_paths", Default: []string{"/about", "/contact"}, Comment: "Extra paths listed in sitemap.xml"},

		{Key: "cors.origins", Default: []string{"http://localhost:3000", "http://localhost:8080"}, Comment: "Origins allowed to call /api; empty allows all"},

		{Key: "tls.domain", Default: "", Comment: "Domain for automatic certificates (certmagic)"},
		{Key: "tls.email", Default: "", Comment: "ACME account email"},
		{Key: "tls.storage_dir", Default: "", Comment: "Certificate storage; empty uses data dir"},
		{Key: "tls.cert_file", Default: "", Comment: "PEM certificate when not using automatic certificates"},
		{Key: "tls.key_file", Default: "", Comment: "PEM private key paired with cert_file"},
		{Key: "tls.http3", Default: false, Comment: "Also serve HTTP/3 over QUIC (needs TLS)"},

		{Key: "watch.enabled", Default: false, Comment: "Reload content when files change"},
		{Key: "watch.debounce_ms", Default: 300, Comment: "Quiet period before a reload"},

		{Key: "log.mode", Default: "dev", Comment: `zap config: "dev" or "prod"`},
		{Key: "log.level", Default: "info", Comment: "Minimum log level"},

		{Key: "output.width", Default: 80, Comment: "Terminal wrap width for plain and pretty output"},
	}
}
