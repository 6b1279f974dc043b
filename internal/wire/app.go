package wire

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"

	"github.com/dixxanta08/dixxanta-portfoilio/internal/content"
	"github.com/dixxanta08/dixxanta-portfoilio/internal/db"
	"github.com/dixxanta08/dixxanta-portfoilio/internal/logger"
	"github.com/dixxanta08/dixxanta-portfoilio/internal/seo"
	"github.com/dixxanta08/dixxanta-portfoilio/internal/server"
	"github.com/dixxanta08/dixxanta-portfoilio/internal/site"
)

// App aggregates the major services for easy injection. The content store
// is opened on first use so commands that never read content do not need a
// content directory.
type App struct {
	Cfg *viper.Viper
	Log *logger.Logger

	mu    sync.Mutex
	store content.Store
	db    *db.Store
}

// BuildApp wires dependencies with the provided config.
func BuildApp(ctx context.Context, v *viper.Viper) (*App, error) {
	log, err := logger.New(v.GetString("log.mode"), v.GetString("log.level"))
	if err != nil {
		return nil, err
	}
	return &App{Cfg: v, Log: log}, nil
}

// Content returns the configured store: the content directory, or a sqlite
// database when store is a sqlite:// url.
func (a *App) Content(ctx context.Context) (content.Store, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.store != nil {
		return a.store, nil
	}
	if dsn := a.Cfg.GetString("store"); db.IsDSN(dsn) {
		s, err := db.Open(ctx, dsn)
		if err != nil {
			return nil, err
		}
		a.store, a.db = s, s
		return s, nil
	}
	s, err := content.OpenDir(a.Cfg.GetString("content_dir"))
	if err != nil {
		return nil, err
	}
	a.store = s
	return s, nil
}

// Close releases the database, if one was opened, and flushes the logger.
func (a *App) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	defer a.Log.Sync()
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Site returns the site-wide metadata.
func (a *App) Site() seo.Site {
	return seo.Site{
		Name:        a.Cfg.GetString("site.name"),
		Title:       a.Cfg.GetString("site.title"),
		Description: a.Cfg.GetString("site.description"),
		BaseURL:     strings.TrimRight(a.Cfg.GetString("site.base_url"), "/"),
		Keywords:    a.Cfg.GetStringSlice("site.keywords"),
	}
}

// Pages builds the page renderer. live adds the live-reload script.
func (a *App) Pages(live bool) (*site.Renderer, error) {
	s := a.Site()
	r, err := site.New(site.Options{
		Site:       s,
		Chrome:     site.DefaultChrome(s.Name, a.Cfg.GetString("site.email")),
		LiveReload: live,
	})
	if err != nil {
		return nil, fmt.Errorf("templates: %w", err)
	}
	return r, nil
}

// ServerOptions maps config onto the HTTP routes.
func (a *App) ServerOptions() server.Options {
	return server.Options{
		BaseURL:     a.Site().BaseURL,
		ExtraPaths:  a.Cfg.GetStringSlice("sitemap.extra_paths"),
		StaticDir:   a.Cfg.GetString("static_dir"),
		CORSOrigins: a.Cfg.GetStringSlice("cors.origins"),
		LiveReload:  a.Cfg.GetBool("live_reload"),
	}
}

// TLSOptions maps the tls.* keys.
func (a *App) TLSOptions() server.TLSOptions {
	return server.TLSOptions{
		Domain:     strings.TrimSpace(a.Cfg.GetString("tls.domain")),
		Email:      a.Cfg.GetString("tls.email"),
		StorageDir: a.Cfg.GetString("tls.storage_dir"),
		CertFile:   a.Cfg.GetString("tls.cert_file"),
		KeyFile:    a.Cfg.GetString("tls.key_file"),
		HTTP3:      a.Cfg.GetBool("tls.http3"),
	}
}

// Debounce is the configured quiet period for the content watcher.
func (a *App) Debounce() time.Duration {
	return time.Duration(a.Cfg.GetInt("watch.debounce_ms")) * time.Millisecond
}
