package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dixxanta08/dixxanta-portfoilio/internal/config"
	"github.com/dixxanta08/dixxanta-portfoilio/internal/content"
	"github.com/dixxanta08/dixxanta-portfoilio/internal/server"
	"github.com/dixxanta08/dixxanta-portfoilio/internal/watch"
	"github.com/dixxanta08/dixxanta-portfoilio/internal/wire"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the site and JSON API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			applyConfigFlagOverrides(cmd, app.Cfg, map[string]string{
				"listen":      "http_addr",
				"watch":       "watch.enabled",
				"live-reload": "live_reload",
				"tls-domain":  "tls.domain",
				"http3":       "tls.http3",
			})
			if err := config.CheckConfigValidity(app.Cfg); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cmd, app)
		},
	}
	cmd.Flags().String("listen", "", "listen address (override config http_addr)")
	cmd.Flags().Bool("watch", false, "reload content when files change")
	cmd.Flags().Bool("live-reload", false, "reload open browser tabs after a content change")
	cmd.Flags().String("tls-domain", "", "obtain certificates for this domain")
	cmd.Flags().Bool("http3", false, "also serve HTTP/3 (needs TLS)")
	return cmd
}

func serve(ctx context.Context, cmd *cobra.Command, app *wire.App) error {
	store, err := app.Content(ctx)
	if err != nil {
		return err
	}
	opts := app.ServerOptions()
	pages, err := app.Pages(opts.LiveReload)
	if err != nil {
		return err
	}
	srv := server.New(store, pages, app.Log, opts)
	hub := srv.Hub()
	if hub != nil {
		go hub.Run()
		defer hub.Close()
	}

	if app.Cfg.GetBool("watch.enabled") {
		files, ok := store.(*content.FileStore)
		if !ok {
			app.Log.Warn("watch ignored: content is not read from a directory", "store", app.Cfg.GetString("store"))
		} else {
			w := &watch.Watcher{
				Dirs:     []string{files.Dir(), opts.StaticDir},
				Debounce: app.Debounce(),
				Log:      app.Log,
				OnChange: func(context.Context) {
					if err := files.Reload(); err != nil {
						app.Log.Error("reload failed, keeping previous content", "err", err)
						return
					}
					app.Log.Info("content reloaded", "dir", files.Dir())
					if hub != nil {
						hub.Reload()
					}
				},
			}
			go func() {
				if err := w.Run(ctx); err != nil {
					app.Log.Error("watcher stopped", "err", err)
				}
			}()
		}
	}

	addr := app.Cfg.GetString("http_addr")
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Serving on %s\n", addr)
	return server.Run(ctx, srv.Router(), server.RunOptions{Addr: addr, TLS: app.TLSOptions()}, app.Log)
}
