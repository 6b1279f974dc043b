package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dixxanta08/dixxanta-portfoilio/internal/build"
)

func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Export the site as static files",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			applyConfigFlagOverrides(cmd, app.Cfg, map[string]string{"output": "output_dir"})
			store, err := app.Content(cmd.Context())
			if err != nil {
				return err
			}
			pages, err := app.Pages(false)
			if err != nil {
				return err
			}
			opts := app.ServerOptions()
			out := app.Cfg.GetString("output_dir")
			res, err := build.Site(cmd.Context(), store, pages, build.Options{
				OutputDir:  out,
				StaticDir:  opts.StaticDir,
				ContentDir: app.Cfg.GetString("content_dir"),
				BaseURL:    opts.BaseURL,
				ExtraPaths: opts.ExtraPaths,
				Now:        time.Now(),
				Log:        app.Log,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d pages and %d files to %s\n", len(res.Pages), len(res.Files), out)
			return nil
		},
	}
	cmd.Flags().StringP("output", "o", "", "output directory (override config output_dir)")
	return cmd
}
