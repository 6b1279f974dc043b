package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/dixxanta08/dixxanta-portfoilio/internal/sitemap"
)

func newSitemapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sitemap",
		Short: "Print sitemap.xml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			store, err := app.Content(cmd.Context())
			if err != nil {
				return err
			}
			opts := app.ServerOptions()
			entries, err := sitemap.Build(cmd.Context(), store, sitemap.Options{
				BaseURL:    opts.BaseURL,
				ExtraPaths: opts.ExtraPaths,
				Now:        time.Now(),
			})
			if err != nil {
				return err
			}
			return sitemap.Encode(cmd.OutOrStdout(), entries)
		},
	}
}
