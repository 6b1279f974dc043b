package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dixxanta08/dixxanta-portfoilio/internal/content"
	"github.com/dixxanta08/dixxanta-portfoilio/internal/db"
)

func newImportCmd() *cobra.Command {
	var dsn string
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Copy the content directory into a sqlite database",
		Long: `Import reads content_dir and replaces the database content with it in
one transaction. Unchanged records are left alone; records no longer in the
files are removed. Point store at the same sqlite:// url to serve from it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			if strings.TrimSpace(dsn) == "" {
				dsn = "sqlite://" + app.Cfg.GetString("db_path")
			}
			src, err := content.OpenDir(app.Cfg.GetString("content_dir"))
			if err != nil {
				return err
			}
			snap, err := content.Capture(cmd.Context(), src)
			if err != nil {
				return err
			}
			dst, err := db.Open(cmd.Context(), dsn)
			if err != nil {
				return err
			}
			defer dst.Close()

			res, err := dst.Import(cmd.Context(), snap)
			if err != nil {
				return fmt.Errorf("import: %w", err)
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "Imported into %s\n", dsn)
			_, _ = fmt.Fprintf(out, "  blogs:    %s\n", res.Blogs)
			_, _ = fmt.Fprintf(out, "  projects: %s\n", res.Projects)
			if res.Landing {
				_, _ = fmt.Fprintln(out, "  landing:  updated")
			} else {
				_, _ = fmt.Fprintln(out, "  landing:  unchanged")
			}
			app.Log.Info("import finished", "dsn", dsn, "blogs", res.Blogs.String(), "projects", res.Projects.String())
			return nil
		},
	}
	cmd.Flags().StringVar(&dsn, "db", "", "sqlite:// url to write (default sqlite://<db_path>)")
	return cmd
}
