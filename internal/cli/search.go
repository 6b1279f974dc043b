package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dixxanta08/dixxanta-portfoilio/internal/present"
	"github.com/dixxanta08/dixxanta-portfoilio/internal/present/format"
	"github.com/dixxanta08/dixxanta-portfoilio/internal/search"
)

func newSearchCmd() *cobra.Command {
	var limit int
	var output string
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Fuzzy search blog titles and project names",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			if limit < 0 {
				return fmt.Errorf("--limit must not be negative")
			}
			opts, err := outputOptions(cmd, app, output, present.ModePlain)
			if err != nil {
				return err
			}
			store, err := app.Content(cmd.Context())
			if err != nil {
				return err
			}
			hits, err := search.Search(cmd.Context(), store, strings.Join(args, " "), limit)
			if err != nil {
				return err
			}
			if opts.Mode == present.ModeJSON {
				if hits == nil {
					hits = []search.Hit{}
				}
				return format.WriteJSON(cmd.OutOrStdout(), hits, opts.JSONIndent)
			}
			if len(hits) == 0 {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "no matches")
				return nil
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, h := range hits {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", h.Kind, h.Key, h.Title)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "maximum results (0 for all)")
	addOutputFlag(cmd, &output)
	return cmd
}
