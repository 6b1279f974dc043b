package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/dixxanta08/dixxanta-portfoilio/internal/present"
)

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a blog post or project",
	}
	cmd.AddCommand(newShowBlogCmd(), newShowProjectCmd())
	return cmd
}

func newShowBlogCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:               "blog <slug>",
		Short:             "Show a blog post with its sections rendered",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeKeys(blogKeys),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			opts, err := outputOptions(cmd, app, output, present.ModePretty)
			if err != nil {
				return err
			}
			store, err := app.Content(cmd.Context())
			if err != nil {
				return err
			}
			b, err := store.Blog(cmd.Context(), args[0])
			if err != nil {
				return notFound(err, "blog", args[0])
			}
			return withPager(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), func(w io.Writer) error {
				return present.RenderBlog(w, b, opts)
			})
		},
	}
	addOutputFlag(cmd, &output)
	return cmd
}

func newShowProjectCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:               "project <id>",
		Short:             "Show a project",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeKeys(projectKeys),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			opts, err := outputOptions(cmd, app, output, present.ModePretty)
			if err != nil {
				return err
			}
			store, err := app.Content(cmd.Context())
			if err != nil {
				return err
			}
			p, err := store.Project(cmd.Context(), args[0])
			if err != nil {
				return notFound(err, "project", args[0])
			}
			return withPager(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), func(w io.Writer) error {
				return present.RenderProject(w, p, opts)
			})
		},
	}
	addOutputFlag(cmd, &output)
	return cmd
}
