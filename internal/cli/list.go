package cli

import (
	"github.com/spf13/cobra"

	"github.com/dixxanta08/dixxanta-portfoilio/internal/content"
	"github.com/dixxanta08/dixxanta-portfoilio/internal/present"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List blog posts or projects",
	}
	cmd.AddCommand(newListBlogsCmd(), newListProjectsCmd())
	return cmd
}

func newListBlogsCmd() *cobra.Command {
	var output string
	var noHeaders bool
	cmd := &cobra.Command{
		Use:   "blogs",
		Short: "List blog posts in content order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			opts, err := outputOptions(cmd, app, output, present.ModePlain)
			if err != nil {
				return err
			}
			opts.Headers = !noHeaders
			store, err := app.Content(cmd.Context())
			if err != nil {
				return err
			}
			blogs, err := store.Blogs(cmd.Context())
			if err != nil {
				return err
			}
			return present.RenderBlogs(cmd.OutOrStdout(), blogs, opts)
		},
	}
	addOutputFlag(cmd, &output)
	cmd.Flags().BoolVar(&noHeaders, "no-headers", false, "omit the header row in plain output")
	return cmd
}

func newListProjectsCmd() *cobra.Command {
	var output, tag string
	var noHeaders bool
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List projects in content order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			opts, err := outputOptions(cmd, app, output, present.ModePlain)
			if err != nil {
				return err
			}
			opts.Headers = !noHeaders
			store, err := app.Content(cmd.Context())
			if err != nil {
				return err
			}
			var projects []content.Project
			if tl, ok := store.(content.TagLister); ok && tag != "" {
				projects, err = tl.ProjectsByTag(cmd.Context(), tag)
			} else {
				projects, err = store.Projects(cmd.Context())
			}
			if err != nil {
				return err
			}
			return present.RenderProjects(cmd.OutOrStdout(), projects, opts)
		},
	}
	addOutputFlag(cmd, &output)
	cmd.Flags().BoolVar(&noHeaders, "no-headers", false, "omit the header row in plain output")
	cmd.Flags().StringVar(&tag, "tag", "", "only projects carrying this tag (case-insensitive)")
	return cmd
}
