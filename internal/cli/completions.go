package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dixxanta08/dixxanta-portfoilio/internal/content"
	"github.com/dixxanta08/dixxanta-portfoilio/internal/search"
)

// completionLimit caps suggestions for slugs and ids.
const completionLimit = 20

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion bash|zsh|fish|powershell",
		Short:                 "Generate shell completion scripts",
		Args:                  cobra.ExactArgs(1),
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		DisableFlagsInUseLine: true,
		Annotations:           map[string]string{skipApp: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			root := cmd.Root()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(out, true)
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			case "powershell":
				return root.GenPowerShellCompletionWithDesc(out)
			default:
				return fmt.Errorf("unsupported shell %q", args[0])
			}
		},
	}
}

func blogKeys(ctx context.Context, s content.Store) ([]string, error) {
	blogs, err := s.Blogs(ctx)
	if err != nil {
		return nil, err
	}
	keys := make([]string, len(blogs))
	for i, b := range blogs {
		keys[i] = b.Slug
	}
	return keys, nil
}

func projectKeys(ctx context.Context, s content.Store) ([]string, error) {
	projects, err := s.Projects(ctx)
	if err != nil {
		return nil, err
	}
	keys := make([]string, len(projects))
	for i, p := range projects {
		keys[i] = p.ID
	}
	return keys, nil
}

// completeKeys fuzzy-completes the first argument from keys.
func completeKeys(keys func(context.Context, content.Store) ([]string, error)) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		app, err := ensureApp(cmd)
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		store, err := app.Content(cmd.Context())
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		all, err := keys(cmd.Context(), store)
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		return search.Complete(toComplete, all, completionLimit), cobra.ShellCompDirectiveNoFileComp
	}
}
