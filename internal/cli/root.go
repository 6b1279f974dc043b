package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dixxanta08/dixxanta-portfoilio/internal/config"
	"github.com/dixxanta08/dixxanta-portfoilio/internal/content"
	"github.com/dixxanta08/dixxanta-portfoilio/internal/wire"
)

type ctxKey string

const appKey ctxKey = "app"

// skipApp marks commands that run without loading config.
const skipApp = "skip-app"

// Execute is the entrypoint: it builds the root cobra.Command
// and calls its Execute() method to run the CLI.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd constructs the Cobra root command and wires dependencies.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "portfolio",
		Short:         "Portfolio site: serve, build and inspect content",
		SilenceUsage:  true, // don't show usage on runtime errors
		SilenceErrors: true, // let main print errors once
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// completion requests resolve the app themselves, with the flags
			// of the command being completed
			if cmd.Annotations[skipApp] != "" || cmd.Name() == cobra.ShellCompRequestCmd || cmd.Name() == cobra.ShellCompNoDescRequestCmd {
				return nil
			}
			_, err := ensureApp(cmd)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if app, ok := appFrom(cmd); ok {
				return app.Close()
			}
			return nil
		},
	}

	cmd.PersistentFlags().String("config", "", "path to config file (toml|yaml|json)")
	cmd.PersistentFlags().String("content", "", "content directory (overrides content_dir)")

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newBuildCmd())
	cmd.AddCommand(newSitemapCmd())
	cmd.AddCommand(newRenderCmd())
	cmd.AddCommand(newShowCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newSearchCmd())
	cmd.AddCommand(newImportCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newCompletionCmd())

	cmd.Run = func(cmd *cobra.Command, args []string) { _ = cmd.Help() }

	return cmd
}

// ensureApp loads config and builds the App once per command context.
// Completion callbacks call it directly because cobra skips the pre-run
// hooks for them.
func ensureApp(cmd *cobra.Command) (*wire.App, error) {
	if app, ok := appFrom(cmd); ok {
		return app, nil
	}
	v := viper.New()
	if p, _ := cmd.Flags().GetString("config"); p != "" {
		v.SetConfigFile(p)
	}
	if err := config.Load(cmd.Context(), v); err != nil {
		return nil, err
	}
	applyConfigFlagOverrides(cmd, v, map[string]string{"content": "content_dir"})
	if err := config.CheckConfigValidity(v); err != nil {
		return nil, err
	}
	app, err := wire.BuildApp(cmd.Context(), v)
	if err != nil {
		return nil, err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, appKey, app))
	return app, nil
}

func appFrom(cmd *cobra.Command) (*wire.App, bool) {
	if cmd.Context() == nil {
		return nil, false
	}
	app, ok := cmd.Context().Value(appKey).(*wire.App)
	return app, ok
}

func getApp(cmd *cobra.Command) *wire.App {
	app, ok := appFrom(cmd)
	if !ok {
		fmt.Fprintln(os.Stderr, "internal error: app not initialized")
		os.Exit(1)
	}
	return app
}

// notFound rewrites a lookup miss as "not found: <kind> <key>".
func notFound(err error, kind, key string) error {
	if errors.Is(err, content.ErrNotFound) {
		return fmt.Errorf("not found: %s %s", kind, key)
	}
	return err
}
