package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dixxanta08/dixxanta-portfoilio/internal/present"
	"github.com/dixxanta08/dixxanta-portfoilio/internal/wire"
)

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func addOutputFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "output", "o", "", "output format: plain|pretty|json|html (default pretty on a terminal, plain otherwise)")
	_ = cmd.RegisterFlagCompletionFunc("output", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"plain", "pretty", "json", "html"}, cobra.ShellCompDirectiveNoFileComp
	})
}

// outputOptions resolves --output. Without it, terminals get tty and
// everything else plain text.
func outputOptions(cmd *cobra.Command, app *wire.App, name string, tty present.Mode) (present.Options, error) {
	mode := present.ModePlain
	if name == "" {
		if isTerminal(cmd.OutOrStdout()) {
			mode = tty
		}
	} else {
		m, ok := present.ParseMode(name)
		if !ok {
			return present.Options{}, fmt.Errorf("unknown output %q (want plain, pretty, json or html)", name)
		}
		mode = m
	}
	return present.Options{
		Mode:       mode,
		JSONIndent: true,
		Headers:    true,
		Width:      app.Cfg.GetInt("output.width"),
	}, nil
}
