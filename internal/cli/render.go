package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dixxanta08/dixxanta-portfoilio/internal/markup"
	"github.com/dixxanta08/dixxanta-portfoilio/internal/present"
)

func newRenderCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "render [FILE|-]",
		Short: "Render markup text from a file or stdin",
		Long: `Render classifies each line of the input: "- " starts a list item,
**bold** and *italic* spans make a paragraph with emphasis, blank lines are
dropped. Reads stdin when FILE is omitted or "-".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			opts, err := outputOptions(cmd, app, output, present.ModePretty)
			if err != nil {
				return err
			}
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			return present.RenderNodes(cmd.OutOrStdout(), markup.Render(text), opts)
		},
	}
	addOutputFlag(cmd, &output)
	return cmd
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", err
	}
	return string(b), nil
}
