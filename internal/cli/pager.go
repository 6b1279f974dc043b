package cli

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"
)

const defaultPager = "less -FRSX"

// pagerCommand picks $PORTFOLIO_PAGER, then $PAGER, then less. "cat" or
// "-" turns paging off.
func pagerCommand() string {
	for _, env := range []string{"PORTFOLIO_PAGER", "PAGER"} {
		if p := strings.TrimSpace(os.Getenv(env)); p != "" {
			if p == "cat" || p == "-" {
				return ""
			}
			return p
		}
	}
	return defaultPager
}

// withPager pipes write through the pager when out is a terminal.
func withPager(ctx context.Context, out, errOut io.Writer, write func(io.Writer) error) error {
	outFile, ok := out.(*os.File)
	pager := pagerCommand()
	if !ok || pager == "" || !isTerminal(out) {
		return write(out)
	}
	cmd := exec.CommandContext(ctx, "sh", "-c", pager)
	cmd.Stdout = outFile
	if errFile, ok := errOut.(*os.File); ok {
		cmd.Stderr = errFile
	} else {
		cmd.Stderr = os.Stderr
	}
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return write(out)
	}
	if err := cmd.Start(); err != nil {
		return write(out)
	}
	writeErr := write(stdin)
	_ = stdin.Close()
	waitErr := cmd.Wait()
	if writeErr != nil {
		return writeErr
	}
	return waitErr
}
