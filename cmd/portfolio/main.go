package main

import (
	"fmt"
	"os"

	"github.com/dixxanta08/dixxanta-portfoilio/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "portfolio:", err)
		os.Exit(1)
	}
}
