package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/gitcal/internal/cli"
	"github.com/arthur-debert/gitcal/pkg/logging"
	"github.com/arthur-debert/gitcal/pkg/ui"
)

func main() {
	rootCmd := cli.NewRootCmd()
	err := rootCmd.Execute()
	_ = logging.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.RenderError(os.Stderr, err))
		os.Exit(1)
	}
}
