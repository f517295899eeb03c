package main

import (
	"fmt"
	"os"

	"taskman/internal/cli"
	"taskman/internal/tui"
)

func main() {
	// If no args, launch the interactive browser; otherwise route to the CLI
	if len(os.Args) == 1 {
		if err := tui.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	} else {
		if err := cli.Execute(); err != nil {
			os.Exit(1)
		}
	}
}
