package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"taskman/internal/display"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a task in detail",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, err := openStore()
		if err != nil {
			return err
		}

		t, err := store.Get(args[0])
		if err != nil {
			return err
		}

		fmt.Print(display.RenderTask(t))
		return nil
	},
}
