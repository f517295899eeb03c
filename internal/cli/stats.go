package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"taskman/internal/display"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show task statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, err := openStore()
		if err != nil {
			return err
		}

		fmt.Print(display.RenderStats(store.Stats()))
		return nil
	},
}
