package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"taskman/internal/config"
	"taskman/internal/display"
	"taskman/internal/task"
)

var doneCmd = &cobra.Command{
	Use:   "done <id>...",
	Short: "Mark tasks as done",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutateStore(func(cfg *config.Config, store *task.Store) error {
			for _, id := range args {
				completed, err := store.Complete(id)
				if err != nil {
					return err
				}
				fmt.Println(display.RenderLine(completed))
			}
			return nil
		})
	},
}
