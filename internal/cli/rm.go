package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"taskman/internal/config"
	"taskman/internal/task"
)

var rmCmd = &cobra.Command{
	Use:   "rm <id>...",
	Short: "Delete tasks",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutateStore(func(cfg *config.Config, store *task.Store) error {
			for _, id := range args {
				if err := store.Delete(id); err != nil {
					return err
				}
				fmt.Printf("deleted %s\n", id)
			}
			return nil
		})
	},
}
