package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"taskman/internal/config"
	"taskman/internal/display"
	"taskman/internal/task"
)

var (
	addPriority string
	addNotes    string
	addProject  string
)

var addCmd = &cobra.Command{
	Use:   "add <title...>",
	Short: "Create a task",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := strings.Join(args, " ")

		return mutateStore(func(cfg *config.Config, store *task.Store) error {
			opts := task.CreateOptions{
				Description: addNotes,
				Priority:    cfg.DefaultPriority,
				Project:     addProject,
			}
			if addPriority != "" {
				p, err := task.ParsePriority(addPriority)
				if err != nil {
					return err
				}
				opts.Priority = p
			}

			created, err := store.Create(title, opts)
			if err != nil {
				return err
			}

			fmt.Println(display.RenderLine(created))
			return nil
		})
	},
}

func init() {
	addCmd.Flags().StringVarP(&addPriority, "priority", "p", "", "Priority: low, medium, high")
	addCmd.Flags().StringVarP(&addNotes, "notes", "n", "", "Longer description")
	addCmd.Flags().StringVar(&addProject, "project", "", "Project tag")
}
