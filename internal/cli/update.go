package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"taskman/internal/config"
	"taskman/internal/display"
	"taskman/internal/task"
)

var (
	updateTitle    string
	updateNotes    string
	updatePriority string
	updateStatus   string
	updateProject  string
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields on a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var fields task.Fields

		// Only flags the user actually set become part of the partial update
		if cmd.Flags().Changed("title") {
			fields.Title = &updateTitle
		}
		if cmd.Flags().Changed("notes") {
			fields.Description = &updateNotes
		}
		if cmd.Flags().Changed("priority") {
			p, err := task.ParsePriority(updatePriority)
			if err != nil {
				return err
			}
			fields.Priority = &p
		}
		if cmd.Flags().Changed("status") {
			s, err := task.ParseStatus(updateStatus)
			if err != nil {
				return err
			}
			fields.Status = &s
		}
		if cmd.Flags().Changed("project") {
			fields.Project = &updateProject
		}

		if fields == (task.Fields{}) {
			return fmt.Errorf("nothing to update: pass at least one of --title, --notes, --priority, --status, --project")
		}

		return mutateStore(func(cfg *config.Config, store *task.Store) error {
			updated, err := store.Update(args[0], fields)
			if err != nil {
				return err
			}
			fmt.Println(display.RenderLine(updated))
			return nil
		})
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateTitle, "title", "", "New title")
	updateCmd.Flags().StringVarP(&updateNotes, "notes", "n", "", "New description")
	updateCmd.Flags().StringVarP(&updatePriority, "priority", "p", "", "New priority: low, medium, high")
	updateCmd.Flags().StringVarP(&updateStatus, "status", "s", "", "New status: pending, in_progress, done, cancelled")
	updateCmd.Flags().StringVar(&updateProject, "project", "", "New project tag")
}
