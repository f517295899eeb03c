package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"taskman/internal/display"
	"taskman/internal/task"
)

var (
	listStatus   string
	listPriority string
	listProject  string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks, optionally filtered",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var filter task.Filter

		if listStatus != "" {
			s, err := task.ParseStatus(listStatus)
			if err != nil {
				return err
			}
			filter.Status = &s
		}
		if listPriority != "" {
			p, err := task.ParsePriority(listPriority)
			if err != nil {
				return err
			}
			filter.Priority = &p
		}
		if listProject != "" {
			filter.Project = &listProject
		}

		_, store, err := openStore()
		if err != nil {
			return err
		}

		fmt.Print(display.RenderList(store.List(filter)))
		return nil
	},
}

func init() {
	listCmd.Flags().StringVarP(&listStatus, "status", "s", "", "Filter by status: pending, in_progress, done, cancelled")
	listCmd.Flags().StringVarP(&listPriority, "priority", "p", "", "Filter by priority: low, medium, high")
	listCmd.Flags().StringVar(&listProject, "project", "", "Filter by project tag")
}
