// Package cli implements the taskman command tree.
package cli

import (
	"github.com/spf13/cobra"

	"taskman/internal/version"
)

var taskFileFlag string

var rootCmd = &cobra.Command{
	Use:           "taskman",
	Short:         "Track tasks from the command line",
	Long:          `Taskman keeps a list of tasks with priorities and statuses in a JSON file. Create, update, filter, and complete tasks; export and report on them.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&taskFileFlag, "file", "", "Task file path (default: config dir, or TASKMAN_FILE)")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(remindCmd)
	rootCmd.AddCommand(demoCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
