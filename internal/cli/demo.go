package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"taskman/internal/display"
	"taskman/internal/task"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a scripted walkthrough against a throwaway task file",
	Long:  `Run a scripted walkthrough that exercises every store operation: create, complete, filter, stats, and a save/load round trip. Uses a temporary file; your real task file is untouched.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := os.MkdirTemp("", "taskman-demo-")
		if err != nil {
			return fmt.Errorf("failed to create temp dir: %w", err)
		}
		defer os.RemoveAll(dir)

		path := filepath.Join(dir, "tasks.json")
		store := task.NewStore()

		fmt.Println(display.TitleStyle.Render("taskman demo"))
		fmt.Println()

		seed := []struct {
			title    string
			notes    string
			priority task.Priority
		}{
			{"Buy groceries", "Milk and eggs", task.PriorityHigh},
			{"Answer emails", "Clear the inbox", task.PriorityMedium},
			{"Go for a run", "30 minutes", task.PriorityLow},
			{"Prepare the meeting", "Slides for tomorrow", task.PriorityHigh},
		}

		var created []*task.Task
		for _, s := range seed {
			t, err := store.Create(s.title, task.CreateOptions{Description: s.notes, Priority: s.priority})
			if err != nil {
				return err
			}
			created = append(created, t)
		}

		fmt.Println("Added tasks:")
		fmt.Print(display.RenderList(store.List(task.Filter{})))
		fmt.Println()

		// Complete a couple of them
		for _, t := range []*task.Task{created[0], created[2]} {
			if _, err := store.Complete(t.ID); err != nil {
				return err
			}
		}
		fmt.Printf("Completed: %s, %s\n\n", created[0].Title, created[2].Title)

		done := task.StatusDone
		fmt.Println("Done tasks only:")
		fmt.Print(display.RenderList(store.List(task.Filter{Status: &done})))
		fmt.Println()

		fmt.Print(display.RenderStats(store.Stats()))
		fmt.Println()

		if err := store.Save(path); err != nil {
			return err
		}
		fmt.Printf("Saved %d tasks to %s\n", store.Len(), path)

		reloaded := task.NewStore()
		if err := reloaded.Load(path); err != nil {
			return err
		}
		fmt.Printf("Reloaded %d tasks into a fresh store\n\n", reloaded.Len())
		fmt.Print(display.RenderList(reloaded.List(task.Filter{})))

		fmt.Println()
		fmt.Println("Demo finished.")
		return nil
	},
}
