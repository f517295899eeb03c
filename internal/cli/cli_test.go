package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"taskman/internal/config"
	"taskman/internal/task"
)

// run executes the root command with the given args against the test task file.
func run(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

// setupTaskFile points the CLI at a fresh task file and returns its path.
// Flag variables persist across Execute calls, so they are reset here.
func setupTaskFile(t *testing.T) string {
	t.Helper()
	taskFileFlag = ""
	addPriority, addNotes, addProject = "", "", ""
	listStatus, listPriority, listProject = "", "", ""
	exportFormat, exportOut = "json", ""

	path := filepath.Join(t.TempDir(), "tasks.json")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(config.EnvTaskFile, path)
	return path
}

// readTasks decodes the task file.
func readTasks(t *testing.T, path string) []*task.Task {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read task file: %v", err)
	}
	var tasks []*task.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		t.Fatalf("task file is not valid JSON: %v", err)
	}
	return tasks
}

func TestAddCommand(t *testing.T) {
	path := setupTaskFile(t)

	if err := run(t, "add", "Buy", "groceries", "--priority", "high", "--project", "home"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tasks := readTasks(t, path)
	if len(tasks) != 1 {
		t.Fatalf("got %d tasks, want 1", len(tasks))
	}
	got := tasks[0]
	if got.Title != "Buy groceries" {
		t.Errorf("got title %q", got.Title)
	}
	if got.Priority != task.PriorityHigh {
		t.Errorf("got priority %q", got.Priority)
	}
	if got.Project != "home" {
		t.Errorf("got project %q", got.Project)
	}
	if got.Status != task.StatusPending {
		t.Errorf("got status %q", got.Status)
	}
	if got.ID == "" {
		t.Error("id not assigned")
	}
}

func TestAddCommandInvalidPriority(t *testing.T) {
	setupTaskFile(t)

	if err := run(t, "add", "Task", "--priority", "urgent"); err == nil {
		t.Fatal("expected error for invalid priority")
	}
}

func TestDoneCommand(t *testing.T) {
	path := setupTaskFile(t)

	if err := run(t, "add", "Finish", "--priority", "low"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	id := readTasks(t, path)[0].ID

	if err := run(t, "done", id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := readTasks(t, path)[0]
	if got.Status != task.StatusDone {
		t.Errorf("got status %q, want done", got.Status)
	}
	if got.CompletedAt == nil {
		t.Error("completedAt not set")
	}
}

func TestDoneCommandUnknownID(t *testing.T) {
	setupTaskFile(t)

	if err := run(t, "done", "nope42"); err == nil {
		t.Fatal("expected error for unknown id")
	}
}

func TestRmCommand(t *testing.T) {
	path := setupTaskFile(t)

	if err := run(t, "add", "Ephemeral", "--priority", "low"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	id := readTasks(t, path)[0].ID

	if err := run(t, "rm", id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := readTasks(t, path); len(got) != 0 {
		t.Errorf("got %d tasks, want 0", len(got))
	}
}

func TestUpdateCommand(t *testing.T) {
	path := setupTaskFile(t)

	if err := run(t, "add", "Original", "--priority", "low"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	id := readTasks(t, path)[0].ID

	if err := run(t, "update", id, "--title", "Renamed", "--status", "in_progress"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := readTasks(t, path)[0]
	if got.Title != "Renamed" {
		t.Errorf("got title %q", got.Title)
	}
	if got.Status != task.StatusInProgress {
		t.Errorf("got status %q", got.Status)
	}
	if got.Priority != task.PriorityLow {
		t.Errorf("untouched priority changed: %q", got.Priority)
	}
}

func TestExportCommand(t *testing.T) {
	path := setupTaskFile(t)

	if err := run(t, "add", "Exportable", "--priority", "medium"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := filepath.Join(filepath.Dir(path), "export.csv")
	if err := run(t, "export", "--format", "csv", "--out", out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("export file not written: %v", err)
	}
	if len(data) == 0 {
		t.Error("export file is empty")
	}
}

func TestListCommandRejectsBadFilter(t *testing.T) {
	setupTaskFile(t)

	if err := run(t, "list", "--status", "archived"); err == nil {
		t.Fatal("expected error for invalid status filter")
	}
}
