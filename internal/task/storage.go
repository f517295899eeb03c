package task

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Save atomically writes the full task collection to path as a JSON array.
// Uses a temp file + rename so a crash never leaves a half-written file.
func (s *Store) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	tasks := s.tasks
	if tasks == nil {
		// A nil slice would serialize as JSON null instead of []
		tasks = []*Task{}
	}

	// Marshal with 2-space indent so the file stays hand-readable
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal tasks: %w", err)
	}

	tmpPath := fmt.Sprintf("%s.tmp.%d", path, os.Getpid())
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}

// Load reads the task file at path and replaces the in-memory collection.
// A missing file is an error; callers that want empty-on-missing should stat
// first, as LoadOrEmpty does.
func (s *Store) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read task file: %w", err)
	}

	var tasks []*Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return fmt.Errorf("task file is corrupt: %w", err)
	}

	byID := make(map[string]*Task, len(tasks))
	for _, t := range tasks {
		if t == nil {
			return fmt.Errorf("task file is corrupt: null task entry")
		}
		if t.ID == "" {
			return fmt.Errorf("task file is corrupt: task with empty id")
		}
		if _, dup := byID[t.ID]; dup {
			return fmt.Errorf("task file is corrupt: duplicate task id %q", t.ID)
		}
		if err := t.Validate(); err != nil {
			return fmt.Errorf("task file is corrupt: task %s: %w", t.ID, err)
		}
		byID[t.ID] = t
	}

	s.tasks = tasks
	s.byID = byID
	return nil
}

// LoadOrEmpty loads the task file if it exists and leaves the store empty
// otherwise. First-run convenience for the CLI and TUI.
func (s *Store) LoadOrEmpty(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return s.Load(path)
}
