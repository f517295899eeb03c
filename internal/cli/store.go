package cli

import (
	"fmt"

	"taskman/internal/config"
	"taskman/internal/task"
)

// openStore loads the configuration and the task file for read-only commands.
func openStore() (*config.Config, *task.Store, error) {
	cfg, err := config.Load(taskFileFlag)
	if err != nil {
		return nil, nil, err
	}

	store := task.NewStore()
	if err := store.LoadOrEmpty(cfg.TaskFile); err != nil {
		return nil, nil, err
	}
	return cfg, store, nil
}

// mutateStore runs fn against the store under the file lock and saves the
// result. The lock covers the whole read-modify-write cycle so concurrent
// invocations cannot lose updates.
func mutateStore(fn func(cfg *config.Config, store *task.Store) error) error {
	cfg, err := config.Load(taskFileFlag)
	if err != nil {
		return err
	}
	if err := cfg.EnsureDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	lock := task.NewFileLock(cfg.TaskFile)
	if err := lock.Acquire(); err != nil {
		return err
	}
	defer lock.Release()

	store := task.NewStore()
	if err := store.LoadOrEmpty(cfg.TaskFile); err != nil {
		return err
	}

	if err := fn(cfg, store); err != nil {
		return err
	}

	return store.Save(cfg.TaskFile)
}
