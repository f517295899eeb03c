package task

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileLock(t *testing.T) {
	taskFile := func(t *testing.T) string {
		return filepath.Join(t.TempDir(), "tasks.json")
	}

	t.Run("acquire creates lock file with pid", func(t *testing.T) {
		lock := NewFileLock(taskFile(t))
		if err := lock.Acquire(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer lock.Release()

		data, err := os.ReadFile(lock.path)
		if err != nil {
			t.Fatalf("lock file not written: %v", err)
		}
		if string(data) == "" {
			t.Error("lock file is empty")
		}
	})

	t.Run("second acquire by live process fails", func(t *testing.T) {
		file := taskFile(t)
		first := NewFileLock(file)
		if err := first.Acquire(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer first.Release()

		second := NewFileLock(file)
		if err := second.Acquire(); err == nil {
			second.Release()
			t.Fatal("expected error while lock is held")
		}
	})

	t.Run("release is idempotent", func(t *testing.T) {
		lock := NewFileLock(taskFile(t))
		if err := lock.Acquire(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := lock.Release(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := lock.Release(); err != nil {
			t.Errorf("second release failed: %v", err)
		}
	})

	t.Run("stale lock from dead process is reclaimed", func(t *testing.T) {
		file := taskFile(t)
		lock := NewFileLock(file)

		// A PID beyond pid_max is reliably dead
		os.WriteFile(lock.path, []byte("999999999"), 0644)

		if err := lock.Acquire(); err != nil {
			t.Fatalf("stale lock not reclaimed: %v", err)
		}
		lock.Release()
	})

	t.Run("invalid pid in lock file is treated as stale", func(t *testing.T) {
		file := taskFile(t)
		lock := NewFileLock(file)
		os.WriteFile(lock.path, []byte("not-a-pid"), 0644)

		if err := lock.Acquire(); err != nil {
			t.Fatalf("invalid lock not reclaimed: %v", err)
		}
		lock.Release()
	})
}
