package report

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"taskman/internal/task"
)

func fixedTask(id, title string, priority task.Priority, status task.Status, created time.Time) *task.Task {
	t := &task.Task{
		ID:        id,
		Title:     title,
		Priority:  priority,
		Status:    status,
		CreatedAt: created,
		UpdatedAt: created,
	}
	if status == task.StatusDone {
		done := created.Add(time.Hour)
		t.CompletedAt = &done
	}
	return t
}

func TestDailyReport(t *testing.T) {
	day := time.Date(2026, 5, 10, 15, 0, 0, 0, time.UTC)

	tasks := []*task.Task{
		fixedTask("aaa001", "today pending", task.PriorityLow, task.StatusPending, day.Add(-2*time.Hour)),
		fixedTask("aaa002", "today done", task.PriorityHigh, task.StatusDone, day.Add(3*time.Hour)),
		fixedTask("aaa003", "yesterday", task.PriorityHigh, task.StatusPending, day.AddDate(0, 0, -1)),
	}

	t.Run("counts only the given day", func(t *testing.T) {
		got := DailyReport(tasks, day)
		if got.Total != 2 {
			t.Errorf("got total %d, want 2", got.Total)
		}
		if got.Completed != 1 {
			t.Errorf("got completed %d, want 1", got.Completed)
		}
		if got.ByStatus[task.StatusPending] != 1 || got.ByStatus[task.StatusDone] != 1 {
			t.Errorf("unexpected status counts: %v", got.ByStatus)
		}
		if got.ByPriority[task.PriorityLow] != 1 || got.ByPriority[task.PriorityHigh] != 1 {
			t.Errorf("unexpected priority counts: %v", got.ByPriority)
		}
	})

	t.Run("formats the date", func(t *testing.T) {
		got := DailyReport(tasks, day)
		if got.Date != "2026-05-10" {
			t.Errorf("got date %q", got.Date)
		}
	})

	t.Run("empty day", func(t *testing.T) {
		got := DailyReport(tasks, day.AddDate(0, 1, 0))
		if got.Total != 0 {
			t.Errorf("got total %d, want 0", got.Total)
		}
	})
}

func TestExport(t *testing.T) {
	created := time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC)
	tasks := []*task.Task{
		fixedTask("aaa001", "write tests", task.PriorityHigh, task.StatusDone, created),
		fixedTask("aaa002", "ship release", task.PriorityMedium, task.StatusPending, created),
	}

	t.Run("json", func(t *testing.T) {
		out, err := Export(tasks, "json")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(string(out), `"id": "aaa001"`) {
			t.Errorf("missing task in output: %s", out)
		}
	})

	t.Run("csv has header and one row per task", func(t *testing.T) {
		out, err := Export(tasks, "csv")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
		if err != nil {
			t.Fatalf("output is not valid csv: %v", err)
		}
		if len(records) != 3 {
			t.Fatalf("got %d records, want 3", len(records))
		}
		if records[0][0] != "id" || records[0][1] != "title" {
			t.Errorf("unexpected header: %v", records[0])
		}
		if records[1][0] != "aaa001" || records[1][3] != "high" || records[1][4] != "done" {
			t.Errorf("unexpected row: %v", records[1])
		}
		if records[1][8] == "" {
			t.Error("completed_at missing for done task")
		}
		if records[2][8] != "" {
			t.Error("completed_at set for pending task")
		}
	})

	t.Run("pdf output is a pdf document", func(t *testing.T) {
		out, err := Export(tasks, "pdf")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.HasPrefix(out, []byte("%PDF")) {
			t.Errorf("output does not start with %%PDF header")
		}
	})

	t.Run("format is case-insensitive", func(t *testing.T) {
		if _, err := Export(tasks, "CSV"); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("unknown format fails", func(t *testing.T) {
		if _, err := Export(tasks, "xml"); err == nil {
			t.Fatal("expected error")
		}
	})
}
