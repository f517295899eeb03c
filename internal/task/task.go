package task

import (
	"strings"
	"time"
)

// Task represents a single tracked task.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Priority    Priority   `json:"priority"`
	Status      Status     `json:"status"`
	Project     string     `json:"project,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// Priority is a task priority level.
type Priority string

// Priority constants
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Status is a task lifecycle state.
type Status string

// Status constants
const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
	StatusCancelled  Status = "cancelled"
)

// Priorities lists all valid priorities in ascending order.
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// Statuses lists all valid statuses.
func Statuses() []Status {
	return []Status{StatusPending, StatusInProgress, StatusDone, StatusCancelled}
}

// Valid reports whether p is one of the known priority levels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusDone, StatusCancelled:
		return true
	}
	return false
}

// ParsePriority converts user input to a Priority.
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", validationf("priority", "invalid priority: %q (valid: low, medium, high)", s)
	}
	return p, nil
}

// ParseStatus converts user input to a Status.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	if !st.Valid() {
		return "", validationf("status", "invalid status: %q (valid: pending, in_progress, done, cancelled)", s)
	}
	return st, nil
}

// Validate checks the task's closed-set fields and required title.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return validationf("title", "title cannot be empty")
	}
	if !t.Priority.Valid() {
		return validationf("priority", "invalid priority: %q", string(t.Priority))
	}
	if !t.Status.Valid() {
		return validationf("status", "invalid status: %q", string(t.Status))
	}
	return nil
}
