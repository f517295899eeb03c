package task

import (
	"fmt"
	"strings"
	"time"

	"taskman/internal/util"
)

// Store holds the in-memory task collection. Tasks keep insertion order,
// including across save/load round trips.
type Store struct {
	tasks []*Task
	byID  map[string]*Task
	now   func() time.Time
	newID func() (string, error)
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		byID:  make(map[string]*Task),
		now:   time.Now,
		newID: util.GenerateShortID,
	}
}

// CreateOptions holds the optional fields for Create.
type CreateOptions struct {
	Description string
	Priority    Priority
	Project     string
}

// Create adds a new task with a generated id and pending status.
// Priority defaults to medium when unset.
func (s *Store) Create(title string, opts CreateOptions) (*Task, error) {
	priority := opts.Priority
	if priority == "" {
		priority = PriorityMedium
	}

	now := s.now()
	t := &Task{
		Title:       strings.TrimSpace(title),
		Description: opts.Description,
		Priority:    priority,
		Status:      StatusPending,
		Project:     opts.Project,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}

	id, err := s.generateID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate task ID: %w", err)
	}
	t.ID = id

	s.tasks = append(s.tasks, t)
	s.byID[t.ID] = t
	return t, nil
}

// generateID returns a fresh id not already present in the store.
func (s *Store) generateID() (string, error) {
	for attempt := 0; attempt < 10; attempt++ {
		id, err := s.newID()
		if err != nil {
			return "", err
		}
		if _, taken := s.byID[id]; !taken {
			return id, nil
		}
	}
	return "", fmt.Errorf("could not find an unused task ID")
}

// Get returns the task with the given id.
func (s *Store) Get(id string) (*Task, error) {
	t, ok := s.byID[id]
	if !ok {
		return nil, notFound(id)
	}
	return t, nil
}

// Fields holds a partial update. Nil fields are left untouched.
type Fields struct {
	Title       *string
	Description *string
	Priority    *Priority
	Status      *Status
	Project     *string
}

// Update applies the non-nil fields to the task and bumps updatedAt.
// CompletedAt is set when the status transitions to done and cleared when it
// transitions away from done.
func (s *Store) Update(id string, fields Fields) (*Task, error) {
	t, ok := s.byID[id]
	if !ok {
		return nil, notFound(id)
	}

	if fields.Title != nil {
		if strings.TrimSpace(*fields.Title) == "" {
			return nil, validationf("title", "title cannot be empty")
		}
	}
	if fields.Priority != nil && !fields.Priority.Valid() {
		return nil, validationf("priority", "invalid priority: %q", string(*fields.Priority))
	}
	if fields.Status != nil && !fields.Status.Valid() {
		return nil, validationf("status", "invalid status: %q", string(*fields.Status))
	}

	if fields.Title != nil {
		t.Title = strings.TrimSpace(*fields.Title)
	}
	if fields.Description != nil {
		t.Description = *fields.Description
	}
	if fields.Priority != nil {
		t.Priority = *fields.Priority
	}
	if fields.Status != nil && *fields.Status != t.Status {
		if *fields.Status == StatusDone {
			completed := s.now()
			t.CompletedAt = &completed
		} else if t.Status == StatusDone {
			t.CompletedAt = nil
		}
		t.Status = *fields.Status
	}
	if fields.Project != nil {
		t.Project = *fields.Project
	}

	t.UpdatedAt = s.now()
	return t, nil
}

// Complete marks the task as done.
func (s *Store) Complete(id string) (*Task, error) {
	done := StatusDone
	return s.Update(id, Fields{Status: &done})
}

// Delete removes the task with the given id.
func (s *Store) Delete(id string) error {
	if _, ok := s.byID[id]; !ok {
		return notFound(id)
	}
	delete(s.byID, id)
	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			break
		}
	}
	return nil
}

// Filter holds optional list criteria. Nil fields match everything.
type Filter struct {
	Status   *Status
	Priority *Priority
	Project  *string
}

// List returns the tasks matching the filter, in insertion order.
func (s *Store) List(f Filter) []*Task {
	var out []*Task
	for _, t := range s.tasks {
		if f.Status != nil && t.Status != *f.Status {
			continue
		}
		if f.Priority != nil && t.Priority != *f.Priority {
			continue
		}
		if f.Project != nil && t.Project != *f.Project {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Len returns the number of tasks in the store.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Stats summarizes the store contents.
type Stats struct {
	Total      int
	Completed  int
	ByStatus   map[Status]int
	ByPriority map[Priority]int
}

// Stats counts tasks by status and priority.
func (s *Store) Stats() Stats {
	stats := Stats{
		ByStatus:   make(map[Status]int),
		ByPriority: make(map[Priority]int),
	}
	for _, st := range Statuses() {
		stats.ByStatus[st] = 0
	}
	for _, p := range Priorities() {
		stats.ByPriority[p] = 0
	}

	for _, t := range s.tasks {
		stats.Total++
		stats.ByStatus[t.Status]++
		stats.ByPriority[t.Priority]++
		if t.Status == StatusDone {
			stats.Completed++
		}
	}
	return stats
}
