// Package tui implements the interactive task browser.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"taskman/internal/config"
	"taskman/internal/display"
	"taskman/internal/task"
)

// filterCycle is the order the tab key walks through status filters.
// nil means no filter.
var filterCycle = []*task.Status{
	nil,
	statusPtr(task.StatusPending),
	statusPtr(task.StatusInProgress),
	statusPtr(task.StatusDone),
	statusPtr(task.StatusCancelled),
}

func statusPtr(s task.Status) *task.Status { return &s }

// Model is the Bubble Tea model for the task browser.
type Model struct {
	store    *task.Store
	cfg      *config.Config
	cursor   int
	filter   int
	adding   bool
	input    textinput.Model
	width    int
	height   int
	dirty    bool
	errMsg   string
	quitting bool
}

// Run starts the TUI. The store file stays locked for the whole session and
// is saved once on exit.
func Run() error {
	cfg, err := config.Load("")
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

	m := NewModel(cfg, store)
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}

	if fm, ok := final.(Model); ok && fm.dirty {
		return store.Save(cfg.TaskFile)
	}
	return nil
}

// NewModel creates the browser model over an already-loaded store.
func NewModel(cfg *config.Config, store *task.Store) Model {
	input := textinput.New()
	input.Placeholder = "Task title"
	input.CharLimit = 120

	return Model{
		store: store,
		cfg:   cfg,
		input: input,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// visible returns the tasks under the current filter.
func (m Model) visible() []*task.Task {
	return m.store.List(task.Filter{Status: filterCycle[m.filter]})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.adding {
			return m.updateAdding(msg)
		}
		return m.updateBrowsing(msg)
	}
	return m, nil
}

func (m Model) updateAdding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.adding = false
		m.input.Reset()
		return m, nil
	case "enter":
		title := strings.TrimSpace(m.input.Value())
		m.adding = false
		m.input.Reset()
		if title == "" {
			return m, nil
		}
		if _, err := m.store.Create(title, task.CreateOptions{Priority: m.cfg.DefaultPriority}); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.dirty = true
		m.errMsg = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tasks := m.visible()

	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(tasks)-1 {
			m.cursor++
		}

	case "tab":
		m.filter = (m.filter + 1) % len(filterCycle)
		m.cursor = 0

	case "a":
		m.adding = true
		m.errMsg = ""
		m.input.Focus()
		return m, textinput.Blink

	case "d":
		if m.cursor < len(tasks) {
			if _, err := m.store.Complete(tasks[m.cursor].ID); err != nil {
				m.errMsg = err.Error()
			} else {
				m.dirty = true
				m.errMsg = ""
				m.clampCursor()
			}
		}

	case "x":
		if m.cursor < len(tasks) {
			if err := m.store.Delete(tasks[m.cursor].ID); err != nil {
				m.errMsg = err.Error()
			} else {
				m.dirty = true
				m.errMsg = ""
				m.clampCursor()
			}
		}
	}

	return m, nil
}

// clampCursor keeps the cursor on a visible task after a mutation shrinks
// the filtered list.
func (m *Model) clampCursor() {
	n := len(m.visible())
	if n == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(display.TitleStyle.Render("taskman") + "  " + display.SubtleStyle.Render(m.filterLabel()) + "\n\n")

	tasks := m.visible()
	if len(tasks) == 0 {
		b.WriteString(display.SubtleStyle.Render("No tasks. Press a to add one.") + "\n")
	}
	for i, t := range tasks {
		prefix := "  "
		if i == m.cursor {
			prefix = "> "
		}
		b.WriteString(prefix + display.RenderLine(t) + "\n")
	}

	if m.adding {
		b.WriteString("\nNew task: " + m.input.View() + "\n")
		b.WriteString(display.SubtleStyle.Render("enter to save, esc to cancel") + "\n")
	} else {
		b.WriteString("\n" + display.SubtleStyle.Render("j/k move · tab filter · a add · d done · x delete · q quit") + "\n")
	}

	if m.errMsg != "" {
		b.WriteString(display.ErrorStyle.Render("Error: "+m.errMsg) + "\n")
	}
	return b.String()
}

func (m Model) filterLabel() string {
	f := filterCycle[m.filter]
	if f == nil {
		return "all"
	}
	return string(*f)
}
