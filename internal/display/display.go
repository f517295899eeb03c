// Package display renders tasks and statistics for terminal output.
package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"taskman/internal/report"
	"taskman/internal/task"
)

var (
	// Colors
	primaryColor   = lipgloss.Color("#5FAFAF") // Teal accent
	secondaryColor = lipgloss.Color("#666666") // Gray for secondary text
	successColor   = lipgloss.Color("#87AF87") // Muted sage for done tasks
	warnColor      = lipgloss.Color("#D7AF5F") // Muted amber for high priority
	errorColor     = lipgloss.Color("#AF5F5F") // Muted terracotta for errors

	// TitleStyle for headers
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	// SubtleStyle for ids and secondary text
	SubtleStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	// ErrorStyle for error messages
	ErrorStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	doneStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Strikethrough(true)

	priorityStyles = map[task.Priority]lipgloss.Style{
		task.PriorityLow:    lipgloss.NewStyle().Foreground(secondaryColor),
		task.PriorityMedium: lipgloss.NewStyle().Foreground(primaryColor),
		task.PriorityHigh:   lipgloss.NewStyle().Bold(true).Foreground(warnColor),
	}
)

// statusGlyphs mark each lifecycle state in list output.
var statusGlyphs = map[task.Status]string{
	task.StatusPending:    "[ ]",
	task.StatusInProgress: "[~]",
	task.StatusDone:       "[x]",
	task.StatusCancelled:  "[-]",
}

// RenderList renders tasks one per line.
func RenderList(tasks []*task.Task) string {
	if len(tasks) == 0 {
		return SubtleStyle.Render("No tasks.") + "\n"
	}

	var b strings.Builder
	for _, t := range tasks {
		b.WriteString(RenderLine(t))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderLine renders a single task as a one-line summary.
func RenderLine(t *task.Task) string {
	title := t.Title
	if t.Status == task.StatusDone {
		title = doneStyle.Render(title)
	}

	line := fmt.Sprintf("%s %s  %s  %s",
		statusGlyphs[t.Status],
		SubtleStyle.Render(t.ID),
		title,
		priorityStyles[t.Priority].Render(string(t.Priority)),
	)
	if t.Project != "" {
		line += "  " + SubtleStyle.Render("@"+t.Project)
	}
	return line
}

// RenderTask renders the full detail view of a task.
func RenderTask(t *task.Task) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", TitleStyle.Render(t.Title), SubtleStyle.Render("("+t.ID+")"))
	fmt.Fprintf(&b, "  Status:   %s\n", t.Status)
	fmt.Fprintf(&b, "  Priority: %s\n", priorityStyles[t.Priority].Render(string(t.Priority)))
	if t.Project != "" {
		fmt.Fprintf(&b, "  Project:  %s\n", t.Project)
	}
	if t.Description != "" {
		fmt.Fprintf(&b, "  Notes:    %s\n", t.Description)
	}
	fmt.Fprintf(&b, "  Created:  %s\n", t.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "  Updated:  %s\n", t.UpdatedAt.Format("2006-01-02 15:04"))
	if t.CompletedAt != nil {
		fmt.Fprintf(&b, "  Done:     %s\n", t.CompletedAt.Format("2006-01-02 15:04"))
	}
	return b.String()
}

// RenderStats renders store statistics.
func RenderStats(stats task.Stats) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Tasks") + "\n")
	fmt.Fprintf(&b, "  Total:     %d\n", stats.Total)
	fmt.Fprintf(&b, "  Completed: %d\n", stats.Completed)

	b.WriteString("\n" + TitleStyle.Render("By status") + "\n")
	for _, s := range task.Statuses() {
		fmt.Fprintf(&b, "  %-12s %d\n", s, stats.ByStatus[s])
	}

	b.WriteString("\n" + TitleStyle.Render("By priority") + "\n")
	for _, p := range task.Priorities() {
		fmt.Fprintf(&b, "  %-12s %d\n", p, stats.ByPriority[p])
	}
	return b.String()
}

// RenderDaily renders a daily report.
func RenderDaily(d report.Daily) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Daily report "+d.Date) + "\n")
	fmt.Fprintf(&b, "  Created:   %d\n", d.Total)
	fmt.Fprintf(&b, "  Completed: %d\n", d.Completed)
	if d.Total == 0 {
		return b.String()
	}

	b.WriteString("\n" + TitleStyle.Render("By status") + "\n")
	for _, s := range task.Statuses() {
		if n := d.ByStatus[s]; n > 0 {
			fmt.Fprintf(&b, "  %-12s %d\n", s, n)
		}
	}
	b.WriteString("\n" + TitleStyle.Render("By priority") + "\n")
	for _, p := range task.Priorities() {
		if n := d.ByPriority[p]; n > 0 {
			fmt.Fprintf(&b, "  %-12s %d\n", p, n)
		}
	}
	return b.String()
}
