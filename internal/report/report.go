// Package report aggregates task statistics and exports the task list.
package report

import (
	"time"

	"taskman/internal/task"
)

// Daily summarizes the tasks created on a single day.
type Daily struct {
	Date       string
	Total      int
	Completed  int
	ByStatus   map[task.Status]int
	ByPriority map[task.Priority]int
}

// DailyReport builds a summary of the tasks created on the given day.
// Dates are compared in the day's location.
func DailyReport(tasks []*task.Task, day time.Time) Daily {
	report := Daily{
		Date:       day.Format("2006-01-02"),
		ByStatus:   make(map[task.Status]int),
		ByPriority: make(map[task.Priority]int),
	}

	y, m, d := day.Date()
	for _, t := range tasks {
		ty, tm, td := t.CreatedAt.In(day.Location()).Date()
		if ty != y || tm != m || td != d {
			continue
		}
		report.Total++
		report.ByStatus[t.Status]++
		report.ByPriority[t.Priority]++
		if t.Status == task.StatusDone {
			report.Completed++
		}
	}
	return report
}
