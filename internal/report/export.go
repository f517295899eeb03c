package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"taskman/internal/task"
)

// Export formats
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
	FormatPDF  = "pdf"
)

// Export renders the task list in the given format.
func Export(tasks []*task.Task, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case FormatJSON:
		return json.MarshalIndent(tasks, "", "  ")
	case FormatCSV:
		return exportCSV(tasks)
	case FormatPDF:
		return exportPDF(tasks)
	default:
		return nil, fmt.Errorf("unknown export format %q (valid: json, csv, pdf)", format)
	}
}

func exportCSV(tasks []*task.Task) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"id", "title", "description", "priority", "status", "project", "created_at", "updated_at", "completed_at"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, t := range tasks {
		completed := ""
		if t.CompletedAt != nil {
			completed = t.CompletedAt.Format(time.RFC3339)
		}
		record := []string{
			t.ID,
			t.Title,
			t.Description,
			string(t.Priority),
			string(t.Status),
			t.Project,
			t.CreatedAt.Format(time.RFC3339),
			t.UpdatedAt.Format(time.RFC3339),
			completed,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func exportPDF(tasks []*task.Task) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, "Task Report")
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 10)

	for _, t := range tasks {
		line := fmt.Sprintf("[%s] %s (%s, %s)", t.ID, t.Title, t.Priority, t.Status)
		if t.Project != "" {
			line += " project=" + t.Project
		}
		pdf.MultiCell(0, 6, line, "0", "L", false)
		if t.Description != "" {
			pdf.SetFont("Arial", "I", 9)
			pdf.MultiCell(0, 5, t.Description, "0", "L", false)
			pdf.SetFont("Arial", "", 10)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
