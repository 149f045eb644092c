package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	apperrors "github.com/jmin1219/taskflow/internal/errors"
	model "github.com/jmin1219/taskflow/internal/models"
	repository "github.com/jmin1219/taskflow/internal/repositories"
	"github.com/jmin1219/taskflow/internal/services"
)

// Exporter serializes the task list to a downloadable byte stream.
// It is a pure read-side transformation with no effect on the store.
type Exporter struct {
	tasks *services.TaskService
}

func NewExporter(tasks *services.TaskService) *Exporter {
	return &Exporter{tasks: tasks}
}

const csvTimeLayout = time.RFC3339

var csvHeader = []string{"id", "title", "description", "priority", "status", "due_date", "created_at"}

// ContentType returns the MIME type for a supported export format.
func ContentType(format string) string {
	switch strings.ToLower(format) {
	case "json":
		return "application/json"
	case "csv":
		return "text/csv"
	case "pdf":
		return "application/pdf"
	}
	return "application/octet-stream"
}

func (e *Exporter) Export(ctx context.Context, format string, filter repository.ListFilter) ([]byte, error) {
	all, err := e.tasks.ListTasks(ctx, filter)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(format) {
	case "json":
		return json.MarshalIndent(all, "", "  ")
	case "csv":
		return writeCSV(all)
	case "pdf":
		return writePDF(all)
	default:
		return nil, apperrors.ErrUnknownExportFormat
	}
}

func writeCSV(tasks []model.Task) ([]byte, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, t := range tasks {
		due := ""
		if t.DueDate != nil {
			due = t.DueDate.Format(csvTimeLayout)
		}
		record := []string{
			fmt.Sprint(t.ID),
			t.Title,
			t.Description,
			fmt.Sprint(t.Priority),
			string(t.Status),
			due,
			t.CreatedAt.Format(csvTimeLayout),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return []byte(b.String()), nil
}

func writePDF(tasks []model.Task) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, "TaskFlow Export")
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 10)

	for _, t := range tasks {
		due := "-"
		if t.DueDate != nil {
			due = t.DueDate.Format("2006-01-02")
		}
		line := fmt.Sprintf("#%d [%s] P%d %s (due %s)", t.ID, t.Status, t.Priority, t.Title, due)
		pdf.MultiCell(0, 6, line, "0", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
