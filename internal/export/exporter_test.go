package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	apperrors "github.com/jmin1219/taskflow/internal/errors"
	model "github.com/jmin1219/taskflow/internal/models"
	repository "github.com/jmin1219/taskflow/internal/repositories"
	"github.com/jmin1219/taskflow/internal/services"
)

func newTestExporter(t *testing.T) (*Exporter, *services.TaskService) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&model.Task{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	svc := services.NewTaskService(repository.NewTaskRepository(db))
	return NewExporter(svc), svc
}

func TestExporter_JSONRoundTrip(t *testing.T) {
	exporter, svc := newTestExporter(t)
	ctx := context.Background()

	due := model.DayStart(time.Now()).AddDate(0, 0, 3)
	svc.CreateTask(ctx, services.CreateTaskInput{Title: "alpha", Priority: 1, DueDate: &due})
	svc.CreateTask(ctx, services.CreateTaskInput{Title: "beta", Description: "second"})

	data, err := exporter.Export(ctx, "json", repository.ListFilter{})
	if err != nil {
		t.Fatalf("failed to export json: %v", err)
	}

	var parsed []model.Task
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("exported json does not parse: %v", err)
	}

	originals, err := svc.ListTasks(ctx, repository.ListFilter{})
	if err != nil {
		t.Fatalf("failed to list: %v", err)
	}
	if len(parsed) != len(originals) {
		t.Fatalf("expected %d records, got %d", len(originals), len(parsed))
	}
	for i := range originals {
		want, got := originals[i], parsed[i]
		if got.ID != want.ID || got.Title != want.Title || got.Description != want.Description ||
			got.Status != want.Status || got.Priority != want.Priority {
			t.Errorf("record %d differs: want %+v, got %+v", i, want, got)
		}
		if !got.CreatedAt.Equal(want.CreatedAt) {
			t.Errorf("record %d created_at differs", i)
		}
		switch {
		case want.DueDate == nil && got.DueDate != nil,
			want.DueDate != nil && (got.DueDate == nil || !got.DueDate.Equal(*want.DueDate)):
			t.Errorf("record %d due_date differs", i)
		}
	}
}

func TestExporter_CSV(t *testing.T) {
	exporter, svc := newTestExporter(t)
	ctx := context.Background()

	svc.CreateTask(ctx, services.CreateTaskInput{Title: "task, with comma", Priority: 2})

	data, err := exporter.Export(ctx, "csv", repository.ListFilter{})
	if err != nil {
		t.Fatalf("failed to export csv: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("exported csv does not parse: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected header + 1 row, got %d records", len(records))
	}

	wantHeader := []string{"id", "title", "description", "priority", "status", "due_date", "created_at"}
	for i, col := range wantHeader {
		if records[0][i] != col {
			t.Errorf("header column %d: expected %s, got %s", i, col, records[0][i])
		}
	}
	if records[1][1] != "task, with comma" {
		t.Errorf("title not quoted correctly: %q", records[1][1])
	}
	if records[1][4] != string(model.StatusPending) {
		t.Errorf("expected status pending, got %q", records[1][4])
	}
}

func TestExporter_PDF(t *testing.T) {
	exporter, svc := newTestExporter(t)
	ctx := context.Background()

	svc.CreateTask(ctx, services.CreateTaskInput{Title: "render me"})

	data, err := exporter.Export(ctx, "pdf", repository.ListFilter{})
	if err != nil {
		t.Fatalf("failed to export pdf: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("pdf export missing magic header")
	}
}

func TestExporter_StatusFilter(t *testing.T) {
	exporter, svc := newTestExporter(t)
	ctx := context.Background()

	keep, _ := svc.CreateTask(ctx, services.CreateTaskInput{Title: "done one"})
	svc.CreateTask(ctx, services.CreateTaskInput{Title: "pending one"})
	if _, err := svc.MarkDone(ctx, keep.ID); err != nil {
		t.Fatalf("failed to mark done: %v", err)
	}

	data, err := exporter.Export(ctx, "json", repository.ListFilter{Status: model.StatusDone})
	if err != nil {
		t.Fatalf("failed to export: %v", err)
	}

	var parsed []model.Task
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("exported json does not parse: %v", err)
	}
	if len(parsed) != 1 || parsed[0].ID != keep.ID {
		t.Errorf("status filter not applied: %+v", parsed)
	}
}

func TestExporter_UnknownFormat(t *testing.T) {
	exporter, _ := newTestExporter(t)

	_, err := exporter.Export(context.Background(), "xml", repository.ListFilter{})
	if !errors.Is(err, apperrors.ErrUnknownExportFormat) {
		t.Errorf("expected ErrUnknownExportFormat, got %v", err)
	}
}
