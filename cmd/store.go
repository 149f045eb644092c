package cmd

import (
	"fmt"
	"strconv"

	"github.com/joho/godotenv"

	config "github.com/jmin1219/taskflow/internal/configs"
	apperrors "github.com/jmin1219/taskflow/internal/errors"
	export "github.com/jmin1219/taskflow/internal/export"
	model "github.com/jmin1219/taskflow/internal/models"
	repository "github.com/jmin1219/taskflow/internal/repositories"
	"github.com/jmin1219/taskflow/internal/services"
)

// openStore loads configuration and opens the sqlite-backed task store.
// Every subcommand goes through here so the CLI and the API share the
// same seam.
func openStore() (*services.TaskService, config.Config) {
	_ = godotenv.Load()

	cfg := config.Load()
	db := config.New(cfg.DatabaseDSN)
	repo := repository.NewTaskRepository(db)

	return services.NewTaskService(repo), cfg
}

func openExporter() (*export.Exporter, config.Config) {
	svc, cfg := openStore()
	return export.NewExporter(svc), cfg
}

func parseTaskID(arg string) (uint, error) {
	id, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, apperrors.ErrTaskIDRequired
	}
	return uint(id), nil
}

func formatDue(t *model.Task) string {
	if t.DueDate == nil {
		return "-"
	}
	return t.DueDate.Format("2006-01-02")
}

func printTaskLine(t model.Task) {
	fmt.Printf("  #%-4d [%-11s] P%d  %s  (Due: %s)\n",
		t.ID, t.Status, t.Priority, t.Title, formatDue(&t))
}
