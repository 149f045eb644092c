package validators

import (
	"strings"

	dto "github.com/jmin1219/taskflow/internal/data_models"
	apperrors "github.com/jmin1219/taskflow/internal/errors"
	model "github.com/jmin1219/taskflow/internal/models"
)

func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) error {
	if strings.TrimSpace(r.Title) == "" {
		return apperrors.ErrTitleRequired
	}
	if r.Priority != 0 && !model.ValidPriority(r.Priority) {
		return apperrors.ErrPriorityOutOfRange
	}
	return nil
}

func ValidateUpdateTaskRequest(r *dto.UpdateTaskRequest) error {
	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		return apperrors.ErrTitleRequired
	}
	if r.Priority != nil && !model.ValidPriority(*r.Priority) {
		return apperrors.ErrPriorityOutOfRange
	}
	if r.Status != nil && !model.ValidStatus(model.TaskStatus(*r.Status)) {
		return apperrors.ErrInvalidStatus
	}
	return nil
}
