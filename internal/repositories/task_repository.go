package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "github.com/jmin1219/taskflow/internal/errors"
	model "github.com/jmin1219/taskflow/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// ListFilter narrows List results. Zero values mean "no filter".
type ListFilter struct {
	Status   model.TaskStatus
	Priority int
	SortBy   string // "id" (default), "priority", "due_date", "created_at"
	Limit    int
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return err
	}
	return nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id uint) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) List(ctx context.Context, filter ListFilter) ([]model.Task, error) {
	query := r.db.WithContext(ctx).Model(&model.Task{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Priority != 0 {
		query = query.Where("priority = ?", filter.Priority)
	}

	switch filter.SortBy {
	case "priority":
		query = query.Order("priority asc").Order("id asc")
	case "due_date":
		query = query.Order("due_date asc").Order("id asc")
	case "created_at":
		query = query.Order("created_at asc").Order("id asc")
	default:
		query = query.Order("id asc")
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var tasks []model.Task
	if err := query.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update persists every mutable column of task. The caller merges partial
// changes beforehand; id and created_at are never touched.
func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	now := time.Now().UTC()
	task.UpdatedAt = &now

	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", task.ID).
		Updates(map[string]interface{}{
			"title":       task.Title,
			"description": task.Description,
			"status":      task.Status,
			"priority":    task.Priority,
			"due_date":    task.DueDate,
			"updated_at":  task.UpdatedAt,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrTaskNotFound
	}
	return nil
}

// Delete removes the row permanently. The Task model carries no
// gorm.DeletedAt column, so this is a hard delete; a second call for the
// same id reports not found.
func (r *TaskRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Task{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) ListOverdue(ctx context.Context, now time.Time) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Where("due_date < ? AND status <> ?", model.DayStart(now), model.StatusDone).
		Order("due_date asc").Order("id asc").
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) ListDueToday(ctx context.Context, now time.Time) ([]model.Task, error) {
	start := model.DayStart(now)
	end := start.AddDate(0, 0, 1)

	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Where("due_date >= ? AND due_date < ? AND status <> ?", start, end, model.StatusDone).
		Order("priority asc").Order("id asc").
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) ListInProgress(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Where("status = ?", model.StatusInProgress).
		Order("id asc").
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) CountByStatus(ctx context.Context, status model.TaskStatus) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("status = ?", status).
		Count(&n).Error
	return n, err
}

func (r *TaskRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Task{}).Count(&n).Error
	return n, err
}

func (r *TaskRepository) CountOverdue(ctx context.Context, now time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("due_date < ? AND status <> ?", model.DayStart(now), model.StatusDone).
		Count(&n).Error
	return n, err
}
