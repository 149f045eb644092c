package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	apperrors "github.com/jmin1219/taskflow/internal/errors"
	model "github.com/jmin1219/taskflow/internal/models"
	repository "github.com/jmin1219/taskflow/internal/repositories"
)

// TaskService owns the task data model. Every read and write goes through
// it, and it enforces the model's invariants on every mutation. Callers
// get value snapshots back, never live handles into storage.
type TaskService struct {
	repo *repository.TaskRepository
}

func NewTaskService(repo *repository.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

type CreateTaskInput struct {
	Title       string
	Description string
	Priority    int // 0 means default
	DueDate     *time.Time
}

// TaskChanges is a partial change set for UpdateTask. Nil fields are
// left untouched.
type TaskChanges struct {
	Title       *string
	Description *string
	Priority    *int
	Status      *model.TaskStatus
	DueDate     *time.Time
}

func (c TaskChanges) Empty() bool {
	return c.Title == nil && c.Description == nil && c.Priority == nil &&
		c.Status == nil && c.DueDate == nil
}

// TodayView partitions the current task set for at-a-glance display.
// The partitions are not mutually exclusive: an in-progress task due
// today shows up in both DueToday and InProgress.
type TodayView struct {
	Overdue    []model.Task `json:"overdue"`
	DueToday   []model.Task `json:"due_today"`
	InProgress []model.Task `json:"in_progress"`
}

type Stats struct {
	Total          int64  `json:"total_tasks"`
	Pending        int64  `json:"pending"`
	InProgress     int64  `json:"in_progress"`
	Done           int64  `json:"done"`
	Overdue        int64  `json:"overdue_tasks"`
	CompletionRate string `json:"completion_rate"`
}

func (s *TaskService) CreateTask(ctx context.Context, in CreateTaskInput) (*model.Task, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, apperrors.ErrTitleRequired
	}

	priority := in.Priority
	if priority == 0 {
		priority = model.PriorityDefault
	}
	if !model.ValidPriority(priority) {
		return nil, apperrors.ErrPriorityOutOfRange
	}

	task := &model.Task{
		Title:       in.Title,
		Description: in.Description,
		Status:      model.StatusPending,
		Priority:    priority,
		DueDate:     in.DueDate,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) GetTask(ctx context.Context, id uint) (*model.Task, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *TaskService) ListTasks(ctx context.Context, filter repository.ListFilter) ([]model.Task, error) {
	if filter.Status != "" && !model.ValidStatus(filter.Status) {
		return nil, apperrors.ErrInvalidStatus
	}
	if filter.Priority != 0 && !model.ValidPriority(filter.Priority) {
		return nil, apperrors.ErrPriorityOutOfRange
	}
	return s.repo.List(ctx, filter)
}

// UpdateTask applies only the supplied fields and re-validates the merged
// result against the same invariants as create. Any status transition is
// allowed, including reopening a done task.
func (s *TaskService) UpdateTask(ctx context.Context, id uint, changes TaskChanges) (*model.Task, error) {
	if changes.Empty() {
		return nil, apperrors.ErrNoChanges
	}

	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if changes.Title != nil {
		task.Title = *changes.Title
	}
	if changes.Description != nil {
		task.Description = *changes.Description
	}
	if changes.Priority != nil {
		task.Priority = *changes.Priority
	}
	if changes.Status != nil {
		task.Status = *changes.Status
	}
	if changes.DueDate != nil {
		task.DueDate = changes.DueDate
	}

	if strings.TrimSpace(task.Title) == "" {
		return nil, apperrors.ErrTitleRequired
	}
	if !model.ValidPriority(task.Priority) {
		return nil, apperrors.ErrPriorityOutOfRange
	}
	if !model.ValidStatus(task.Status) {
		return nil, apperrors.ErrInvalidStatus
	}

	if err := s.repo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// MarkDone is the shortcut for setting status to done. Marking a task
// that is already done is rejected.
func (s *TaskService) MarkDone(ctx context.Context, id uint) (*model.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task.Status == model.StatusDone {
		return nil, apperrors.ErrTaskAlreadyDone
	}

	task.Status = model.StatusDone
	if err := s.repo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func (s *TaskService) TodayView(ctx context.Context, now time.Time) (*TodayView, error) {
	overdue, err := s.repo.ListOverdue(ctx, now)
	if err != nil {
		return nil, err
	}
	dueToday, err := s.repo.ListDueToday(ctx, now)
	if err != nil {
		return nil, err
	}
	inProgress, err := s.repo.ListInProgress(ctx)
	if err != nil {
		return nil, err
	}

	return &TodayView{
		Overdue:    overdue,
		DueToday:   dueToday,
		InProgress: inProgress,
	}, nil
}

func (s *TaskService) Stats(ctx context.Context, now time.Time) (*Stats, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := s.repo.CountByStatus(ctx, model.StatusPending)
	if err != nil {
		return nil, err
	}
	inProgress, err := s.repo.CountByStatus(ctx, model.StatusInProgress)
	if err != nil {
		return nil, err
	}
	done, err := s.repo.CountByStatus(ctx, model.StatusDone)
	if err != nil {
		return nil, err
	}
	overdue, err := s.repo.CountOverdue(ctx, now)
	if err != nil {
		return nil, err
	}

	rate := "0%"
	if total > 0 {
		rate = fmt.Sprintf("%.1f%%", float64(done)/float64(total)*100)
	}

	return &Stats{
		Total:          total,
		Pending:        pending,
		InProgress:     inProgress,
		Done:           done,
		Overdue:        overdue,
		CompletionRate: rate,
	}, nil
}

// ParseDueDate turns CLI/HTTP date input into a due date at day
// granularity. Accepted forms: "today", "tomorrow", "YYYY-MM-DD".
func ParseDueDate(input string, now time.Time) (*time.Time, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "":
		return nil, nil
	case "today":
		d := model.DayStart(now)
		return &d, nil
	case "tomorrow":
		d := model.DayStart(now).AddDate(0, 0, 1)
		return &d, nil
	}

	parsed, err := time.ParseInLocation("2006-01-02", input, now.Location())
	if err != nil {
		return nil, apperrors.ErrInvalidDueDate
	}
	return &parsed, nil
}
