package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	dto "github.com/jmin1219/taskflow/internal/data_models"
	apperrors "github.com/jmin1219/taskflow/internal/errors"
	"github.com/jmin1219/taskflow/internal/export"
	"github.com/jmin1219/taskflow/internal/http/validators"
	model "github.com/jmin1219/taskflow/internal/models"
	repository "github.com/jmin1219/taskflow/internal/repositories"
	"github.com/jmin1219/taskflow/internal/services"
)

type Handler struct {
	taskService *services.TaskService
	exporter    *export.Exporter
}

func NewHandler(taskService *services.TaskService, exporter *export.Exporter) *Handler {
	return &Handler{
		taskService: taskService,
		exporter:    exporter,
	}
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Welcome to TaskFlow API!",
		"status":  "running",
	})
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return httpError(apperrors.ErrInvalidJSON)
	}
	if err := validators.ValidateCreateTaskRequest(&req); err != nil {
		return httpError(err)
	}

	due, err := services.ParseDueDate(req.DueDate, time.Now())
	if err != nil {
		return httpError(err)
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), services.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		DueDate:     due,
	})
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) GetTask(c echo.Context) error {
	id, err := taskID(c)
	if err != nil {
		return httpError(err)
	}

	task, err := h.taskService.GetTask(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) ListTasks(c echo.Context) error {
	filter, err := listFilter(c)
	if err != nil {
		return httpError(err)
	}

	tasks, err := h.taskService.ListTasks(c.Request().Context(), filter)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count": len(tasks),
		"tasks": tasks,
	})
}

func (h *Handler) UpdateTask(c echo.Context) error {
	id, err := taskID(c)
	if err != nil {
		return httpError(err)
	}

	var req dto.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return httpError(apperrors.ErrInvalidJSON)
	}
	if err := validators.ValidateUpdateTaskRequest(&req); err != nil {
		return httpError(err)
	}

	changes := services.TaskChanges{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
	}
	if req.Status != nil {
		status := model.TaskStatus(*req.Status)
		changes.Status = &status
	}
	if req.DueDate != nil {
		due, err := services.ParseDueDate(*req.DueDate, time.Now())
		if err != nil {
			return httpError(err)
		}
		changes.DueDate = due
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), id, changes)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) MarkDone(c echo.Context) error {
	id, err := taskID(c)
	if err != nil {
		return httpError(err)
	}

	task, err := h.taskService.MarkDone(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c echo.Context) error {
	id, err := taskID(c)
	if err != nil {
		return httpError(err)
	}

	ctx := c.Request().Context()
	task, err := h.taskService.GetTask(ctx, id)
	if err != nil {
		return httpError(err)
	}

	if err := h.taskService.DeleteTask(ctx, id); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, dto.DeleteTaskResponse{
		Message:   fmt.Sprintf("Task %d deleted successfully", id),
		TaskTitle: task.Title,
	})
}

func (h *Handler) TodayView(c echo.Context) error {
	view, err := h.taskService.TodayView(c.Request().Context(), time.Now())
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, view)
}

func (h *Handler) Stats(c echo.Context) error {
	stats, err := h.taskService.Stats(c.Request().Context(), time.Now())
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, stats)
}

func (h *Handler) Export(c echo.Context) error {
	format := c.Param("format")

	filter, err := listFilter(c)
	if err != nil {
		return httpError(err)
	}

	data, err := h.exporter.Export(c.Request().Context(), format, filter)
	if err != nil {
		return httpError(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=taskflow_export.%s", format))
	return c.Blob(http.StatusOK, export.ContentType(format), data)
}

func taskID(c echo.Context) (uint, error) {
	raw := c.Param("id")
	if raw == "" {
		return 0, apperrors.ErrTaskIDRequired
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, apperrors.ErrTaskIDRequired
	}
	return uint(id), nil
}

func listFilter(c echo.Context) (repository.ListFilter, error) {
	filter := repository.ListFilter{
		Status: model.TaskStatus(c.QueryParam("status")),
		SortBy: c.QueryParam("sort"),
	}

	if raw := c.QueryParam("priority"); raw != "" {
		p, err := strconv.Atoi(raw)
		if err != nil {
			return filter, apperrors.ErrPriorityOutOfRange
		}
		filter.Priority = p
	}
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return filter, apperrors.ErrInvalidLimit
		}
		filter.Limit = n
	}

	return filter, nil
}

// httpError translates store errors into structured echo responses so
// validation failures surface as 400s and missing records as 404s.
func httpError(err error) error {
	var ex *apperrors.Exception
	if errors.As(err, &ex) {
		return echo.NewHTTPError(ex.StatusCode, ex.Message)
	}
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}
