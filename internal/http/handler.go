package http

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	"task-tracker.com/task-tracker/internal/http/validators"
	model "task-tracker.com/task-tracker/internal/models"
	"task-tracker.com/task-tracker/internal/services"
)

type Handler struct {
	taskService *services.TaskService
}

func NewHandler(taskService *services.TaskService) *Handler {
	return &Handler{
		taskService: taskService,
	}
}

func (h *Handler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Task Tracker API",
		"version": "1.0.0",
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

	task, err := h.taskService.CreateTask(c.Request().Context(), &req)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create task")
	}

	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) ListTasks(c echo.Context) error {
	query, err := validators.ParseListTasksQuery(
		c.QueryParam("status"),
		c.QueryParam("priority"),
		c.QueryParam("skip"),
		c.QueryParam("limit"),
	)
	if err != nil {
		return httpError(err)
	}

	tasks, err := h.taskService.ListTasks(c.Request().Context(), query)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list tasks")
	}
	if tasks == nil {
		tasks = []model.Task{}
	}

	return c.JSON(http.StatusOK, tasks)
}

func (h *Handler) GetTask(c echo.Context) error {
	id, err := parseTaskID(c)
	if err != nil {
		return httpError(err)
	}

	task, err := h.taskService.GetTask(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to get task")
	}
	if task == nil {
		return httpError(apperrors.ErrTaskNotFound)
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) UpdateTask(c echo.Context) error {
	id, err := parseTaskID(c)
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

	task, err := h.taskService.UpdateTask(c.Request().Context(), id, &req)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to update task")
	}
	if task == nil {
		return httpError(apperrors.ErrTaskNotFound)
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c echo.Context) error {
	id, err := parseTaskID(c)
	if err != nil {
		return httpError(err)
	}

	deleted, err := h.taskService.DeleteTask(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete task")
	}
	if !deleted {
		return httpError(apperrors.ErrTaskNotFound)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ExportCSV(c echo.Context) error {
	tasks, err := h.taskService.ExportAll(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to export tasks")
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"id", "title", "description", "status", "priority", "created_at", "updated_at"}); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to export tasks")
	}
	for _, t := range tasks {
		row := []string{
			strconv.FormatUint(uint64(t.ID), 10),
			t.Title,
			t.Description,
			string(t.Status),
			string(t.Priority),
			t.CreatedAt.Format(time.RFC3339),
			t.UpdatedAt.Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to export tasks")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to export tasks")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename=tasks.csv")
	return c.Blob(http.StatusOK, "text/csv", buf.Bytes())
}

func (h *Handler) Stats(c echo.Context) error {
	stats, err := h.taskService.Stats(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to compute stats")
	}

	return c.JSON(http.StatusOK, stats)
}

func parseTaskID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, apperrors.ErrInvalidTaskID
	}
	return uint(id), nil
}

func httpError(err error) error {
	return echo.NewHTTPError(apperrors.StatusCode(err), err.Error())
}
