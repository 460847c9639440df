package validators

import (
	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
)

func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) error {
	if r.Title == "" {
		return apperrors.ErrTitleRequired
	}
	if r.Status != "" && !r.Status.Valid() {
		return apperrors.ErrInvalidStatus
	}
	if r.Priority != "" && !r.Priority.Valid() {
		return apperrors.ErrInvalidPriority
	}
	return nil
}
