package validators

import (
	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
)

func ValidateUpdateTaskRequest(r *dto.UpdateTaskRequest) error {
	if r.Title != nil && *r.Title == "" {
		return apperrors.ErrTitleRequired
	}
	if r.Status != nil && !r.Status.Valid() {
		return apperrors.ErrInvalidStatus
	}
	if r.Priority != nil && !r.Priority.Valid() {
		return apperrors.ErrInvalidPriority
	}
	return nil
}
