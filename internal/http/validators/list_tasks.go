package validators

import (
	"strconv"

	"task-tracker.com/task-tracker/internal/constants"
	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
)

const (
	defaultLimit = 100
	maxLimit     = 1000
)

// ParseListTasksQuery validates the raw query parameters and fills in
// pagination defaults (skip=0, limit=100).
func ParseListTasksQuery(status, priority, skip, limit string) (*dto.ListTasksQuery, error) {
	q := &dto.ListTasksQuery{Limit: defaultLimit}

	if status != "" {
		s := constants.TaskStatus(status)
		if !s.Valid() {
			return nil, apperrors.ErrInvalidStatus
		}
		q.Status = &s
	}

	if priority != "" {
		p := constants.TaskPriority(priority)
		if !p.Valid() {
			return nil, apperrors.ErrInvalidPriority
		}
		q.Priority = &p
	}

	if skip != "" {
		n, err := strconv.Atoi(skip)
		if err != nil || n < 0 {
			return nil, apperrors.ErrInvalidSkip
		}
		q.Skip = n
	}

	if limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 1 || n > maxLimit {
			return nil, apperrors.ErrInvalidLimit
		}
		q.Limit = n
	}

	return q, nil
}
