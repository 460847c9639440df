package validators

import (
	"testing"

	"task-tracker.com/task-tracker/internal/constants"
	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
)

func TestValidateCreateTaskRequest(t *testing.T) {
	if err := ValidateCreateTaskRequest(&dto.CreateTaskRequest{Title: "ok"}); err != nil {
		t.Errorf("minimal request rejected: %v", err)
	}
	if err := ValidateCreateTaskRequest(&dto.CreateTaskRequest{}); err != apperrors.ErrTitleRequired {
		t.Errorf("expected ErrTitleRequired, got %v", err)
	}
	if err := ValidateCreateTaskRequest(&dto.CreateTaskRequest{Title: "ok", Status: "bogus"}); err != apperrors.ErrInvalidStatus {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
	if err := ValidateCreateTaskRequest(&dto.CreateTaskRequest{Title: "ok", Priority: "bogus"}); err != apperrors.ErrInvalidPriority {
		t.Errorf("expected ErrInvalidPriority, got %v", err)
	}
}

func TestValidateUpdateTaskRequest(t *testing.T) {
	empty := ""
	bogusStatus := constants.TaskStatus("bogus")
	bogusPriority := constants.TaskPriority("bogus")

	if err := ValidateUpdateTaskRequest(&dto.UpdateTaskRequest{}); err != nil {
		t.Errorf("empty update must be valid: %v", err)
	}
	if err := ValidateUpdateTaskRequest(&dto.UpdateTaskRequest{Title: &empty}); err != apperrors.ErrTitleRequired {
		t.Errorf("expected ErrTitleRequired, got %v", err)
	}
	if err := ValidateUpdateTaskRequest(&dto.UpdateTaskRequest{Status: &bogusStatus}); err != apperrors.ErrInvalidStatus {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
	if err := ValidateUpdateTaskRequest(&dto.UpdateTaskRequest{Priority: &bogusPriority}); err != apperrors.ErrInvalidPriority {
		t.Errorf("expected ErrInvalidPriority, got %v", err)
	}
}

func TestParseListTasksQueryDefaults(t *testing.T) {
	q, err := ParseListTasksQuery("", "", "", "")
	if err != nil {
		t.Fatalf("empty query rejected: %v", err)
	}
	if q.Skip != 0 || q.Limit != 100 {
		t.Errorf("expected defaults 0/100, got %d/%d", q.Skip, q.Limit)
	}
	if q.Status != nil || q.Priority != nil {
		t.Error("absent filters must stay nil")
	}
}

func TestParseListTasksQueryBounds(t *testing.T) {
	cases := []struct {
		skip, limit string
		want        error
	}{
		{"-1", "", apperrors.ErrInvalidSkip},
		{"x", "", apperrors.ErrInvalidSkip},
		{"", "0", apperrors.ErrInvalidLimit},
		{"", "1001", apperrors.ErrInvalidLimit},
		{"", "x", apperrors.ErrInvalidLimit},
	}
	for _, tc := range cases {
		if _, err := ParseListTasksQuery("", "", tc.skip, tc.limit); err != tc.want {
			t.Errorf("skip=%q limit=%q: expected %v, got %v", tc.skip, tc.limit, tc.want, err)
		}
	}

	q, err := ParseListTasksQuery("pending", "high", "2", "1000")
	if err != nil {
		t.Fatalf("valid query rejected: %v", err)
	}
	if *q.Status != constants.StatusPending || *q.Priority != constants.PriorityHigh {
		t.Errorf("filters not parsed: %v/%v", q.Status, q.Priority)
	}
	if q.Skip != 2 || q.Limit != 1000 {
		t.Errorf("pagination not parsed: %d/%d", q.Skip, q.Limit)
	}
}
