package dto

import (
	"task-tracker.com/task-tracker/internal/constants"
)

type CreateTaskRequest struct {
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Status      constants.TaskStatus   `json:"status"`
	Priority    constants.TaskPriority `json:"priority"`
}

// UpdateTaskRequest distinguishes an omitted field (nil) from a field
// explicitly set to its zero value, so partial updates touch only what
// the caller sent.
type UpdateTaskRequest struct {
	Title       *string                 `json:"title"`
	Description *string                 `json:"description"`
	Status      *constants.TaskStatus   `json:"status"`
	Priority    *constants.TaskPriority `json:"priority"`
}

// Fields returns the column/value pairs present in the request.
func (r *UpdateTaskRequest) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if r.Title != nil {
		fields["title"] = *r.Title
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	if r.Status != nil {
		fields["status"] = *r.Status
	}
	if r.Priority != nil {
		fields["priority"] = *r.Priority
	}
	return fields
}

type ListTasksQuery struct {
	Status   *constants.TaskStatus
	Priority *constants.TaskPriority
	Skip     int
	Limit    int
}

type TaskStats struct {
	TotalTasks int64            `json:"total_tasks"`
	ByStatus   map[string]int64 `json:"by_status"`
	ByPriority map[string]int64 `json:"by_priority"`
}
