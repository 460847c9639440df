package services

import (
	"context"

	"task-tracker.com/task-tracker/internal/constants"
	dto "task-tracker.com/task-tracker/internal/data_models"
	model "task-tracker.com/task-tracker/internal/models"
)

// TaskRepository is the storage gateway the service talks to. The gorm
// implementation lives in internal/repositories; anything that carries
// these operations can stand in for it.
type TaskRepository interface {
	Create(ctx context.Context, task *model.Task) (*model.Task, error)
	List(ctx context.Context, status, priority string, skip, limit int) ([]model.Task, error)
	FindByID(ctx context.Context, id uint) (*model.Task, error)
	Update(ctx context.Context, task *model.Task, fields map[string]interface{}) (*model.Task, error)
	Delete(ctx context.Context, task *model.Task) error
	All(ctx context.Context) ([]model.Task, error)
	Stats(ctx context.Context) (*dto.TaskStats, error)
}

type TaskService struct {
	repo TaskRepository
}

func NewTaskService(repo TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

// CreateTask fills in default status and priority when the caller
// omitted them. Duplicate titles are allowed.
func (s *TaskService) CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*model.Task, error) {
	status := req.Status
	if status == "" {
		status = constants.StatusPending
	}

	priority := req.Priority
	if priority == "" {
		priority = constants.PriorityMedium
	}

	task := &model.Task{
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		Priority:    priority,
	}

	return s.repo.Create(ctx, task)
}

func (s *TaskService) ListTasks(ctx context.Context, q *dto.ListTasksQuery) ([]model.Task, error) {
	var status, priority string
	if q.Status != nil {
		status = string(*q.Status)
	}
	if q.Priority != nil {
		priority = string(*q.Priority)
	}

	return s.repo.List(ctx, status, priority, q.Skip, q.Limit)
}

// GetTask returns (nil, nil) when the task does not exist.
func (s *TaskService) GetTask(ctx context.Context, id uint) (*model.Task, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateTask applies only the fields present in the request. It returns
// (nil, nil) when the task does not exist, with no side effects.
func (s *TaskService) UpdateTask(ctx context.Context, id uint, req *dto.UpdateTaskRequest) (*model.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil || task == nil {
		return nil, err
	}

	return s.repo.Update(ctx, task, req.Fields())
}

// DeleteTask reports false when the task does not exist; a second
// delete of the same id is therefore not-found, not success.
func (s *TaskService) DeleteTask(ctx context.Context, id uint) (bool, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil || task == nil {
		return false, err
	}

	if err := s.repo.Delete(ctx, task); err != nil {
		return false, err
	}
	return true, nil
}

func (s *TaskService) ExportAll(ctx context.Context) ([]model.Task, error) {
	return s.repo.All(ctx)
}

func (s *TaskService) Stats(ctx context.Context) (*dto.TaskStats, error) {
	return s.repo.Stats(ctx)
}
