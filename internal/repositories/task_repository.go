package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	dto "task-tracker.com/task-tracker/internal/data_models"
	model "task-tracker.com/task-tracker/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) (*model.Task, error) {
	now := time.Now().UTC()
	task.CreatedAt = now
	task.UpdatedAt = now

	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return nil, err
	}

	return task, nil
}

// List applies the provided filters with AND semantics; an empty string
// leaves that column unconstrained. Rows are ordered by id ascending so
// that skip/limit windows are stable.
func (r *TaskRepository) List(ctx context.Context, status, priority string, skip, limit int) ([]model.Task, error) {
	query := r.db.WithContext(ctx).Model(&model.Task{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if priority != "" {
		query = query.Where("priority = ?", priority)
	}

	var tasks []model.Task
	err := query.Order("id asc").Offset(skip).Limit(limit).Find(&tasks).Error
	return tasks, err
}

// FindByID returns (nil, nil) when no task has the given id.
func (r *TaskRepository) FindByID(ctx context.Context, id uint) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

// Update applies exactly the given fields, refreshes updated_at, and
// returns the re-read record.
func (r *TaskRepository) Update(ctx context.Context, task *model.Task, fields map[string]interface{}) (*model.Task, error) {
	fields["updated_at"] = time.Now().UTC()

	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", task.ID).
		Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}

	return r.FindByID(ctx, task.ID)
}

func (r *TaskRepository) Delete(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Delete(&model.Task{}, "id = ?", task.ID).Error
}

func (r *TaskRepository) All(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).Order("id asc").Find(&tasks).Error
	return tasks, err
}

type groupCount struct {
	Value string
	Count int64
}

// Stats counts tasks in total and grouped by status and priority.
// Groups with no rows are omitted.
func (r *TaskRepository) Stats(ctx context.Context) (*dto.TaskStats, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Task{}).Count(&total).Error; err != nil {
		return nil, err
	}

	byStatus, err := r.countBy(ctx, "status")
	if err != nil {
		return nil, err
	}

	byPriority, err := r.countBy(ctx, "priority")
	if err != nil {
		return nil, err
	}

	return &dto.TaskStats{
		TotalTasks: total,
		ByStatus:   byStatus,
		ByPriority: byPriority,
	}, nil
}

func (r *TaskRepository) countBy(ctx context.Context, column string) (map[string]int64, error) {
	var rows []groupCount
	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Select(column + " as value, count(id) as count").
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Value] = row.Count
	}
	return counts, nil
}
