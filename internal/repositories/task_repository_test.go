package repository

import (
	"context"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"task-tracker.com/task-tracker/internal/constants"
	model "task-tracker.com/task-tracker/internal/models"
)

func setupTestRepo(t *testing.T) *TaskRepository {
	db, err := gorm.Open(sqlite.Open(":memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&model.Task{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	return NewTaskRepository(db)
}

func seedTask(t *testing.T, repo *TaskRepository, title string, status constants.TaskStatus, priority constants.TaskPriority) *model.Task {
	task, err := repo.Create(context.Background(), &model.Task{
		Title:    title,
		Status:   status,
		Priority: priority,
	})
	if err != nil {
		t.Fatalf("failed to seed task: %v", err)
	}
	return task
}

func TestTaskRepository_CreateAssignsSequentialIDs(t *testing.T) {
	repo := setupTestRepo(t)

	first := seedTask(t, repo, "First", constants.StatusPending, constants.PriorityLow)
	second := seedTask(t, repo, "Second", constants.StatusPending, constants.PriorityLow)

	if first.ID == 0 || second.ID == 0 {
		t.Fatal("expected storage-assigned ids")
	}
	if second.ID <= first.ID {
		t.Errorf("expected increasing ids, got %d then %d", first.ID, second.ID)
	}
}

func TestTaskRepository_FindByIDAbsent(t *testing.T) {
	repo := setupTestRepo(t)

	task, err := repo.FindByID(context.Background(), 42)
	if err != nil {
		t.Fatalf("absence must not be an error: %v", err)
	}
	if task != nil {
		t.Errorf("expected nil, got %+v", task)
	}
}

func TestTaskRepository_ListFilterWindow(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	var pendingIDs []uint
	for i := 0; i < 4; i++ {
		task := seedTask(t, repo, "Pending", constants.StatusPending, constants.PriorityMedium)
		pendingIDs = append(pendingIDs, task.ID)
	}
	seedTask(t, repo, "Done", constants.StatusCompleted, constants.PriorityMedium)

	window, err := repo.List(ctx, string(constants.StatusPending), "", 1, 2)
	if err != nil {
		t.Fatalf("failed to list: %v", err)
	}
	if len(window) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(window))
	}
	if window[0].ID != pendingIDs[1] || window[1].ID != pendingIDs[2] {
		t.Errorf("window not [skip, skip+limit) over matching rows: got %d,%d", window[0].ID, window[1].ID)
	}

	all, err := repo.List(ctx, "", "", 0, 100)
	if err != nil {
		t.Fatalf("failed to list: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("unfiltered list expected 5, got %d", len(all))
	}
}

func TestTaskRepository_UpdateRefreshesUpdatedAt(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	task := seedTask(t, repo, "Task", constants.StatusPending, constants.PriorityLow)

	time.Sleep(10 * time.Millisecond)

	updated, err := repo.Update(ctx, task, map[string]interface{}{
		"status": constants.StatusInProgress,
	})
	if err != nil {
		t.Fatalf("failed to update: %v", err)
	}

	if updated.Status != constants.StatusInProgress {
		t.Errorf("expected status change, got %s", updated.Status)
	}
	if updated.Title != "Task" || updated.Priority != constants.PriorityLow {
		t.Error("update touched fields outside the given set")
	}
	if !updated.UpdatedAt.After(task.UpdatedAt) {
		t.Errorf("updated_at not refreshed: %v vs %v", updated.UpdatedAt, task.UpdatedAt)
	}
}

func TestTaskRepository_DeleteIsIdempotent(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	task := seedTask(t, repo, "Task", constants.StatusPending, constants.PriorityLow)

	if err := repo.Delete(ctx, task); err != nil {
		t.Fatalf("failed to delete: %v", err)
	}
	if err := repo.Delete(ctx, task); err != nil {
		t.Errorf("gateway delete must be idempotent, got %v", err)
	}

	found, err := repo.FindByID(ctx, task.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found != nil {
		t.Error("task still present after delete")
	}
}

func TestTaskRepository_StatsOmitsZeroGroups(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	seedTask(t, repo, "Task 1", constants.StatusPending, constants.PriorityHigh)
	seedTask(t, repo, "Task 2", constants.StatusPending, constants.PriorityLow)

	stats, err := repo.Stats(ctx)
	if err != nil {
		t.Fatalf("failed to compute stats: %v", err)
	}

	if stats.TotalTasks != 2 {
		t.Errorf("expected total 2, got %d", stats.TotalTasks)
	}
	if stats.ByStatus["pending"] != 2 {
		t.Errorf("expected 2 pending, got %d", stats.ByStatus["pending"])
	}
	if len(stats.ByStatus) != 1 {
		t.Errorf("expected one status group, got %v", stats.ByStatus)
	}
	if len(stats.ByPriority) != 2 {
		t.Errorf("expected two priority groups, got %v", stats.ByPriority)
	}
}
