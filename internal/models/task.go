package model

import (
	"time"

	"task-tracker.com/task-tracker/internal/constants"
)

type Task struct {
	ID          uint                   `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string                 `gorm:"not null" json:"title"`
	Description string                 `gorm:"not null;default:''" json:"description"`
	Status      constants.TaskStatus   `gorm:"type:varchar(20);not null" json:"status"`
	Priority    constants.TaskPriority `gorm:"type:varchar(20);not null" json:"priority"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}
