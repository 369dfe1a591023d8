package usecase

import (
	"time"

	"planner-backend/internal/task/domain"
	"planner-backend/pkg/httputil"
)

// TaskUsecase defines the interface for task business logic
type TaskUsecase interface {
	// CreateTask creates a task, optionally as a subtask of one the user owns
	CreateTask(userID uint, req *TaskCreateRequest) (*domain.Task, error)

	// GetTaskByID retrieves a task by ID (with ownership check)
	GetTaskByID(userID, taskID uint) (*domain.Task, error)

	// GetUserTasks retrieves all tasks for a user with optional status filter
	GetUserTasks(userID uint, status *string) ([]*domain.Task, error)

	// UpdateTask updates an existing task
	UpdateTask(userID, taskID uint, updates *TaskUpdateRequest) (*domain.Task, error)

	// DeleteTask deletes a task and its subtasks
	DeleteTask(userID, taskID uint) error
}

// TaskCreateRequest represents the request body for creating a task
type TaskCreateRequest struct {
	// UserID is accepted for older clients; it must match the caller when present.
	UserID       *uint      `json:"user_id"`
	Title        string     `json:"title" binding:"required,max=200"`
	Description  string     `json:"description"`
	DueDate      *time.Time `json:"due_date"`
	Priority     string     `json:"priority" binding:"omitempty,oneof=low medium high"`
	Status       string     `json:"status" binding:"omitempty,oneof=todo in_progress completed"`
	ParentTaskID *uint      `json:"parent_task_id"`
	OrderIndex   int        `json:"order_index" binding:"min=0"`
}

// TaskUpdateRequest represents the fields that can be updated.
// DueDate and ParentTaskID accept null to clear the value.
type TaskUpdateRequest struct {
	Title        *string                      `json:"title" binding:"omitempty,min=1,max=200"`
	Description  *string                      `json:"description"`
	DueDate      httputil.Nullable[time.Time] `json:"due_date"`
	Priority     *string                      `json:"priority" binding:"omitempty,oneof=low medium high"`
	Status       *string                      `json:"status" binding:"omitempty,oneof=todo in_progress completed"`
	ParentTaskID httputil.Nullable[uint]      `json:"parent_task_id"`
	OrderIndex   *int                         `json:"order_index" binding:"omitempty,min=0"`
}
