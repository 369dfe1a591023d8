package repository

import "planner-backend/internal/task/domain"

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *domain.Task) error

	// FindByID finds a task by its ID; nil, nil when absent
	FindByID(id uint) (*domain.Task, error)

	// FindByUserID lists a user's tasks by order_index, optionally filtered by status
	FindByUserID(userID uint, status *domain.TaskStatus) ([]*domain.Task, error)

	// Update updates an existing task
	Update(task *domain.Task) error

	// Delete removes a task and all of its descendants, returning how many rows went
	Delete(id uint) (int64, error)
}
