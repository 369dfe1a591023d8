package domain

import "time"

// Priority represents task priority level
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// TaskStatus represents the current state of a task
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// Task is a to-do item. Tasks nest through ParentTaskID; a parent must belong to the same
// user and a task is never its own ancestor.
type Task struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	UserID       uint       `json:"user_id" gorm:"index;not null"`
	Title        string     `json:"title" gorm:"size:200;not null"`
	Description  string     `json:"description"`
	DueDate      *time.Time `json:"due_date"`
	Priority     Priority   `json:"priority" gorm:"size:16;default:medium"`
	Status       TaskStatus `json:"status" gorm:"size:16;default:todo"`
	ParentTaskID *uint      `json:"parent_task_id" gorm:"index"`
	OrderIndex   int        `json:"order_index" gorm:"default:0"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
