package dto

import "time"

type CreateReminderRequest struct {
	// UserID is accepted for older clients; it must match the caller when present.
	UserID         *uint      `json:"user_id"`
	Title          string     `json:"title" binding:"required,max=200"`
	Description    string     `json:"description"`
	ReminderDate   *time.Time `json:"reminder_date" binding:"required"`
	Timezone       string     `json:"timezone" binding:"omitempty,timezone"`
	RecurrenceRule string     `json:"recurrence_rule" binding:"omitempty,cronspec"`
	Status         string     `json:"status" binding:"omitempty,oneof=pending completed"`
	Category       string     `json:"category" binding:"omitempty,oneof=personal study work"`
}

// UpdateReminderRequest lists every field a PATCH may touch; anything else is rejected.
type UpdateReminderRequest struct {
	Title          *string    `json:"title" binding:"omitempty,min=1,max=200"`
	Description    *string    `json:"description"`
	ReminderDate   *time.Time `json:"reminder_date"`
	Timezone       *string    `json:"timezone" binding:"omitempty,timezone"`
	RecurrenceRule *string    `json:"recurrence_rule" binding:"omitempty,cronspec"`
	Status         *string    `json:"status" binding:"omitempty,oneof=pending completed"`
	Category       *string    `json:"category" binding:"omitempty,oneof=personal study work"`
}
