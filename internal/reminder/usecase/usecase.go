package usecase

import (
	"planner-backend/internal/reminder/domain"
	"planner-backend/internal/reminder/dto"
)

// ReminderUsecase defines reminder business logic. Every call is scoped to userID.
type ReminderUsecase interface {
	CreateReminder(userID uint, req *dto.CreateReminderRequest) (*domain.Reminder, error)

	// GetReminder returns NotFound for a missing reminder and Forbidden for someone else's
	GetReminder(userID, reminderID uint) (*domain.Reminder, error)

	ListReminders(userID uint) ([]*domain.Reminder, error)
	UpdateReminder(userID, reminderID uint, req *dto.UpdateReminderRequest) (*domain.Reminder, error)

	// DeleteReminder hard-deletes the reminder and its notifications
	DeleteReminder(userID, reminderID uint) error
}
