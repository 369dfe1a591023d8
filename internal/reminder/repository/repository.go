package repository

import "planner-backend/internal/reminder/domain"

// ReminderRepository defines data access for reminders
type ReminderRepository interface {
	Create(reminder *domain.Reminder) error

	// FindByID returns nil, nil when the reminder does not exist
	FindByID(id uint) (*domain.Reminder, error)

	// FindByUserID lists a user's reminders, latest reminder_date first
	FindByUserID(userID uint) ([]*domain.Reminder, error)

	Update(reminder *domain.Reminder) error

	// Delete removes the reminder together with the notifications that reference it
	Delete(id uint) error
}
