package repository

import "planner-backend/internal/notification/domain"

// NotificationRepository stores notification rows
type NotificationRepository interface {
	Create(notification *domain.Notification) error

	// FindByID returns nil, nil when absent
	FindByID(id uint) (*domain.Notification, error)

	// FindByUserID lists a user's notifications, soonest first
	FindByUserID(userID uint) ([]*domain.Notification, error)

	Delete(id uint) error
}
