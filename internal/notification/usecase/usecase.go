package usecase

import (
	"time"

	"planner-backend/internal/notification/domain"
)

// ReminderChecker verifies that a reminder exists and belongs to userID,
// returning a NotFound or Forbidden app error otherwise.
type ReminderChecker interface {
	CheckReminder(userID, reminderID uint) error
}

type CreateNotificationRequest struct {
	// UserID is accepted for older clients; it must match the caller when present.
	UserID     *uint      `json:"user_id"`
	ReminderID *uint      `json:"reminder_id"`
	NotifyAt   *time.Time `json:"notify_at" binding:"required"`
	Channel    string     `json:"channel" binding:"omitempty,oneof=web email push"`
}

// NotificationUsecase manages stored notifications. Nothing here sends them.
type NotificationUsecase interface {
	ListNotifications(userID uint) ([]*domain.Notification, error)
	CreateNotification(userID uint, req *CreateNotificationRequest) (*domain.Notification, error)
	DeleteNotification(userID, notificationID uint) error
}
