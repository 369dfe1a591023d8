package usecase

import (
	"planner-backend/internal/notification/domain"
	"planner-backend/internal/notification/repository"
	"planner-backend/pkg/apperror"
)

type notificationUsecase struct {
	notificationRepo repository.NotificationRepository
	reminders        ReminderChecker
}

func NewNotificationUsecase(notificationRepo repository.NotificationRepository, reminders ReminderChecker) NotificationUsecase {
	return &notificationUsecase{
		notificationRepo: notificationRepo,
		reminders:        reminders,
	}
}

func (u *notificationUsecase) ListNotifications(userID uint) ([]*domain.Notification, error) {
	notifications, err := u.notificationRepo.FindByUserID(userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return notifications, nil
}

func (u *notificationUsecase) CreateNotification(userID uint, req *CreateNotificationRequest) (*domain.Notification, error) {
	if req.NotifyAt == nil || req.NotifyAt.IsZero() {
		return nil, apperror.MissingField("notify_at")
	}

	if req.ReminderID != nil {
		if err := u.reminders.CheckReminder(userID, *req.ReminderID); err != nil {
			return nil, err
		}
	}

	notification := &domain.Notification{
		UserID:     userID,
		ReminderID: req.ReminderID,
		NotifyAt:   req.NotifyAt.UTC(),
		Channel:    domain.Channel(req.Channel),
		Status:     domain.StatusPending,
	}
	if notification.Channel == "" {
		notification.Channel = domain.ChannelWeb
	}

	if err := u.notificationRepo.Create(notification); err != nil {
		return nil, apperror.Internal(err)
	}
	return notification, nil
}

func (u *notificationUsecase) DeleteNotification(userID, notificationID uint) error {
	notification, err := u.notificationRepo.FindByID(notificationID)
	if err != nil {
		return apperror.Internal(err)
	}
	if notification == nil {
		return apperror.NotFound("Notification")
	}
	if notification.UserID != userID {
		return apperror.Forbidden()
	}
	if err := u.notificationRepo.Delete(notification.ID); err != nil {
		return apperror.Internal(err)
	}
	return nil
}
