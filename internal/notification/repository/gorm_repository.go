package repository

import (
	"errors"

	"planner-backend/internal/notification/domain"

	"gorm.io/gorm"
)

type gormNotificationRepository struct {
	db *gorm.DB
}

func NewGormNotificationRepository(db *gorm.DB) NotificationRepository {
	return &gormNotificationRepository{db: db}
}

func (r *gormNotificationRepository) Create(notification *domain.Notification) error {
	return r.db.Create(notification).Error
}

func (r *gormNotificationRepository) FindByID(id uint) (*domain.Notification, error) {
	var notification domain.Notification
	err := r.db.Where("id = ?", id).First(&notification).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &notification, nil
}

func (r *gormNotificationRepository) FindByUserID(userID uint) ([]*domain.Notification, error) {
	notifications := []*domain.Notification{}
	err := r.db.Where("user_id = ?", userID).
		Order("notify_at ASC, id ASC").
		Find(&notifications).Error
	return notifications, err
}

func (r *gormNotificationRepository) Delete(id uint) error {
	return r.db.Delete(&domain.Notification{}, id).Error
}
