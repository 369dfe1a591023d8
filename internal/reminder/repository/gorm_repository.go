package repository

import (
	"errors"

	notificationdomain "planner-backend/internal/notification/domain"
	"planner-backend/internal/reminder/domain"

	"gorm.io/gorm"
)

// gormReminderRepository implements ReminderRepository using GORM
type gormReminderRepository struct {
	db *gorm.DB
}

func NewGormReminderRepository(db *gorm.DB) ReminderRepository {
	return &gormReminderRepository{db: db}
}

func (r *gormReminderRepository) Create(reminder *domain.Reminder) error {
	return r.db.Create(reminder).Error
}

func (r *gormReminderRepository) FindByID(id uint) (*domain.Reminder, error) {
	var reminder domain.Reminder
	err := r.db.Where("id = ?", id).First(&reminder).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reminder, nil
}

func (r *gormReminderRepository) FindByUserID(userID uint) ([]*domain.Reminder, error) {
	reminders := []*domain.Reminder{}
	err := r.db.Where("user_id = ?", userID).
		Order("reminder_date DESC, id DESC").
		Find(&reminders).Error
	return reminders, err
}

func (r *gormReminderRepository) Update(reminder *domain.Reminder) error {
	return r.db.Save(reminder).Error
}

func (r *gormReminderRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("reminder_id = ?", id).Delete(&notificationdomain.Notification{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Reminder{}, id).Error
	})
}
