package usecase

import (
	"log"
	"strings"

	"planner-backend/internal/reminder/domain"
	"planner-backend/internal/reminder/dto"
	"planner-backend/internal/reminder/repository"
	"planner-backend/pkg/apperror"
)

const defaultTimezone = "UTC"

// reminderUsecase implements ReminderUsecase interface
type reminderUsecase struct {
	reminderRepo repository.ReminderRepository
}

func NewReminderUsecase(reminderRepo repository.ReminderRepository) ReminderUsecase {
	return &reminderUsecase{
		reminderRepo: reminderRepo,
	}
}

func (u *reminderUsecase) CreateReminder(userID uint, req *dto.CreateReminderRequest) (*domain.Reminder, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, apperror.MissingField("title")
	}
	if req.ReminderDate == nil || req.ReminderDate.IsZero() {
		return nil, apperror.MissingField("reminder_date")
	}

	reminder := &domain.Reminder{
		UserID:         userID,
		Title:          title,
		Description:    req.Description,
		ReminderDate:   req.ReminderDate.UTC(),
		Timezone:       req.Timezone,
		RecurrenceRule: strings.TrimSpace(req.RecurrenceRule),
		Status:         domain.Status(req.Status),
		Category:       domain.Category(req.Category),
	}
	if reminder.Timezone == "" {
		reminder.Timezone = defaultTimezone
	}
	if reminder.Status == "" {
		reminder.Status = domain.StatusPending
	}
	if reminder.Category == "" {
		reminder.Category = domain.CategoryPersonal
	}

	if err := u.reminderRepo.Create(reminder); err != nil {
		return nil, apperror.Internal(err)
	}
	return reminder, nil
}

func (u *reminderUsecase) GetReminder(userID, reminderID uint) (*domain.Reminder, error) {
	reminder, err := u.reminderRepo.FindByID(reminderID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if reminder == nil {
		return nil, apperror.NotFound("Reminder")
	}
	if reminder.UserID != userID {
		return nil, apperror.Forbidden()
	}
	return reminder, nil
}

func (u *reminderUsecase) ListReminders(userID uint) ([]*domain.Reminder, error) {
	reminders, err := u.reminderRepo.FindByUserID(userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return reminders, nil
}

func (u *reminderUsecase) UpdateReminder(userID, reminderID uint, req *dto.UpdateReminderRequest) (*domain.Reminder, error) {
	reminder, err := u.GetReminder(userID, reminderID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, apperror.BadRequest("title cannot be empty")
		}
		reminder.Title = title
	}
	if req.Description != nil {
		reminder.Description = *req.Description
	}
	if req.ReminderDate != nil {
		reminder.ReminderDate = req.ReminderDate.UTC()
	}
	if req.Timezone != nil {
		reminder.Timezone = *req.Timezone
	}
	if req.RecurrenceRule != nil {
		reminder.RecurrenceRule = strings.TrimSpace(*req.RecurrenceRule)
	}
	if req.Status != nil {
		reminder.Status = domain.Status(*req.Status)
	}
	if req.Category != nil {
		reminder.Category = domain.Category(*req.Category)
	}

	if err := u.reminderRepo.Update(reminder); err != nil {
		return nil, apperror.Internal(err)
	}
	return reminder, nil
}

func (u *reminderUsecase) DeleteReminder(userID, reminderID uint) error {
	reminder, err := u.GetReminder(userID, reminderID)
	if err != nil {
		return err
	}
	if err := u.reminderRepo.Delete(reminder.ID); err != nil {
		return apperror.Internal(err)
	}
	log.Printf("[Reminder] user %d deleted reminder %d", userID, reminder.ID)
	return nil
}
