package usecase

import (
	"errors"
	"testing"
	"time"

	"planner-backend/internal/notification/domain"
	"planner-backend/internal/notification/repository"
	"planner-backend/pkg/apperror"
	"planner-backend/pkg/database"
)

// reminderOwners maps reminder id -> owning user id.
type reminderOwners map[uint]uint

func (r reminderOwners) CheckReminder(userID, reminderID uint) error {
	owner, ok := r[reminderID]
	if !ok {
		return apperror.NotFound("Reminder")
	}
	if owner != userID {
		return apperror.Forbidden()
	}
	return nil
}

func setupUsecase(t *testing.T) NotificationUsecase {
	t.Helper()
	db, err := database.OpenInMemory(&domain.Notification{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	return NewNotificationUsecase(repository.NewGormNotificationRepository(db), reminderOwners{10: 1, 20: 2})
}

func ptr[T any](v T) *T { return &v }

func TestCreateNotification(t *testing.T) {
	uc := setupUsecase(t)
	at := time.Date(2026, 4, 2, 8, 0, 0, 0, time.UTC)

	n, err := uc.CreateNotification(1, &CreateNotificationRequest{ReminderID: ptr(uint(10)), NotifyAt: &at})
	if err != nil {
		t.Fatalf("CreateNotification failed: %v", err)
	}
	if n.Channel != domain.ChannelWeb || n.Status != domain.StatusPending {
		t.Errorf("defaults not applied: %+v", n)
	}

	tests := []struct {
		name    string
		req     CreateNotificationRequest
		wantErr error
	}{
		{"foreign reminder", CreateNotificationRequest{ReminderID: ptr(uint(20)), NotifyAt: &at}, apperror.ErrForbidden},
		{"missing reminder", CreateNotificationRequest{ReminderID: ptr(uint(99)), NotifyAt: &at}, apperror.ErrNotFound},
		{"missing notify_at", CreateNotificationRequest{}, apperror.ErrMissingField},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := uc.CreateNotification(1, &tt.req); !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	standalone, err := uc.CreateNotification(1, &CreateNotificationRequest{NotifyAt: &at, Channel: "email"})
	if err != nil || standalone.ReminderID != nil || standalone.Channel != domain.ChannelEmail {
		t.Fatalf("standalone notification: %+v %v", standalone, err)
	}
}

func TestListAndDeleteNotifications(t *testing.T) {
	uc := setupUsecase(t)
	late := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	early := late.Add(-48 * time.Hour)

	second, _ := uc.CreateNotification(1, &CreateNotificationRequest{NotifyAt: &late})
	first, _ := uc.CreateNotification(1, &CreateNotificationRequest{NotifyAt: &early})
	other, _ := uc.CreateNotification(2, &CreateNotificationRequest{NotifyAt: &early})

	list, err := uc.ListNotifications(1)
	if err != nil {
		t.Fatalf("ListNotifications failed: %v", err)
	}
	if len(list) != 2 || list[0].ID != first.ID || list[1].ID != second.ID {
		t.Fatalf("expected soonest first, got %+v", list)
	}

	if err := uc.DeleteNotification(1, other.ID); !errors.Is(err, apperror.ErrForbidden) {
		t.Errorf("expected Forbidden, got %v", err)
	}
	if err := uc.DeleteNotification(1, first.ID); err != nil {
		t.Fatalf("DeleteNotification failed: %v", err)
	}
	if err := uc.DeleteNotification(1, first.ID); !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("expected NotFound, got %v", err)
	}
}
