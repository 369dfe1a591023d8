package api

import (
	"log"

	attachmentDomain "planner-backend/internal/attachment/domain"
	attachmentDelivery "planner-backend/internal/attachment/delivery"
	attachmentRepo "planner-backend/internal/attachment/repository"
	attachmentUsecasePkg "planner-backend/internal/attachment/usecase"
	authDelivery "planner-backend/internal/auth/delivery"
	authdomain "planner-backend/internal/auth/domain"
	authRepo "planner-backend/internal/auth/repository"
	authUsecasePkg "planner-backend/internal/auth/usecase"
	noteDelivery "planner-backend/internal/note/delivery"
	notedomain "planner-backend/internal/note/domain"
	noteRepo "planner-backend/internal/note/repository"
	noteUsecasePkg "planner-backend/internal/note/usecase"
	notificationDelivery "planner-backend/internal/notification/delivery"
	notificationdomain "planner-backend/internal/notification/domain"
	notificationRepo "planner-backend/internal/notification/repository"
	notificationUsecasePkg "planner-backend/internal/notification/usecase"
	reminderDelivery "planner-backend/internal/reminder/delivery"
	reminderdomain "planner-backend/internal/reminder/domain"
	reminderRepo "planner-backend/internal/reminder/repository"
	reminderUsecasePkg "planner-backend/internal/reminder/usecase"
	taskDelivery "planner-backend/internal/task/delivery"
	taskdomain "planner-backend/internal/task/domain"
	taskRepo "planner-backend/internal/task/repository"
	taskUsecasePkg "planner-backend/internal/task/usecase"
	"planner-backend/pkg/config"
	"planner-backend/pkg/storage"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Models lists every persisted type, in migration order.
func Models() []any {
	return []any{
		&authdomain.User{},
		&authdomain.TokenBlacklist{},
		&reminderdomain.Reminder{},
		&taskdomain.Task{},
		&notedomain.Note{},
		&notedomain.Tag{},
		&notedomain.NoteTag{},
		&attachmentDomain.Attachment{},
		&notificationdomain.Notification{},
	}
}

type Handler struct {
	authUsecase         authUsecasePkg.AuthUsecase
	config              *config.Config
	authHandler         *authDelivery.AuthHandler
	reminderHandler     *reminderDelivery.ReminderHandler
	taskHandler         *taskDelivery.TaskHandler
	noteHandler         *noteDelivery.NoteHandler
	attachmentHandler   *attachmentDelivery.AttachmentHandler
	notificationHandler *notificationDelivery.NotificationHandler
}

// noteOwnerAdapter adapts NoteUsecase to the attachment OwnerResolver interface
type noteOwnerAdapter struct {
	noteUc noteUsecasePkg.NoteUsecase
}

func (a *noteOwnerAdapter) ResolveOwner(userID, noteID uint) error {
	_, err := a.noteUc.GetNote(userID, noteID)
	return err
}

// taskOwnerAdapter adapts TaskUsecase to the attachment OwnerResolver interface
type taskOwnerAdapter struct {
	taskUc taskUsecasePkg.TaskUsecase
}

func (a *taskOwnerAdapter) ResolveOwner(userID, taskID uint) error {
	_, err := a.taskUc.GetTaskByID(userID, taskID)
	return err
}

// reminderCheckerAdapter adapts ReminderUsecase to the notification ReminderChecker interface
type reminderCheckerAdapter struct {
	reminderUc reminderUsecasePkg.ReminderUsecase
}

func (a *reminderCheckerAdapter) CheckReminder(userID, reminderID uint) error {
	_, err := a.reminderUc.GetReminder(userID, reminderID)
	return err
}

// NewHandler wires repositories, usecases and HTTP handlers. redisClient may be nil,
// in which case revocation lookups go straight to the database.
func NewHandler(db *gorm.DB, cfg *config.Config, redisClient *redis.Client, store storage.BlobStore) *Handler {
	// Auth
	userRepository := authRepo.NewUserRepository(db)
	revocationRepository := authRepo.NewRevocationRepository(db)
	if redisClient != nil {
		revocationRepository = authRepo.NewCachedRevocationRepository(revocationRepository, redisClient)
		log.Println("[API] token revocation cache enabled")
	}
	authUc := authUsecasePkg.NewAuthUsecase(userRepository, revocationRepository, cfg)

	// Resources
	reminderUc := reminderUsecasePkg.NewReminderUsecase(reminderRepo.NewGormReminderRepository(db))
	taskUc := taskUsecasePkg.NewTaskUsecase(taskRepo.NewGormTaskRepository(db))
	noteUc := noteUsecasePkg.NewNoteUsecase(noteRepo.NewGormNoteRepository(db))

	attachmentUc := attachmentUsecasePkg.NewAttachmentUsecase(
		attachmentRepo.NewGormAttachmentRepository(db),
		store,
		map[attachmentDomain.OwnerType]attachmentUsecasePkg.OwnerResolver{
			attachmentDomain.OwnerNote: &noteOwnerAdapter{noteUc: noteUc},
			attachmentDomain.OwnerTask: &taskOwnerAdapter{taskUc: taskUc},
		},
	)

	notificationUc := notificationUsecasePkg.NewNotificationUsecase(
		notificationRepo.NewGormNotificationRepository(db),
		&reminderCheckerAdapter{reminderUc: reminderUc},
	)

	return &Handler{
		authUsecase:         authUc,
		config:              cfg,
		authHandler:         authDelivery.NewAuthHandler(authUc),
		reminderHandler:     reminderDelivery.NewReminderHandler(reminderUc),
		taskHandler:         taskDelivery.NewTaskHandler(taskUc),
		noteHandler:         noteDelivery.NewNoteHandler(noteUc),
		attachmentHandler:   attachmentDelivery.NewAttachmentHandler(attachmentUc),
		notificationHandler: notificationDelivery.NewNotificationHandler(notificationUc),
	}
}
