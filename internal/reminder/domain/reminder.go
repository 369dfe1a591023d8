package domain

import "time"

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

type Category string

const (
	CategoryPersonal Category = "personal"
	CategoryStudy    Category = "study"
	CategoryWork     Category = "work"
)

// Reminder is a dated prompt owned by a user. RecurrenceRule, when set, is a standard
// cron expression or an @descriptor such as @weekly.
type Reminder struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	UserID         uint      `json:"user_id" gorm:"index;not null"`
	Title          string    `json:"title" gorm:"size:200;not null"`
	Description    string    `json:"description"`
	ReminderDate   time.Time `json:"reminder_date" gorm:"index;not null"`
	Timezone       string    `json:"timezone" gorm:"size:64;default:UTC"`
	RecurrenceRule string    `json:"recurrence_rule" gorm:"size:100"`
	Status         Status    `json:"status" gorm:"size:16;default:pending"`
	Category       Category  `json:"category" gorm:"size:16;default:personal"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
