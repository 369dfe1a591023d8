package domain

import "time"

type Channel string

const (
	ChannelWeb   Channel = "web"
	ChannelEmail Channel = "email"
	ChannelPush  Channel = "push"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusSent    Status = "sent"
	StatusFailed  Status = "failed"
)

// Notification is a scheduled notice. Rows are stored and listed only; nothing in this
// service delivers them or moves them out of pending.
type Notification struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"user_id" gorm:"index;not null"`
	ReminderID *uint     `json:"reminder_id" gorm:"index"`
	NotifyAt   time.Time `json:"notify_at" gorm:"not null"`
	Channel    Channel   `json:"channel" gorm:"size:16;default:web"`
	Status     Status    `json:"status" gorm:"size:16;default:pending"`
	CreatedAt  time.Time `json:"created_at"`
}
