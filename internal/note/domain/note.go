package domain

import "time"

// Note is a free-text note. Deleting a note archives it; the row is kept.
type Note struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"user_id" gorm:"index;not null"`
	Title      string    `json:"title" gorm:"size:200;not null"`
	Body       string    `json:"body" gorm:"type:text"`
	IsPinned   bool      `json:"is_pinned" gorm:"default:false"`
	IsArchived bool      `json:"is_archived" gorm:"index;default:false"`
	Tags       []string  `json:"tags" gorm:"-"`
	CreatedAt  time.Time `json:"created_at" gorm:"index"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Tag is a per-user label. Tags outlive the notes they were attached to.
type Tag struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	UserID uint   `json:"user_id" gorm:"not null;uniqueIndex:idx_tags_user_name"`
	Name   string `json:"name" gorm:"size:50;not null;uniqueIndex:idx_tags_user_name"`
}

// NoteTag links a note to a tag.
type NoteTag struct {
	NoteID uint `gorm:"primaryKey"`
	TagID  uint `gorm:"primaryKey;index"`
}
