package domain

import (
	"strconv"
	"strings"
	"time"

	"planner-backend/pkg/apperror"
)

// OwnerType names the kind of record an attachment hangs off.
type OwnerType string

const (
	OwnerNote OwnerType = "note"
	OwnerTask OwnerType = "task"
)

// OwnerRef points at the note or task that owns an attachment.
type OwnerRef struct {
	Type OwnerType
	ID   uint
}

// ParseOwnerRef validates an owner_type/owner_id pair as sent by clients.
func ParseOwnerRef(ownerType, ownerID string) (OwnerRef, error) {
	ref := OwnerRef{Type: OwnerType(strings.ToLower(strings.TrimSpace(ownerType)))}
	switch ref.Type {
	case OwnerNote, OwnerTask:
	case "":
		return OwnerRef{}, apperror.MissingField("owner_type")
	default:
		return OwnerRef{}, apperror.BadRequest("owner_type must be note or task")
	}

	if strings.TrimSpace(ownerID) == "" {
		return OwnerRef{}, apperror.MissingField("owner_id")
	}
	id, err := strconv.ParseUint(strings.TrimSpace(ownerID), 10, 64)
	if err != nil || id == 0 {
		return OwnerRef{}, apperror.BadRequest("invalid owner_id")
	}
	ref.ID = uint(id)
	return ref, nil
}

// Attachment is the metadata of an uploaded file; the bytes live in blob storage at FilePath.
type Attachment struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserID       uint      `json:"user_id" gorm:"index;not null"`
	OwnerType    OwnerType `json:"owner_type" gorm:"size:16;not null;index:idx_attachments_owner"`
	OwnerID      uint      `json:"owner_id" gorm:"not null;index:idx_attachments_owner"`
	FilePath     string    `json:"file_path" gorm:"size:255;not null"`
	OriginalName string    `json:"original_name" gorm:"size:255"`
	MimeType     string    `json:"mime_type" gorm:"size:127"`
	Size         int64     `json:"size"`
	CreatedAt    time.Time `json:"created_at"`
}

func (a *Attachment) Owner() OwnerRef {
	return OwnerRef{Type: a.OwnerType, ID: a.OwnerID}
}
