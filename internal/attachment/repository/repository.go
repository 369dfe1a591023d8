package repository

import "planner-backend/internal/attachment/domain"

// AttachmentRepository stores attachment metadata
type AttachmentRepository interface {
	Create(attachment *domain.Attachment) error

	// FindByID returns nil, nil when absent
	FindByID(id uint) (*domain.Attachment, error)

	// FindByOwner lists attachments of one note or task, oldest first
	FindByOwner(owner domain.OwnerRef) ([]*domain.Attachment, error)

	Delete(id uint) error
}
