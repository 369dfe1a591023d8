package usecase

import (
	"io"

	"planner-backend/internal/attachment/domain"
)

// OwnerResolver checks that an owner record exists and belongs to userID.
// It returns a NotFound or Forbidden app error otherwise.
type OwnerResolver interface {
	ResolveOwner(userID, ownerID uint) error
}

// Upload is a file received from a client.
type Upload struct {
	Filename string
	// HeaderMimeType is the client-declared content type, used when sniffing finds nothing better.
	HeaderMimeType string
	Content        io.Reader
}

type AttachmentUsecase interface {
	Upload(userID uint, owner domain.OwnerRef, file *Upload) (*domain.Attachment, error)
	ListForOwner(userID uint, owner domain.OwnerRef) ([]*domain.Attachment, error)

	// Delete removes the metadata row and then the stored blob
	Delete(userID, attachmentID uint) error
}
