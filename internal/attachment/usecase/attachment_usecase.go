package usecase

import (
	"errors"
	"log"
	"path/filepath"
	"strings"

	"planner-backend/internal/attachment/domain"
	"planner-backend/internal/attachment/repository"
	"planner-backend/pkg/apperror"
	"planner-backend/pkg/storage"
)

const genericMimeType = "application/octet-stream"

type attachmentUsecase struct {
	attachmentRepo repository.AttachmentRepository
	store          storage.BlobStore
	resolvers      map[domain.OwnerType]OwnerResolver
}

func NewAttachmentUsecase(attachmentRepo repository.AttachmentRepository, store storage.BlobStore, resolvers map[domain.OwnerType]OwnerResolver) AttachmentUsecase {
	return &attachmentUsecase{
		attachmentRepo: attachmentRepo,
		store:          store,
		resolvers:      resolvers,
	}
}

func (u *attachmentUsecase) Upload(userID uint, owner domain.OwnerRef, file *Upload) (*domain.Attachment, error) {
	if file == nil || file.Content == nil {
		return nil, apperror.MissingField("file")
	}
	if err := u.resolveOwner(userID, owner); err != nil {
		return nil, err
	}

	blob, err := u.store.Save(file.Filename, file.Content)
	if err != nil {
		if errors.Is(err, storage.ErrTooLarge) {
			return nil, apperror.Wrap(apperror.KindTooLarge, "file exceeds maximum upload size", err)
		}
		return nil, apperror.Internal(err)
	}

	mimeType := blob.MimeType
	if (mimeType == "" || strings.HasPrefix(mimeType, genericMimeType)) && file.HeaderMimeType != "" {
		mimeType = file.HeaderMimeType
	}

	attachment := &domain.Attachment{
		UserID:       userID,
		OwnerType:    owner.Type,
		OwnerID:      owner.ID,
		FilePath:     blob.Path,
		OriginalName: filepath.Base(file.Filename),
		MimeType:     mimeType,
		Size:         blob.Size,
	}
	if err := u.attachmentRepo.Create(attachment); err != nil {
		if rmErr := u.store.Remove(blob.Path); rmErr != nil {
			log.Printf("[Attachment] failed to remove orphaned blob %s: %v", blob.Path, rmErr)
		}
		return nil, apperror.Internal(err)
	}

	log.Printf("[Attachment] user %d attached %s (%d bytes) to %s %d", userID, attachment.FilePath, attachment.Size, owner.Type, owner.ID)
	return attachment, nil
}

func (u *attachmentUsecase) ListForOwner(userID uint, owner domain.OwnerRef) ([]*domain.Attachment, error) {
	if err := u.resolveOwner(userID, owner); err != nil {
		return nil, err
	}
	attachments, err := u.attachmentRepo.FindByOwner(owner)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return attachments, nil
}

func (u *attachmentUsecase) Delete(userID, attachmentID uint) error {
	attachment, err := u.attachmentRepo.FindByID(attachmentID)
	if err != nil {
		return apperror.Internal(err)
	}
	if attachment == nil {
		return apperror.NotFound("Attachment")
	}
	if attachment.UserID != userID {
		return apperror.Forbidden()
	}

	if err := u.attachmentRepo.Delete(attachment.ID); err != nil {
		return apperror.Internal(err)
	}
	if err := u.store.Remove(attachment.FilePath); err != nil {
		log.Printf("[Attachment] row %d deleted but blob %s remains: %v", attachment.ID, attachment.FilePath, err)
	}
	return nil
}

func (u *attachmentUsecase) resolveOwner(userID uint, owner domain.OwnerRef) error {
	resolver, ok := u.resolvers[owner.Type]
	if !ok {
		return apperror.BadRequest("owner_type must be note or task")
	}
	return resolver.ResolveOwner(userID, owner.ID)
}
