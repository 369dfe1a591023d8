package repository

import (
	"errors"

	"planner-backend/internal/attachment/domain"

	"gorm.io/gorm"
)

type gormAttachmentRepository struct {
	db *gorm.DB
}

func NewGormAttachmentRepository(db *gorm.DB) AttachmentRepository {
	return &gormAttachmentRepository{db: db}
}

func (r *gormAttachmentRepository) Create(attachment *domain.Attachment) error {
	return r.db.Create(attachment).Error
}

func (r *gormAttachmentRepository) FindByID(id uint) (*domain.Attachment, error) {
	var attachment domain.Attachment
	err := r.db.Where("id = ?", id).First(&attachment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &attachment, nil
}

func (r *gormAttachmentRepository) FindByOwner(owner domain.OwnerRef) ([]*domain.Attachment, error) {
	attachments := []*domain.Attachment{}
	err := r.db.Where("owner_type = ? AND owner_id = ?", owner.Type, owner.ID).
		Order("created_at ASC, id ASC").
		Find(&attachments).Error
	return attachments, err
}

func (r *gormAttachmentRepository) Delete(id uint) error {
	return r.db.Delete(&domain.Attachment{}, id).Error
}
