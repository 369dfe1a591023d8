package usecase

import (
	"planner-backend/internal/note/domain"
	"planner-backend/internal/note/dto"
)

// NoteUsecase covers notes and their tags, always scoped to the calling user.
type NoteUsecase interface {
	CreateNote(userID uint, req *dto.CreateNoteRequest) (*domain.Note, error)
	GetNote(userID, noteID uint) (*domain.Note, error)
	ListNotes(userID uint) ([]*domain.Note, error)
	SearchNotes(userID uint, query string) ([]*domain.Note, error)
	UpdateNote(userID, noteID uint, req *dto.UpdateNoteRequest) (*domain.Note, error)

	// ArchiveNote is the delete operation for notes: the row stays, flagged archived
	ArchiveNote(userID, noteID uint) error

	ListTags(userID uint) ([]*domain.Tag, error)

	// SuggestTags ranks the user's tags against a partial name, best first
	SuggestTags(userID uint, query string, limit int) ([]*domain.Tag, error)
}
