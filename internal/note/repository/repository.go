package repository

import "planner-backend/internal/note/domain"

// NoteRepository persists notes together with their tag links.
// Every method that returns notes fills Note.Tags.
type NoteRepository interface {
	// Create inserts the note, creating unknown tags and linking them, in one transaction
	Create(note *domain.Note, tagNames []string) error

	// FindByID returns nil, nil when absent. Archived notes are returned.
	FindByID(id uint) (*domain.Note, error)

	// FindByUserID lists non-archived notes, newest first
	FindByUserID(userID uint) ([]*domain.Note, error)

	// Search matches query case-insensitively against title or body of non-archived notes
	Search(userID uint, query string) ([]*domain.Note, error)

	// Update saves the note; when tagNames is non-nil the tag links are replaced wholesale
	Update(note *domain.Note, tagNames *[]string) error

	Archive(id uint) error

	// FindTagsByUserID lists a user's tags by name
	FindTagsByUserID(userID uint) ([]*domain.Tag, error)
}
