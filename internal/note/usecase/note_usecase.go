package usecase

import (
	"log"
	"strings"

	"planner-backend/internal/note/domain"
	"planner-backend/internal/note/dto"
	"planner-backend/internal/note/repository"
	"planner-backend/pkg/apperror"
	"planner-backend/pkg/fuzzy"
)

const defaultSuggestLimit = 10

type noteUsecase struct {
	noteRepo repository.NoteRepository
}

func NewNoteUsecase(noteRepo repository.NoteRepository) NoteUsecase {
	return &noteUsecase{
		noteRepo: noteRepo,
	}
}

func (u *noteUsecase) CreateNote(userID uint, req *dto.CreateNoteRequest) (*domain.Note, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, apperror.MissingField("title")
	}

	note := &domain.Note{
		UserID:   userID,
		Title:    title,
		Body:     req.Body,
		IsPinned: req.IsPinned,
	}
	if err := u.noteRepo.Create(note, req.Tags); err != nil {
		return nil, apperror.Internal(err)
	}
	return note, nil
}

func (u *noteUsecase) GetNote(userID, noteID uint) (*domain.Note, error) {
	note, err := u.noteRepo.FindByID(noteID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if note == nil {
		return nil, apperror.NotFound("Note")
	}
	if note.UserID != userID {
		return nil, apperror.Forbidden()
	}
	return note, nil
}

func (u *noteUsecase) ListNotes(userID uint) ([]*domain.Note, error) {
	notes, err := u.noteRepo.FindByUserID(userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return notes, nil
}

func (u *noteUsecase) SearchNotes(userID uint, query string) ([]*domain.Note, error) {
	notes, err := u.noteRepo.Search(userID, strings.TrimSpace(query))
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return notes, nil
}

func (u *noteUsecase) UpdateNote(userID, noteID uint, req *dto.UpdateNoteRequest) (*domain.Note, error) {
	note, err := u.GetNote(userID, noteID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, apperror.BadRequest("title cannot be empty")
		}
		note.Title = title
	}
	if req.Body != nil {
		note.Body = *req.Body
	}
	if req.IsPinned != nil {
		note.IsPinned = *req.IsPinned
	}
	if req.IsArchived != nil {
		note.IsArchived = *req.IsArchived
	}

	if err := u.noteRepo.Update(note, req.Tags); err != nil {
		return nil, apperror.Internal(err)
	}
	return note, nil
}

func (u *noteUsecase) ArchiveNote(userID, noteID uint) error {
	note, err := u.GetNote(userID, noteID)
	if err != nil {
		return err
	}
	if note.IsArchived {
		return nil
	}
	if err := u.noteRepo.Archive(note.ID); err != nil {
		return apperror.Internal(err)
	}
	log.Printf("[Note] user %d archived note %d", userID, note.ID)
	return nil
}

func (u *noteUsecase) ListTags(userID uint) ([]*domain.Tag, error) {
	tags, err := u.noteRepo.FindTagsByUserID(userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return tags, nil
}

func (u *noteUsecase) SuggestTags(userID uint, query string, limit int) ([]*domain.Tag, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperror.MissingField("q")
	}
	if limit <= 0 {
		limit = defaultSuggestLimit
	}

	tags, err := u.ListTags(userID)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]*domain.Tag, len(tags))
	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		byName[tag.Name] = tag
		names = append(names, tag.Name)
	}

	ranked := fuzzy.Rank(query, names, limit)
	suggestions := make([]*domain.Tag, 0, len(ranked))
	for _, m := range ranked {
		suggestions = append(suggestions, byName[m.Text])
	}
	return suggestions, nil
}
