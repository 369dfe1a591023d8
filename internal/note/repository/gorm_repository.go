package repository

import (
	"errors"
	"sort"
	"strings"

	"planner-backend/internal/note/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormNoteRepository struct {
	db *gorm.DB
}

func NewGormNoteRepository(db *gorm.DB) NoteRepository {
	return &gormNoteRepository{db: db}
}

func (r *gormNoteRepository) Create(note *domain.Note, tagNames []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(note).Error; err != nil {
			return err
		}
		names, err := linkTags(tx, note.UserID, note.ID, tagNames)
		if err != nil {
			return err
		}
		note.Tags = names
		return nil
	})
}

func (r *gormNoteRepository) FindByID(id uint) (*domain.Note, error) {
	var note domain.Note
	err := r.db.Where("id = ?", id).First(&note).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if err := loadTags(r.db, []*domain.Note{&note}); err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *gormNoteRepository) FindByUserID(userID uint) ([]*domain.Note, error) {
	return r.findActive(r.db.Where("user_id = ?", userID))
}

func (r *gormNoteRepository) Search(userID uint, query string) ([]*domain.Note, error) {
	needle := strings.ToLower(query)
	// SQLite's LOWER only folds ASCII, so "CAFÉ" would never match "café" there.
	if r.db.Dialector.Name() == "sqlite" {
		return r.searchFolded(userID, needle)
	}
	pattern := "%" + escapeLike(needle) + "%"
	return r.findActive(r.db.
		Where("user_id = ?", userID).
		Where(`(LOWER(title) LIKE ? ESCAPE '\' OR LOWER(body) LIKE ? ESCAPE '\')`, pattern, pattern))
}

// searchFolded matches in Go with Unicode case folding.
func (r *gormNoteRepository) searchFolded(userID uint, needle string) ([]*domain.Note, error) {
	candidates := []*domain.Note{}
	err := r.db.
		Where("user_id = ? AND is_archived = ?", userID, false).
		Order("created_at DESC, id DESC").
		Find(&candidates).Error
	if err != nil {
		return nil, err
	}

	notes := make([]*domain.Note, 0, len(candidates))
	for _, n := range candidates {
		if strings.Contains(strings.ToLower(n.Title), needle) || strings.Contains(strings.ToLower(n.Body), needle) {
			notes = append(notes, n)
		}
	}
	if err := loadTags(r.db, notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *gormNoteRepository) findActive(query *gorm.DB) ([]*domain.Note, error) {
	notes := []*domain.Note{}
	err := query.
		Where("is_archived = ?", false).
		Order("created_at DESC, id DESC").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	if err := loadTags(r.db, notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *gormNoteRepository) Update(note *domain.Note, tagNames *[]string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(note).Error; err != nil {
			return err
		}
		if tagNames == nil {
			return loadTags(tx, []*domain.Note{note})
		}

		if err := tx.Where("note_id = ?", note.ID).Delete(&domain.NoteTag{}).Error; err != nil {
			return err
		}
		names, err := linkTags(tx, note.UserID, note.ID, *tagNames)
		if err != nil {
			return err
		}
		note.Tags = names
		return nil
	})
}

func (r *gormNoteRepository) Archive(id uint) error {
	return r.db.Model(&domain.Note{}).Where("id = ?", id).Update("is_archived", true).Error
}

func (r *gormNoteRepository) FindTagsByUserID(userID uint) ([]*domain.Tag, error) {
	tags := []*domain.Tag{}
	err := r.db.Where("user_id = ?", userID).Order("name ASC").Find(&tags).Error
	return tags, err
}

// linkTags looks up or creates each named tag for the user and links it to the note.
// It returns the linked names in sorted order.
func linkTags(tx *gorm.DB, userID, noteID uint, tagNames []string) ([]string, error) {
	names := NormalizeTagNames(tagNames)
	if len(names) == 0 {
		return []string{}, nil
	}

	links := make([]domain.NoteTag, 0, len(names))
	for _, name := range names {
		tag, err := findOrCreateTag(tx, userID, name)
		if err != nil {
			return nil, err
		}
		links = append(links, domain.NoteTag{NoteID: noteID, TagID: tag.ID})
	}

	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&links).Error; err != nil {
		return nil, err
	}
	return names, nil
}

func findOrCreateTag(tx *gorm.DB, userID uint, name string) (*domain.Tag, error) {
	var tag domain.Tag
	err := tx.Where("user_id = ? AND name = ?", userID, name).First(&tag).Error
	if err == nil {
		return &tag, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// A concurrent request may create the same tag between the lookup and the insert.
	tag = domain.Tag{UserID: userID, Name: name}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&tag).Error; err != nil {
		return nil, err
	}
	if tag.ID == 0 {
		if err := tx.Where("user_id = ? AND name = ?", userID, name).First(&tag).Error; err != nil {
			return nil, err
		}
	}
	return &tag, nil
}

// loadTags fills Tags on each note with one query.
func loadTags(db *gorm.DB, notes []*domain.Note) error {
	if len(notes) == 0 {
		return nil
	}

	byID := make(map[uint]*domain.Note, len(notes))
	ids := make([]uint, 0, len(notes))
	for _, n := range notes {
		n.Tags = []string{}
		byID[n.ID] = n
		ids = append(ids, n.ID)
	}

	var rows []struct {
		NoteID uint
		Name   string
	}
	err := db.Table("note_tags").
		Select("note_tags.note_id, tags.name").
		Joins("JOIN tags ON tags.id = note_tags.tag_id").
		Where("note_tags.note_id IN ?", ids).
		Order("tags.name ASC").
		Scan(&rows).Error
	if err != nil {
		return err
	}

	for _, row := range rows {
		if n, ok := byID[row.NoteID]; ok {
			n.Tags = append(n.Tags, row.Name)
		}
	}
	return nil
}

// NormalizeTagNames trims names, drops empty ones and duplicates, and sorts the rest.
func NormalizeTagNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
