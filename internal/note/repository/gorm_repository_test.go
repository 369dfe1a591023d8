package repository

import (
	"reflect"
	"testing"

	"planner-backend/internal/note/domain"
	"planner-backend/pkg/database"

	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenInMemory(&domain.Note{}, &domain.Tag{}, &domain.NoteTag{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	return db
}

func TestNormalizeTagNames(t *testing.T) {
	got := NormalizeTagNames([]string{" work ", "", "home", "work", "  "})
	want := []string{"home", "work"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestNoteRepository_TagReplace(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormNoteRepository(db)

	note := &domain.Note{UserID: 1, Title: "Trip"}
	if err := repo.Create(note, []string{"a", "b", "a"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if !reflect.DeepEqual(note.Tags, []string{"a", "b"}) {
		t.Fatalf("expected tags [a b], got %v", note.Tags)
	}

	replacement := []string{"a"}
	if err := repo.Update(note, &replacement); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	found, err := repo.FindByID(note.ID)
	if err != nil || found == nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if !reflect.DeepEqual(found.Tags, []string{"a"}) {
		t.Errorf("expected only [a] linked, got %v", found.Tags)
	}

	tags, err := repo.FindTagsByUserID(1)
	if err != nil {
		t.Fatalf("FindTagsByUserID failed: %v", err)
	}
	if len(tags) != 2 || tags[0].Name != "a" || tags[1].Name != "b" {
		t.Errorf("unlinked tag should survive, got %+v", tags)
	}

	// Updating without tags keeps the links.
	note.Title = "Trip 2"
	if err := repo.Update(note, nil); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if !reflect.DeepEqual(note.Tags, []string{"a"}) {
		t.Errorf("tags should be untouched, got %v", note.Tags)
	}

	var links int64
	db.Model(&domain.NoteTag{}).Count(&links)
	if links != 1 {
		t.Errorf("expected 1 link row, got %d", links)
	}
}

func TestNoteRepository_TagsArePerUser(t *testing.T) {
	repo := NewGormNoteRepository(setupTestDB(t))

	if err := repo.Create(&domain.Note{UserID: 1, Title: "x"}, []string{"shared"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := repo.Create(&domain.Note{UserID: 2, Title: "y"}, []string{"shared"}); err != nil {
		t.Fatalf("Create for second user failed: %v", err)
	}
	if err := repo.Create(&domain.Note{UserID: 1, Title: "z"}, []string{"shared"}); err != nil {
		t.Fatalf("reusing a tag failed: %v", err)
	}

	for _, userID := range []uint{1, 2} {
		tags, _ := repo.FindTagsByUserID(userID)
		if len(tags) != 1 {
			t.Errorf("user %d: expected one tag, got %d", userID, len(tags))
		}
	}
}

func TestNoteRepository_SearchAndArchive(t *testing.T) {
	repo := NewGormNoteRepository(setupTestDB(t))

	seed := []*domain.Note{
		{UserID: 1, Title: "Category List", Body: "misc"},
		{UserID: 1, Title: "Pets", Body: "feed the CAT at noon"},
		{UserID: 1, Title: "Dogs", Body: "walk"},
		{UserID: 2, Title: "cat facts", Body: ""},
		{UserID: 1, Title: "100% done", Body: "under_score"},
	}
	for _, n := range seed {
		if err := repo.Create(n, nil); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	titles := func(notes []*domain.Note) []string {
		out := []string{}
		for _, n := range notes {
			out = append(out, n.Title)
		}
		return out
	}

	found, err := repo.Search(1, "cat")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if got := titles(found); len(got) != 2 {
		t.Fatalf("expected 2 matches, got %v", got)
	}

	if got := titles(mustSearch(t, repo, "%")); !reflect.DeepEqual(got, []string{"100% done"}) {
		t.Errorf("percent must be matched literally, got %v", got)
	}
	if got := titles(mustSearch(t, repo, "_")); !reflect.DeepEqual(got, []string{"100% done"}) {
		t.Errorf("underscore must be matched literally, got %v", got)
	}

	if err := repo.Archive(seed[1].ID); err != nil {
		t.Fatalf("Archive failed: %v", err)
	}
	if got := titles(mustSearch(t, repo, "cat")); !reflect.DeepEqual(got, []string{"Category List"}) {
		t.Errorf("archived note still searchable: %v", got)
	}

	list, _ := repo.FindByUserID(1)
	if len(list) != 3 {
		t.Errorf("expected 3 active notes, got %v", titles(list))
	}
	archived, _ := repo.FindByID(seed[1].ID)
	if archived == nil || !archived.IsArchived {
		t.Errorf("archived note should still load by id: %+v", archived)
	}
}

func TestNoteRepository_SearchFoldsNonASCIICase(t *testing.T) {
	repo := NewGormNoteRepository(setupTestDB(t))
	if err := repo.Create(&domain.Note{UserID: 1, Title: "CAFÉ menu", Body: "ÜBER good"}, []string{"food"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	for _, q := range []string{"café", "CAFÉ", "über", "menu"} {
		found := mustSearch(t, repo, q)
		if len(found) != 1 {
			t.Errorf("Search(%q): expected 1 match, got %d", q, len(found))
			continue
		}
		if !reflect.DeepEqual(found[0].Tags, []string{"food"}) {
			t.Errorf("Search(%q): tags not loaded: %v", q, found[0].Tags)
		}
	}
	if found := mustSearch(t, repo, "cafe"); len(found) != 0 {
		t.Errorf("accents are not folded, expected no match, got %d", len(found))
	}
}

func mustSearch(t *testing.T, repo NoteRepository, q string) []*domain.Note {
	t.Helper()
	notes, err := repo.Search(1, q)
	if err != nil {
		t.Fatalf("Search(%q) failed: %v", q, err)
	}
	return notes
}
