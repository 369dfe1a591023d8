package repository

import (
	"errors"
	"testing"

	authdomain "planner-backend/internal/auth/domain"
	"planner-backend/pkg/database"

	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenInMemory(&authdomain.User{}, &authdomain.TokenBlacklist{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	return db
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))

	user := &authdomain.User{Name: "Ada", Email: " Ada@Example.com ", PasswordHash: "x", Timezone: "UTC"}
	if err := repo.Create(user); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("expected ID to be assigned")
	}

	found, err := repo.FindByEmail("ada@example.com")
	if err != nil || found == nil {
		t.Fatalf("FindByEmail failed: %v %v", found, err)
	}
	if found.ID != user.ID {
		t.Errorf("expected user %d, got %d", user.ID, found.ID)
	}

	missing, err := repo.FindByID(9999)
	if err != nil {
		t.Fatalf("FindByID returned error for missing row: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for missing user")
	}
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	if err := repo.Create(&authdomain.User{Name: "A", Email: "dup@example.com", PasswordHash: "x"}); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}
	err := repo.Create(&authdomain.User{Name: "B", Email: "DUP@example.com", PasswordHash: "y"})
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}

	var count int64
	db.Model(&authdomain.User{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected exactly one user row, got %d", count)
	}
}

func TestUserRepository_UpdateRejectsTakenEmail(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))

	a := &authdomain.User{Name: "A", Email: "a@example.com", PasswordHash: "x"}
	b := &authdomain.User{Name: "B", Email: "b@example.com", PasswordHash: "x"}
	_ = repo.Create(a)
	_ = repo.Create(b)

	b.Email = "a@example.com"
	if err := repo.Update(b); !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}

	b.Email = "b@example.com"
	b.DarkMode = true
	if err := repo.Update(b); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	reloaded, _ := repo.FindByID(b.ID)
	if !reloaded.DarkMode {
		t.Error("expected dark_mode to be persisted")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatal("password stored raw")
	}
	if !CheckPasswordHash("s3cret-pass", hash) {
		t.Error("expected matching password to verify")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Error("expected wrong password to fail")
	}
}
