package database

import (
	"path/filepath"
	"testing"
)

func TestIsPostgresDSN(t *testing.T) {
	tests := []struct {
		dsn  string
		want bool
	}{
		{"postgres://planner:pw@localhost:5432/planner?sslmode=disable", true},
		{"postgresql://localhost/planner", true},
		{"host=localhost user=planner dbname=planner sslmode=disable", true},
		{"planner.db", false},
		{":memory:", false},
		{"file:data/planner.db?_busy_timeout=5000", false},
	}

	for _, tt := range tests {
		if got := IsPostgresDSN(tt.dsn); got != tt.want {
			t.Errorf("IsPostgresDSN(%q) = %v, want %v", tt.dsn, got, tt.want)
		}
	}
}

type probe struct {
	ID   uint `gorm:"primaryKey"`
	Name string
}

func TestOpenInMemoryMigrates(t *testing.T) {
	db, err := OpenInMemory(&probe{})
	if err != nil {
		t.Fatalf("OpenInMemory failed: %v", err)
	}

	if err := db.Create(&probe{Name: "a"}).Error; err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	var count int64
	db.Model(&probe{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected 1 row, got %d", count)
	}
}

func TestOpenCreatesSQLiteDir(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "nested", "planner.db")

	db, err := Open(dsn, 1)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := db.AutoMigrate(&probe{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.Close()
}
