package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

var ErrTooLarge = errors.New("file exceeds maximum upload size")

// Blob describes a stored file.
type Blob struct {
	Path     string // relative to the storage root
	Size     int64
	MimeType string
}

// BlobStore persists uploaded file contents.
type BlobStore interface {
	Save(originalName string, r io.Reader) (*Blob, error)
	Remove(path string) error
}

// LocalStore writes blobs under a directory on local disk.
type LocalStore struct {
	root     string
	maxBytes int64
}

func NewLocalStore(root string, maxBytes int64) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %q: %w", root, err)
	}
	return &LocalStore{root: root, maxBytes: maxBytes}, nil
}

// Save stores r under a random name that keeps the original extension and sniffs its mime type
// from the content.
func (s *LocalStore) Save(originalName string, r io.Reader) (*Blob, error) {
	data, err := io.ReadAll(io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > s.maxBytes {
		return nil, ErrTooLarge
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	rel := filepath.Join("attachments", uuid.New().String()+ext)
	full := filepath.Join(s.root, rel)

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return nil, fmt.Errorf("create attachment dir: %w", err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return nil, fmt.Errorf("write blob: %w", err)
	}

	return &Blob{
		Path:     filepath.ToSlash(rel),
		Size:     int64(len(data)),
		MimeType: mimetype.Detect(data).String(),
	}, nil
}

func (s *LocalStore) Remove(path string) error {
	full := filepath.Join(s.root, filepath.FromSlash(path))
	if !strings.HasPrefix(filepath.Clean(full), filepath.Clean(s.root)) {
		return fmt.Errorf("blob path %q escapes storage root", path)
	}
	if err := os.Remove(full); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove blob: %w", err)
	}
	return nil
}
