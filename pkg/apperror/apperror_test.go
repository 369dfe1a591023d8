package apperror

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsMatchesKind(t *testing.T) {
	err := NotFound("Task")

	if !errors.Is(err, ErrNotFound) {
		t.Fatal("expected NotFound error to match ErrNotFound")
	}
	if errors.Is(err, ErrForbidden) {
		t.Fatal("NotFound error must not match ErrForbidden")
	}

	wrapped := fmt.Errorf("handler: %w", err)
	if !errors.Is(wrapped, ErrNotFound) {
		t.Fatal("expected wrapped error to match ErrNotFound")
	}
}

func TestKindOf(t *testing.T) {
	if got := KindOf(MissingField("email")); got != KindMissingField {
		t.Errorf("expected %s, got %s", KindMissingField, got)
	}
	if got := KindOf(errors.New("boom")); got != KindInternal {
		t.Errorf("expected unclassified errors to be internal, got %s", got)
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal(cause)

	if !errors.Is(err, cause) {
		t.Fatal("expected cause to be reachable through Unwrap")
	}
	if err.Message != "internal server error" {
		t.Errorf("unexpected client message %q", err.Message)
	}
}
