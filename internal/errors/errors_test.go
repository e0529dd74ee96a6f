package errors

import (
	"errors"
	"testing"
)

func TestCorpusErrorUnwrap(t *testing.T) {
	cause := errors.New("permission denied")
	err := NewCorpusError("read", "/corpus/a.txt", cause)

	want := "corpus read failed for '/corpus/a.txt': permission denied"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the wrapped cause")
	}
}

func TestStateErrorSentinels(t *testing.T) {
	if errors.Is(ErrBusy, ErrNotReady) {
		t.Error("ErrBusy and ErrNotReady must be distinct")
	}
	var se *StateError
	if !errors.As(ErrBusy, &se) {
		t.Error("ErrBusy should be a *StateError")
	}
}

func TestInputErrorMessage(t *testing.T) {
	if ErrEmptyQuery.Error() == "" {
		t.Error("expected a non-empty message")
	}
}
