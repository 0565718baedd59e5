package session

import (
	"bytes"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hy4ri/trackerbot/internal/command"
	"github.com/hy4ri/trackerbot/internal/storage"
	"github.com/hy4ri/trackerbot/internal/task"
)

func newStore(t *testing.T) *storage.Storage {
	t.Helper()
	return storage.New(filepath.Join(t.TempDir(), storage.FileName))
}

func TestHandle(t *testing.T) {
	s := New(nil, nil)

	tests := []struct {
		line     string
		wantText string
		wantErr  error
		wantExit bool
		wantLen  int
	}{
		{"todo buy milk", "I have added this task to my list.", nil, false, 1},
		{"deadline report /by 2024-12-01", "2 tasks on my list", nil, false, 2},
		{"mark 1", "marked as completed", nil, false, 2},
		{"mark 1", "already", task.ErrAlreadyDone, false, 2},
		{"mark 9", "does not exist", task.ErrIndexOutOfRange, false, 2},
		{"delete x", "Invalid format", command.ErrInvalidIndex, false, 2},
		{"blah", "Unrecognised command", command.ErrUnrecognizedCommand, false, 2},
		{"delete 2", "1 task remain", nil, false, 1},
		{"bye", "Goodbye", nil, true, 1},
	}

	for _, tt := range tests {
		out := s.Handle(tt.line)
		if !strings.Contains(out.Text, tt.wantText) {
			t.Errorf("%q: expected text containing %q, got %q", tt.line, tt.wantText, out.Text)
		}
		if !errors.Is(out.Err, tt.wantErr) {
			t.Errorf("%q: expected error %v, got %v", tt.line, tt.wantErr, out.Err)
		}
		if out.Exit != tt.wantExit {
			t.Errorf("%q: expected exit %v, got %v", tt.line, tt.wantExit, out.Exit)
		}
		if s.Len() != tt.wantLen {
			t.Errorf("%q: expected %d tasks, got %d", tt.line, tt.wantLen, s.Len())
		}
	}
}

func TestSaveOnlyWhenDirty(t *testing.T) {
	store := newStore(t)
	s := New(nil, store)

	if err := s.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(store.Path()); !os.IsNotExist(err) {
		t.Error("clean session should not create the save file")
	}

	s.Handle("list")
	if s.Dirty() {
		t.Error("list should not dirty the session")
	}

	s.Handle("todo read book")
	if !s.Dirty() {
		t.Fatal("add should dirty the session")
	}
	if err := s.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if s.Dirty() {
		t.Error("save should clear the dirty flag")
	}

	data, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "T|0|read book\n" {
		t.Errorf("unexpected file %q", data)
	}
}

func TestAutosave(t *testing.T) {
	store := newStore(t)
	s := New(nil, store, WithAutosave(true))

	out := s.Handle("todo read book")
	if out.Err != nil || out.SaveErr != nil {
		t.Fatalf("unexpected errors %v, %v", out.Err, out.SaveErr)
	}
	data, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatalf("expected autosave to write the file: %v", err)
	}
	if string(data) != "T|0|read book\n" {
		t.Errorf("unexpected file %q", data)
	}

	// A failed command does not save.
	s.Handle("mark 5")
	if s.Dirty() {
		t.Error("failed command should not dirty the session")
	}
}

func TestAutosaveFailureIsReported(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	s := New(nil, storage.New(filepath.Join(blocker, storage.FileName)), WithAutosave(true))
	out := s.Handle("todo read book")

	if out.Err != nil {
		t.Fatalf("command should succeed, got %v", out.Err)
	}
	if !errors.Is(out.SaveErr, storage.ErrStorageWrite) {
		t.Fatalf("expected ErrStorageWrite, got %v", out.SaveErr)
	}
	if !strings.HasPrefix(out.Text, "I have added") {
		t.Errorf("command still succeeded, got %q", out.Text)
	}
	if s.Len() != 1 || !s.Dirty() {
		t.Error("task should stay in memory and remain unsaved")
	}
}

func TestOpen(t *testing.T) {
	store := newStore(t)
	if err := os.WriteFile(store.Path(), []byte("T|1|a\nE|0|b|1704067200|1704153600\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	s, err := Open(store, WithLogger(log.New(&buf, "", 0)))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if s.Len() != 2 {
		t.Errorf("expected 2 tasks, got %d", s.Len())
	}
	if !strings.Contains(buf.String(), "loaded 2 tasks") {
		t.Errorf("expected load to be logged, got %q", buf.String())
	}
}

func TestOpenCorruptStartsEmpty(t *testing.T) {
	store := newStore(t)
	if err := os.WriteFile(store.Path(), []byte("T|0|a\nnonsense\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	s, err := Open(store)
	if !errors.Is(err, storage.ErrCorruptSaveFile) {
		t.Fatalf("expected ErrCorruptSaveFile, got %v", err)
	}
	if s == nil || s.Len() != 0 {
		t.Fatal("expected a usable empty session")
	}

	if out := s.Handle("todo fresh"); out.Err != nil {
		t.Errorf("session should accept commands, got %v", out.Err)
	}
}

func TestOpenMissingFile(t *testing.T) {
	s, err := Open(newStore(t))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("expected empty session, got %d tasks", s.Len())
	}
}
