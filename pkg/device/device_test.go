package device

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSourceGeneratesOnFirstUse(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cfg")
	s := NewSource(dir)

	if _, err := os.Stat(s.Path()); !os.IsNotExist(err) {
		t.Fatal("NewSource must not touch the disk")
	}

	id, err := s.ID()
	if err != nil {
		t.Fatalf("ID() error = %v", err)
	}
	if len(id) != 32 {
		t.Errorf("ID() = %q, want 32 hex chars", id)
	}

	data, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatalf("device id not persisted: %v", err)
	}
	if strings.TrimSpace(string(data)) != id {
		t.Errorf("persisted %q, want %q", data, id)
	}
}

func TestSourceReusesAcrossSessions(t *testing.T) {
	dir := t.TempDir()

	first, err := NewSource(dir).ID()
	if err != nil {
		t.Fatal(err)
	}
	second, err := NewSource(dir).ID()
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("identifier changed between sessions: %q vs %q", first, second)
	}
}

func TestSourceHealsBlankFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("  \n"), 0600); err != nil {
		t.Fatal(err)
	}

	id, err := NewSource(dir).ID()
	if err != nil {
		t.Fatalf("ID() error = %v", err)
	}
	if id == "" {
		t.Error("blank file should be replaced with a fresh identifier")
	}
}
