package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/seedpad/seedpad-terminal/pkg/files"
	"github.com/seedpad/seedpad-terminal/pkg/store"
)

func TestCommandContextDefaults(t *testing.T) {
	dir := t.TempDir()
	ctx, err := NewCommandContext(dir)
	if err != nil {
		t.Fatal(err)
	}

	settings, err := ctx.LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if settings.Store.Backend != store.BackendSQLite {
		t.Errorf("backend = %q", settings.Store.Backend)
	}

	cfg := ctx.StoreConfig()
	if cfg.SQLitePath != filepath.Join(dir, "seedpad.db") {
		t.Errorf("sqlite path = %q", cfg.SQLitePath)
	}
	if cfg.REST.Timeout != 15*time.Second {
		t.Errorf("rest timeout = %v", cfg.REST.Timeout)
	}
}

func TestCommandContextRejectsBadSettings(t *testing.T) {
	dir := t.TempDir()
	content := "store:\n  backend: rest\n"
	if err := os.WriteFile(filepath.Join(dir, files.SettingsFile), []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	ctx, err := NewCommandContext(dir)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ctx.LoadSettings(); err == nil {
		t.Fatal("expected rest backend without url to be rejected")
	}
}

func TestCommandContextOpensMemoryStore(t *testing.T) {
	dir := t.TempDir()
	content := "store:\n  backend: Memory\n"
	if err := os.WriteFile(filepath.Join(dir, files.SettingsFile), []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	ctx, err := NewCommandContext(dir)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ctx.LoadSettings(); err != nil {
		t.Fatal(err)
	}
	st, err := ctx.OpenStore()
	if err != nil {
		t.Fatalf("OpenStore: %v", err)
	}
	defer st.Close()

	if _, ok := st.(*store.Memory); !ok {
		t.Errorf("got %T, want *store.Memory", st)
	}
}

func TestConfirmReadsAnswer(t *testing.T) {
	tests := []struct {
		input      string
		defaultYes bool
		want       bool
	}{
		{input: "y\n", want: true},
		{input: "YES\n", want: true},
		{input: "n\n", defaultYes: true, want: false},
		{input: "\n", defaultYes: true, want: true},
		{input: "", defaultYes: false, want: false},
	}

	for _, tt := range tests {
		got, err := confirm(strings.NewReader(tt.input), "Overwrite?", tt.defaultYes)
		if err != nil {
			t.Fatalf("confirm(%q): %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("confirm(%q, %v) = %v, want %v", tt.input, tt.defaultYes, got, tt.want)
		}
	}
}
