package export

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"unicode/utf8"
)

const phrase = "Abandon Ability Able About Above Absent Absorb Abstract Absurd Abuse Access Accident"

func TestRenderPNG(t *testing.T) {
	out, err := Render(phrase, DefaultOptions())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	img, err := png.Decode(bytes.NewReader(out.PNG))
	if err != nil {
		t.Fatalf("Render() did not produce a PNG: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != b.Dy() {
		t.Errorf("QR image is not square: %v", b)
	}
	if b.Dx() > 320 {
		t.Errorf("QR image is %dpx, want at most 320px", b.Dx())
	}
}

func TestRenderErrors(t *testing.T) {
	if _, err := Render("   ", DefaultOptions()); err != ErrEmpty {
		t.Errorf("Render(blank) error = %v, want ErrEmpty", err)
	}
	if _, err := Render(phrase, Options{Size: 320, Level: "Z"}); err == nil {
		t.Error("Render with an unknown level should fail")
	}
}

func TestParseLevel(t *testing.T) {
	for _, name := range []string{"l", "M", "q", "H", ""} {
		if _, err := ParseLevel(name); err != nil {
			t.Errorf("ParseLevel(%q) error = %v", name, err)
		}
	}
}

func TestWritePNG(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	now := time.Date(2026, 10, 18, 14, 5, 9, 0, time.UTC)

	path, err := WritePNG(dir, []byte("png"), now)
	if err != nil {
		t.Fatalf("WritePNG() error = %v", err)
	}
	if filepath.Base(path) != "seed-phrase-qr-20261018-140509.png" {
		t.Errorf("unexpected file name %q", filepath.Base(path))
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("export not written: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("export permissions = %v, want 0600", info.Mode().Perm())
	}

	if _, err := WritePNG(dir, nil, now); err != ErrEmpty {
		t.Errorf("WritePNG(nil) error = %v, want ErrEmpty", err)
	}
}

func TestRender(t *testing.T) {
	img, err := Render(phrase, DefaultOptions())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if len(img.PNG) == 0 {
		t.Error("Render() produced no PNG")
	}

	lines := strings.Split(img.Art, "\n")
	if len(lines) < 10 {
		t.Fatalf("Render() art has %d lines, want a full code", len(lines))
	}
	width := utf8.RuneCountInString(lines[0])
	for i, line := range lines {
		if utf8.RuneCountInString(line) != width {
			t.Errorf("art line %d has width %d, want %d", i, utf8.RuneCountInString(line), width)
		}
	}
	// Two terminal rows per module row
	if want := (width + 1) / 2; len(lines) != want {
		t.Errorf("art has %d lines for width %d, want %d", len(lines), width, want)
	}
}
