// Package export renders a phrase as a QR code image and writes it out.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"rsc.io/qr"
)

// quietZone is the border, in modules, rsc.io/qr draws around a code.
const quietZone = 8

// Options controls how a phrase is encoded.
type Options struct {
	// Size is the target edge length in pixels. The output is the largest
	// whole-module scale that fits.
	Size int
	// Level is the error correction level: L, M, Q or H.
	Level string
}

// DefaultOptions matches the export the tool has always produced.
func DefaultOptions() Options {
	return Options{Size: 320, Level: "M"}
}

// ErrEmpty is returned when there is nothing to encode.
var ErrEmpty = errors.New("nothing to encode")

// ParseLevel maps a level name to the rsc.io/qr constant.
func ParseLevel(name string) (qr.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "L":
		return qr.L, nil
	case "M", "":
		return qr.M, nil
	case "Q":
		return qr.Q, nil
	case "H":
		return qr.H, nil
	default:
		return qr.M, fmt.Errorf("invalid error correction level %q (must be: L, M, Q, or H)", name)
	}
}

// Image is a rendered QR code: the PNG handed to the export affordance and
// a text rendering for the terminal.
type Image struct {
	PNG []byte
	Art string
}

// Render encodes text as a QR code image.
func Render(text string, opts Options) (*Image, error) {
	code, err := encode(text, opts)
	if err != nil {
		return nil, err
	}
	return &Image{PNG: scaledPNG(code, opts.Size), Art: Art(code)}, nil
}

func encode(text string, opts Options) (*qr.Code, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmpty
	}
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	code, err := qr.Encode(text, level)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR code: %w", err)
	}
	return code, nil
}

func scaledPNG(code *qr.Code, size int) []byte {
	if size <= 0 {
		size = DefaultOptions().Size
	}
	scale := size / (code.Size + quietZone)
	if scale < 1 {
		scale = 1
	}
	code.Scale = scale
	return code.PNG()
}

// Art draws the code with half-block characters, two modules per line,
// light modules as blocks so it scans on dark terminals.
func Art(code *qr.Code) string {
	const border = 2
	dark := func(x, y int) bool {
		if x < 0 || y < 0 || x >= code.Size || y >= code.Size {
			return false
		}
		return code.Black(x, y)
	}

	var b strings.Builder
	for y := -border; y < code.Size+border; y += 2 {
		for x := -border; x < code.Size+border; x++ {
			top, bottom := !dark(x, y), !dark(x, y+1)
			switch {
			case top && bottom:
				b.WriteRune('█')
			case top:
				b.WriteRune('▀')
			case bottom:
				b.WriteRune('▄')
			default:
				b.WriteRune(' ')
			}
		}
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

// Filename returns the name a QR export taken at t is saved under.
func Filename(t time.Time) string {
	return fmt.Sprintf("seed-phrase-qr-%s.png", t.Format("20060102-150405"))
}

// WritePNG saves png into dir under a generated name and returns the path.
// The file is only readable by the owner.
func WritePNG(dir string, png []byte, now time.Time) (string, error) {
	if len(png) == 0 {
		return "", ErrEmpty
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	path := filepath.Join(dir, Filename(now))
	if err := os.WriteFile(path, png, 0600); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
