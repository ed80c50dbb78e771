// Package device manages the locally persisted identifier used to tag
// inserted records.
package device

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// FileName is the file the identifier is persisted in.
const FileName = "device_id"

// Source lazily reads, or generates and stores, the device identifier.
// It is safe for concurrent use.
type Source struct {
	path string

	mu sync.Mutex
	id string
}

// NewSource returns a Source persisting to dir/device_id. Nothing touches
// the disk until ID is first called.
func NewSource(dir string) *Source {
	return &Source{path: filepath.Join(dir, FileName)}
}

// Path returns where the identifier is persisted.
func (s *Source) Path() string {
	return s.path
}

// ID returns the identifier, generating and persisting one on first need.
// A missing or blank file heals itself.
func (s *Source) ID() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.id != "" {
		return s.id, nil
	}

	data, err := os.ReadFile(s.path)
	switch {
	case err == nil && strings.TrimSpace(string(data)) != "":
		s.id = strings.TrimSpace(string(data))
		return s.id, nil
	case err != nil && !errors.Is(err, os.ErrNotExist):
		return "", fmt.Errorf("failed to read device id: %w", err)
	}

	id, err := generate()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return "", fmt.Errorf("failed to create device id directory: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(id+"\n"), 0600); err != nil {
		return "", fmt.Errorf("failed to write device id: %w", err)
	}
	s.id = id
	return id, nil
}

func generate() (string, error) {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", fmt.Errorf("failed to generate device id: %w", err)
	}
	return hex.EncodeToString(b[:]), nil
}
