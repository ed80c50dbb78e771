// Package store holds the wallet record store contract and its backends.
package store

import (
	"context"
	"time"
)

// MaxWords is the largest snapshot a record may hold.
const MaxWords = 12

// WalletRecord is a persisted, named snapshot of a phrase.
type WalletRecord struct {
	ID        string    `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	Words     []string  `json:"words" yaml:"words"`
	DeviceID  string    `json:"device_id,omitempty" yaml:"device_id,omitempty"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// RecordStore is the remote collection of wallet records.
//
// None of the calls are idempotent: two Inserts create two records. Callers
// issue them only on explicit user action.
type RecordStore interface {
	// List returns every record, newest first.
	List(ctx context.Context) ([]WalletRecord, error)
	// Insert always creates a new record tagged with deviceID.
	Insert(ctx context.Context, deviceID, name string, words []string) error
	// Update replaces the words of an existing record. It fails with
	// ErrNotFound when id no longer exists.
	Update(ctx context.Context, id string, words []string) error
	// Delete removes a record.
	Delete(ctx context.Context, id string) error
	// Close releases backend resources.
	Close() error
}

// validateWords rejects snapshots that cannot be a phrase.
func validateWords(words []string) error {
	if len(words) == 0 {
		return NewInvalidRequest("words must not be empty")
	}
	if len(words) > MaxWords {
		return NewInvalidRequest("too many words")
	}
	return nil
}

func validateID(id string) error {
	if id == "" {
		return NewInvalidRequest("id is required")
	}
	return nil
}
