package store

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"
)

// CurrentSchemaVersion is the latest schema version.
// Bump this when adding migrations.
const CurrentSchemaVersion = 1

// DefaultDBName is the database file created inside the data directory.
const DefaultDBName = "seedpad.db"

// SQLite is a RecordStore backed by a local SQLite database.
type SQLite struct {
	db  *sql.DB
	now func() time.Time

	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// OpenSQLite opens (creating if needed) the database at path and applies
// migrations.
func OpenSQLite(path string) (*SQLite, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	// Pragmas in the DSN apply to every pooled connection
	dsn := path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	// Best-effort, the file only exists after the first migration
	_ = os.Chmod(path, 0600)

	return &SQLite{
		db:      db,
		now:     time.Now,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}, nil
}

// migrate applies schema migrations based on user_version.
func migrate(db *sql.DB) error {
	version, err := getUserVersion(db)
	if err != nil {
		return err
	}

	if version < 1 {
		schema := `
		CREATE TABLE IF NOT EXISTS wallets (
		  id          TEXT PRIMARY KEY,
		  device_id   TEXT NOT NULL,
		  name        TEXT NOT NULL,
		  words_json  TEXT NOT NULL,
		  created_at  INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_wallets_created
		ON wallets(created_at DESC);
		`
		if _, err := db.Exec(schema); err != nil {
			return fmt.Errorf("migration 1 failed: %w", err)
		}
		if err := setUserVersion(db, 1); err != nil {
			return err
		}
	}

	return nil
}

func getUserVersion(db *sql.DB) (int, error) {
	var version int
	if err := db.QueryRow("PRAGMA user_version;").Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to get user_version: %w", err)
	}
	return version, nil
}

func setUserVersion(db *sql.DB, version int) error {
	if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version=%d", version)); err != nil {
		return fmt.Errorf("failed to set user_version: %w", err)
	}
	return nil
}

func (s *SQLite) List(ctx context.Context) ([]WalletRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, device_id, name, words_json, created_at
		FROM wallets
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, NewInternal(err)
	}
	defer rows.Close()

	var out []WalletRecord
	for rows.Next() {
		var (
			r         WalletRecord
			wordsJSON string
			created   int64
		)
		if err := rows.Scan(&r.ID, &r.DeviceID, &r.Name, &wordsJSON, &created); err != nil {
			return nil, NewInternal(err)
		}
		if err := json.Unmarshal([]byte(wordsJSON), &r.Words); err != nil {
			return nil, NewInternal(fmt.Errorf("corrupt words for %s: %w", r.ID, err))
		}
		r.CreatedAt = time.Unix(0, created)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, NewInternal(err)
	}
	return out, nil
}

func (s *SQLite) Insert(ctx context.Context, deviceID, name string, words []string) error {
	if err := validateWords(words); err != nil {
		return err
	}
	data, err := json.Marshal(words)
	if err != nil {
		return NewInternal(err)
	}

	now := s.now()
	id, err := s.newID(now)
	if err != nil {
		return NewInternal(err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO wallets (id, device_id, name, words_json, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, id, deviceID, name, string(data), now.UnixNano())
	if err != nil {
		return NewInternal(err)
	}
	return nil
}

func (s *SQLite) Update(ctx context.Context, id string, words []string) error {
	if err := validateID(id); err != nil {
		return err
	}
	if err := validateWords(words); err != nil {
		return err
	}
	data, err := json.Marshal(words)
	if err != nil {
		return NewInternal(err)
	}

	res, err := s.db.ExecContext(ctx, `UPDATE wallets SET words_json = ? WHERE id = ?`, string(data), id)
	if err != nil {
		return NewInternal(err)
	}
	return checkAffected(res, id)
}

func (s *SQLite) Delete(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM wallets WHERE id = ?`, id)
	if err != nil {
		return NewInternal(err)
	}
	return checkAffected(res, id)
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

// DB exposes the underlying handle for tests and maintenance.
func (s *SQLite) DB() *sql.DB {
	return s.db
}

func (s *SQLite) newID(at time.Time) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, err := ulid.New(ulid.Timestamp(at), s.entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

func checkAffected(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return NewInternal(err)
	}
	if n == 0 {
		return NewNotFound(id)
	}
	return nil
}
