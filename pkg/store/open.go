package store

import "fmt"

// Backend names accepted by Open.
const (
	BackendSQLite = "sqlite"
	BackendREST   = "rest"
	BackendMemory = "memory"
)

// Config selects and configures a backend.
type Config struct {
	Backend    string
	SQLitePath string
	REST       RESTConfig
}

// Open returns the RecordStore described by cfg.
func Open(cfg Config) (RecordStore, error) {
	switch cfg.Backend {
	case BackendSQLite, "":
		if cfg.SQLitePath == "" {
			return nil, fmt.Errorf("sqlite backend requires a database path")
		}
		return OpenSQLite(cfg.SQLitePath)
	case BackendREST:
		return NewREST(cfg.REST)
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q (must be: sqlite, rest, or memory)", cfg.Backend)
	}
}
