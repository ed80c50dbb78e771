package store

import (
	"context"
	"crypto/rand"
	"sort"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Memory is an in-process RecordStore. Records are lost when the process
// exits; it backs the "memory" backend and tests.
type Memory struct {
	mu      sync.Mutex
	records map[string]WalletRecord
	now     func() time.Time
	entropy *ulid.MonotonicEntropy
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		records: make(map[string]WalletRecord),
		now:     time.Now,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

func (m *Memory) List(ctx context.Context) ([]WalletRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]WalletRecord, 0, len(m.records))
	for _, r := range m.records {
		r.Words = append([]string(nil), r.Words...)
		out = append(out, r)
	}
	sortNewestFirst(out)
	return out, nil
}

func (m *Memory) Insert(ctx context.Context, deviceID, name string, words []string) error {
	if err := validateWords(words); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	id, err := ulid.New(ulid.Timestamp(now), m.entropy)
	if err != nil {
		return NewInternal(err)
	}
	m.records[id.String()] = WalletRecord{
		ID:        id.String(),
		Name:      name,
		Words:     append([]string(nil), words...),
		DeviceID:  deviceID,
		CreatedAt: now,
	}
	return nil
}

func (m *Memory) Update(ctx context.Context, id string, words []string) error {
	if err := validateID(id); err != nil {
		return err
	}
	if err := validateWords(words); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.records[id]
	if !ok {
		return NewNotFound(id)
	}
	r.Words = append([]string(nil), words...)
	m.records[id] = r
	return nil
}

func (m *Memory) Delete(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[id]; !ok {
		return NewNotFound(id)
	}
	delete(m.records, id)
	return nil
}

func (m *Memory) Close() error { return nil }

// sortNewestFirst orders by creation time descending; ULIDs break ties.
func sortNewestFirst(records []WalletRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		if !records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].CreatedAt.After(records[j].CreatedAt)
		}
		return records[i].ID > records[j].ID
	})
}
