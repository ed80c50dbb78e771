package session

import (
	"context"

	"github.com/seedpad/seedpad-terminal/pkg/notify"
	"github.com/seedpad/seedpad-terminal/pkg/store"
)

// ListResult is a finished list refresh.
type ListResult struct {
	Token   uint64
	Records []store.WalletRecord
	Err     error
}

// BeginRefresh issues a new list request token. Only the response carrying
// the latest token will be applied.
func (s *Session) BeginRefresh() uint64 {
	s.listIssued++
	s.refreshing = true
	return s.listIssued
}

// Refreshing reports whether the latest list request is still outstanding.
func (s *Session) Refreshing() bool {
	return s.refreshing
}

// Fetch lists the store for token. Like Execute it may run off the loop.
func Fetch(ctx context.Context, st store.RecordStore, token uint64) ListResult {
	records, err := st.List(ctx)
	return ListResult{Token: token, Records: records, Err: err}
}

// ApplyList installs a refresh result. Responses older than the latest
// issued request are discarded and reported as not applied.
func (s *Session) ApplyList(r ListResult) (*notify.Notification, bool) {
	if r.Token != s.listIssued {
		return nil, false
	}
	s.refreshing = false

	if r.Err != nil {
		return notify.Notice("Failed to load wallets", notify.Error), true
	}
	s.records = r.Records
	return nil, true
}
