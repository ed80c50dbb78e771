// Package session owns the record list, the selection and the save/delete
// decisions made against them.
package session

import (
	"fmt"

	"github.com/seedpad/seedpad-terminal/pkg/notify"
	"github.com/seedpad/seedpad-terminal/pkg/phrase"
	"github.com/seedpad/seedpad-terminal/pkg/store"
)

// State is where the save/delete decision currently stands.
type State int

const (
	Idle State = iota
	AwaitingChoice
	AwaitingDeleteConfirm
)

func (s State) String() string {
	switch s {
	case AwaitingChoice:
		return "awaiting-choice"
	case AwaitingDeleteConfirm:
		return "awaiting-delete-confirm"
	default:
		return "idle"
	}
}

// Choice is the user's answer when a save could overwrite the loaded record.
type Choice int

const (
	UpdateCurrent Choice = iota
	SaveNew
	Cancel
)

// Op is the store call a Plan asks for.
type Op int

const (
	OpNone Op = iota
	OpInsert
	OpUpdate
	OpDelete
)

func (o Op) String() string {
	switch o {
	case OpInsert:
		return "insert"
	case OpUpdate:
		return "update"
	case OpDelete:
		return "delete"
	default:
		return "none"
	}
}

// Plan is the outcome of a decision step: at most one store call, or a
// notification explaining why nothing is called.
type Plan struct {
	Op     Op
	ID     string
	Name   string
	Words  []string
	Notice *notify.Notification

	// selection is the session's selection generation when the plan began
	selection uint64
}

// Calls reports whether the plan needs the store.
func (p Plan) Calls() bool {
	return p.Op != OpNone
}

// Session is the state shared by every phrase panel: the cached record
// list, the selection and the one active save/delete decision. It is only
// touched from the UI event loop.
type Session struct {
	records   []store.WalletRecord
	selected  string
	selection uint64 // bumped on every change to selected

	state   State
	pending []string

	busy       map[Op]bool
	listIssued uint64
	refreshing bool
}

// New returns an idle session with nothing selected.
func New() *Session {
	return &Session{busy: make(map[Op]bool)}
}

func (s *Session) State() State { return s.state }

// Records returns the cached list, newest first.
func (s *Session) Records() []store.WalletRecord {
	return s.records
}

// Selected returns the selected record id.
func (s *Session) Selected() (string, bool) {
	return s.selected, s.selected != ""
}

// SelectedRecord returns the cached record the selection points at.
func (s *Session) SelectedRecord() (store.WalletRecord, bool) {
	for _, r := range s.records {
		if r.ID == s.selected {
			return r, true
		}
	}
	return store.WalletRecord{}, false
}

// Busy reports whether a call for op is in flight.
func (s *Session) Busy(op Op) bool {
	return s.busy[op]
}

// Saving reports whether an insert or update is in flight.
func (s *Session) Saving() bool {
	return s.busy[OpInsert] || s.busy[OpUpdate]
}

// Select marks the record with id as the one the active phrase mirrors and
// returns it so the caller can load its words.
func (s *Session) Select(id string) (store.WalletRecord, bool) {
	for _, r := range s.records {
		if r.ID == id {
			s.setSelected(id)
			s.reset()
			return r, true
		}
	}
	return store.WalletRecord{}, false
}

// ClearSelection forgets the selection, as after clearing the phrase.
func (s *Session) ClearSelection() {
	s.setSelected("")
	s.reset()
}

// RequestSave starts a save decision for words. Any decision still waiting
// for the user is dropped first.
func (s *Session) RequestSave(words phrase.Slots) Plan {
	s.reset()

	if s.Saving() {
		return Plan{Notice: notify.Notice("Save already in progress", notify.Info)}
	}
	if words.IsPristine() {
		return Plan{Notice: notify.Notice("Nothing to save", notify.Info)}
	}
	if s.selected == "" {
		return s.begin(s.insertPlan(words.Strings()))
	}

	s.state = AwaitingChoice
	s.pending = words.Strings()
	return Plan{}
}

// Choose resolves an AwaitingChoice decision.
func (s *Session) Choose(c Choice) Plan {
	if s.state != AwaitingChoice {
		return Plan{}
	}
	words := s.pending
	s.reset()

	switch c {
	case UpdateCurrent:
		if s.selected == "" {
			return Plan{Notice: notify.Notice("No wallet selected", notify.Info)}
		}
		return s.begin(Plan{Op: OpUpdate, ID: s.selected, Words: words})
	case SaveNew:
		return s.begin(s.insertPlan(words))
	default:
		return Plan{}
	}
}

// RequestDelete starts a delete decision for the selected record.
func (s *Session) RequestDelete() Plan {
	s.reset()

	if s.busy[OpDelete] {
		return Plan{Notice: notify.Notice("Delete already in progress", notify.Info)}
	}
	if s.selected == "" {
		return Plan{Notice: notify.Notice("No wallet selected", notify.Info)}
	}

	s.state = AwaitingDeleteConfirm
	return Plan{}
}

// ConfirmDelete resolves an AwaitingDeleteConfirm decision.
func (s *Session) ConfirmDelete(confirm bool) Plan {
	if s.state != AwaitingDeleteConfirm {
		return Plan{}
	}
	s.reset()

	if !confirm {
		return Plan{}
	}
	return s.begin(Plan{Op: OpDelete, ID: s.selected})
}

// Complete applies the result of an executed plan and reports what to tell
// the user and whether the list needs a refresh. Failures leave the session
// as it was.
func (s *Session) Complete(r Result) (*notify.Notification, bool) {
	delete(s.busy, r.Plan.Op)

	if r.Err != nil {
		return failureNotice(r.Plan, r.Err), false
	}

	switch r.Plan.Op {
	case OpInsert:
		// The new id is not surfaced back, so the phrase no longer mirrors
		// any record, unless another one was loaded while the insert ran
		if s.selection == r.Plan.selection {
			s.setSelected("")
		}
		return notify.Notice(fmt.Sprintf("Saved as %s", r.Plan.Name), notify.Success), true
	case OpUpdate:
		return notify.Notice("Wallet updated", notify.Success), true
	case OpDelete:
		if s.selected == r.Plan.ID {
			s.setSelected("")
		}
		return notify.Notice("Wallet deleted", notify.Success), true
	}
	return nil, false
}

// insertPlan names the new record after the current list length. Two
// concurrent savers may pick the same name.
func (s *Session) insertPlan(words []string) Plan {
	return Plan{
		Op:    OpInsert,
		Name:  fmt.Sprintf("Wallet %d", len(s.records)+1),
		Words: words,
	}
}

func (s *Session) begin(p Plan) Plan {
	if p.Calls() {
		s.busy[p.Op] = true
	}
	p.selection = s.selection
	return p
}

func (s *Session) setSelected(id string) {
	s.selected = id
	s.selection++
}

func (s *Session) reset() {
	s.state = Idle
	s.pending = nil
}

func failureNotice(p Plan, err error) *notify.Notification {
	var what string
	switch p.Op {
	case OpInsert:
		what = "save wallet"
	case OpUpdate:
		what = "update wallet"
		if store.Is(err, store.ErrNotFound) {
			return notify.Notice("Wallet no longer exists", notify.Error)
		}
	case OpDelete:
		what = "delete wallet"
	default:
		what = "reach the wallet store"
	}
	return notify.Notice(fmt.Sprintf("Failed to %s", what), notify.Error)
}
