package session

import (
	"context"
	"fmt"

	"github.com/seedpad/seedpad-terminal/pkg/store"
)

// DeviceIDs supplies the identifier inserts are tagged with.
type DeviceIDs interface {
	ID() (string, error)
}

// Result is an executed Plan.
type Result struct {
	Plan Plan
	Err  error
}

// Execute performs the single store call p asks for. It touches no session
// state, so it may run off the event loop.
func Execute(ctx context.Context, st store.RecordStore, ids DeviceIDs, p Plan) Result {
	var err error
	switch p.Op {
	case OpInsert:
		var deviceID string
		deviceID, err = ids.ID()
		if err != nil {
			err = fmt.Errorf("device id: %w", err)
			break
		}
		err = st.Insert(ctx, deviceID, p.Name, p.Words)
	case OpUpdate:
		err = st.Update(ctx, p.ID, p.Words)
	case OpDelete:
		err = st.Delete(ctx, p.ID)
	}
	return Result{Plan: p, Err: err}
}
