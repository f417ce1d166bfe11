package state

import (
	"github.com/dmitrijs2005/timesheets/internal/client/client"
)

type Status int

const (
	StatusIdle Status = iota
	StatusPending
	StatusSucceeded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPending:
		return "pending"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Snapshot is a consistent copy of a container at one point in time.
type Snapshot[T any] struct {
	Status Status
	Data   T
	Err    error
}

func (s Snapshot[T]) Loading() bool { return s.Status == StatusPending }

func (s Snapshot[T]) Failed() bool { return s.Status == StatusFailed }

// Message is the text to show for Err, or "" when there is none.
func (s Snapshot[T]) Message() string {
	return client.Message(s.Err)
}

// tracker is the status/error/ticket bookkeeping shared by Container and
// Collection. Callers hold the owner's lock.
type tracker struct {
	status  Status
	err     error
	seq     uint64
	cleared uint64
}

func (t *tracker) begin() uint64 {
	t.seq++
	t.status = StatusPending
	t.err = nil
	return t.seq
}

// latest reports whether ticket is the most recent dispatch.
func (t *tracker) latest(ticket uint64) bool {
	return ticket == t.seq
}

func (t *tracker) settle(ticket uint64, err error) {
	if !t.latest(ticket) {
		return
	}
	if err != nil {
		t.status = StatusFailed
		t.err = err
		return
	}
	t.status = StatusSucceeded
}

// stale reports whether a reset happened after ticket was dispatched.
func (t *tracker) stale(ticket uint64) bool {
	return ticket <= t.cleared
}

func (t *tracker) reset() {
	t.seq++
	t.cleared = t.seq
	t.status = StatusIdle
	t.err = nil
}

func (t *tracker) clearError() {
	t.err = nil
	if t.status == StatusFailed {
		t.status = StatusIdle
	}
}
