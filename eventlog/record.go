package eventlog

import (
	"time"

	"github.com/google/uuid"
)

// Action distinguishes an additive mutation from a revoking one.
type Action int

const (
	ActionAdd Action = iota
	ActionRemove
)

func (a Action) String() string {
	if a == ActionRemove {
		return "Remove"
	}

	return "Add"
}

// Record is the wire-shaped event emitted for every mutation.
type Record struct {
	EventID    uuid.UUID
	Action     Action
	OccurredAt time.Time
	HashCode   int32
	Payload    Payload
}

// Clock supplies the timestamp stamped onto each Record. Never time.Now()
// called ambiently -- Buffer takes one explicitly so tests can control it
// and so "monotonic-per-writer, not globally" (§4.6) is an injected
// property rather than a global assumption.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock, backed by time.Now.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }
