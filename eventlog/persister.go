package eventlog

import (
	"context"

	"github.com/google/uuid"
)

// Persister is the durable sink a Buffer batches records to. Out of scope
// to implement here (no SQL/durable persister ships with this module);
// hosting code supplies one.
type Persister interface {
	Persist(ctx context.Context, records []Record) error
	// Replay streams every record after "since" (or from the beginning if
	// since is nil), in persisted order, closing the channel when done.
	Replay(ctx context.Context, since *uuid.UUID) (<-chan Record, error)
}
