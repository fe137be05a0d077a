package dispatch

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accessgraph/accessgraph/depfree"
	"github.com/accessgraph/accessgraph/eventlog"
	"github.com/accessgraph/accessgraph/internal/workload"
)

type memPersister struct {
	mu      sync.Mutex
	records []eventlog.Record
}

func (p *memPersister) Persist(_ context.Context, records []eventlog.Record) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.records = append(p.records, records...)

	return nil
}

func (p *memPersister) Replay(_ context.Context, _ *uuid.UUID) (<-chan eventlog.Record, error) {
	ch := make(chan eventlog.Record)
	close(ch)

	return ch, nil
}

func (p *memPersister) all() []eventlog.Record {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]eventlog.Record(nil), p.records...)
}

func roundTrip(t *testing.T, n int) {
	t.Helper()

	persister := &memPersister{}
	buf := eventlog.NewBuffer(eventlog.NewCache(n+1), persister, nil, nil)
	source := depfree.NewManager(depfree.WithEventProcessor(buf))

	workload.Apply(source, workload.Generate(42, n))
	require.NoError(t, buf.Flush(context.Background()))

	target := depfree.NewManager()
	require.NoError(t, Dispatch(context.Background(), persister.all(), target))

	want := source.Underlying().Snapshot()
	got := target.Underlying().Snapshot()
	assert.Equal(t, want, got)
}

func TestRoundTripReproducesState(t *testing.T) {
	roundTrip(t, 200)
}

func TestRoundTripLargeWorkload(t *testing.T) {
	if testing.Short() {
		t.Skip("large randomized workload, run without -short")
	}
	roundTrip(t, 10000)
}

func TestDispatchStopsOnFirstError(t *testing.T) {
	records := []eventlog.Record{
		{Action: eventlog.ActionAdd, Payload: eventlog.UserEvent{User: "alice"}},
		{Action: eventlog.ActionAdd, Payload: eventlog.GroupGroupMappingEvent{From: "self", To: "self"}},
		{Action: eventlog.ActionAdd, Payload: eventlog.UserEvent{User: "bob"}},
	}
	target := depfree.NewManager()

	err := Dispatch(context.Background(), records, target)
	require.Error(t, err)
	assert.True(t, target.ContainsUser("alice"))
	assert.False(t, target.ContainsUser("bob"))
}
