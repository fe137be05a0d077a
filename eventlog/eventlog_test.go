package eventlog

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type memPersister struct {
	mu      sync.Mutex
	batches [][]Record
}

func (p *memPersister) Persist(_ context.Context, records []Record) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.batches = append(p.batches, records)

	return nil
}

func (p *memPersister) Replay(_ context.Context, _ *uuid.UUID) (<-chan Record, error) {
	ch := make(chan Record)
	close(ch)

	return ch, nil
}

func TestCacheEvictsOldestOnOverflow(t *testing.T) {
	c := NewCache(2)
	r1 := Record{EventID: uuid.New()}
	r2 := Record{EventID: uuid.New()}
	r3 := Record{EventID: uuid.New()}

	c.Append(r1)
	c.Append(r2)
	c.Append(r3)

	assert.Equal(t, 2, c.Len())
	_, err := c.Suffix(r1.EventID)
	assert.ErrorIs(t, err, ErrEventNotCached)
}

func TestCacheSuffixReturnsContiguousTail(t *testing.T) {
	c := NewCache(10)
	r1 := Record{EventID: uuid.New()}
	r2 := Record{EventID: uuid.New()}
	r3 := Record{EventID: uuid.New()}
	c.Append(r1)
	c.Append(r2)
	c.Append(r3)

	suffix, err := c.Suffix(r1.EventID)
	require.NoError(t, err)
	assert.Equal(t, []Record{r2, r3}, suffix)

	suffix, err = c.Suffix(r3.EventID)
	require.NoError(t, err)
	assert.Empty(t, suffix)
}

func TestCacheSuffixUnknownEventReturnsNotCached(t *testing.T) {
	c := NewCache(4)
	_, err := c.Suffix(uuid.New())
	assert.ErrorIs(t, err, ErrEventNotCached)
}

func TestBufferEmitsStampedRecordsAndFlushes(t *testing.T) {
	cache := NewCache(10)
	persister := &memPersister{}
	clock := fixedClock{t: time.Date(2026, 7, 30, 12, 0, 0, 0, time.UTC)}
	buf := NewBuffer(cache, persister, clock, nil)

	require.NoError(t, buf.AddUser("alice"))
	require.NoError(t, buf.AddGroup("eng"))
	require.NoError(t, buf.AddUserToGroupMapping("alice", "eng"))
	assert.Equal(t, 3, buf.Pending())

	require.NoError(t, buf.Flush(context.Background()))
	assert.Equal(t, 0, buf.Pending())
	assert.Equal(t, 3, cache.Len())

	require.Len(t, persister.batches, 1)
	assert.Len(t, persister.batches[0], 3)
	for _, rec := range persister.batches[0] {
		assert.Equal(t, clock.t, rec.OccurredAt)
	}
}

func TestBufferFlushWithNoPendingRecordsIsNoop(t *testing.T) {
	buf := NewBuffer(NewCache(4), &memPersister{}, nil, nil)
	require.NoError(t, buf.Flush(context.Background()))
}
