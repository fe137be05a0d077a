package eventlog

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

// ErrEventNotCached is returned by Suffix when the requested eventId has
// already scrolled out of the ring; the caller should fall back to durable
// storage.
var ErrEventNotCached = errors.New("eventlog: event not cached")

// Cache retains the most recent N records in insertion order, evicting the
// oldest on overflow. Single-writer/many-reader, protected by one mutex
// covering the ring plus its id->position index.
type Cache struct {
	mu       sync.Mutex
	capacity int
	ring     []Record
	index    map[uuid.UUID]int // eventID -> position in ring
	start    int               // absolute sequence number of ring[0]
}

// NewCache returns a Cache retaining at most capacity records. Panics if
// capacity < 1, since a zero-capacity ring can never answer Suffix.
func NewCache(capacity int) *Cache {
	if capacity < 1 {
		panic("eventlog: cache capacity must be >= 1")
	}

	return &Cache{
		capacity: capacity,
		index:    make(map[uuid.UUID]int),
	}
}

// Append adds rec to the cache, evicting the oldest record if full. O(1)
// amortized.
func (c *Cache) Append(rec Record) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.ring) == c.capacity {
		evicted := c.ring[0]
		delete(c.index, evicted.EventID)
		c.ring = c.ring[1:]
		c.start++
	}
	c.ring = append(c.ring, rec)
	c.index[rec.EventID] = c.start + len(c.ring) - 1
}

// Suffix returns every record strictly after eventID "after", in insertion
// order. Returns ErrEventNotCached if "after" is not present in the ring
// (either evicted, or never seen).
func (c *Cache) Suffix(after uuid.UUID) ([]Record, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	pos, ok := c.index[after]
	if !ok {
		return nil, ErrEventNotCached
	}

	offset := pos - c.start + 1
	out := make([]Record, len(c.ring)-offset)
	copy(out, c.ring[offset:])

	return out, nil
}

// Len returns the number of records currently retained.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.ring)
}
