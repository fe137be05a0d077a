package eventlog

import (
	"context"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/accessgraph/accessgraph/store"
)

// Buffer stamps EventID/OccurredAt/HashCode onto every mutation it is
// handed, queues it for the next Flush, and implements Processor so a
// depfree.Manager can emit directly into it.
type Buffer struct {
	mu      sync.Mutex
	pending []Record

	cache     *Cache
	persister Persister
	clock     Clock
	logger    *zap.Logger
}

// NewBuffer returns a Buffer appending stamped records to cache and
// batching them to persister on Flush. A nil clock defaults to
// SystemClock; a nil logger defaults to zap.NewNop().
func NewBuffer(cache *Cache, persister Persister, clock Clock, logger *zap.Logger) *Buffer {
	if clock == nil {
		clock = SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Buffer{cache: cache, persister: persister, clock: clock, logger: logger}
}

func hashCode(routingKey string) int32 {
	return int32(xxhash.Sum64String(routingKey))
}

func (b *Buffer) emit(action Action, payload Payload) error {
	id, err := uuid.NewRandom()
	if err != nil {
		return err
	}

	rec := Record{
		EventID:    id,
		Action:     action,
		OccurredAt: b.clock.Now(),
		HashCode:   hashCode(payload.RoutingKey()),
		Payload:    payload,
	}

	b.mu.Lock()
	b.pending = append(b.pending, rec)
	b.mu.Unlock()

	b.logger.Debug("eventlog: buffered event",
		zap.String("kind", payload.Kind().String()),
		zap.String("action", action.String()),
		zap.String("routingKey", payload.RoutingKey()),
	)

	return nil
}

// Pending returns the number of records queued since the last Flush.
func (b *Buffer) Pending() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.pending)
}

// Flush freezes the current pending batch and, since persisting it and
// indexing it into the cache are independent once frozen, runs the two
// concurrently via errgroup.
func (b *Buffer) Flush(ctx context.Context) error {
	b.mu.Lock()
	batch := b.pending
	b.pending = nil
	b.mu.Unlock()

	if len(batch) == 0 {
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return b.persister.Persist(gctx, batch)
	})
	g.Go(func() error {
		for _, rec := range batch {
			b.cache.Append(rec)
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		b.logger.Error("eventlog: flush failed", zap.Error(err), zap.Int("batchSize", len(batch)))

		return err
	}

	return nil
}

// Suffix returns every cached record after eventID, or ErrEventNotCached.
func (b *Buffer) Suffix(after uuid.UUID) ([]Record, error) {
	return b.cache.Suffix(after)
}

// ---- Processor ----

func (b *Buffer) AddUser(user string) error    { return b.emit(ActionAdd, UserEvent{User: user}) }
func (b *Buffer) RemoveUser(user string) error { return b.emit(ActionRemove, UserEvent{User: user}) }

func (b *Buffer) AddGroup(group string) error {
	return b.emit(ActionAdd, GroupEvent{Group: group})
}
func (b *Buffer) RemoveGroup(group string) error {
	return b.emit(ActionRemove, GroupEvent{Group: group})
}

func (b *Buffer) AddUserToGroupMapping(user, group string) error {
	return b.emit(ActionAdd, UserGroupMappingEvent{User: user, Group: group})
}
func (b *Buffer) RemoveUserToGroupMapping(user, group string) error {
	return b.emit(ActionRemove, UserGroupMappingEvent{User: user, Group: group})
}

func (b *Buffer) AddGroupToGroupMapping(from, to string) error {
	return b.emit(ActionAdd, GroupGroupMappingEvent{From: from, To: to})
}
func (b *Buffer) RemoveGroupToGroupMapping(from, to string) error {
	return b.emit(ActionRemove, GroupGroupMappingEvent{From: from, To: to})
}

func (b *Buffer) AddUserToComponentMapping(user string, component store.Component, level store.AccessLevel) error {
	return b.emit(ActionAdd, UserComponentEvent{User: user, Component: component, AccessLevel: level})
}
func (b *Buffer) RemoveUserToComponentMapping(user string, component store.Component, level store.AccessLevel) error {
	return b.emit(ActionRemove, UserComponentEvent{User: user, Component: component, AccessLevel: level})
}

func (b *Buffer) AddGroupToComponentMapping(group string, component store.Component, level store.AccessLevel) error {
	return b.emit(ActionAdd, GroupComponentEvent{Group: group, Component: component, AccessLevel: level})
}
func (b *Buffer) RemoveGroupToComponentMapping(group string, component store.Component, level store.AccessLevel) error {
	return b.emit(ActionRemove, GroupComponentEvent{Group: group, Component: component, AccessLevel: level})
}

func (b *Buffer) AddEntityType(entityType string) error {
	return b.emit(ActionAdd, EntityTypeEvent{EntityType: entityType})
}
func (b *Buffer) RemoveEntityType(entityType string) error {
	return b.emit(ActionRemove, EntityTypeEvent{EntityType: entityType})
}

func (b *Buffer) AddEntity(entityType, entity string) error {
	return b.emit(ActionAdd, EntityEvent{EntityType: entityType, Entity: entity})
}
func (b *Buffer) RemoveEntity(entityType, entity string) error {
	return b.emit(ActionRemove, EntityEvent{EntityType: entityType, Entity: entity})
}

func (b *Buffer) AddUserToEntityMapping(user, entityType, entity string) error {
	return b.emit(ActionAdd, UserEntityMappingEvent{User: user, EntityType: entityType, Entity: entity})
}
func (b *Buffer) RemoveUserToEntityMapping(user, entityType, entity string) error {
	return b.emit(ActionRemove, UserEntityMappingEvent{User: user, EntityType: entityType, Entity: entity})
}

func (b *Buffer) AddGroupToEntityMapping(group, entityType, entity string) error {
	return b.emit(ActionAdd, GroupEntityMappingEvent{Group: group, EntityType: entityType, Entity: entity})
}
func (b *Buffer) RemoveGroupToEntityMapping(group, entityType, entity string) error {
	return b.emit(ActionRemove, GroupEntityMappingEvent{Group: group, EntityType: entityType, Entity: entity})
}

var _ Processor = (*Buffer)(nil)
