package dispatch

import (
	"context"
	"fmt"

	"github.com/accessgraph/accessgraph/eventlog"
)

// Dispatch replays records onto target strictly in input order, dispatching
// each on its Payload.Kind() and Action. The first error stops the replay
// and is returned wrapped with the offending record's position; no retry
// policy is imposed.
func Dispatch(ctx context.Context, records []eventlog.Record, target eventlog.Processor) error {
	for i, rec := range records {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := dispatchOne(rec, target); err != nil {
			return fmt.Errorf("dispatch: record %d (%s %s): %w", i, rec.Action, rec.Payload.Kind(), err)
		}
	}

	return nil
}

func dispatchOne(rec eventlog.Record, target eventlog.Processor) error {
	add := rec.Action == eventlog.ActionAdd

	switch p := rec.Payload.(type) {
	case eventlog.UserEvent:
		if add {
			return target.AddUser(p.User)
		}

		return target.RemoveUser(p.User)

	case eventlog.GroupEvent:
		if add {
			return target.AddGroup(p.Group)
		}

		return target.RemoveGroup(p.Group)

	case eventlog.UserGroupMappingEvent:
		if add {
			return target.AddUserToGroupMapping(p.User, p.Group)
		}

		return target.RemoveUserToGroupMapping(p.User, p.Group)

	case eventlog.GroupGroupMappingEvent:
		if add {
			return target.AddGroupToGroupMapping(p.From, p.To)
		}

		return target.RemoveGroupToGroupMapping(p.From, p.To)

	case eventlog.UserComponentEvent:
		if add {
			return target.AddUserToComponentMapping(p.User, p.Component, p.AccessLevel)
		}

		return target.RemoveUserToComponentMapping(p.User, p.Component, p.AccessLevel)

	case eventlog.GroupComponentEvent:
		if add {
			return target.AddGroupToComponentMapping(p.Group, p.Component, p.AccessLevel)
		}

		return target.RemoveGroupToComponentMapping(p.Group, p.Component, p.AccessLevel)

	case eventlog.EntityTypeEvent:
		if add {
			return target.AddEntityType(p.EntityType)
		}

		return target.RemoveEntityType(p.EntityType)

	case eventlog.EntityEvent:
		if add {
			return target.AddEntity(p.EntityType, p.Entity)
		}

		return target.RemoveEntity(p.EntityType, p.Entity)

	case eventlog.UserEntityMappingEvent:
		if add {
			return target.AddUserToEntityMapping(p.User, p.EntityType, p.Entity)
		}

		return target.RemoveUserToEntityMapping(p.User, p.EntityType, p.Entity)

	case eventlog.GroupEntityMappingEvent:
		if add {
			return target.AddGroupToEntityMapping(p.Group, p.EntityType, p.Entity)
		}

		return target.RemoveGroupToEntityMapping(p.Group, p.EntityType, p.Entity)

	default:
		return fmt.Errorf("dispatch: unknown payload kind %v", rec.Payload.Kind())
	}
}
