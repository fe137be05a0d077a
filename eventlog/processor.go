package eventlog

import "github.com/accessgraph/accessgraph/store"

// Processor is the event-processor contract: the same mutating operations
// as the strict access manager's surface, no queries. Implemented by
// depfree.Manager (so a replay can rebuild state from a durable log) and by
// Buffer (so a mutation can be emitted straight into the event stream).
type Processor interface {
	AddUser(user string) error
	RemoveUser(user string) error

	AddGroup(group string) error
	RemoveGroup(group string) error

	AddUserToGroupMapping(user, group string) error
	RemoveUserToGroupMapping(user, group string) error

	AddGroupToGroupMapping(from, to string) error
	RemoveGroupToGroupMapping(from, to string) error

	AddUserToComponentMapping(user string, component store.Component, level store.AccessLevel) error
	RemoveUserToComponentMapping(user string, component store.Component, level store.AccessLevel) error

	AddGroupToComponentMapping(group string, component store.Component, level store.AccessLevel) error
	RemoveGroupToComponentMapping(group string, component store.Component, level store.AccessLevel) error

	AddEntityType(entityType string) error
	RemoveEntityType(entityType string) error

	AddEntity(entityType, entity string) error
	RemoveEntity(entityType, entity string) error

	AddUserToEntityMapping(user, entityType, entity string) error
	RemoveUserToEntityMapping(user, entityType, entity string) error

	AddGroupToEntityMapping(group, entityType, entity string) error
	RemoveGroupToEntityMapping(group, entityType, entity string) error
}
