// File: query_interfaces.go
// Role: the four orthogonal read-only query contracts from §6, so hosting
// adapters can wire one HTTP/gRPC endpoint per method without depending on
// the full Manager/Concurrent surface.
package access

import "github.com/accessgraph/accessgraph/store"

// UserQuery is the read-only surface rooted at a user.
type UserQuery interface {
	ContainsUser(user string) bool
	HasAccessToComponent(user string, component store.Component, level store.AccessLevel) (bool, error)
	GetComponentsAccessibleByUser(user string) ([]store.Grant, error)
	GetUserToGroupMappings(user string) []string
}

// GroupQuery is the read-only surface rooted at a group.
type GroupQuery interface {
	ContainsGroup(group string) bool
	HasGroupAccessToComponent(group string, component store.Component, level store.AccessLevel) (bool, error)
	GetComponentsAccessibleByGroup(group string) ([]store.Grant, error)
}

// GroupToGroupQuery is the read-only surface over group membership edges.
type GroupToGroupQuery interface {
	GetGroupToGroupMappings(group string) []string
}

// EntityQuery is the read-only surface over entity grants, rooted at either
// a user or a group.
type EntityQuery interface {
	HasAccessToEntity(user, entityType, entity string) (bool, error)
	HasGroupAccessToEntity(group, entityType, entity string) (bool, error)
	GetEntitiesAccessibleByUser(user, entityType string) ([]string, error)
	GetEntitiesAccessibleByGroup(group, entityType string) ([]string, error)
}

var (
	_ UserQuery         = (*Manager)(nil)
	_ GroupQuery        = (*Manager)(nil)
	_ GroupToGroupQuery = (*Manager)(nil)
	_ EntityQuery       = (*Manager)(nil)
)
