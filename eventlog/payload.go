package eventlog

import "github.com/accessgraph/accessgraph/store"

// Kind tags which of the ten payload variants a Record carries.
type Kind int

const (
	KindUser Kind = iota
	KindGroup
	KindUserGroupMapping
	KindGroupGroupMapping
	KindUserComponent
	KindGroupComponent
	KindEntityType
	KindEntity
	KindUserEntityMapping
	KindGroupEntityMapping
)

func (k Kind) String() string {
	switch k {
	case KindUser:
		return "User"
	case KindGroup:
		return "Group"
	case KindUserGroupMapping:
		return "UserGroupMapping"
	case KindGroupGroupMapping:
		return "GroupGroupMapping"
	case KindUserComponent:
		return "UserComponent"
	case KindGroupComponent:
		return "GroupComponent"
	case KindEntityType:
		return "EntityType"
	case KindEntity:
		return "Entity"
	case KindUserEntityMapping:
		return "UserEntityMapping"
	case KindGroupEntityMapping:
		return "GroupEntityMapping"
	default:
		return "Unknown"
	}
}

// Payload is implemented by every event variant. RoutingKey identifies the
// primary user/group/entityType the shard router should hash on.
type Payload interface {
	Kind() Kind
	RoutingKey() string
}

// UserEvent carries a user lifecycle mutation.
type UserEvent struct {
	User string
}

func (UserEvent) Kind() Kind           { return KindUser }
func (e UserEvent) RoutingKey() string { return e.User }

// GroupEvent carries a group lifecycle mutation.
type GroupEvent struct {
	Group string
}

func (GroupEvent) Kind() Kind           { return KindGroup }
func (e GroupEvent) RoutingKey() string { return e.Group }

// UserGroupMappingEvent carries a user<->group membership mutation.
type UserGroupMappingEvent struct {
	User  string
	Group string
}

func (UserGroupMappingEvent) Kind() Kind           { return KindUserGroupMapping }
func (e UserGroupMappingEvent) RoutingKey() string { return e.User }

// GroupGroupMappingEvent carries a group<->group membership mutation.
type GroupGroupMappingEvent struct {
	From string
	To   string
}

func (GroupGroupMappingEvent) Kind() Kind           { return KindGroupGroupMapping }
func (e GroupGroupMappingEvent) RoutingKey() string { return e.From }

// UserComponentEvent carries a user->component grant mutation.
type UserComponentEvent struct {
	User        string
	Component   store.Component
	AccessLevel store.AccessLevel
}

func (UserComponentEvent) Kind() Kind           { return KindUserComponent }
func (e UserComponentEvent) RoutingKey() string { return e.User }

// GroupComponentEvent carries a group->component grant mutation.
type GroupComponentEvent struct {
	Group       string
	Component   store.Component
	AccessLevel store.AccessLevel
}

func (GroupComponentEvent) Kind() Kind           { return KindGroupComponent }
func (e GroupComponentEvent) RoutingKey() string { return e.Group }

// EntityTypeEvent carries an entity-type catalog mutation.
type EntityTypeEvent struct {
	EntityType string
}

func (EntityTypeEvent) Kind() Kind           { return KindEntityType }
func (e EntityTypeEvent) RoutingKey() string { return e.EntityType }

// EntityEvent carries an entity catalog mutation.
type EntityEvent struct {
	EntityType string
	Entity     string
}

func (EntityEvent) Kind() Kind           { return KindEntity }
func (e EntityEvent) RoutingKey() string { return e.EntityType }

// UserEntityMappingEvent carries a user->entity grant mutation.
type UserEntityMappingEvent struct {
	User       string
	EntityType string
	Entity     string
}

func (UserEntityMappingEvent) Kind() Kind           { return KindUserEntityMapping }
func (e UserEntityMappingEvent) RoutingKey() string { return e.User }

// GroupEntityMappingEvent carries a group->entity grant mutation.
type GroupEntityMappingEvent struct {
	Group      string
	EntityType string
	Entity     string
}

func (GroupEntityMappingEvent) Kind() Kind           { return KindGroupEntityMapping }
func (e GroupEntityMappingEvent) RoutingKey() string { return e.Group }
