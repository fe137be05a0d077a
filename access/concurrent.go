// File: concurrent.go
// Role: C4, the thread-safe wrapper around a strict Manager. Every method
// acquires exclusive or shared locks over the resources it touches, in the
// single global order declared in lockset.go, before delegating to the
// wrapped Manager.
package access

import (
	"sync"

	"github.com/accessgraph/accessgraph/store"
)

// Concurrent wraps a *Manager with a lockset enforcing the declared
// object-dependency DAG from §4.4. Adds lock down-to-up (an object and the
// objects it depends on); removes lock up-to-down (an object and the
// objects dependent on it), since cascading cleanup reaches into those.
// Whichever set is chosen, its locks are acquired in the single global
// order from lockset.go.
type Concurrent struct {
	m     *Manager
	locks [resourceCount]*sync.RWMutex
}

// NewConcurrent returns an empty, thread-safe access manager. Panics at
// construction if the declared lock-dependency DAG is cyclic -- a
// programming error, not a runtime condition any caller can hit.
func NewConcurrent() *Concurrent {
	validateAcyclic()

	c := &Concurrent{m: NewManager()}
	for i := range c.locks {
		c.locks[i] = &sync.RWMutex{}
	}

	return c
}

func (c *Concurrent) rlock(resources ...resource) func() {
	ordered := orderedSubset(resources, false)
	for _, r := range ordered {
		c.locks[r].RLock()
	}

	return func() {
		for i := len(ordered) - 1; i >= 0; i-- {
			c.locks[ordered[i]].RUnlock()
		}
	}
}

func (c *Concurrent) lockAdd(resources ...resource) func() {
	ordered := orderedSubset(resources, false)
	for _, r := range ordered {
		c.locks[r].Lock()
	}

	return func() {
		for i := len(ordered) - 1; i >= 0; i-- {
			c.locks[ordered[i]].Unlock()
		}
	}
}

func (c *Concurrent) lockRemove(resources ...resource) func() {
	ordered := orderedSubset(resources, false)
	for _, r := range ordered {
		c.locks[r].Lock()
	}

	return func() {
		for i := len(ordered) - 1; i >= 0; i-- {
			c.locks[ordered[i]].Unlock()
		}
	}
}

// ---- users / groups ----

func (c *Concurrent) AddUser(user string) error {
	defer c.lockAdd(resUsers)()

	return c.m.AddUser(user)
}

func (c *Concurrent) AddGroup(group string) error {
	defer c.lockAdd(resGroups)()

	return c.m.AddGroup(group)
}

func (c *Concurrent) ContainsUser(user string) bool {
	defer c.rlock(resUsers)()

	return c.m.ContainsUser(user)
}

func (c *Concurrent) ContainsGroup(group string) bool {
	defer c.rlock(resGroups)()

	return c.m.ContainsGroup(group)
}

func (c *Concurrent) Users() []string {
	defer c.rlock(resUsers)()

	return c.m.Users()
}

func (c *Concurrent) Groups() []string {
	defer c.rlock(resGroups)()

	return c.m.Groups()
}

// RemoveUser cascades into every mapping keyed by user, so it locks those
// resources up-to-down alongside resUsers itself.
func (c *Concurrent) RemoveUser(user string) error {
	defer c.lockRemove(resUsers, resUserGroupMap, resUserComponentMap, resUserEntityMap)()

	return c.m.RemoveUser(user)
}

// RemoveGroup cascades into every mapping keyed or targeted by group.
func (c *Concurrent) RemoveGroup(group string) error {
	defer c.lockRemove(resGroups, resUserGroupMap, resGroupGroupMap, resGroupComponentMap, resGroupEntityMap)()

	return c.m.RemoveGroup(group)
}

// ---- group membership ----

func (c *Concurrent) AddUserToGroupMapping(user, group string) error {
	defer c.lockAdd(resUsers, resGroups, resUserGroupMap)()

	return c.m.AddUserToGroupMapping(user, group)
}

func (c *Concurrent) RemoveUserToGroupMapping(user, group string) error {
	defer c.lockRemove(resUserGroupMap)()

	return c.m.RemoveUserToGroupMapping(user, group)
}

func (c *Concurrent) GetUserToGroupMappings(user string) []string {
	defer c.rlock(resUserGroupMap)()

	return c.m.GetUserToGroupMappings(user)
}

func (c *Concurrent) AddGroupToGroupMapping(from, to string) error {
	defer c.lockAdd(resGroups, resGroupGroupMap)()

	return c.m.AddGroupToGroupMapping(from, to)
}

func (c *Concurrent) RemoveGroupToGroupMapping(from, to string) error {
	defer c.lockRemove(resGroupGroupMap)()

	return c.m.RemoveGroupToGroupMapping(from, to)
}

func (c *Concurrent) GetGroupToGroupMappings(group string) []string {
	defer c.rlock(resGroupGroupMap)()

	return c.m.GetGroupToGroupMappings(group)
}

// ---- component grants ----

func (c *Concurrent) AddUserToComponentMapping(user string, component store.Component, level store.AccessLevel) error {
	defer c.lockAdd(resUsers, resUserComponentMap)()

	return c.m.AddUserToComponentMapping(user, component, level)
}

func (c *Concurrent) RemoveUserToComponentMapping(user string, component store.Component, level store.AccessLevel) error {
	defer c.lockRemove(resUserComponentMap)()

	return c.m.RemoveUserToComponentMapping(user, component, level)
}

func (c *Concurrent) GetUserToComponentMappings(user string) []store.Grant {
	defer c.rlock(resUserComponentMap)()

	return c.m.GetUserToComponentMappings(user)
}

func (c *Concurrent) AddGroupToComponentMapping(group string, component store.Component, level store.AccessLevel) error {
	defer c.lockAdd(resGroups, resGroupComponentMap)()

	return c.m.AddGroupToComponentMapping(group, component, level)
}

func (c *Concurrent) RemoveGroupToComponentMapping(group string, component store.Component, level store.AccessLevel) error {
	defer c.lockRemove(resGroupComponentMap)()

	return c.m.RemoveGroupToComponentMapping(group, component, level)
}

func (c *Concurrent) GetGroupToComponentMappings(group string) []store.Grant {
	defer c.rlock(resGroupComponentMap)()

	return c.m.GetGroupToComponentMappings(group)
}

// ---- entity catalog ----

func (c *Concurrent) AddEntityType(entityType string) error {
	defer c.lockAdd(resEntities)()

	return c.m.AddEntityType(entityType)
}

func (c *Concurrent) ContainsEntityType(entityType string) bool {
	defer c.rlock(resEntities)()

	return c.m.ContainsEntityType(entityType)
}

func (c *Concurrent) EntityTypes() []string {
	defer c.rlock(resEntities)()

	return c.m.EntityTypes()
}

func (c *Concurrent) RemoveEntityType(entityType string) error {
	defer c.lockRemove(resEntities, resUserEntityMap, resGroupEntityMap)()

	return c.m.RemoveEntityType(entityType)
}

func (c *Concurrent) AddEntity(entityType, entity string) error {
	defer c.lockAdd(resEntities)()

	return c.m.AddEntity(entityType, entity)
}

func (c *Concurrent) ContainsEntity(entityType, entity string) bool {
	defer c.rlock(resEntities)()

	return c.m.ContainsEntity(entityType, entity)
}

func (c *Concurrent) GetEntities(entityType string) []string {
	defer c.rlock(resEntities)()

	return c.m.GetEntities(entityType)
}

func (c *Concurrent) RemoveEntity(entityType, entity string) error {
	defer c.lockRemove(resEntities, resUserEntityMap, resGroupEntityMap)()

	return c.m.RemoveEntity(entityType, entity)
}

// ---- entity grants ----

func (c *Concurrent) AddUserToEntityMapping(user, entityType, entity string) error {
	defer c.lockAdd(resUsers, resEntities, resUserEntityMap)()

	return c.m.AddUserToEntityMapping(user, entityType, entity)
}

func (c *Concurrent) RemoveUserToEntityMapping(user, entityType, entity string) error {
	defer c.lockRemove(resUserEntityMap)()

	return c.m.RemoveUserToEntityMapping(user, entityType, entity)
}

func (c *Concurrent) GetUserToEntityMappings(user, entityType string) []string {
	defer c.rlock(resUserEntityMap)()

	return c.m.GetUserToEntityMappings(user, entityType)
}

func (c *Concurrent) AddGroupToEntityMapping(group, entityType, entity string) error {
	defer c.lockAdd(resGroups, resEntities, resGroupEntityMap)()

	return c.m.AddGroupToEntityMapping(group, entityType, entity)
}

func (c *Concurrent) RemoveGroupToEntityMapping(group, entityType, entity string) error {
	defer c.lockRemove(resGroupEntityMap)()

	return c.m.RemoveGroupToEntityMapping(group, entityType, entity)
}

func (c *Concurrent) GetGroupToEntityMappings(group, entityType string) []string {
	defer c.rlock(resGroupEntityMap)()

	return c.m.GetGroupToEntityMappings(group, entityType)
}

// ---- reachability queries ----

func (c *Concurrent) HasAccessToComponent(user string, component store.Component, level store.AccessLevel) (bool, error) {
	defer c.rlock(resUsers, resUserComponentMap, resUserGroupMap, resGroupGroupMap, resGroupComponentMap)()

	return c.m.HasAccessToComponent(user, component, level)
}

func (c *Concurrent) HasGroupAccessToComponent(group string, component store.Component, level store.AccessLevel) (bool, error) {
	defer c.rlock(resGroups, resGroupComponentMap, resGroupGroupMap)()

	return c.m.HasGroupAccessToComponent(group, component, level)
}

func (c *Concurrent) HasAccessToEntity(user, entityType, entity string) (bool, error) {
	defer c.rlock(resUsers, resEntities, resUserEntityMap, resUserGroupMap, resGroupGroupMap, resGroupEntityMap)()

	return c.m.HasAccessToEntity(user, entityType, entity)
}

func (c *Concurrent) HasGroupAccessToEntity(group, entityType, entity string) (bool, error) {
	defer c.rlock(resGroups, resEntities, resGroupEntityMap, resGroupGroupMap)()

	return c.m.HasGroupAccessToEntity(group, entityType, entity)
}

func (c *Concurrent) GetComponentsAccessibleByUser(user string) ([]store.Grant, error) {
	defer c.rlock(resUsers, resUserComponentMap, resUserGroupMap, resGroupGroupMap, resGroupComponentMap)()

	return c.m.GetComponentsAccessibleByUser(user)
}

func (c *Concurrent) GetComponentsAccessibleByGroup(group string) ([]store.Grant, error) {
	defer c.rlock(resGroups, resGroupComponentMap, resGroupGroupMap)()

	return c.m.GetComponentsAccessibleByGroup(group)
}

func (c *Concurrent) GetEntitiesAccessibleByUser(user, entityType string) ([]string, error) {
	defer c.rlock(resUsers, resEntities, resUserEntityMap, resUserGroupMap, resGroupGroupMap, resGroupEntityMap)()

	return c.m.GetEntitiesAccessibleByUser(user, entityType)
}

func (c *Concurrent) GetEntitiesAccessibleByGroup(group, entityType string) ([]string, error) {
	defer c.rlock(resGroups, resEntities, resGroupEntityMap, resGroupGroupMap)()

	return c.m.GetEntitiesAccessibleByGroup(group, entityType)
}

// Snapshot takes a lock-consistent export of the entire manager state,
// holding a shared lock over every resource for the duration of the copy.
func (c *Concurrent) Snapshot() *Snapshot {
	defer c.rlock(resUsers, resGroups, resEntities, resUserGroupMap, resGroupGroupMap,
		resUserComponentMap, resGroupComponentMap, resUserEntityMap, resGroupEntityMap)()

	return c.m.Snapshot()
}

var (
	_ UserQuery         = (*Concurrent)(nil)
	_ GroupQuery        = (*Concurrent)(nil)
	_ GroupToGroupQuery = (*Concurrent)(nil)
	_ EntityQuery       = (*Concurrent)(nil)
)
