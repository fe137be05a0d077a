package depfree

import (
	"github.com/accessgraph/accessgraph/access"
	"github.com/accessgraph/accessgraph/eventlog"
	"github.com/accessgraph/accessgraph/store"
)

// ContainsUser, ContainsGroup, and the reachability queries pass straight
// through to the wrapped access.Concurrent -- depfree adds no read-side
// behavior, only idempotency and prepending on the mutating surface.

func (m *Manager) ContainsUser(user string) bool   { return m.ac.ContainsUser(user) }
func (m *Manager) ContainsGroup(group string) bool { return m.ac.ContainsGroup(group) }

func (m *Manager) HasAccessToComponent(user string, component store.Component, level store.AccessLevel) (bool, error) {
	return m.ac.HasAccessToComponent(user, component, level)
}

func (m *Manager) HasGroupAccessToComponent(group string, component store.Component, level store.AccessLevel) (bool, error) {
	return m.ac.HasGroupAccessToComponent(group, component, level)
}

func (m *Manager) HasAccessToEntity(user, entityType, entity string) (bool, error) {
	return m.ac.HasAccessToEntity(user, entityType, entity)
}

func (m *Manager) HasGroupAccessToEntity(group, entityType, entity string) (bool, error) {
	return m.ac.HasGroupAccessToEntity(group, entityType, entity)
}

func (m *Manager) GetComponentsAccessibleByUser(user string) ([]store.Grant, error) {
	return m.ac.GetComponentsAccessibleByUser(user)
}

func (m *Manager) GetComponentsAccessibleByGroup(group string) ([]store.Grant, error) {
	return m.ac.GetComponentsAccessibleByGroup(group)
}

func (m *Manager) GetUserToGroupMappings(user string) []string { return m.ac.GetUserToGroupMappings(user) }

func (m *Manager) GetGroupToGroupMappings(group string) []string {
	return m.ac.GetGroupToGroupMappings(group)
}

func (m *Manager) GetEntitiesAccessibleByUser(user, entityType string) ([]string, error) {
	return m.ac.GetEntitiesAccessibleByUser(user, entityType)
}

func (m *Manager) GetEntitiesAccessibleByGroup(group, entityType string) ([]string, error) {
	return m.ac.GetEntitiesAccessibleByGroup(group, entityType)
}

var (
	_ eventlog.Processor       = (*Manager)(nil)
	_ access.UserQuery         = (*Manager)(nil)
	_ access.GroupQuery        = (*Manager)(nil)
	_ access.GroupToGroupQuery = (*Manager)(nil)
	_ access.EntityQuery       = (*Manager)(nil)
)
