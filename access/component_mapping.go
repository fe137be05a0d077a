// File: component_mapping.go
// Role: user->component/access and group->component/access mapping
// operations (UC and GC from the data model).
package access

import "github.com/accessgraph/accessgraph/store"

// AddUserToComponentMapping grants user a (component, accessLevel) grant.
// Requires user to pre-exist; fails with acerr.AlreadyExists if already
// granted.
func (m *Manager) AddUserToComponentMapping(user string, component store.Component, level store.AccessLevel) error {
	if !m.ContainsUser(user) {
		return notFound("user", user)
	}
	if err := m.userComponents.Add(user, store.Grant{Component: component, AccessLevel: level}); err != nil {
		return alreadyExists("userComponentMapping", user)
	}

	return nil
}

// RemoveUserToComponentMapping revokes the grant. Fails with acerr.NotFound
// if absent.
func (m *Manager) RemoveUserToComponentMapping(user string, component store.Component, level store.AccessLevel) error {
	if err := m.userComponents.Remove(user, store.Grant{Component: component, AccessLevel: level}); err != nil {
		return notFound("userComponentMapping", user)
	}

	return nil
}

// GetUserToComponentMappings returns user's direct component grants.
func (m *Manager) GetUserToComponentMappings(user string) []store.Grant {
	return m.userComponents.Get(user)
}

// AddGroupToComponentMapping grants group a (component, accessLevel) grant.
// Requires group to pre-exist; fails with acerr.AlreadyExists if already
// granted.
func (m *Manager) AddGroupToComponentMapping(group string, component store.Component, level store.AccessLevel) error {
	if !m.ContainsGroup(group) {
		return notFound("group", group)
	}
	if err := m.groupComponents.Add(group, store.Grant{Component: component, AccessLevel: level}); err != nil {
		return alreadyExists("groupComponentMapping", group)
	}

	return nil
}

// RemoveGroupToComponentMapping revokes the grant. Fails with
// acerr.NotFound if absent.
func (m *Manager) RemoveGroupToComponentMapping(group string, component store.Component, level store.AccessLevel) error {
	if err := m.groupComponents.Remove(group, store.Grant{Component: component, AccessLevel: level}); err != nil {
		return notFound("groupComponentMapping", group)
	}

	return nil
}

// GetGroupToComponentMappings returns group's direct component grants.
func (m *Manager) GetGroupToComponentMappings(group string) []store.Grant {
	return m.groupComponents.Get(group)
}
