// File: vertices.go
// Role: user/group lifecycle on the Manager (C3 strict layer).
package access

import (
	"github.com/accessgraph/accessgraph/graph"
)

// AddUser registers a new user. Fails with acerr.AlreadyExists if present.
func (m *Manager) AddUser(user string) error {
	if err := m.g.AddLeaf(user); err != nil {
		if err == graph.ErrAlreadyExists {
			return alreadyExists("user", user)
		}

		return err
	}

	return nil
}

// AddGroup registers a new group. Fails with acerr.AlreadyExists if present.
func (m *Manager) AddGroup(group string) error {
	if err := m.g.AddNonLeaf(group); err != nil {
		if err == graph.ErrAlreadyExists {
			return alreadyExists("group", group)
		}

		return err
	}

	return nil
}

// ContainsUser reports whether user is registered.
func (m *Manager) ContainsUser(user string) bool { return m.g.ContainsLeaf(user) }

// ContainsGroup reports whether group is registered.
func (m *Manager) ContainsGroup(group string) bool { return m.g.ContainsNonLeaf(group) }

// Users returns every registered user, sorted.
func (m *Manager) Users() []string { return m.g.Leaves() }

// Groups returns every registered group, sorted.
func (m *Manager) Groups() []string { return m.g.NonLeaves() }

// RemoveUser deletes user and cascades: every UC[user], UE[user], and
// leaf->non-leaf edge from it. Fails with acerr.NotFound if absent.
func (m *Manager) RemoveUser(user string) error {
	if err := m.g.RemoveLeaf(user); err != nil {
		return notFound("user", user)
	}
	m.userComponents.RemoveKey(user)
	m.userEntities.RemoveKey(user)

	return nil
}

// RemoveGroup deletes group and cascades: GC[group], GE[group], every
// non-leaf<->non-leaf edge touching it, and every leaf->non-leaf edge into
// it. Fails with acerr.NotFound if absent.
func (m *Manager) RemoveGroup(group string) error {
	if err := m.g.RemoveNonLeaf(group); err != nil {
		return notFound("group", group)
	}
	m.groupComponents.RemoveKey(group)
	m.groupEntities.RemoveKey(group)

	return nil
}
