package depfree

import "github.com/accessgraph/accessgraph/store"

// AddUserToComponentMapping grants user a (component, accessLevel) grant,
// prepending AddUser(user) if missing.
func (m *Manager) AddUserToComponentMapping(user string, component store.Component, level store.AccessLevel) error {
	const kind = "AddUserToComponentMapping"
	m.before(kind)
	err := m.addUserToComponentMapping(user, component, level)
	m.after(kind, err)

	return err
}

func (m *Manager) addUserToComponentMapping(user string, component store.Component, level store.AccessLevel) error {
	if err := m.addUser(user); err != nil {
		return err
	}
	if err := m.ac.AddUserToComponentMapping(user, component, level); err != nil {
		if isAlreadyExists(err) {
			m.signalIdempotent("AddUserToComponentMapping", user)

			return nil
		}

		return err
	}
	if m.events == nil {
		return nil
	}

	return m.events.AddUserToComponentMapping(user, component, level)
}

// RemoveUserToComponentMapping revokes the grant, or does nothing if absent.
func (m *Manager) RemoveUserToComponentMapping(user string, component store.Component, level store.AccessLevel) error {
	const kind = "RemoveUserToComponentMapping"
	m.before(kind)
	err := m.removeUserToComponentMapping(user, component, level)
	m.after(kind, err)

	return err
}

func (m *Manager) removeUserToComponentMapping(user string, component store.Component, level store.AccessLevel) error {
	if err := m.ac.RemoveUserToComponentMapping(user, component, level); err != nil {
		if isNotFound(err) {
			m.signalIdempotent("RemoveUserToComponentMapping", user)

			return nil
		}

		return err
	}
	if m.events == nil {
		return nil
	}

	return m.events.RemoveUserToComponentMapping(user, component, level)
}

// AddGroupToComponentMapping grants group a (component, accessLevel) grant,
// prepending AddGroup(group) if missing.
func (m *Manager) AddGroupToComponentMapping(group string, component store.Component, level store.AccessLevel) error {
	const kind = "AddGroupToComponentMapping"
	m.before(kind)
	err := m.addGroupToComponentMapping(group, component, level)
	m.after(kind, err)

	return err
}

func (m *Manager) addGroupToComponentMapping(group string, component store.Component, level store.AccessLevel) error {
	if err := m.addGroup(group); err != nil {
		return err
	}
	if err := m.ac.AddGroupToComponentMapping(group, component, level); err != nil {
		if isAlreadyExists(err) {
			m.signalIdempotent("AddGroupToComponentMapping", group)

			return nil
		}

		return err
	}
	if m.events == nil {
		return nil
	}

	return m.events.AddGroupToComponentMapping(group, component, level)
}

// RemoveGroupToComponentMapping revokes the grant, or does nothing if
// absent.
func (m *Manager) RemoveGroupToComponentMapping(group string, component store.Component, level store.AccessLevel) error {
	const kind = "RemoveGroupToComponentMapping"
	m.before(kind)
	err := m.removeGroupToComponentMapping(group, component, level)
	m.after(kind, err)

	return err
}

func (m *Manager) removeGroupToComponentMapping(group string, component store.Component, level store.AccessLevel) error {
	if err := m.ac.RemoveGroupToComponentMapping(group, component, level); err != nil {
		if isNotFound(err) {
			m.signalIdempotent("RemoveGroupToComponentMapping", group)

			return nil
		}

		return err
	}
	if m.events == nil {
		return nil
	}

	return m.events.RemoveGroupToComponentMapping(group, component, level)
}
