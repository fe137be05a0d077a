package depfree

// AddUserToGroupMapping grants user membership in group, prepending
// AddUser(user)/AddGroup(group) for whichever is missing, then applying the
// mapping idempotently.
func (m *Manager) AddUserToGroupMapping(user, group string) error {
	const kind = "AddUserToGroupMapping"
	m.before(kind)
	err := m.addUserToGroupMapping(user, group)
	m.after(kind, err)

	return err
}

func (m *Manager) addUserToGroupMapping(user, group string) error {
	if err := m.addUser(user); err != nil {
		return err
	}
	if err := m.addGroup(group); err != nil {
		return err
	}
	if err := m.ac.AddUserToGroupMapping(user, group); err != nil {
		if isAlreadyExists(err) {
			m.signalIdempotent("AddUserToGroupMapping", user+"->"+group)

			return nil
		}

		return err
	}
	if m.events == nil {
		return nil
	}

	return m.events.AddUserToGroupMapping(user, group)
}

// RemoveUserToGroupMapping revokes the mapping, or does nothing if absent.
func (m *Manager) RemoveUserToGroupMapping(user, group string) error {
	const kind = "RemoveUserToGroupMapping"
	m.before(kind)
	err := m.removeUserToGroupMapping(user, group)
	m.after(kind, err)

	return err
}

func (m *Manager) removeUserToGroupMapping(user, group string) error {
	if err := m.ac.RemoveUserToGroupMapping(user, group); err != nil {
		if isNotFound(err) {
			m.signalIdempotent("RemoveUserToGroupMapping", user+"->"+group)

			return nil
		}

		return err
	}
	if m.events == nil {
		return nil
	}

	return m.events.RemoveUserToGroupMapping(user, group)
}

// AddGroupToGroupMapping grants "from" membership in "to", prepending
// AddGroup for whichever is missing. Self-mapping and cycle rejection
// remain hard failures, propagated from the underlying layer untouched.
func (m *Manager) AddGroupToGroupMapping(from, to string) error {
	const kind = "AddGroupToGroupMapping"
	m.before(kind)
	err := m.addGroupToGroupMapping(from, to)
	m.after(kind, err)

	return err
}

func (m *Manager) addGroupToGroupMapping(from, to string) error {
	if err := m.addGroup(from); err != nil {
		return err
	}
	if err := m.addGroup(to); err != nil {
		return err
	}
	if err := m.ac.AddGroupToGroupMapping(from, to); err != nil {
		if isAlreadyExists(err) {
			m.signalIdempotent("AddGroupToGroupMapping", from+"->"+to)

			return nil
		}

		return err
	}
	if m.events == nil {
		return nil
	}

	return m.events.AddGroupToGroupMapping(from, to)
}

// RemoveGroupToGroupMapping revokes the mapping, or does nothing if absent.
func (m *Manager) RemoveGroupToGroupMapping(from, to string) error {
	const kind = "RemoveGroupToGroupMapping"
	m.before(kind)
	err := m.removeGroupToGroupMapping(from, to)
	m.after(kind, err)

	return err
}

func (m *Manager) removeGroupToGroupMapping(from, to string) error {
	if err := m.ac.RemoveGroupToGroupMapping(from, to); err != nil {
		if isNotFound(err) {
			m.signalIdempotent("RemoveGroupToGroupMapping", from+"->"+to)

			return nil
		}

		return err
	}
	if m.events == nil {
		return nil
	}

	return m.events.RemoveGroupToGroupMapping(from, to)
}
