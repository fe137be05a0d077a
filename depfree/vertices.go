package depfree

// AddUser registers user, or does nothing if already present.
func (m *Manager) AddUser(user string) error {
	const kind = "AddUser"
	m.before(kind)
	err := m.addUser(user)
	m.after(kind, err)

	return err
}

func (m *Manager) addUser(user string) error {
	if m.ac.ContainsUser(user) {
		m.signalIdempotent("AddUser", user)

		return nil
	}
	if err := m.ac.AddUser(user); err != nil {
		if isAlreadyExists(err) {
			m.signalIdempotent("AddUser", user)

			return nil
		}

		return err
	}
	if m.events == nil {
		return nil
	}

	return m.events.AddUser(user)
}

// RemoveUser deletes user and cascades, or does nothing if already absent.
func (m *Manager) RemoveUser(user string) error {
	const kind = "RemoveUser"
	m.before(kind)
	err := m.removeUser(user)
	m.after(kind, err)

	return err
}

func (m *Manager) removeUser(user string) error {
	if err := m.ac.RemoveUser(user); err != nil {
		if isNotFound(err) {
			m.signalIdempotent("RemoveUser", user)

			return nil
		}

		return err
	}
	if m.events == nil {
		return nil
	}

	return m.events.RemoveUser(user)
}

// AddGroup registers group, or does nothing if already present.
func (m *Manager) AddGroup(group string) error {
	const kind = "AddGroup"
	m.before(kind)
	err := m.addGroup(group)
	m.after(kind, err)

	return err
}

func (m *Manager) addGroup(group string) error {
	if m.ac.ContainsGroup(group) {
		m.signalIdempotent("AddGroup", group)

		return nil
	}
	if err := m.ac.AddGroup(group); err != nil {
		if isAlreadyExists(err) {
			m.signalIdempotent("AddGroup", group)

			return nil
		}

		return err
	}
	if m.events == nil {
		return nil
	}

	return m.events.AddGroup(group)
}

// RemoveGroup deletes group and cascades, or does nothing if already absent.
func (m *Manager) RemoveGroup(group string) error {
	const kind = "RemoveGroup"
	m.before(kind)
	err := m.removeGroup(group)
	m.after(kind, err)

	return err
}

func (m *Manager) removeGroup(group string) error {
	if err := m.ac.RemoveGroup(group); err != nil {
		if isNotFound(err) {
			m.signalIdempotent("RemoveGroup", group)

			return nil
		}

		return err
	}
	if m.events == nil {
		return nil
	}

	return m.events.RemoveGroup(group)
}
