package depfree

// AddUserToEntityMapping grants user access to (entityType, entity),
// prepending AddUser(user), AddEntityType(entityType), and
// AddEntity(entityType, entity) for whichever are missing, in that
// dependency order.
func (m *Manager) AddUserToEntityMapping(user, entityType, entity string) error {
	const kind = "AddUserToEntityMapping"
	m.before(kind)
	err := m.addUserToEntityMapping(user, entityType, entity)
	m.after(kind, err)

	return err
}

func (m *Manager) addUserToEntityMapping(user, entityType, entity string) error {
	if err := m.addUser(user); err != nil {
		return err
	}
	if err := m.addEntity(entityType, entity); err != nil {
		return err
	}
	if err := m.ac.AddUserToEntityMapping(user, entityType, entity); err != nil {
		if isAlreadyExists(err) {
			m.signalIdempotent("AddUserToEntityMapping", user)

			return nil
		}

		return err
	}
	if m.events == nil {
		return nil
	}

	return m.events.AddUserToEntityMapping(user, entityType, entity)
}

// RemoveUserToEntityMapping revokes the grant, or does nothing if absent.
func (m *Manager) RemoveUserToEntityMapping(user, entityType, entity string) error {
	const kind = "RemoveUserToEntityMapping"
	m.before(kind)
	err := m.removeUserToEntityMapping(user, entityType, entity)
	m.after(kind, err)

	return err
}

func (m *Manager) removeUserToEntityMapping(user, entityType, entity string) error {
	if err := m.ac.RemoveUserToEntityMapping(user, entityType, entity); err != nil {
		if isNotFound(err) {
			m.signalIdempotent("RemoveUserToEntityMapping", user)

			return nil
		}

		return err
	}
	if m.events == nil {
		return nil
	}

	return m.events.RemoveUserToEntityMapping(user, entityType, entity)
}

// AddGroupToEntityMapping grants group access to (entityType, entity),
// prepending AddGroup(group), AddEntityType(entityType), and
// AddEntity(entityType, entity) for whichever are missing.
func (m *Manager) AddGroupToEntityMapping(group, entityType, entity string) error {
	const kind = "AddGroupToEntityMapping"
	m.before(kind)
	err := m.addGroupToEntityMapping(group, entityType, entity)
	m.after(kind, err)

	return err
}

func (m *Manager) addGroupToEntityMapping(group, entityType, entity string) error {
	if err := m.addGroup(group); err != nil {
		return err
	}
	if err := m.addEntity(entityType, entity); err != nil {
		return err
	}
	if err := m.ac.AddGroupToEntityMapping(group, entityType, entity); err != nil {
		if isAlreadyExists(err) {
			m.signalIdempotent("AddGroupToEntityMapping", group)

			return nil
		}

		return err
	}
	if m.events == nil {
		return nil
	}

	return m.events.AddGroupToEntityMapping(group, entityType, entity)
}

// RemoveGroupToEntityMapping revokes the grant, or does nothing if absent.
func (m *Manager) RemoveGroupToEntityMapping(group, entityType, entity string) error {
	const kind = "RemoveGroupToEntityMapping"
	m.before(kind)
	err := m.removeGroupToEntityMapping(group, entityType, entity)
	m.after(kind, err)

	return err
}

func (m *Manager) removeGroupToEntityMapping(group, entityType, entity string) error {
	if err := m.ac.RemoveGroupToEntityMapping(group, entityType, entity); err != nil {
		if isNotFound(err) {
			m.signalIdempotent("RemoveGroupToEntityMapping", group)

			return nil
		}

		return err
	}
	if m.events == nil {
		return nil
	}

	return m.events.RemoveGroupToEntityMapping(group, entityType, entity)
}

