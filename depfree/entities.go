package depfree

// AddEntityType registers entityType, or does nothing if already present.
// A blank entityType remains a hard failure (acerr.InvalidArgument), never
// swallowed as idempotency.
func (m *Manager) AddEntityType(entityType string) error {
	const kind = "AddEntityType"
	m.before(kind)
	err := m.addEntityType(entityType)
	m.after(kind, err)

	return err
}

func (m *Manager) addEntityType(entityType string) error {
	if m.ac.ContainsEntityType(entityType) {
		m.signalIdempotent("AddEntityType", entityType)

		return nil
	}
	if err := m.ac.AddEntityType(entityType); err != nil {
		if isAlreadyExists(err) {
			m.signalIdempotent("AddEntityType", entityType)

			return nil
		}

		return err
	}
	if m.events == nil {
		return nil
	}

	return m.events.AddEntityType(entityType)
}

// RemoveEntityType deletes entityType and purges it from every UE/GE
// record, or does nothing if already absent.
func (m *Manager) RemoveEntityType(entityType string) error {
	const kind = "RemoveEntityType"
	m.before(kind)
	err := m.removeEntityType(entityType)
	m.after(kind, err)

	return err
}

func (m *Manager) removeEntityType(entityType string) error {
	if err := m.ac.RemoveEntityType(entityType); err != nil {
		if isNotFound(err) {
			m.signalIdempotent("RemoveEntityType", entityType)

			return nil
		}

		return err
	}
	if m.events == nil {
		return nil
	}

	return m.events.RemoveEntityType(entityType)
}

// AddEntity registers entity under entityType, prepending AddEntityType if
// missing.
func (m *Manager) AddEntity(entityType, entity string) error {
	const kind = "AddEntity"
	m.before(kind)
	err := m.addEntity(entityType, entity)
	m.after(kind, err)

	return err
}

func (m *Manager) addEntity(entityType, entity string) error {
	if err := m.addEntityType(entityType); err != nil {
		return err
	}
	if m.ac.ContainsEntity(entityType, entity) {
		m.signalIdempotent("AddEntity", entity)

		return nil
	}
	if err := m.ac.AddEntity(entityType, entity); err != nil {
		if isAlreadyExists(err) {
			m.signalIdempotent("AddEntity", entity)

			return nil
		}

		return err
	}
	if m.events == nil {
		return nil
	}

	return m.events.AddEntity(entityType, entity)
}

// RemoveEntity deletes entity and purges it from every UE/GE inner set, or
// does nothing if already absent.
func (m *Manager) RemoveEntity(entityType, entity string) error {
	const kind = "RemoveEntity"
	m.before(kind)
	err := m.removeEntity(entityType, entity)
	m.after(kind, err)

	return err
}

func (m *Manager) removeEntity(entityType, entity string) error {
	if err := m.ac.RemoveEntity(entityType, entity); err != nil {
		if isNotFound(err) {
			m.signalIdempotent("RemoveEntity", entity)

			return nil
		}

		return err
	}
	if m.events == nil {
		return nil
	}

	return m.events.RemoveEntity(entityType, entity)
}
