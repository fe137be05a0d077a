// File: entities.go
// Role: entityType/entity catalog operations (I6 owner).
package access

// AddEntityType registers entityType. Fails with acerr.InvalidArgument if
// blank, acerr.AlreadyExists if already registered.
func (m *Manager) AddEntityType(entityType string) error {
	if !nonBlank(entityType) {
		return invalidArgument("entityType", entityType)
	}
	if err := m.catalog.AddType(entityType); err != nil {
		return alreadyExists("entityType", entityType)
	}

	return nil
}

// ContainsEntityType reports whether entityType is registered.
func (m *Manager) ContainsEntityType(entityType string) bool {
	return m.catalog.HasType(entityType)
}

// EntityTypes returns every registered entityType, sorted.
func (m *Manager) EntityTypes() []string { return m.catalog.Types() }

// RemoveEntityType deletes entityType and purges it from every UE/GE
// record. Fails with acerr.NotFound if absent.
func (m *Manager) RemoveEntityType(entityType string) error {
	if err := m.catalog.RemoveType(entityType); err != nil {
		return notFound("entityType", entityType)
	}
	m.userEntities.RemoveEntityType(entityType)
	m.groupEntities.RemoveEntityType(entityType)

	return nil
}

// AddEntity registers entity under entityType. Fails with
// acerr.InvalidArgument if entity is blank, acerr.NotFound if entityType is
// unregistered, acerr.AlreadyExists if entity is already registered.
func (m *Manager) AddEntity(entityType, entity string) error {
	if !nonBlank(entity) {
		return invalidArgument("entity", entity)
	}
	err := m.catalog.AddEntity(entityType, entity)
	switch {
	case err == nil:
		return nil
	default:
		if !m.catalog.HasType(entityType) {
			return notFound("entityType", entityType)
		}

		return alreadyExists("entity", entity)
	}
}

// ContainsEntity reports whether entity is registered under entityType.
func (m *Manager) ContainsEntity(entityType, entity string) bool {
	return m.catalog.HasEntity(entityType, entity)
}

// GetEntities returns every entity registered under entityType, sorted.
func (m *Manager) GetEntities(entityType string) []string {
	return m.catalog.Entities(entityType)
}

// RemoveEntity deletes entity from entityType's catalog and purges it from
// every UE/GE inner set. Fails with acerr.NotFound if either is absent.
func (m *Manager) RemoveEntity(entityType, entity string) error {
	if err := m.catalog.RemoveEntity(entityType, entity); err != nil {
		if !m.catalog.HasType(entityType) {
			return notFound("entityType", entityType)
		}

		return notFound("entity", entity)
	}
	m.userEntities.RemoveEntity(entityType, entity)
	m.groupEntities.RemoveEntity(entityType, entity)

	return nil
}
