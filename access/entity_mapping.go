// File: entity_mapping.go
// Role: user->entity and group->entity mapping operations (UE and GE from
// the data model).
package access

// AddUserToEntityMapping grants user access to (entityType, entity).
// Requires user, entityType, and entity to all pre-exist; fails with
// acerr.NotFound naming whichever is missing, or acerr.AlreadyExists if
// already granted.
func (m *Manager) AddUserToEntityMapping(user, entityType, entity string) error {
	if !m.ContainsUser(user) {
		return notFound("user", user)
	}
	if !m.catalog.HasType(entityType) {
		return notFound("entityType", entityType)
	}
	if !m.catalog.HasEntity(entityType, entity) {
		return notFound("entity", entity)
	}
	if err := m.userEntities.Add(user, entityType, entity); err != nil {
		return alreadyExists("userEntityMapping", user)
	}

	return nil
}

// RemoveUserToEntityMapping revokes the grant. Fails with acerr.NotFound if
// absent.
func (m *Manager) RemoveUserToEntityMapping(user, entityType, entity string) error {
	if err := m.userEntities.Remove(user, entityType, entity); err != nil {
		return notFound("userEntityMapping", user)
	}

	return nil
}

// GetUserToEntityMappings returns user's direct entity grants under
// entityType, sorted. If entityType is empty, every directly granted
// entity across all types is returned instead.
func (m *Manager) GetUserToEntityMappings(user, entityType string) []string {
	if entityType == "" {
		return m.userEntities.GetAll(user)
	}

	return m.userEntities.Get(user, entityType)
}

// AddGroupToEntityMapping grants group access to (entityType, entity).
// Requires group, entityType, and entity to all pre-exist.
func (m *Manager) AddGroupToEntityMapping(group, entityType, entity string) error {
	if !m.ContainsGroup(group) {
		return notFound("group", group)
	}
	if !m.catalog.HasType(entityType) {
		return notFound("entityType", entityType)
	}
	if !m.catalog.HasEntity(entityType, entity) {
		return notFound("entity", entity)
	}
	if err := m.groupEntities.Add(group, entityType, entity); err != nil {
		return alreadyExists("groupEntityMapping", group)
	}

	return nil
}

// RemoveGroupToEntityMapping revokes the grant. Fails with acerr.NotFound
// if absent.
func (m *Manager) RemoveGroupToEntityMapping(group, entityType, entity string) error {
	if err := m.groupEntities.Remove(group, entityType, entity); err != nil {
		return notFound("groupEntityMapping", group)
	}

	return nil
}

// GetGroupToEntityMappings returns group's direct entity grants under
// entityType, sorted (or across all types if entityType is empty).
func (m *Manager) GetGroupToEntityMappings(group, entityType string) []string {
	if entityType == "" {
		return m.groupEntities.GetAll(group)
	}

	return m.groupEntities.Get(group, entityType)
}
