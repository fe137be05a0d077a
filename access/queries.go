// File: queries.go
// Role: reachability queries (HasAccessToComponent, HasAccessToEntity,
// accessible-set queries) and their group-rooted variants.
//
// Reachability semantics: HasAccessToComponent(u,c,a) is true iff either
// (u,c,a) is a direct UC grant, or some group g reachable from u (via leaf
// then non-leaf edges) carries (g,c,a) in GC. HasAccessToEntity is
// symmetric over UE/GE. A missing user is not a failure -- the query
// returns false, since it must be safe to call for unknown principals.
package access

import "github.com/accessgraph/accessgraph/store"

// HasAccessToComponent reports whether user has (component, level), either
// directly or via a reachable group. A missing user returns (false, nil).
func (m *Manager) HasAccessToComponent(user string, component store.Component, level store.AccessLevel) (bool, error) {
	if !m.ContainsUser(user) {
		return false, nil
	}

	grant := store.Grant{Component: component, AccessLevel: level}
	if m.userComponents.Has(user, grant) {
		return true, nil
	}

	found := false
	_ = m.g.TraverseFromLeaf(user, func(group string) bool {
		if m.groupComponents.Has(group, grant) {
			found = true

			return false
		}

		return true
	})

	return found, nil
}

// HasGroupAccessToComponent is HasAccessToComponent rooted at a group
// instead of a user: true iff group itself carries the grant, or some group
// reachable from it (via non-leaf edges) does.
func (m *Manager) HasGroupAccessToComponent(group string, component store.Component, level store.AccessLevel) (bool, error) {
	if !m.ContainsGroup(group) {
		return false, nil
	}

	grant := store.Grant{Component: component, AccessLevel: level}
	if m.groupComponents.Has(group, grant) {
		return true, nil
	}

	found := false
	_ = m.g.TraverseFromNonLeaf(group, func(g string) bool {
		if m.groupComponents.Has(g, grant) {
			found = true

			return false
		}

		return true
	})

	return found, nil
}

// HasAccessToEntity reports whether user has access to (entityType, entity),
// either directly or via a reachable group. entityType and entity must be
// registered in the catalog or the query fails with acerr.NotFound; a
// missing user returns (false, nil) -- the query is safe to call for
// unknown principals.
func (m *Manager) HasAccessToEntity(user, entityType, entity string) (bool, error) {
	if !m.catalog.HasType(entityType) {
		return false, notFound("entityType", entityType)
	}
	if !m.catalog.HasEntity(entityType, entity) {
		return false, notFound("entity", entity)
	}
	if !m.ContainsUser(user) {
		return false, nil
	}

	if m.userEntities.Has(user, entityType, entity) {
		return true, nil
	}

	found := false
	_ = m.g.TraverseFromLeaf(user, func(group string) bool {
		if m.groupEntities.Has(group, entityType, entity) {
			found = true

			return false
		}

		return true
	})

	return found, nil
}

// HasGroupAccessToEntity is HasAccessToEntity rooted at a group.
func (m *Manager) HasGroupAccessToEntity(group, entityType, entity string) (bool, error) {
	if !m.catalog.HasType(entityType) {
		return false, notFound("entityType", entityType)
	}
	if !m.catalog.HasEntity(entityType, entity) {
		return false, notFound("entity", entity)
	}
	if !m.ContainsGroup(group) {
		return false, nil
	}

	if m.groupEntities.Has(group, entityType, entity) {
		return true, nil
	}

	found := false
	_ = m.g.TraverseFromNonLeaf(group, func(g string) bool {
		if m.groupEntities.Has(g, entityType, entity) {
			found = true

			return false
		}

		return true
	})

	return found, nil
}

// GetComponentsAccessibleByUser returns the union of user's direct grants
// and every grant carried by a group reachable from user, deduplicated and
// sorted.
func (m *Manager) GetComponentsAccessibleByUser(user string) ([]store.Grant, error) {
	if !m.ContainsUser(user) {
		return nil, nil
	}

	seen := make(map[store.Grant]struct{})
	for _, g := range m.userComponents.Get(user) {
		seen[g] = struct{}{}
	}
	_ = m.g.TraverseFromLeaf(user, func(group string) bool {
		for _, g := range m.groupComponents.Get(group) {
			seen[g] = struct{}{}
		}

		return true
	})

	return dedupeGrants(seen), nil
}

// GetComponentsAccessibleByGroup is the group-rooted variant.
func (m *Manager) GetComponentsAccessibleByGroup(group string) ([]store.Grant, error) {
	if !m.ContainsGroup(group) {
		return nil, nil
	}

	seen := make(map[store.Grant]struct{})
	for _, g := range m.groupComponents.Get(group) {
		seen[g] = struct{}{}
	}
	_ = m.g.TraverseFromNonLeaf(group, func(g string) bool {
		for _, gr := range m.groupComponents.Get(g) {
			seen[gr] = struct{}{}
		}

		return true
	})

	return dedupeGrants(seen), nil
}

// GetEntitiesAccessibleByUser returns the union of entities user can reach
// under entityType (or across all types if entityType is empty), via direct
// grants or a reachable group, deduplicated and sorted. Fails with
// acerr.NotFound if a non-empty entityType is not registered.
func (m *Manager) GetEntitiesAccessibleByUser(user, entityType string) ([]string, error) {
	if entityType != "" && !m.catalog.HasType(entityType) {
		return nil, notFound("entityType", entityType)
	}
	if !m.ContainsUser(user) {
		return nil, nil
	}

	seen := make(map[string]struct{})
	addAll := func(es *storeEntityGetter, key string) {
		for _, e := range es.entities(key, entityType) {
			seen[e] = struct{}{}
		}
	}
	addAll(&storeEntityGetter{m.userEntities}, user)
	_ = m.g.TraverseFromLeaf(user, func(group string) bool {
		addAll(&storeEntityGetter{m.groupEntities}, group)

		return true
	})

	return dedupeStrings(seen), nil
}

// GetEntitiesAccessibleByGroup is the group-rooted variant.
func (m *Manager) GetEntitiesAccessibleByGroup(group, entityType string) ([]string, error) {
	if entityType != "" && !m.catalog.HasType(entityType) {
		return nil, notFound("entityType", entityType)
	}
	if !m.ContainsGroup(group) {
		return nil, nil
	}

	seen := make(map[string]struct{})
	addAll := func(es *storeEntityGetter, key string) {
		for _, e := range es.entities(key, entityType) {
			seen[e] = struct{}{}
		}
	}
	addAll(&storeEntityGetter{m.groupEntities}, group)
	_ = m.g.TraverseFromNonLeaf(group, func(g string) bool {
		addAll(&storeEntityGetter{m.groupEntities}, g)

		return true
	})

	return dedupeStrings(seen), nil
}

// storeEntityGetter adapts EntityStore.Get/GetAll behind one call depending
// on whether entityType was supplied.
type storeEntityGetter struct {
	s *store.EntityStore
}

func (g *storeEntityGetter) entities(key, entityType string) []string {
	if entityType == "" {
		return g.s.GetAll(key)
	}

	return g.s.Get(key, entityType)
}

func dedupeGrants(seen map[store.Grant]struct{}) []store.Grant {
	out := make([]store.Grant, 0, len(seen))
	for g := range seen {
		out = append(out, g)
	}
	sortGrants(out)

	return out
}

func dedupeStrings(seen map[string]struct{}) []string {
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sortStrings(out)

	return out
}
