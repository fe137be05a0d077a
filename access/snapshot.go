// File: snapshot.go
// Role: a point-in-time export of every store, used by tests (and by
// callers wanting a value comparison instead of re-querying every method).
// Grounded on the teacher's Clone()/CloneEmpty() role: a deep, consistent
// copy taken under the same locks its mutators use, generalized here from
// one graph to the full five-store Manager.
package access

import "github.com/accessgraph/accessgraph/store"

// Snapshot is a deep, comparable copy of a Manager's observable state.
type Snapshot struct {
	Users  []string
	Groups []string

	UserGroupEdges  map[string][]string
	GroupGroupEdges map[string][]string

	UserComponents  map[string][]store.Grant
	GroupComponents map[string][]store.Grant

	UserEntities  map[string]map[string][]string
	GroupEntities map[string]map[string][]string

	EntityCatalog map[string][]string
}

// Snapshot exports every store into a deep copy. Callers on a *Concurrent
// get a lock-consistent snapshot; calling this directly on a bare *Manager
// is only safe under external synchronization.
func (m *Manager) Snapshot() *Snapshot {
	s := &Snapshot{
		Users:           m.Users(),
		Groups:          m.Groups(),
		UserGroupEdges:  make(map[string][]string),
		GroupGroupEdges: make(map[string][]string),
		UserComponents:  make(map[string][]store.Grant),
		GroupComponents: make(map[string][]store.Grant),
		UserEntities:    make(map[string]map[string][]string),
		GroupEntities:   make(map[string]map[string][]string),
		EntityCatalog:   make(map[string][]string),
	}

	for _, u := range s.Users {
		if groups := m.GetUserToGroupMappings(u); len(groups) > 0 {
			s.UserGroupEdges[u] = groups
		}
		if grants := m.GetUserToComponentMappings(u); len(grants) > 0 {
			s.UserComponents[u] = grants
		}
		if entities := m.userEntities.GetAll(u); len(entities) > 0 {
			s.UserEntities[u] = m.entitiesByType(m.userEntities, u)
		}
	}
	for _, g := range s.Groups {
		if groups := m.GetGroupToGroupMappings(g); len(groups) > 0 {
			s.GroupGroupEdges[g] = groups
		}
		if grants := m.GetGroupToComponentMappings(g); len(grants) > 0 {
			s.GroupComponents[g] = grants
		}
		if entities := m.groupEntities.GetAll(g); len(entities) > 0 {
			s.GroupEntities[g] = m.entitiesByType(m.groupEntities, g)
		}
	}
	for _, t := range m.EntityTypes() {
		s.EntityCatalog[t] = m.GetEntities(t)
	}

	return s
}

func (m *Manager) entitiesByType(es *store.EntityStore, key string) map[string][]string {
	out := make(map[string][]string)
	for _, t := range m.EntityTypes() {
		if entities := es.Get(key, t); len(entities) > 0 {
			out[t] = entities
		}
	}

	return out
}
