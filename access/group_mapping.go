// File: group_mapping.go
// Role: user->group and group->group mapping operations (leaf->non-leaf and
// non-leaf->non-leaf edges, exposed under the authorization vocabulary).
package access

import (
	"github.com/accessgraph/accessgraph/acerr"
	"github.com/accessgraph/accessgraph/graph"
)

// AddUserToGroupMapping grants user membership in group. Requires both to
// pre-exist; fails with acerr.NotFound naming the missing one, or
// acerr.AlreadyExists if the mapping is already present.
func (m *Manager) AddUserToGroupMapping(user, group string) error {
	if !m.ContainsUser(user) {
		return notFound("user", user)
	}
	if !m.ContainsGroup(group) {
		return notFound("group", group)
	}
	if err := m.g.AddLeafEdge(user, group); err != nil {
		if err == graph.ErrEdgeExists {
			return alreadyExists("userGroupMapping", user+"->"+group)
		}

		return err
	}

	return nil
}

// RemoveUserToGroupMapping revokes user's membership in group. Fails with
// acerr.NotFound if the mapping is absent.
func (m *Manager) RemoveUserToGroupMapping(user, group string) error {
	if err := m.g.RemoveLeafEdge(user, group); err != nil {
		return notFound("userGroupMapping", user+"->"+group)
	}

	return nil
}

// GetUserToGroupMappings returns the groups user directly belongs to,
// sorted.
func (m *Manager) GetUserToGroupMappings(user string) []string {
	return m.g.GetLeafEdges(user)
}

// AddGroupToGroupMapping grants "from" membership in "to" (from inherits
// to's grants). Fails with acerr.SelfMapping if from == to, acerr.NotFound
// if either is absent, acerr.AlreadyExists if already mapped, or
// acerr.CircularReference if the edge would close a cycle -- cycle
// detection is never swallowed, even by the dependency-free layer above.
func (m *Manager) AddGroupToGroupMapping(from, to string) error {
	if from == to {
		return acerr.New(acerr.KindSelfMapping, "group", map[string]string{"group": from}, nil)
	}
	if !m.ContainsGroup(from) {
		return notFound("group", from)
	}
	if !m.ContainsGroup(to) {
		return notFound("group", to)
	}
	if err := m.g.AddNonLeafEdge(from, to); err != nil {
		switch err {
		case graph.ErrEdgeExists:
			return alreadyExists("groupGroupMapping", from+"->"+to)
		case graph.ErrCircularReference:
			return acerr.New(acerr.KindCircularReference, "group", map[string]string{"from": from, "to": to}, nil)
		default:
			return err
		}
	}

	return nil
}

// RemoveGroupToGroupMapping revokes from's membership in to. Fails with
// acerr.NotFound if the mapping is absent.
func (m *Manager) RemoveGroupToGroupMapping(from, to string) error {
	if err := m.g.RemoveNonLeafEdge(from, to); err != nil {
		return notFound("groupGroupMapping", from+"->"+to)
	}

	return nil
}

// GetGroupToGroupMappings returns the groups group directly belongs to,
// sorted.
func (m *Manager) GetGroupToGroupMappings(group string) []string {
	return m.g.GetNonLeafEdges(group)
}
