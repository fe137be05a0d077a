package access

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accessgraph/accessgraph/store"
)

func TestHasAccessToComponentViaDirectGroup(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.AddUser("alice"))
	require.NoError(t, m.AddGroup("eng"))
	require.NoError(t, m.AddUserToGroupMapping("alice", "eng"))
	require.NoError(t, m.AddGroupToComponentMapping("eng", "billing", store.AccessAdmin))

	ok, err := m.HasAccessToComponent("alice", "billing", store.AccessAdmin)
	require.NoError(t, err)
	assert.True(t, ok, "grant on the group a user is directly mapped to (distance 1) must be reachable")
}

func TestHasAccessToComponentViaReachableGroup(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.AddUser("alice"))
	require.NoError(t, m.AddGroup("eng"))
	require.NoError(t, m.AddGroup("root"))
	require.NoError(t, m.AddUserToGroupMapping("alice", "eng"))
	require.NoError(t, m.AddGroupToGroupMapping("eng", "root"))
	require.NoError(t, m.AddGroupToComponentMapping("root", "billing", store.AccessAdmin))

	ok, err := m.HasAccessToComponent("alice", "billing", store.AccessAdmin)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = m.HasAccessToComponent("alice", "billing", store.AccessOwner)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHasAccessToComponentMissingUserIsFalseNotError(t *testing.T) {
	m := NewManager()
	ok, err := m.HasAccessToComponent("ghost", "billing", store.AccessRead)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHasAccessToEntityMissingEntityTypeIsNotFound(t *testing.T) {
	m := NewManager()
	_, err := m.HasAccessToEntity("alice", "document", "doc-1")
	require.Error(t, err)
}

func TestAddGroupToGroupMappingRejectsSelfAndCycle(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.AddGroup("a"))
	require.NoError(t, m.AddGroup("b"))
	require.Error(t, m.AddGroupToGroupMapping("a", "a"))

	require.NoError(t, m.AddGroupToGroupMapping("a", "b"))
	require.Error(t, m.AddGroupToGroupMapping("b", "a"))
}

func TestRemoveUserCascadesAllMappings(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.AddUser("alice"))
	require.NoError(t, m.AddGroup("eng"))
	require.NoError(t, m.AddEntityType("document"))
	require.NoError(t, m.AddEntity("document", "doc-1"))
	require.NoError(t, m.AddUserToGroupMapping("alice", "eng"))
	require.NoError(t, m.AddUserToComponentMapping("alice", "billing", store.AccessRead))
	require.NoError(t, m.AddUserToEntityMapping("alice", "document", "doc-1"))

	require.NoError(t, m.RemoveUser("alice"))

	assert.False(t, m.ContainsUser("alice"))
	assert.Empty(t, m.GetUserToGroupMappings("alice"))
	assert.Empty(t, m.GetUserToComponentMappings("alice"))
	assert.Empty(t, m.GetUserToEntityMappings("alice", ""))
}

func TestGetEntitiesAccessibleByUserUnionsDirectAndGroup(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.AddUser("alice"))
	require.NoError(t, m.AddGroup("eng"))
	require.NoError(t, m.AddEntityType("document"))
	require.NoError(t, m.AddEntity("document", "doc-1"))
	require.NoError(t, m.AddEntity("document", "doc-2"))
	require.NoError(t, m.AddUserToGroupMapping("alice", "eng"))
	require.NoError(t, m.AddUserToEntityMapping("alice", "document", "doc-1"))
	require.NoError(t, m.AddGroupToEntityMapping("eng", "document", "doc-2"))

	entities, err := m.GetEntitiesAccessibleByUser("alice", "document")
	require.NoError(t, err)
	assert.Equal(t, []string{"doc-1", "doc-2"}, entities)
}

func TestSnapshotReflectsCurrentState(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.AddUser("alice"))
	require.NoError(t, m.AddGroup("eng"))
	require.NoError(t, m.AddUserToGroupMapping("alice", "eng"))
	require.NoError(t, m.AddGroupToComponentMapping("eng", "billing", store.AccessRead))

	snap := m.Snapshot()
	assert.Equal(t, []string{"alice"}, snap.Users)
	assert.Equal(t, []string{"eng"}, snap.Groups)
	assert.Equal(t, []string{"eng"}, snap.UserGroupEdges["alice"])
	assert.Equal(t, []store.Grant{{Component: "billing", AccessLevel: store.AccessRead}}, snap.GroupComponents["eng"])
}

func TestConcurrentMatchesSequentialManagerSemantics(t *testing.T) {
	c := NewConcurrent()
	require.NoError(t, c.AddUser("alice"))
	require.NoError(t, c.AddGroup("eng"))
	require.NoError(t, c.AddUserToGroupMapping("alice", "eng"))
	require.NoError(t, c.AddGroupToComponentMapping("eng", "billing", store.AccessRead))

	ok, err := c.HasAccessToComponent("alice", "billing", store.AccessRead)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestConcurrentSurvivesParallelMutation(t *testing.T) {
	c := NewConcurrent()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			user := userID(i)
			_ = c.AddUser(user)
			_ = c.AddGroup("eng")
			_ = c.AddUserToGroupMapping(user, "eng")
			_, _ = c.HasAccessToComponent(user, "billing", store.AccessRead)
		}(i)
	}
	wg.Wait()

	assert.Len(t, c.Users(), 50)
}

func userID(i int) string {
	const letters = "abcdefghijklmnopqrstuvwxyz"
	if i < 26 {
		return string(letters[i]) + "user"
	}

	return string(letters[i%26]) + string(letters[(i/26)%26]) + "user"
}
