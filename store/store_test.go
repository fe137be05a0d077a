package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponentStorePrunesEmptyKey(t *testing.T) {
	s := NewComponentStore()
	g := Grant{Component: "billing", AccessLevel: AccessWrite}
	require.NoError(t, s.Add("alice", g))
	assert.True(t, s.HasKey("alice"))

	require.NoError(t, s.Remove("alice", g))
	assert.False(t, s.HasKey("alice"), "emptied key must be pruned (I7)")
}

func TestComponentStoreDuplicateAddFails(t *testing.T) {
	s := NewComponentStore()
	g := Grant{Component: "billing", AccessLevel: AccessRead}
	require.NoError(t, s.Add("alice", g))
	assert.ErrorIs(t, s.Add("alice", g), ErrAlreadyExists)
}

func TestEntityStorePrunesNestedEmptyBuckets(t *testing.T) {
	s := NewEntityStore()
	require.NoError(t, s.Add("alice", "account", "acme"))
	require.NoError(t, s.Remove("alice", "account", "acme"))

	assert.Empty(t, s.Get("alice", "account"))
	assert.Empty(t, s.GetAll("alice"))
	_, kept := s.byKey["alice"]
	assert.False(t, kept, "emptied key must be pruned (I7)")
}

func TestEntityStoreRemoveEntityTypePurgesAllKeys(t *testing.T) {
	s := NewEntityStore()
	require.NoError(t, s.Add("alice", "account", "acme"))
	require.NoError(t, s.Add("bob", "account", "acme"))

	s.RemoveEntityType("account")

	assert.Empty(t, s.GetAll("alice"))
	assert.Empty(t, s.GetAll("bob"))
}

func TestCatalogAddEntityRequiresType(t *testing.T) {
	c := NewCatalog()
	err := c.AddEntity("account", "acme")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, c.AddType("account"))
	require.NoError(t, c.AddEntity("account", "acme"))
	assert.True(t, c.HasEntity("account", "acme"))
}
