package graph

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddLeafIdempotencyIsStrict(t *testing.T) {
	g := NewGraph()
	require.NoError(t, g.AddLeaf("alice"))
	err := g.AddLeaf("alice")
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestAddNonLeafEdgeRejectsCycle(t *testing.T) {
	g := NewGraph()
	for _, v := range []string{"a", "b", "c"} {
		require.NoError(t, g.AddNonLeaf(v))
	}
	require.NoError(t, g.AddNonLeafEdge("a", "b"))
	require.NoError(t, g.AddNonLeafEdge("b", "c"))

	err := g.AddNonLeafEdge("c", "a")
	require.ErrorIs(t, err, ErrCircularReference)

	// The rejected edge must not be present afterward.
	assert.False(t, g.HasNonLeafEdge("c", "a"))
	assert.Equal(t, []string{"b"}, g.GetNonLeafEdges("a"))
}

func TestAddEdgeMissingEndpoint(t *testing.T) {
	g := NewGraph()
	require.NoError(t, g.AddLeaf("u"))
	err := g.AddLeafEdge("u", "missing-group")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemoveNonLeafCascadesEdges(t *testing.T) {
	g := NewGraph()
	require.NoError(t, g.AddLeaf("u"))
	require.NoError(t, g.AddNonLeaf("g1"))
	require.NoError(t, g.AddNonLeaf("g2"))
	require.NoError(t, g.AddLeafEdge("u", "g1"))
	require.NoError(t, g.AddNonLeafEdge("g1", "g2"))

	require.NoError(t, g.RemoveNonLeaf("g2"))

	assert.False(t, g.ContainsNonLeaf("g2"))
	assert.Empty(t, g.GetNonLeafEdges("g1"))
	// u->g1 leaf edge is untouched by removing g2.
	assert.Equal(t, []string{"g1"}, g.GetLeafEdges("u"))
}

func TestRemoveLeafCascadesEdges(t *testing.T) {
	g := NewGraph()
	require.NoError(t, g.AddLeaf("u"))
	require.NoError(t, g.AddNonLeaf("g"))
	require.NoError(t, g.AddLeafEdge("u", "g"))

	require.NoError(t, g.RemoveLeaf("u"))
	assert.False(t, g.ContainsLeaf("u"))

	err := g.RemoveLeaf("u")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestTraverseFromLeafExcludesSeedAndDedupes(t *testing.T) {
	g := NewGraph()
	require.NoError(t, g.AddLeaf("u"))
	for _, v := range []string{"g1", "g2", "g3"} {
		require.NoError(t, g.AddNonLeaf(v))
	}
	require.NoError(t, g.AddLeafEdge("u", "g1"))
	require.NoError(t, g.AddNonLeafEdge("g1", "g2"))
	require.NoError(t, g.AddNonLeafEdge("g1", "g3"))
	require.NoError(t, g.AddNonLeafEdge("g2", "g3"))

	var visited []string
	err := g.TraverseFromLeaf("u", func(id string) bool {
		visited = append(visited, id)
		return true
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"g1", "g2", "g3"}, visited)
	assert.Len(t, visited, 3, "each reachable vertex visited exactly once")
}

func TestTraverseFromNonLeafSkipsStartVertex(t *testing.T) {
	g := NewGraph()
	for _, v := range []string{"g1", "g2"} {
		require.NoError(t, g.AddNonLeaf(v))
	}
	require.NoError(t, g.AddNonLeafEdge("g1", "g2"))

	var visited []string
	err := g.TraverseFromNonLeaf("g1", func(id string) bool {
		visited = append(visited, id)
		return true
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"g2"}, visited)
}

func TestTraverseStopsOnFalse(t *testing.T) {
	g := NewGraph()
	for _, v := range []string{"g1", "g2", "g3"} {
		require.NoError(t, g.AddNonLeaf(v))
	}
	require.NoError(t, g.AddNonLeafEdge("g1", "g2"))
	require.NoError(t, g.AddNonLeafEdge("g1", "g3"))

	count := 0
	err := g.TraverseFromNonLeaf("g1", func(id string) bool {
		count++
		return false
	})
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
