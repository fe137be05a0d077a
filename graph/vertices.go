// File: vertices.go
// Role: leaf/non-leaf vertex lifecycle (Add/Remove/Contains/enumerate).
//
// Determinism: enumeration methods return IDs in lexicographic order,
// following the same convention the mapping and access layers rely on for
// reproducible query results.
package graph

import "sort"

// AddLeaf inserts a leaf (user) vertex. Fails with ErrAlreadyExists if the
// vertex is already present. The strict access layer reports that as
// acerr.AlreadyExists; only the dependency-free layer (depfree) checks for
// presence first and auto-creates missing prerequisites.
func (g *Graph) AddLeaf(id string) error {
	if id == "" {
		return ErrEmptyID
	}

	g.muLeaf.Lock()
	defer g.muLeaf.Unlock()

	if _, ok := g.leaves[id]; ok {
		return ErrAlreadyExists
	}
	g.leaves[id] = struct{}{}

	return nil
}

// AddNonLeaf inserts a non-leaf (group) vertex. Fails with ErrAlreadyExists
// if the vertex is already present.
func (g *Graph) AddNonLeaf(id string) error {
	if id == "" {
		return ErrEmptyID
	}

	g.muNonLeaf.Lock()
	defer g.muNonLeaf.Unlock()

	if _, ok := g.nonLeaves[id]; ok {
		return ErrAlreadyExists
	}
	g.nonLeaves[id] = struct{}{}

	return nil
}

// ContainsLeaf reports whether id is a known leaf vertex.
func (g *Graph) ContainsLeaf(id string) bool {
	if id == "" {
		return false
	}
	g.muLeaf.RLock()
	defer g.muLeaf.RUnlock()
	_, ok := g.leaves[id]

	return ok
}

// ContainsNonLeaf reports whether id is a known non-leaf vertex.
func (g *Graph) ContainsNonLeaf(id string) bool {
	if id == "" {
		return false
	}
	g.muNonLeaf.RLock()
	defer g.muNonLeaf.RUnlock()
	_, ok := g.nonLeaves[id]

	return ok
}

// RemoveLeaf deletes a leaf vertex and every edge incident to it (its
// leaf→non-leaf edges). Fails with ErrNotFound if the vertex is absent.
func (g *Graph) RemoveLeaf(id string) error {
	if id == "" {
		return ErrEmptyID
	}

	g.muLeaf.Lock()
	defer g.muLeaf.Unlock()

	if _, ok := g.leaves[id]; !ok {
		return ErrNotFound
	}

	g.muLeafEdge.Lock()
	for to := range g.leafEdges[id] {
		delete(g.leafEdgesRev[to], id)
		if len(g.leafEdgesRev[to]) == 0 {
			delete(g.leafEdgesRev, to)
		}
	}
	delete(g.leafEdges, id)
	g.muLeafEdge.Unlock()

	delete(g.leaves, id)

	return nil
}

// RemoveNonLeaf deletes a non-leaf vertex and every edge touching it: its
// leaf→non-leaf incoming edges and its non-leaf→non-leaf edges in both
// directions. Fails with ErrNotFound if the vertex is absent.
func (g *Graph) RemoveNonLeaf(id string) error {
	if id == "" {
		return ErrEmptyID
	}

	g.muNonLeaf.Lock()
	defer g.muNonLeaf.Unlock()

	if _, ok := g.nonLeaves[id]; !ok {
		return ErrNotFound
	}

	// Leaf -> id edges.
	g.muLeafEdge.Lock()
	for leaf := range g.leafEdgesRev[id] {
		delete(g.leafEdges[leaf], id)
		if len(g.leafEdges[leaf]) == 0 {
			delete(g.leafEdges, leaf)
		}
	}
	delete(g.leafEdgesRev, id)
	g.muLeafEdge.Unlock()

	// Non-leaf <-> id edges (both directions).
	g.muNonLeafEdge.Lock()
	for to := range g.nonLeafEdges[id] {
		delete(g.nonLeafEdgesRev[to], id)
		if len(g.nonLeafEdgesRev[to]) == 0 {
			delete(g.nonLeafEdgesRev, to)
		}
	}
	delete(g.nonLeafEdges, id)

	for from := range g.nonLeafEdgesRev[id] {
		delete(g.nonLeafEdges[from], id)
		if len(g.nonLeafEdges[from]) == 0 {
			delete(g.nonLeafEdges, from)
		}
	}
	delete(g.nonLeafEdgesRev, id)
	g.muNonLeafEdge.Unlock()

	delete(g.nonLeaves, id)

	return nil
}

// Leaves returns all leaf vertex IDs in lexicographic order.
func (g *Graph) Leaves() []string {
	g.muLeaf.RLock()
	defer g.muLeaf.RUnlock()

	return sortedKeys(g.leaves)
}

// NonLeaves returns all non-leaf vertex IDs in lexicographic order.
func (g *Graph) NonLeaves() []string {
	g.muNonLeaf.RLock()
	defer g.muNonLeaf.RUnlock()

	return sortedKeys(g.nonLeaves)
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
