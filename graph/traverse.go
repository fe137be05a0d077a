// File: traverse.go
// Role: BFS reachability traversal over the non-leaf subgraph, seeded from
// either a leaf or a non-leaf vertex.
//
// Contract: the starting vertex is never passed to visit -- only non-leaf
// vertices reachable from it are. This is the codified resolution of the
// "does the start vertex get visited" Open Question (see SPEC_FULL.md §9):
// the source project's call sites disagreed; this implementation always
// excludes the seed.
package graph

// TraverseFromLeaf walks the non-leaf vertices reachable from leaf (via its
// leaf->non-leaf edges, then non-leaf->non-leaf edges) in BFS order, calling
// visit on each exactly once. The groups leaf is directly mapped to are
// themselves reachable and are visited first, before any non-leaf edges are
// expanded. If visit returns false, traversal stops early. Returns
// ErrNotFound if leaf is absent.
func (g *Graph) TraverseFromLeaf(leaf string, visit func(nonLeaf string) bool) error {
	if leaf == "" {
		return ErrEmptyID
	}
	if !g.ContainsLeaf(leaf) {
		return ErrNotFound
	}

	seeds := g.GetLeafEdges(leaf)
	g.bfsNonLeaf(seeds, true, visit)

	return nil
}

// TraverseFromNonLeaf walks the non-leaf vertices reachable from nonLeaf via
// non-leaf->non-leaf edges, in BFS order. The seed itself is never visited.
// Returns ErrNotFound if nonLeaf is absent.
func (g *Graph) TraverseFromNonLeaf(nonLeaf string, visit func(nonLeaf string) bool) error {
	if nonLeaf == "" {
		return ErrEmptyID
	}
	if !g.ContainsNonLeaf(nonLeaf) {
		return ErrNotFound
	}

	g.bfsNonLeaf([]string{nonLeaf}, false, visit)

	return nil
}

// bfsNonLeaf performs the shared BFS walk given one or more seed vertices.
// visitSeeds distinguishes the two callers' contracts: TraverseFromLeaf's
// seeds are themselves reachable groups and must be visited;
// TraverseFromNonLeaf's single seed is the start vertex and must not be.
// Either way, seeds are only enqueued for expansion once.
func (g *Graph) bfsNonLeaf(seeds []string, visitSeeds bool, visit func(nonLeaf string) bool) {
	visited := make(map[string]struct{}, len(seeds))
	queue := make([]string, 0, len(seeds))
	for _, s := range seeds {
		if _, ok := visited[s]; ok {
			continue
		}
		visited[s] = struct{}{}
		queue = append(queue, s)
		if visitSeeds {
			if !visit(s) {
				return
			}
		}
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, nbr := range g.GetNonLeafEdges(cur) {
			if _, ok := visited[nbr]; ok {
				continue
			}
			visited[nbr] = struct{}{}
			if !visit(nbr) {
				return
			}
			queue = append(queue, nbr)
		}
	}
}
