// File: lockset.go
// Role: the C4 lock-dependency DAG. Declares the object dependency graph from
// §4.4 (users/groups/entities and the six mapping relations), validates it is
// acyclic by dogfooding graph.Graph's own reachability-probe cycle check, and
// derives the single global topological lock order from it.
package access

import "github.com/accessgraph/accessgraph/graph"

// resource names one of the lockable objects in the C4 dependency DAG.
type resource int

const (
	resUsers resource = iota
	resGroups
	resEntities
	resUserGroupMap
	resGroupGroupMap
	resUserComponentMap
	resGroupComponentMap
	resUserEntityMap
	resGroupEntityMap
	resourceCount
)

func (r resource) String() string {
	switch r {
	case resUsers:
		return "users"
	case resGroups:
		return "groups"
	case resEntities:
		return "entities"
	case resUserGroupMap:
		return "userToGroupMap"
	case resGroupGroupMap:
		return "groupToGroupMap"
	case resUserComponentMap:
		return "userToComponentMap"
	case resGroupComponentMap:
		return "groupToComponentMap"
	case resUserEntityMap:
		return "userToEntityMap"
	case resGroupEntityMap:
		return "groupToEntityMap"
	default:
		return "unknown"
	}
}

// dependsOn lists, for each resource, the resources it depends on --
// prerequisites that must be locked first when adding (down-to-up).
var dependsOn = map[resource][]resource{
	resUserGroupMap:      {resUsers, resGroups},
	resGroupGroupMap:     {resGroups, resUserGroupMap},
	resUserComponentMap:  {resUsers},
	resGroupComponentMap: {resGroups},
	resUserEntityMap:     {resUsers, resEntities},
	resGroupEntityMap:    {resGroups, resEntities},
}

// validateAcyclic rebuilds dependsOn as a graph.Graph (one non-leaf vertex per
// resource, one non-leaf edge per dependency) and relies on AddNonLeafEdge's
// own reachability probe to reject a cycle, instead of writing a second
// cycle-detection routine here.
func validateAcyclic() {
	g := graph.NewGraph()
	for r := resource(0); r < resourceCount; r++ {
		_ = g.AddNonLeaf(r.String())
	}
	for r, deps := range dependsOn {
		for _, dep := range deps {
			if err := g.AddNonLeafEdge(dep.String(), r.String()); err != nil {
				panic("access: lock-dependency DAG is cyclic: " + dep.String() + " -> " + r.String())
			}
		}
	}
}

// lockOrder is the single global topological order (prerequisites first,
// i.e. down-to-up) that every multi-resource acquisition must follow,
// computed via Kahn's algorithm over dependsOn with deterministic
// tie-breaking by resource value.
var lockOrder = computeLockOrder()

func computeLockOrder() []resource {
	indegree := make(map[resource]int, resourceCount)
	dependents := make(map[resource][]resource, resourceCount)
	for r := resource(0); r < resourceCount; r++ {
		indegree[r] = 0
	}
	for r, deps := range dependsOn {
		indegree[r] = len(deps)
		for _, dep := range deps {
			dependents[dep] = append(dependents[dep], r)
		}
	}

	var ready []resource
	for r := resource(0); r < resourceCount; r++ {
		if indegree[r] == 0 {
			ready = append(ready, r)
		}
	}

	order := make([]resource, 0, resourceCount)
	for len(ready) > 0 {
		next := ready[0]
		ready = ready[1:]
		order = append(order, next)
		for _, d := range dependents[next] {
			indegree[d]--
			if indegree[d] == 0 {
				ready = insertSorted(ready, d)
			}
		}
	}

	if len(order) != int(resourceCount) {
		panic("access: lock-dependency DAG has an unreachable resource")
	}

	return order
}

func insertSorted(ready []resource, r resource) []resource {
	i := 0
	for i < len(ready) && ready[i] < r {
		i++
	}
	ready = append(ready, 0)
	copy(ready[i+1:], ready[i:])
	ready[i] = r

	return ready
}

// indexOf returns r's position in the global lock order.
func indexOf(order []resource, r resource) int {
	for i, o := range order {
		if o == r {
			return i
		}
	}

	return -1
}

// orderedSubset returns the elements of resources that appear in lockOrder,
// deduplicated and sorted by their position in lockOrder. reverse returns
// the subset up-to-down instead; Concurrent always passes false, so every
// acquisition, add or remove, follows lockOrder.
func orderedSubset(resources []resource, reverse bool) []resource {
	seen := make(map[resource]bool, len(resources))
	var subset []resource
	for _, r := range resources {
		if !seen[r] {
			seen[r] = true
			subset = append(subset, r)
		}
	}

	idx := func(r resource) int { return indexOf(lockOrder, r) }
	for i := 0; i < len(subset); i++ {
		for j := i + 1; j < len(subset); j++ {
			if idx(subset[j]) < idx(subset[i]) {
				subset[i], subset[j] = subset[j], subset[i]
			}
		}
	}
	if reverse {
		for i, j := 0, len(subset)-1; i < j; i, j = i+1, j-1 {
			subset[i], subset[j] = subset[j], subset[i]
		}
	}

	return subset
}
