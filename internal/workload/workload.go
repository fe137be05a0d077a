// Package workload generates reproducible, seeded sequences of
// depfree.Manager mutations for round-trip property tests.
package workload

import (
	"fmt"
	"math/rand"

	"github.com/accessgraph/accessgraph/depfree"
	"github.com/accessgraph/accessgraph/store"
)

// Mutation is one step of a generated sequence: calling Apply against any
// depfree.Manager reproduces the same effect regardless of what else has
// already run against it.
type Mutation func(m *depfree.Manager) error

// Generate returns n mutations drawn from a fixed small universe of users,
// groups, and entities, driven by a seeded rand.Rand so the same seed
// always reproduces the same sequence.
func Generate(seed int64, n int) []Mutation {
	r := rand.New(rand.NewSource(seed))
	const (
		userCount      = 12
		groupCount     = 6
		entityType     = "document"
		entityCount    = 8
		componentCount = 4
	)

	steps := make([]Mutation, 0, n)
	for len(steps) < n {
		user := fmt.Sprintf("user-%d", r.Intn(userCount))
		group := fmt.Sprintf("group-%d", r.Intn(groupCount))
		otherGroup := fmt.Sprintf("group-%d", r.Intn(groupCount))
		entity := fmt.Sprintf("entity-%d", r.Intn(entityCount))
		component := store.Component(fmt.Sprintf("component-%d", r.Intn(componentCount)))
		level := store.AccessLevel(r.Intn(4) + 1)

		switch r.Intn(9) {
		case 0:
			steps = append(steps, func(m *depfree.Manager) error { return m.AddUser(user) })
		case 1:
			steps = append(steps, func(m *depfree.Manager) error { return m.RemoveUser(user) })
		case 2:
			steps = append(steps, func(m *depfree.Manager) error { return m.AddGroup(group) })
		case 3:
			steps = append(steps, func(m *depfree.Manager) error { return m.AddUserToGroupMapping(user, group) })
		case 4:
			if group == otherGroup {
				continue
			}
			steps = append(steps, func(m *depfree.Manager) error { return m.AddGroupToGroupMapping(group, otherGroup) })
		case 5:
			steps = append(steps, func(m *depfree.Manager) error {
				return m.AddUserToComponentMapping(user, component, level)
			})
		case 6:
			steps = append(steps, func(m *depfree.Manager) error {
				return m.AddGroupToComponentMapping(group, component, level)
			})
		case 7:
			steps = append(steps, func(m *depfree.Manager) error {
				return m.AddUserToEntityMapping(user, entityType, entity)
			})
		case 8:
			steps = append(steps, func(m *depfree.Manager) error {
				return m.AddGroupToEntityMapping(group, entityType, entity)
			})
		}
	}

	return steps
}

// Apply runs every mutation against m, ignoring hard failures that are an
// expected consequence of the randomized universe (self-mapping, cycles) --
// the generator does not try to avoid every rejected mutation, since the
// depfree layer's job is to keep applying cleanly around them.
func Apply(m *depfree.Manager, steps []Mutation) {
	for _, step := range steps {
		_ = step(m)
	}
}
