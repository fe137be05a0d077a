package access

import (
	"sort"

	"github.com/accessgraph/accessgraph/store"
)

func sortStrings(s []string) { sort.Strings(s) }

func sortGrants(g []store.Grant) {
	sort.Slice(g, func(i, j int) bool {
		if g[i].Component != g[j].Component {
			return g[i].Component < g[j].Component
		}

		return g[i].AccessLevel < g[j].AccessLevel
	})
}
