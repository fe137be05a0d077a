// Package access implements the access manager (C3) and its concurrent
// wrapper (C4): the authorization vocabulary composed over graph.Graph and
// the four store relations, plus reachability queries.
//
// Manager itself assumes external synchronization -- it is the strict,
// single-threaded core. Concurrent wraps a *Manager with a set of
// per-resource locks enforcing the declared object-dependency DAG from the
// specification, and is what multi-goroutine callers should use.
package access

import (
	"unicode"

	"github.com/accessgraph/accessgraph/acerr"
	"github.com/accessgraph/accessgraph/graph"
	"github.com/accessgraph/accessgraph/store"
)

// Manager composes the bipartite graph and the five mapping stores under
// the authorization vocabulary (users, groups, components, entities).
type Manager struct {
	g *graph.Graph

	userComponents  *store.ComponentStore
	groupComponents *store.ComponentStore
	userEntities    *store.EntityStore
	groupEntities   *store.EntityStore
	catalog         *store.Catalog
}

// NewManager returns an empty access Manager.
func NewManager() *Manager {
	return &Manager{
		g:               graph.NewGraph(),
		userComponents:  store.NewComponentStore(),
		groupComponents: store.NewComponentStore(),
		userEntities:    store.NewEntityStore(),
		groupEntities:   store.NewEntityStore(),
		catalog:         store.NewCatalog(),
	}
}

func notFound(param, id string) error {
	return acerr.New(acerr.KindNotFound, param, map[string]string{param: id}, nil)
}

func alreadyExists(param, id string) error {
	return acerr.New(acerr.KindAlreadyExists, param, map[string]string{param: id}, nil)
}

func invalidArgument(param, value string) error {
	return acerr.New(acerr.KindInvalidArgument, param, map[string]string{param: value}, nil)
}

// nonBlank reports whether s is non-empty once surrounding whitespace is
// trimmed away, per the entityType/entity validity rule in the data model.
func nonBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return true
		}
	}

	return false
}
