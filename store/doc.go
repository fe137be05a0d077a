// Package store implements the four mapping relations layered on top of
// graph.Graph (user->component/access, group->component/access,
// user->entity, group->entity) plus the entityType->entity catalog.
//
// Every relation follows the same nested-map idiom: a key maps to an inner
// set, and removing the last element of an inner set prunes the key itself
// (invariant I7 from the data model) so that iteration and membership checks
// never see stale empty buckets.
package store
