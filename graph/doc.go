// Package graph implements the bipartite directed graph at the heart of the
// access-control engine: users are leaf vertices, groups are non-leaf
// vertices, and edges run leaf→non-leaf and non-leaf→non-leaf.
//
// The non-leaf subgraph is kept acyclic at all times: AddNonLeafEdge probes
// reachability from the candidate target back to the candidate source before
// committing, and rejects the edge without any partial mutation if doing so
// would close a cycle.
//
// Vertex and edge state is protected by four independent locks (muLeaf,
// muNonLeaf, muLeafEdge, muNonLeafEdge) following the split-mutex discipline
// used throughout this codebase: readers take shared locks, writers take
// exclusive locks, and no method holds more than the locks it needs for the
// shortest possible span.
package graph
