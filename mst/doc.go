// Package mst implements Prim's minimum spanning tree algorithm in its
// decrease-key formulation, driven by the fibheap Fibonacci heap.
//
// Overview:
//
//   - Prim grows the tree outward from a root vertex. Every vertex outside
//     the tree carries a key: the weight of the cheapest edge connecting it
//     to the tree so far. Each scanned edge either ignores the vertex,
//     inserts it into the frontier, or decreases its key in place.
//   - With true decrease-key the frontier holds at most one entry per
//     vertex — the textbook O(E + V log V) formulation, instead of the
//     O(E log V) lazy variant that floods a binary heap with edges.
//
// Input contract:
//
//   - The adjacency list must be symmetric (undirected): build it with
//     adjacency.AddEdge. Asymmetric inputs are not detected; they produce
//     a tree of whatever the arcs allow, or ErrDisconnected.
//   - All weights must be non-negative (pre-scanned, fail fast).
//
// Complexity:
//
//   - Time:  O(E + V log V) — V extractions, at most E decrease-keys.
//   - Space: O(V) for keys, handles and the frontier.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph       if the adjacency list is nil.
//   - ErrEmptyRoot      if the root vertex ID is empty.
//   - ErrRootNotFound   if the root is not a vertex of the graph.
//   - ErrNegativeWeight if any arc has negative weight.
//   - ErrDisconnected   if the graph has no vertices or no spanning tree
//     reaches every vertex.
//
// Thread safety:
//
//   - Prim only reads the adjacency list; do not mutate it concurrently.
package mst
