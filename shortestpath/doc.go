// Package shortestpath implements Dijkstra's single-source shortest-path
// algorithm driven by the fibheap Fibonacci heap with true decrease-key.
//
// Overview:
//
//   - Dijkstra computes the minimum cost from a source vertex to every
//     reachable vertex of a non-negatively weighted graph.
//   - Each vertex occupies at most one heap node. When a relaxation finds a
//     shorter path, the vertex's existing heap entry is decreased in place
//     (O(1) amortized) instead of pushing a duplicate — the heap never
//     holds more than V entries, against O(E) for the lazy-duplicate
//     approach binary heaps force.
//
// Complexity:
//
//   - Time:  O(E + V log V)
//   - Each vertex is extracted once: V extractions at O(log V) amortized.
//   - Each arc relaxation is one DecreaseKey at O(1) amortized.
//   - Space: O(V) — distance map, predecessor map and heap handles.
//
// Options (functional):
//
//   - Source(id):             required, the starting vertex.
//   - WithReturnPath():       also return the predecessor map.
//   - WithMaxDistance(x):     vertices farther than x are not explored (x ≥ 0).
//   - WithInfArcThreshold(t): arcs with weight ≥ t are impassable (t > 0).
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource    if no source vertex was provided.
//   - ErrNilGraph       if the adjacency list is nil.
//   - ErrSourceNotFound if the source vertex is not in the graph.
//   - ErrNegativeWeight if any arc has negative weight (O(E) pre-scan,
//     fail fast before any work happens).
//   - ErrBadMaxDistance / ErrBadInfThreshold panic inside the option
//     constructor: an invalid threshold is a configuration bug.
//
// Thread safety:
//
//   - Dijkstra only reads the adjacency list, but the list is a bare map:
//     do not mutate it concurrently with a running query.
package shortestpath
