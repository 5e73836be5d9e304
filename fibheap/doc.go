// Package fibheap provides a generic Fibonacci heap: a mergeable min-priority
// queue backed by a forest of heap-ordered multi-way trees whose roots (and
// each set of siblings) are linked in circular doubly-linked rings.
//
// Overview:
//
//   - Insert, Min and Merge run in O(1) worst-case time.
//   - DecreaseKey runs in O(1) amortized time via the cut / cascading-cut
//     mechanism bounded by node marks.
//   - ExtractMin and Delete run in O(log n) amortized time; ExtractMin pays
//     for the cheap operations by consolidating the root ring so that no two
//     roots share a degree.
//
// When to use:
//
//   - Graph algorithms that rely on decrease-key: Dijkstra in O(E + V log V),
//     Prim in O(E + V log V) — see the shortestpath and mst packages.
//   - Any workload that melds many queues: Merge splices two root rings in
//     O(1), where binary heaps must rebuild in O(n).
//   - Event simulation or schedulers whose priorities are revised downward
//     far more often than entries are popped.
//
// Key features:
//
//   - Generic over key and value: Heap[K, V] orders keys by a comparison
//     function supplied at construction (NewOrdered covers cmp.Ordered keys).
//   - Insert returns a *Node handle for later DecreaseKey / Delete calls.
//   - Handles are guarded: every node is tagged with its owning heap, so a
//     handle from another heap fails with ErrForeignHandle and a handle whose
//     node was already extracted fails with ErrStaleHandle, instead of
//     silently corrupting the forest.
//   - Merge consumes its argument; handles minted by the consumed heap keep
//     working and follow their nodes into the surviving heap.
//
// Amortized analysis (potential Φ = #roots + 2·#marked):
//
//   - Insert adds one root: ΔΦ = 1, actual cost O(1) → amortized O(1).
//   - ExtractMin consolidates at most D(n) + t roots down to D(n) trees,
//     where D(n) = O(log n) is the maximum degree → amortized O(log n).
//   - DecreaseKey performing c cascading cuts creates c new roots but
//     unmarks c−1 nodes, so the potential pays for the cascade → O(1).
//
// Error handling (sentinel errors):
//
//   - ErrEmptyHeap:     Min or ExtractMin called on an empty heap.
//   - ErrKeyIncrease:   DecreaseKey called with a key greater than the
//     current one; the heap is left completely untouched.
//   - ErrNilHandle:     a nil *Node was passed to DecreaseKey or Delete.
//   - ErrStaleHandle:   the handle's node was already removed by ExtractMin
//     or Delete.
//   - ErrForeignHandle: the handle belongs to a different heap.
//
// Thread safety:
//
//   - A Heap is not safe for concurrent use. Every operation is a pure
//     in-memory pointer manipulation that runs to completion synchronously;
//     callers in concurrent settings must serialize access externally
//     (mutex or single-owner goroutine).
//
// See also:
//
//   - shortestpath.Dijkstra: single-source shortest paths with true
//     decrease-key relaxation.
//   - mst.Prim: minimum spanning tree grown with decrease-key.
package fibheap
