// Package priorityforest is a mergeable priority queue toolkit built around
// a Fibonacci heap — insert, find-min, extract-min, decrease-key, delete and
// O(1) merge over a forest of heap-ordered multi-way trees.
//
// 🚀 What is priorityforest?
//
//	A small, pure-Go library that brings together:
//		• fibheap/      — the generic Fibonacci heap core (the "forest")
//		• adjacency/    — the compact weighted-graph input type
//		• shortestpath/ — Dijkstra with true decrease-key on top of fibheap
//		• mst/          — Prim's minimum spanning tree via decrease-key
//
// ✨ Why choose priorityforest?
//
//   - Real decrease-key – O(1) amortized, no lazy-duplicate workaround,
//     no O(E) heap blow-up inside graph algorithms
//   - O(1) merge – splice two forests without rebuilding either
//   - Pure Go – no cgo, no hidden deps
//   - Handle-safe – every node carries its owning heap; foreign or stale
//     handles fail fast instead of corrupting the structure
//
// Quick ASCII picture of a three-tree forest (min pointer at 1):
//
//	1        4     7
//	├─2      └─9
//	│  └─5
//	└─3
//
// The root ring links 1⇄4⇄7 circularly; each child set is its own ring.
//
// Start with fibheap for the raw structure, or shortestpath/mst to see it
// driving the classic graph algorithms it was invented for.
//
//	go get github.com/katalvlaran/priorityforest/fibheap
package priorityforest
