// Package mst defines the result type and sentinel errors for Prim's
// minimum spanning tree.
package mst

import "errors"

// Sentinel errors returned by Prim.
var (
	// ErrNilGraph indicates that a nil adjacency list was passed in.
	ErrNilGraph = errors.New("mst: graph is nil")

	// ErrEmptyRoot indicates that the provided root vertex ID is empty.
	ErrEmptyRoot = errors.New("mst: root vertex ID is empty")

	// ErrRootNotFound indicates that the root vertex does not exist in the
	// given graph.
	ErrRootNotFound = errors.New("mst: root vertex not found in graph")

	// ErrNegativeWeight indicates that an arc with negative weight was
	// detected during the pre-scan.
	ErrNegativeWeight = errors.New("mst: negative arc weight encountered")

	// ErrDisconnected indicates that no spanning tree reaches every vertex:
	// the graph is empty or falls into multiple components.
	ErrDisconnected = errors.New("mst: graph is not connected")
)

// Edge is one edge of the resulting spanning tree. From is the tree-side
// endpoint (the vertex that was already in the tree when To joined).
type Edge struct {
	From   string // tree-side endpoint
	To     string // vertex this edge brought into the tree
	Weight int64  // edge weight
}
