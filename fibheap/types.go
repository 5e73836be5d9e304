// Package fibheap defines the core types and sentinel errors of the
// Fibonacci heap.
//
// The heap is generic over the key type K and the payload type V. Keys are
// ordered by a strict "less" comparison supplied at construction; the heap
// never compares keys any other way, so K needs no comparable constraint and
// duplicate keys are fully supported (ties are broken arbitrarily but
// consistently by ring position).
//
// Errors (sentinel):
//
//   - ErrEmptyHeap     if Min or ExtractMin is called on an empty heap.
//   - ErrKeyIncrease   if DecreaseKey is asked to move a key upward.
//   - ErrNilHandle     if a nil node handle is passed in.
//   - ErrStaleHandle   if the handle's node has already been removed.
//   - ErrForeignHandle if the handle belongs to a different heap.
package fibheap

import "errors"

// Sentinel errors returned by heap operations.
var (
	// ErrEmptyHeap indicates that Min or ExtractMin was called while the
	// heap contained no nodes. Recoverable: check Len/IsEmpty first, or
	// branch on the error.
	ErrEmptyHeap = errors.New("fibheap: heap is empty")

	// ErrKeyIncrease indicates that DecreaseKey was called with a new key
	// strictly greater than the node's current key. The operation only
	// supports decreasing; on this error the heap is left unchanged.
	ErrKeyIncrease = errors.New("fibheap: new key is greater than current key")

	// ErrNilHandle indicates that a nil *Node was passed to DecreaseKey or
	// Delete.
	ErrNilHandle = errors.New("fibheap: nil node handle")

	// ErrStaleHandle indicates that the node behind the handle was already
	// consumed by ExtractMin or Delete. Handles are single-use after their
	// node leaves the heap.
	ErrStaleHandle = errors.New("fibheap: node already removed from heap")

	// ErrForeignHandle indicates that the handle was minted by a different
	// heap. Operations never touch nodes they do not own, so misuse fails
	// fast instead of corrupting either structure.
	ErrForeignHandle = errors.New("fibheap: handle belongs to a different heap")

	// ErrNilLess reports construction with a nil comparison function.
	// New panics with this message: a heap without an ordering is a
	// configuration bug, not a runtime condition.
	ErrNilLess = errors.New("fibheap: comparison function must be non-nil")
)

// Node is an element of a Heap: one key/value pair placed into the forest.
//
// A *Node doubles as the handle returned by Insert and accepted by
// DecreaseKey and Delete. Callers must treat it as opaque: all structural
// fields are unexported and mutated only by the owning heap. After the node
// is consumed by ExtractMin or Delete the handle is stale and any further
// DecreaseKey/Delete through it returns ErrStaleHandle.
type Node[K, V any] struct {
	key   K // current priority; mutated only by DecreaseKey
	value V // opaque payload; never inspected by the heap

	degree int  // number of direct children in the child ring
	marked bool // lost a child since last becoming a child itself

	parent *Node[K, V] // non-owning back-reference, nil for roots
	child  *Node[K, V] // entry point into the child ring, nil if childless
	left   *Node[K, V] // previous sibling in the circular ring
	right  *Node[K, V] // next sibling in the circular ring

	owner *Heap[K, V] // minting heap; nil once removed, resolved through merges
}

// Key returns the node's current key. Valid even after the node has been
// removed from its heap (it reports the key at removal time).
func (n *Node[K, V]) Key() K { return n.key }

// Value returns the node's payload.
func (n *Node[K, V]) Value() V { return n.value }

// SetValue replaces the node's payload. The payload never participates in
// ordering, so this requires no structural work.
func (n *Node[K, V]) SetValue(v V) { n.value = v }
