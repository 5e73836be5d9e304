// Package fibheap implements the Fibonacci heap operations: Insert, Min,
// ExtractMin, DecreaseKey, Delete and Merge over circular doubly-linked
// sibling rings.
package fibheap

import "cmp"

// Heap is a Fibonacci heap: a forest of heap-ordered multi-way trees whose
// roots form a circular doubly-linked ring. The zero value is not usable;
// construct with New or NewOrdered.
//
// Invariants maintained across every operation:
//
//   - min points at the root with the globally smallest key (nil iff empty).
//   - Every sibling set (the root ring and each child ring) is a valid
//     circular doubly-linked list.
//   - Each node's key is ≥ its parent's key (min-heap order).
//   - A node's degree equals the length of its child ring.
//   - Roots are never marked.
type Heap[K, V any] struct {
	less func(a, b K) bool // strict ordering over keys
	min  *Node[K, V]       // root holding the smallest key; nil when empty
	size int               // number of nodes currently in the forest

	// into is set when this heap is consumed by Merge: it points at the
	// heap the contents moved to. Operations follow the chain (with path
	// compression) so handles minted before the merge keep working.
	into *Heap[K, V]
}

// New returns an empty heap ordered by the given comparison function:
// less(a, b) must report whether key a sorts strictly before key b.
// Panics with ErrNilLess if less is nil — an ordering is not optional.
func New[K, V any](less func(a, b K) bool) *Heap[K, V] {
	if less == nil {
		panic(ErrNilLess.Error())
	}

	return &Heap[K, V]{less: less}
}

// NewOrdered returns an empty heap over a naturally ordered key type,
// using cmp.Less as the comparison.
func NewOrdered[K cmp.Ordered, V any]() *Heap[K, V] {
	return New[K, V](cmp.Less[K])
}

// Len returns the number of nodes currently in the heap. O(1).
func (h *Heap[K, V]) Len() int { return h.resolve().size }

// IsEmpty reports whether the heap contains no nodes. O(1).
func (h *Heap[K, V]) IsEmpty() bool { return h.resolve().size == 0 }

// Insert adds a key/value pair as a new singleton root and returns a handle
// to it. The handle is needed later for DecreaseKey or Delete; callers that
// never revise priorities may discard it.
//
// No consolidation happens on insert. Complexity: O(1) worst-case.
func (h *Heap[K, V]) Insert(key K, value V) *Node[K, V] {
	h = h.resolve()

	// 1. Create a singleton node: its own ring of one, no parent, no
	//    children, degree 0, unmarked.
	n := &Node[K, V]{key: key, value: value, owner: h}
	n.left = n
	n.right = n

	// 2. Splice it into the root ring and take over min if it is smaller
	//    (or if the forest was empty).
	h.addRoot(n)
	if h.min == nil || h.less(n.key, h.min.key) {
		h.min = n
	}

	// 3. Account for the new node.
	h.size++

	return n
}

// Min returns the smallest key and its value without mutating the heap.
// Returns ErrEmptyHeap when the heap is empty. O(1).
func (h *Heap[K, V]) Min() (K, V, error) {
	h = h.resolve()
	if h.size == 0 {
		var zeroK K
		var zeroV V

		return zeroK, zeroV, ErrEmptyHeap
	}

	return h.min.key, h.min.value, nil
}

// ExtractMin removes the node holding the smallest key and returns its
// key and value. Returns ErrEmptyHeap when the heap is empty.
//
// Complexity: O(log n) amortized — this is where the root ring is
// consolidated so that no two roots share a degree.
func (h *Heap[K, V]) ExtractMin() (K, V, error) {
	h = h.resolve()
	if h.size == 0 {
		var zeroK K
		var zeroV V

		return zeroK, zeroV, ErrEmptyHeap
	}

	z := h.min
	h.extract(z)

	return z.key, z.value, nil
}

// DecreaseKey lowers the key of the node behind the given handle to newKey.
//
// Validation (in order, check-then-act — the heap is untouched on failure):
//  1. n must be non-nil (ErrNilHandle).
//  2. n must still be in a heap (ErrStaleHandle).
//  3. n must belong to this heap (ErrForeignHandle).
//  4. newKey must not be greater than the current key (ErrKeyIncrease).
//
// If the new key undercuts the parent's key, the node is cut to the root
// ring and a cascading cut walks the ancestor chain: each marked ancestor is
// cut as well, the first unmarked non-root ancestor is marked instead.
//
// Complexity: O(1) amortized (a single call may cascade, but the potential
// released by unmarking pays for it).
func (h *Heap[K, V]) DecreaseKey(n *Node[K, V], newKey K) error {
	h = h.resolve()
	if err := h.checkHandle(n); err != nil {
		return err
	}
	if h.less(n.key, newKey) {
		return ErrKeyIncrease
	}

	// 1. Commit the new key. Only now is mutation allowed.
	n.key = newKey

	// 2. If heap order against the parent broke, cut n out and cascade.
	//    Equal keys do not violate min-heap order, so the cut triggers only
	//    on a strict undercut.
	if p := n.parent; p != nil && h.less(n.key, p.key) {
		h.cut(n, p)
		h.cascadingCut(p)
	}

	// 3. n is now a root (or already was); claim min if it got smaller.
	if h.less(n.key, h.min.key) {
		h.min = n
	}

	return nil
}

// Delete removes the node behind the given handle regardless of its key.
//
// Rather than decreasing the key to a sentinel "minus infinity" (which a
// generic K cannot express), Delete forces the node onto the root ring with
// the same cut / cascading-cut path DecreaseKey uses — bypassing the key
// comparison — and then extracts it directly.
//
// Handle validation matches DecreaseKey: ErrNilHandle, ErrStaleHandle or
// ErrForeignHandle, with the heap untouched on failure.
//
// Complexity: O(log n) amortized (inherits the ExtractMin bound).
func (h *Heap[K, V]) Delete(n *Node[K, V]) error {
	h = h.resolve()
	if err := h.checkHandle(n); err != nil {
		return err
	}

	// 1. Force n to the root ring, ignoring key order entirely.
	if p := n.parent; p != nil {
		h.cut(n, p)
		h.cascadingCut(p)
	}

	// 2. Extract n as if it were the minimum. extract never compares the
	//    victim's key; consolidation recomputes the true min afterwards.
	h.extract(n)

	return nil
}

// Merge moves every node of other into h, leaving other empty. Both heaps
// must use the same key ordering; this is a documented precondition, not a
// runtime check (comparison functions cannot be compared).
//
// The two root rings are spliced into one and the smaller of the two minima
// wins — no consolidation, no per-node work. Handles minted by other remain
// valid: subsequent DecreaseKey/Delete calls through either heap value reach
// the merged structure. Merging a heap with itself or with nil is a no-op.
//
// Complexity: O(1).
func (h *Heap[K, V]) Merge(other *Heap[K, V]) {
	h = h.resolve()
	if other == nil {
		return
	}
	other = other.resolve()
	if other == h {
		return
	}

	// 1. Redirect other onto h so pre-merge handles (and stray uses of the
	//    consumed heap value) land on the surviving structure.
	other.into = h

	// 2. Nothing to move if other was empty.
	if other.size == 0 {
		return
	}

	// 3. If h was empty, adopt other's forest wholesale.
	if h.size == 0 {
		h.min, h.size = other.min, other.size
		other.min, other.size = nil, 0

		return
	}

	// 4. Splice the two root rings:
	//    ... a ⇄ h.min ⇄ b ...   +   ... c ⇄ other.min ⇄ d ...
	//    becomes h.min ⇄ d ... c ⇄ b ... a ⇄ h.min.
	a, d := h.min.right, other.min.right
	h.min.right = d
	d.left = h.min
	other.min.right = a
	a.left = other.min

	// 5. The smaller of the two minima leads the merged ring.
	if h.less(other.min.key, h.min.key) {
		h.min = other.min
	}
	h.size += other.size

	// 6. Empty the consumed heap.
	other.min = nil
	other.size = 0
}

// resolve follows the merge-forwarding chain to the heap that currently
// owns the contents, compressing the path on the way.
func (h *Heap[K, V]) resolve() *Heap[K, V] {
	if h.into == nil {
		return h
	}
	root := h.into.resolve()
	h.into = root

	return root
}

// checkHandle validates a node handle against this heap:
// nil → ErrNilHandle, removed → ErrStaleHandle, minted by another heap
// → ErrForeignHandle.
func (h *Heap[K, V]) checkHandle(n *Node[K, V]) error {
	if n == nil {
		return ErrNilHandle
	}
	if n.owner == nil {
		return ErrStaleHandle
	}
	if n.owner.resolve() != h {
		return ErrForeignHandle
	}

	return nil
}

// addRoot splices n (a detached singleton or freshly cut node) into the
// root ring next to min. Does not update min or size — callers decide.
func (h *Heap[K, V]) addRoot(n *Node[K, V]) {
	if h.min == nil {
		// Empty forest: n is its own ring.
		n.left = n
		n.right = n

		return
	}
	n.left = h.min
	n.right = h.min.right
	h.min.right.left = n
	h.min.right = n
}

// removeFromRing unlinks n from its sibling ring and closes the ring back
// into itself, leaving n as a detached singleton ring.
func removeFromRing[K, V any](n *Node[K, V]) {
	n.left.right = n.right
	n.right.left = n.left
	n.left = n
	n.right = n
}

// extract removes root z from the forest: promotes its children to roots,
// unlinks it from the root ring, consolidates the remainder and severs z
// from the structure so its handle turns stale.
func (h *Heap[K, V]) extract(z *Node[K, V]) {
	// 1. Promote z's children. Snapshot the child ring first: splicing
	//    re-links the very pointers the walk follows.
	if z.child != nil {
		children := ringMembers(z.child)
		for _, c := range children {
			c.parent = nil
			c.marked = false
			removeFromRing(c)
			h.addRoot(c)
		}
		z.child = nil
	}

	// 2. Unlink z from the root ring.
	if z.right == z {
		// z was the only root (and, after step 1, childless): empty forest.
		h.min = nil
	} else {
		h.min = z.right // arbitrary surviving root; consolidate fixes it
		removeFromRing(z)
		h.consolidate()
	}

	// 3. Sever z: its handle is now stale, its ring is just itself.
	z.owner = nil
	z.parent = nil
	z.left = z
	z.right = z
	z.degree = 0
	z.marked = false

	h.size--
}

// consolidate restores the invariant that no two roots share a degree,
// and repoints min at the smallest surviving root.
//
// It walks a snapshot of the root ring, repeatedly linking same-degree
// roots (the larger key becomes a child of the smaller) through a
// degree-indexed table that grows on demand. Root-ring length after the
// pass is bounded by the maximum degree D(n) = O(log n).
func (h *Heap[K, V]) consolidate() {
	// 1. Snapshot the roots: link mutates the ring mid-walk.
	roots := ringMembers(h.min)

	// 2. degrees[d] holds the unique root of degree d seen so far.
	degrees := make([]*Node[K, V], 0, 8)
	for _, x := range roots {
		for {
			for x.degree >= len(degrees) {
				degrees = append(degrees, nil)
			}
			y := degrees[x.degree]
			if y == nil {
				degrees[x.degree] = x

				break
			}
			// Two roots of equal degree: the smaller key absorbs the
			// larger, then re-enters the loop one degree higher.
			degrees[x.degree] = nil
			if h.less(y.key, x.key) {
				x, y = y, x
			}
			h.link(y, x)
		}
	}

	// 3. The table now holds exactly the surviving roots; pick the min.
	h.min = nil
	for _, r := range degrees {
		if r == nil {
			continue
		}
		if h.min == nil || h.less(r.key, h.min.key) {
			h.min = r
		}
	}
}

// link makes root y a child of root x (requires x.key ≤ y.key): y leaves
// the root ring, joins x's child ring, and loses its mark.
func (h *Heap[K, V]) link(y, x *Node[K, V]) {
	removeFromRing(y)
	y.parent = x
	y.marked = false
	if x.child == nil {
		x.child = y
	} else {
		y.left = x.child
		y.right = x.child.right
		x.child.right.left = y
		x.child.right = y
	}
	x.degree++
}

// cut detaches n from its parent p's child ring and splices it into the
// root ring. Roots are never marked, so n's mark is cleared.
func (h *Heap[K, V]) cut(n, p *Node[K, V]) {
	// 1. Repoint p's child entry if it was n; drop it if n was the last.
	if p.child == n {
		if n.right == n {
			p.child = nil
		} else {
			p.child = n.right
		}
	}

	// 2. Unlink n from the sibling ring and book the lost child.
	removeFromRing(n)
	p.degree--

	// 3. n becomes an unmarked root.
	n.parent = nil
	n.marked = false
	h.addRoot(n)
}

// cascadingCut walks the ancestor chain upward from p after p lost a child:
// a marked ancestor has now lost a second child and is cut too; the first
// unmarked non-root ancestor is marked instead, stopping the cascade.
// Roots absorb child loss without marking.
func (h *Heap[K, V]) cascadingCut(p *Node[K, V]) {
	for {
		gp := p.parent
		if gp == nil {
			return
		}
		if !p.marked {
			p.marked = true

			return
		}
		h.cut(p, gp)
		p = gp
	}
}

// ringMembers returns every node of the circular ring containing start,
// in ring order starting at start. Used to snapshot rings before walks
// that mutate them.
func ringMembers[K, V any](start *Node[K, V]) []*Node[K, V] {
	members := []*Node[K, V]{start}
	for n := start.right; n != start; n = n.right {
		members = append(members, n)
	}

	return members
}
