// Package mst implements Prim's algorithm: the spanning tree is grown by
// repeatedly extracting the cheapest frontier vertex and relaxing the
// connection keys of its neighbors via decrease-key.
package mst

import (
	"fmt"

	"github.com/katalvlaran/priorityforest/adjacency"
	"github.com/katalvlaran/priorityforest/fibheap"
)

// Prim computes a minimum spanning tree of the undirected graph g, grown
// from the given root vertex.
//
// Returns the tree edges in the order vertices joined the tree, the total
// weight, and an error for invalid input or a disconnected graph.
//
// Validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must have at least one vertex (ErrDisconnected).
//  3. root must be non-empty (ErrEmptyRoot) and present (ErrRootNotFound).
//  4. No arc may have negative weight (ErrNegativeWeight, pre-scanned).
//
// Steps:
//  1. Put root on the frontier with key 0.
//  2. Repeatedly extract the frontier vertex with the cheapest connection
//     key; its recorded cheapest edge joins the tree.
//  3. For each neighbor outside the tree: insert it keyed by the edge
//     weight, or decrease its key in place when this edge is cheaper than
//     the best connection seen so far.
//  4. If the frontier drains before every vertex joined → ErrDisconnected.
//
// Complexity: O(E + V log V) time, O(V) space.
func Prim(g adjacency.List, root string) ([]Edge, int64, error) {
	// 1. Validate inputs.
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	if g.Order() == 0 {
		return nil, 0, ErrDisconnected
	}
	if root == "" {
		return nil, 0, ErrEmptyRoot
	}
	if !g.HasVertex(root) {
		return nil, 0, ErrRootNotFound
	}
	for from, arcs := range g {
		for _, a := range arcs {
			if a.Weight < 0 {
				return nil, 0, fmt.Errorf("%w: arc %s→%s weight=%d", ErrNegativeWeight, from, a.To, a.Weight)
			}
		}
	}

	// 2. Trivial single-vertex tree.
	if g.Order() == 1 {
		return []Edge{}, 0, nil
	}

	// 3. Frontier state: one heap node per reachable out-of-tree vertex,
	//    keyed by its cheapest known connection to the tree.
	frontier := fibheap.NewOrdered[int64, string]()
	handle := make(map[string]*fibheap.Node[int64, string], g.Order())
	connKey := make(map[string]int64, g.Order())  // current cheapest connection weight
	connVia := make(map[string]string, g.Order()) // tree-side endpoint of that connection
	inTree := make(map[string]bool, g.Order())

	handle[root] = frontier.Insert(0, root)
	connKey[root] = 0

	tree := make([]Edge, 0, g.Order()-1)
	var total int64

	// 4. Main loop: settle the cheapest frontier vertex, relax neighbors.
	for !frontier.IsEmpty() {
		w, u, err := frontier.ExtractMin()
		if err != nil {
			return nil, 0, err
		}
		inTree[u] = true
		delete(handle, u)

		// The root starts the tree; every later vertex contributes the
		// edge it was connected through.
		if u != root {
			tree = append(tree, Edge{From: connVia[u], To: u, Weight: w})
			total += w
		}

		for _, a := range g[u] {
			v := a.To
			if inTree[v] {
				continue
			}
			if hn, ok := handle[v]; ok {
				// Already on the frontier: adopt this edge only if cheaper.
				if a.Weight < connKey[v] {
					if err = frontier.DecreaseKey(hn, a.Weight); err != nil {
						return nil, 0, fmt.Errorf("mst: decrease-key on %q: %w", v, err)
					}
					connKey[v] = a.Weight
					connVia[v] = u
				}
			} else {
				// First time v is reachable from the tree.
				handle[v] = frontier.Insert(a.Weight, v)
				connKey[v] = a.Weight
				connVia[v] = u
			}
		}
	}

	// 5. A spanning tree of n vertices has exactly n−1 edges.
	if len(tree) < g.Order()-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, total, nil
}
