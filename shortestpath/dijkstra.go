// Package shortestpath implements Dijkstra's algorithm with a Fibonacci
// heap: one heap node per vertex, relaxations applied via DecreaseKey.
package shortestpath

import (
	"fmt"

	"github.com/katalvlaran/priorityforest/adjacency"
	"github.com/katalvlaran/priorityforest/fibheap"
)

// Dijkstra computes shortest distances from Options.Source to every vertex
// of g, using functional options to customize behavior.
//
// Returns:
//
//   - dist: vertex ID → minimum distance (Unreachable if no path, or if the
//     vertex lies beyond MaxDistance / behind impassable arcs).
//   - prev: predecessor map when WithReturnPath() is set, nil otherwise.
//     prev[v] == u means the shortest path to v arrives from u; the source
//     and unreachable vertices map to "".
//   - err:  a sentinel error if the inputs are invalid.
//
// Preconditions and validation (in order):
//  1. Source must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrSourceNotFound).
//  4. No arc may have negative weight (ErrNegativeWeight, pre-scanned).
//
// Complexity: O(E + V log V) time, O(V) space.
func Dijkstra(g adjacency.List, opts ...Option) (map[string]int64, map[string]string, error) {
	// 1. Build and validate options.
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, ErrSourceNotFound
	}

	// 2. Pre-scan every arc for negative weights and fail fast, before any
	//    state is allocated.
	for from, arcs := range g {
		for _, a := range arcs {
			if a.Weight < 0 {
				return nil, nil, fmt.Errorf("%w: arc %s→%s weight=%d", ErrNegativeWeight, from, a.To, a.Weight)
			}
		}
	}

	// 3. Initialize per-vertex state: all distances unknown, no
	//    predecessors, nothing settled.
	dist := make(map[string]int64, g.Order())
	var prev map[string]string
	if cfg.ReturnPath {
		prev = make(map[string]string, g.Order())
	}
	for v := range g {
		dist[v] = Unreachable
		if prev != nil {
			prev[v] = ""
		}
	}
	dist[cfg.Source] = 0

	// 4. The frontier: a Fibonacci heap keyed by tentative distance, one
	//    node per discovered-but-unsettled vertex. handle[v] tracks v's
	//    heap node so relaxations can decrease it in place.
	frontier := fibheap.NewOrdered[int64, string]()
	handle := make(map[string]*fibheap.Node[int64, string], g.Order())
	settled := make(map[string]bool, g.Order())
	handle[cfg.Source] = frontier.Insert(0, cfg.Source)

	// 5. Main loop: settle the closest frontier vertex, relax its arcs.
	for !frontier.IsEmpty() {
		d, u, err := frontier.ExtractMin()
		if err != nil {
			// Unreachable: IsEmpty was checked on the same goroutine.
			return nil, nil, err
		}
		// Beyond the exploration cap: every remaining frontier entry is at
		// least this far, so stop without settling u.
		if d > cfg.MaxDistance {
			break
		}
		settled[u] = true
		delete(handle, u)

		// 5a. Relax every arc leaving u.
		for _, a := range g[u] {
			// Impassable wall.
			if a.Weight >= cfg.InfArcThreshold {
				continue
			}
			v := a.To
			if settled[v] {
				continue
			}
			nd := d + a.Weight
			// Overflow (astronomic weights) or past the cap: skip.
			if nd < d || nd > cfg.MaxDistance {
				continue
			}
			if nd >= dist[v] {
				continue
			}

			// 5b. Strictly shorter path found: record it, then either
			//     decrease v's existing heap entry or put v on the frontier.
			dist[v] = nd
			if prev != nil {
				prev[v] = u
			}
			if hn, ok := handle[v]; ok {
				if err = frontier.DecreaseKey(hn, nd); err != nil {
					return nil, nil, fmt.Errorf("shortestpath: decrease-key on %q: %w", v, err)
				}
			} else {
				handle[v] = frontier.Insert(nd, v)
			}
		}
	}

	return dist, prev, nil
}
