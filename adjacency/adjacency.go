// Package adjacency provides the compact weighted-graph input type shared
// by the shortestpath and mst packages: a plain adjacency list keyed by
// vertex ID.
//
// Overview:
//
//   - List maps each vertex ID to its outgoing arcs. It is an ordinary Go
//     map underneath: cheap to build, range over, and hand to algorithms.
//   - AddArc inserts one directed arc; AddEdge inserts both directions and
//     is the natural builder for undirected inputs (Prim requires these).
//   - Both builders register the target vertex, so every vertex mentioned
//     anywhere appears as a key and algorithms can enumerate vertices by
//     ranging over the list.
//
// Thread safety:
//
//   - A List is a bare map: build it before handing it to an algorithm and
//     do not mutate it concurrently.
package adjacency

// Arc is one weighted connection leaving a vertex.
type Arc struct {
	To     string // target vertex ID
	Weight int64  // arc weight; algorithms reject negative weights
}

// List is a weighted adjacency list: vertex ID → outgoing arcs.
// Every vertex of the graph appears as a key, including sinks with no
// outgoing arcs.
type List map[string][]Arc

// New returns an empty adjacency list ready for AddArc / AddEdge.
func New() List { return make(List) }

// AddVertex registers v with no arcs. Idempotent: existing arcs are kept.
func (l List) AddVertex(v string) {
	if _, ok := l[v]; !ok {
		l[v] = nil
	}
}

// AddArc inserts the directed arc from→to with the given weight and
// registers both endpoints as vertices. Parallel arcs are permitted; the
// algorithms simply relax each one.
func (l List) AddArc(from, to string, weight int64) {
	l[from] = append(l[from], Arc{To: to, Weight: weight})
	l.AddVertex(to)
}

// AddEdge inserts the undirected edge u—v as one arc in each direction.
func (l List) AddEdge(u, v string, weight int64) {
	l.AddArc(u, v, weight)
	l.AddArc(v, u, weight)
}

// HasVertex reports whether v is registered in the list.
func (l List) HasVertex(v string) bool {
	_, ok := l[v]

	return ok
}

// Order returns the number of vertices in the list.
func (l List) Order() int { return len(l) }
