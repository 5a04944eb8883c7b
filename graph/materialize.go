// File: materialize.go
// Role: the canonical sort-then-fold reconstruction of (V, E, K) from the
// operation log, per the specification's §4.4.2–§4.4.4.
package graph

import (
	"sort"

	"github.com/agravier/lwwgraph/core"
)

// Materialize recomputes this Graph's current state from its log. It costs
// O(N log N) in the log length (dominated by the sort) — the "simplistic"
// strategy the specification allows; there is no cache, so every query
// (Vertices, Edges, Components, Contains, ContainsEdge) re-derives state
// from scratch. A caller that needs a consistent view across several
// queries should call Materialize once and read the returned State, rather
// than calling Vertices/Edges/Components separately — each of those takes
// its own independent snapshot.
func (g *Graph[T]) Materialize() State[T] {
	g.mu.Lock()
	entries := make([]core.Operation[T], len(g.log))
	copy(entries, g.log)
	g.mu.Unlock()

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].TS != entries[j].TS {
			return entries[i].TS < entries[j].TS
		}
		return entries[i].Kind.Priority() < entries[j].Kind.Priority()
	})

	f := newFold[T]()
	for _, op := range entries {
		f.apply(op)
	}
	return f.state()
}

// fold carries the working state of one materialization pass: the live
// vertex and edge sets, the incidence index used to cascade vertex removal,
// and the four last-op timestamp maps the algorithm's remove-wins and
// non-restoration rules are built on.
type fold[T comparable] struct {
	vertices map[T]struct{}
	edges    map[core.EdgeKey[T]]core.Edge[T]
	incident map[T]map[core.EdgeKey[T]]struct{}

	lastAddV map[T]int64
	lastDelV map[T]int64
	lastAddE map[core.EdgeKey[T]]int64
	lastDelE map[core.EdgeKey[T]]int64
}

func newFold[T comparable]() *fold[T] {
	return &fold[T]{
		vertices: make(map[T]struct{}),
		edges:    make(map[core.EdgeKey[T]]core.Edge[T]),
		incident: make(map[T]map[core.EdgeKey[T]]struct{}),
		lastAddV: make(map[T]int64),
		lastDelV: make(map[T]int64),
		lastAddE: make(map[core.EdgeKey[T]]int64),
		lastDelE: make(map[core.EdgeKey[T]]int64),
	}
}

func (f *fold[T]) apply(op core.Operation[T]) {
	switch op.Kind {
	case core.AddVertex:
		v, _ := op.Vertex()
		f.lastAddV[v] = op.TS
		f.applyAddVertex(v, op.TS)
	case core.RemoveVertex:
		v, _ := op.Vertex()
		f.lastDelV[v] = op.TS
		f.applyRemoveVertex(v, op.TS)
	case core.AddEdge:
		e, _ := op.EdgeArg()
		f.lastAddE[e.Key()] = op.TS
		f.applyAddEdge(e, op.TS)
	case core.RemoveEdge:
		e, _ := op.EdgeArg()
		f.lastDelE[e.Key()] = op.TS
		f.applyRemoveEdge(e.Key())
	}
}

// applyAddVertex inserts v iff there is no delete of v at an equal or later
// time already recorded. Because same-timestamp deletes are folded first
// (lower kind priority), this is exactly remove-wins.
func (f *fold[T]) applyAddVertex(v T, ts int64) {
	delAt, everDeleted := f.lastDelV[v]
	if everDeleted && delAt >= ts {
		return
	}
	f.vertices[v] = struct{}{}
}

// applyRemoveVertex removes v (if live) and cascades: every edge currently
// incident on v is dropped from the live set, and its lastDelE is stamped
// to ts so a later AddEdge must dominate that timestamp to bring it back —
// the "non-restoration" rule. A subsequent AddVertex for v starts v with a
// clean incident set; reviving a cascaded edge requires an explicit,
// later AddEdge.
func (f *fold[T]) applyRemoveVertex(v T, ts int64) {
	if _, live := f.vertices[v]; !live {
		return
	}
	delete(f.vertices, v)

	incident := f.incident[v]
	keys := make([]core.EdgeKey[T], 0, len(incident))
	for k := range incident {
		keys = append(keys, k)
	}
	for _, k := range keys {
		f.lastDelE[k] = ts
		f.applyRemoveEdge(k)
	}
}

// applyAddEdge accepts e iff both endpoints are currently live and e itself
// has no dominating delete.
func (f *fold[T]) applyAddEdge(e core.Edge[T], ts int64) {
	a, b := e.Vertices()
	if _, ok := f.vertices[a]; !ok {
		return
	}
	if _, ok := f.vertices[b]; !ok {
		return
	}
	if delAt, everDeleted := f.lastDelE[e.Key()]; everDeleted && delAt >= ts {
		return
	}

	key := e.Key()
	f.edges[key] = e
	f.linkIncident(a, key)
	if b != a {
		f.linkIncident(b, key)
	}
}

func (f *fold[T]) applyRemoveEdge(key core.EdgeKey[T]) {
	e, live := f.edges[key]
	if !live {
		return
	}
	delete(f.edges, key)

	a, b := e.Vertices()
	f.unlinkIncident(a, key)
	if b != a {
		f.unlinkIncident(b, key)
	}
}

func (f *fold[T]) linkIncident(v T, key core.EdgeKey[T]) {
	set, ok := f.incident[v]
	if !ok {
		set = make(map[core.EdgeKey[T]]struct{})
		f.incident[v] = set
	}
	set[key] = struct{}{}
}

func (f *fold[T]) unlinkIncident(v T, key core.EdgeKey[T]) {
	set, ok := f.incident[v]
	if !ok {
		return
	}
	delete(set, key)
	if len(set) == 0 {
		delete(f.incident, v)
	}
}

// state derives the final (Vertices, Edges, Components) triple. Components
// are computed by a fresh connectivity sweep over the final live
// vertex/edge sets rather than by replaying the incremental merge/split
// bookkeeping of spec §4.4.4 step by step: both strategies must agree,
// since the component partition is a pure function of the final (V, E), and
// a direct sweep is far simpler to get right. See connectedComponents.
func (f *fold[T]) state() State[T] {
	vertices := make([]T, 0, len(f.vertices))
	for v := range f.vertices {
		vertices = append(vertices, v)
	}

	edges := make([]core.Edge[T], 0, len(f.edges))
	for _, e := range f.edges {
		edges = append(edges, e)
	}

	return State[T]{
		Vertices:   vertices,
		Edges:      edges,
		Components: connectedComponents(f.vertices, f.edges),
	}
}
