// File: types.go
// Role: Graph[T] — public contract, construction, and the append-only log.
package graph

import (
	"sync"

	"github.com/agravier/lwwgraph/clock"
	"github.com/agravier/lwwgraph/core"
)

// Graph is a single replica of the LWW-Element-Graph CRDT over atoms of
// type T. Its only mutable state is an append-only operation log; every
// query recomputes (Vertices, Edges, Components) from that log.
//
// Graph is safe for concurrent use: every method takes a single mutex
// while it touches the log (mutators for the append, queries only while
// copying the log; the sort and fold then run on that private copy without
// the lock), matching the "single-threaded per replica; caller serializes
// access" contract described in the design notes. There is no
// finer-grained locking because there is only one piece of shared state —
// the log — unlike the teacher's split vertex/edge locks, which existed to
// protect a richer mutable adjacency structure this CRDT does not keep
// between queries.
type Graph[T comparable] struct {
	mu    sync.Mutex
	clock clock.Source
	log   []core.Operation[T]
}

// New creates an empty Graph whose mutators stamp operations using clk when
// the caller does not supply an explicit timestamp.
func New[T comparable](clk clock.Source) *Graph[T] {
	return &Graph[T]{clock: clk}
}

// AddVertex appends an AddVertex(v) operation, stamped by ts if given or by
// the replica's clock otherwise, and returns the recorded operation.
func (g *Graph[T]) AddVertex(v T, ts *int64) core.Operation[T] {
	return g.appendVertexOp(core.AddVertex, v, ts)
}

// RemoveVertex appends a RemoveVertex(v) operation. Cascaded edge removal
// happens at materialization time (see Materialize), not here: the log only
// ever grows.
func (g *Graph[T]) RemoveVertex(v T, ts *int64) core.Operation[T] {
	return g.appendVertexOp(core.RemoveVertex, v, ts)
}

// AddEdge appends an AddEdge(e) operation.
func (g *Graph[T]) AddEdge(e core.Edge[T], ts *int64) core.Operation[T] {
	return g.appendEdgeOp(core.AddEdge, e, ts)
}

// RemoveEdge appends a RemoveEdge(e) operation.
func (g *Graph[T]) RemoveEdge(e core.Edge[T], ts *int64) core.Operation[T] {
	return g.appendEdgeOp(core.RemoveEdge, e, ts)
}

func (g *Graph[T]) appendVertexOp(kind core.OpKind, v T, ts *int64) core.Operation[T] {
	g.mu.Lock()
	defer g.mu.Unlock()

	stamp := g.stampLocked(ts)
	op, _ := core.NewVertexOp(kind, v, stamp) // kind is always vertex-kind here
	g.log = append(g.log, op)
	return op
}

func (g *Graph[T]) appendEdgeOp(kind core.OpKind, e core.Edge[T], ts *int64) core.Operation[T] {
	g.mu.Lock()
	defer g.mu.Unlock()

	stamp := g.stampLocked(ts)
	op, _ := core.NewEdgeOp(kind, e, stamp) // kind is always edge-kind here
	g.log = append(g.log, op)
	return op
}

func (g *Graph[T]) stampLocked(ts *int64) int64 {
	if ts != nil {
		return *ts
	}
	return g.clock.Nanoseconds()
}

// Apply appends an already-constructed Operation to the log as-is, without
// consulting the clock. This is how operations received from a peer (see
// package peer) are merged in: materialization is oblivious to an
// operation's origin, which is what gives the structure its CRDT property.
// Duplicate delivery of an equal operation is harmless (see
// core.Operation.Equal and the idempotence property in the package tests).
func (g *Graph[T]) Apply(op core.Operation[T]) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.log = append(g.log, op)
}

// Log returns a copy of every operation recorded so far, in append order.
// Intended for replication: ship this to a peer and have it Apply each one.
func (g *Graph[T]) Log() []core.Operation[T] {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]core.Operation[T], len(g.log))
	copy(out, g.log)
	return out
}

// State is the materialized snapshot of a Graph: its live vertices, live
// edges, and connected-components map. See Materialize.
type State[T comparable] struct {
	Vertices   []T
	Edges      []core.Edge[T]
	Components []Component[T]
}

// Component is one adjacency map within a Graph's components list: for
// every live vertex v in the component, Neighbors[v] holds v's live
// neighbors (including v itself, if {v,v} is a live self-loop).
type Component[T comparable] struct {
	Neighbors map[T]map[T]struct{}
}

// Vertices returns every vertex currently live in the graph. Order is
// unspecified.
func (g *Graph[T]) Vertices() []T {
	return g.Materialize().Vertices
}

// Edges returns every edge currently live in the graph. Order is
// unspecified.
func (g *Graph[T]) Edges() []core.Edge[T] {
	return g.Materialize().Edges
}

// Components returns the graph's connected components, one adjacency map
// per component. The list partitions Vertices(); order of components, and
// of map iteration within each, is unspecified — compare components as
// multisets of adjacency maps, not as an ordered list.
func (g *Graph[T]) Components() []Component[T] {
	return g.Materialize().Components
}

// Contains reports whether v is a currently-live vertex.
func (g *Graph[T]) Contains(v T) bool {
	for _, live := range g.Vertices() {
		if live == v {
			return true
		}
	}
	return false
}

// ContainsEdge reports whether e is a currently-live edge.
func (g *Graph[T]) ContainsEdge(e core.Edge[T]) bool {
	key := e.Key()
	for _, live := range g.Edges() {
		if live.Key() == key {
			return true
		}
	}
	return false
}
