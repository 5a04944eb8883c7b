// File: operation.go
// Role: Operation[T] — the tagged log record the whole CRDT is built from,
// plus its wire (de)serialization.
package core

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidOperation is returned when an Operation's argument kind does not
// match its op kind: AddVertex/RemoveVertex must carry an atom T, and
// AddEdge/RemoveEdge must carry an Edge[T].
var ErrInvalidOperation = errors.New("core: invalid operation")

// OpKind identifies one of the four mutations a replica can append to its
// log. The literal wire strings match the specification's "add_v" | "del_v"
// | "add_e" | "del_e" exactly.
type OpKind string

const (
	AddVertex    OpKind = "add_v"
	RemoveVertex OpKind = "del_v"
	AddEdge      OpKind = "add_e"
	RemoveEdge   OpKind = "del_e"
)

// isEdgeOp reports whether this kind's argument must be an Edge[T] (true)
// or an atom T (false).
func (k OpKind) isEdgeOp() bool {
	return k == AddEdge || k == RemoveEdge
}

// kindPriority orders operations sharing a timestamp during materialization:
// edge deletions first, then vertex deletions, then vertex additions, then
// edge additions last. See graph.Materialize for how this is used.
func (k OpKind) kindPriority() int {
	switch k {
	case RemoveEdge:
		return 1
	case RemoveVertex:
		return 2
	case AddVertex:
		return 3
	case AddEdge:
		return 4
	default:
		return 0
	}
}

// Priority exposes kindPriority to other packages in this module (graph's
// materializer sorts on it); it is not meaningful outside that context.
func (k OpKind) Priority() int {
	return k.kindPriority()
}

// Operation is one entry in a replica's append-only log: a kind, its typed
// argument, and the logical timestamp it was stamped with.
//
// Arg holds either a T (for AddVertex/RemoveVertex) or an Edge[T] (for
// AddEdge/RemoveEdge); NewOperation enforces the pairing so a constructed
// Operation's Arg type always matches its Kind.
type Operation[T comparable] struct {
	Kind OpKind
	Arg  any
	TS   int64
}

// NewVertexOp constructs a vertex-kind operation (AddVertex or
// RemoveVertex). It fails with ErrInvalidOperation if kind is an edge kind.
func NewVertexOp[T comparable](kind OpKind, v T, ts int64) (Operation[T], error) {
	if kind.isEdgeOp() {
		return Operation[T]{}, fmt.Errorf("%w: %s requires an Edge argument, got a vertex", ErrInvalidOperation, kind)
	}
	return Operation[T]{Kind: kind, Arg: v, TS: ts}, nil
}

// NewEdgeOp constructs an edge-kind operation (AddEdge or RemoveEdge). It
// fails with ErrInvalidOperation if kind is a vertex kind.
func NewEdgeOp[T comparable](kind OpKind, e Edge[T], ts int64) (Operation[T], error) {
	if !kind.isEdgeOp() {
		return Operation[T]{}, fmt.Errorf("%w: %s requires a vertex argument, got an Edge", ErrInvalidOperation, kind)
	}
	return Operation[T]{Kind: kind, Arg: e, TS: ts}, nil
}

// Vertex returns Op's argument as a T, and ok=true if this operation is
// vertex-kind. Edge-kind operations return the zero value and false.
func (op Operation[T]) Vertex() (v T, ok bool) {
	if op.Kind.isEdgeOp() {
		return v, false
	}
	v, ok = op.Arg.(T)
	return v, ok
}

// EdgeArg returns Op's argument as an Edge[T], and ok=true if this operation
// is edge-kind. Vertex-kind operations return the zero value and false.
func (op Operation[T]) EdgeArg() (e Edge[T], ok bool) {
	if !op.Kind.isEdgeOp() {
		return e, false
	}
	e, ok = op.Arg.(Edge[T])
	return e, ok
}

// Equal reports whether op and other carry the same (kind, arg, ts) triple.
// Materializing a log twice with a duplicated equal operation is harmless —
// this is what gives the CRDT its idempotence property.
func (op Operation[T]) Equal(other Operation[T]) bool {
	if op.Kind != other.Kind || op.TS != other.TS {
		return false
	}
	if op.Kind.isEdgeOp() {
		a, aok := op.EdgeArg()
		b, bok := other.EdgeArg()
		return aok && bok && a.Equal(b)
	}
	a, aok := op.Vertex()
	b, bok := other.Vertex()
	return aok && bok && a == b
}

// wireOperation is the three-field JSON shape described by the
// specification's wire form: {"op": ..., "arg": ..., "ts": ...}.
type wireOperation[T comparable] struct {
	Op  OpKind          `json:"op"`
	Arg json.RawMessage `json:"arg"`
	TS  int64           `json:"ts"`
}

type wireEdge[T comparable] struct {
	A T `json:"a"`
	B T `json:"b"`
}

// MarshalJSON renders this operation as the wire form: arg is a bare T for
// vertex ops, or {"a":...,"b":...} for edge ops.
func (op Operation[T]) MarshalJSON() ([]byte, error) {
	var argBytes []byte
	var err error
	if op.Kind.isEdgeOp() {
		e, ok := op.EdgeArg()
		if !ok {
			return nil, fmt.Errorf("%w: %s op carries non-Edge argument", ErrInvalidOperation, op.Kind)
		}
		argBytes, err = json.Marshal(wireEdge[T]{A: e.A, B: e.B})
	} else {
		v, ok := op.Vertex()
		if !ok {
			return nil, fmt.Errorf("%w: %s op carries non-vertex argument", ErrInvalidOperation, op.Kind)
		}
		argBytes, err = json.Marshal(v)
	}
	if err != nil {
		return nil, err
	}
	return json.Marshal(wireOperation[T]{Op: op.Kind, Arg: argBytes, TS: op.TS})
}

// UnmarshalJSON parses the wire form produced by MarshalJSON, rejecting a
// kind/arg mismatch with ErrInvalidOperation just as NewVertexOp/NewEdgeOp
// do for in-process construction.
func (op *Operation[T]) UnmarshalJSON(data []byte) error {
	var w wireOperation[T]
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if w.Op.isEdgeOp() {
		var we wireEdge[T]
		dec := json.NewDecoder(bytes.NewReader(w.Arg))
		if err := dec.Decode(&we); err != nil {
			return fmt.Errorf("%w: %s arg is not an edge pair: %v", ErrInvalidOperation, w.Op, err)
		}
		built, err := NewEdgeOp[T](w.Op, NewEdge(we.A, we.B), w.TS)
		if err != nil {
			return err
		}
		*op = built
		return nil
	}
	var v T
	if err := json.Unmarshal(w.Arg, &v); err != nil {
		return fmt.Errorf("%w: %s arg is not a vertex: %v", ErrInvalidOperation, w.Op, err)
	}
	built, err := NewVertexOp[T](w.Op, v, w.TS)
	if err != nil {
		return err
	}
	*op = built
	return nil
}
