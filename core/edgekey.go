// File: edgekey.go
// Role: canonical, order-independent Go map key for Edge[T].
//
// Go's built-in comparable constraint gives us == on T, but not a total
// order — T may be a string, an int, or any comparable struct the embedder
// chooses. To place edges in ordinary Go maps (as the materialization
// algorithm in package graph requires for last_op[DelE], the live edge set,
// and so on) we need a canonical (lo, hi) pair that comes out the same
// whether the edge was built as {a,b} or {b,a}.
//
// We derive that order from a hash of each atom's formatted representation
// rather than from T itself, since T has no <. Ties (equal ranks for
// unequal atoms — a hash collision) fall back to comparing the formatted
// strings directly; both comparisons are symmetric in (a,b), so the result
// is the same regardless of argument order.
package core

import (
	"fmt"
	"hash/maphash"
)

// edgeKeySeed is process-global so that rank is consistent for the lifetime
// of the program — EdgeKey values are never persisted or compared across
// runs.
var edgeKeySeed = maphash.MakeSeed()

// rank computes a 64-bit digest of v's formatted representation. It is not
// required to be collision-free; canonicalPair falls back to a string
// comparison to break ties deterministically.
func rank[T comparable](v T) uint64 {
	var h maphash.Hash
	h.SetSeed(edgeKeySeed)
	_, _ = h.WriteString(fmt.Sprintf("%#v", v))
	return h.Sum64()
}

// canonicalPair orders a and b the same way regardless of which is passed
// first, so repeated calls with {a,b} and {b,a} agree.
func canonicalPair[T comparable](a, b T) (lo, hi T) {
	if a == b {
		return a, b
	}
	ra, rb := rank(a), rank(b)
	switch {
	case ra < rb:
		return a, b
	case ra > rb:
		return b, a
	default:
		if fmt.Sprintf("%#v", a) <= fmt.Sprintf("%#v", b) {
			return a, b
		}
		return b, a
	}
}

// EdgeKey is the canonical, Go-map-comparable form of an Edge[T]. Obtain one
// via Edge.Key. Two edges with the same (unordered) endpoints always produce
// equal EdgeKey values.
type EdgeKey[T comparable] struct {
	lo T
	hi T
}

// Edge rebuilds an Edge[T] from this key, in canonical (lo, hi) order.
func (k EdgeKey[T]) Edge() Edge[T] {
	return Edge[T]{A: k.lo, B: k.hi}
}
