// File: set.go
// Role: Set[T] — the append-only-log LWW-element-set.
package lwwset

import (
	"sync"

	"github.com/agravier/lwwgraph/clock"
)

// opKind distinguishes the two entries a Set's log may hold. It is private
// to this package; graph.Graph keeps its own, separate core.Operation log
// and does not use Set.
type opKind uint8

const (
	opAdd opKind = iota
	opDel
)

type logEntry[T comparable] struct {
	kind opKind
	arg  T
	ts   int64
}

// Set is a log-backed LWW-element-set over atoms of type T. The zero value
// is not usable; construct one with New.
//
// Complexity: Add/Remove are O(1) amortized (append only). Elements and
// Contains are O(n) in the log length, since they fold the whole log on
// every call (there is no incremental cache).
type Set[T comparable] struct {
	mu    sync.Mutex
	clock clock.Source
	log   []logEntry[T]
}

// New creates an empty Set stamped by clk when callers do not supply an
// explicit timestamp.
func New[T comparable](clk clock.Source) *Set[T] {
	return &Set[T]{clock: clk}
}

// Add appends an Add(item, ts) entry to the log and returns the timestamp
// used. If ts is nil, the set's clock supplies one.
func (s *Set[T]) Add(item T, ts *int64) int64 {
	return s.append(opAdd, item, ts)
}

// Remove appends a Del(item, ts) entry to the log and returns the timestamp
// used. If ts is nil, the set's clock supplies one.
func (s *Set[T]) Remove(item T, ts *int64) int64 {
	return s.append(opDel, item, ts)
}

func (s *Set[T]) append(kind opKind, item T, ts *int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	stamp := s.stamp(ts)
	s.log = append(s.log, logEntry[T]{kind: kind, arg: item, ts: stamp})
	return stamp
}

func (s *Set[T]) stamp(ts *int64) int64 {
	if ts != nil {
		return *ts
	}
	return s.clock.Nanoseconds()
}

// Elements returns every item currently present in the set: for each
// distinct item, the most recent Add timestamp must strictly exceed the
// most recent Del timestamp (remove-wins on a tie). Order is unspecified.
func (s *Set[T]) Elements() []T {
	s.mu.Lock()
	defer s.mu.Unlock()

	lastAdd := make(map[T]int64, len(s.log))
	lastDel := make(map[T]int64, len(s.log))
	for _, e := range s.log {
		switch e.kind {
		case opAdd:
			if prev, ok := lastAdd[e.arg]; !ok || e.ts > prev {
				lastAdd[e.arg] = e.ts
			}
		case opDel:
			if prev, ok := lastDel[e.arg]; !ok || e.ts > prev {
				lastDel[e.arg] = e.ts
			}
		}
	}

	out := make([]T, 0, len(lastAdd))
	for item, addTS := range lastAdd {
		delTS, everDeleted := lastDel[item]
		if !everDeleted || delTS < addTS {
			out = append(out, item)
		}
	}
	return out
}

// Contains reports whether item is currently present in the set.
func (s *Set[T]) Contains(item T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	var lastAdd, lastDel int64
	var addSeen, delSeen bool
	for _, e := range s.log {
		if e.arg != item {
			continue
		}
		switch e.kind {
		case opAdd:
			if !addSeen || e.ts > lastAdd {
				lastAdd, addSeen = e.ts, true
			}
		case opDel:
			if !delSeen || e.ts > lastDel {
				lastDel, delSeen = e.ts, true
			}
		}
	}
	return addSeen && (!delSeen || lastDel < lastAdd)
}

// Len returns the number of log entries recorded so far (not the number of
// live elements — use len(Elements()) for that).
func (s *Set[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.log)
}
