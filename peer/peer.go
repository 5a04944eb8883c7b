package peer

import (
	"errors"
	"sync"

	"github.com/agravier/lwwgraph/core"
)

// ErrAlreadyRegistered is returned by Server.Register when the same
// Client value is registered twice.
var ErrAlreadyRegistered = errors.New("peer: client already registered")

// ErrUnknownClient is returned by Server.Unregister and Server.Broadcast
// when called with a client that is not currently registered.
var ErrUnknownClient = errors.New("peer: client not registered")

// Client receives operation batches forwarded by a Server. A *graph.Graph
// does not implement Client directly (Apply takes one operation at a
// time); callers typically wrap one in a small adapter that loops over
// the batch and calls Apply for each operation.
type Client[T comparable] interface {
	Update(ops []core.Operation[T]) error
}

// Server is a single broadcast point for a set of replicas. Register a
// Client, then call Broadcast with operations produced locally; every
// other registered client receives them via Update. Server itself holds
// no graph state.
type Server[T comparable] struct {
	mu      sync.Mutex
	clients map[Client[T]]struct{}
}

// NewServer returns an empty Server.
func NewServer[T comparable]() *Server[T] {
	return &Server[T]{clients: make(map[Client[T]]struct{})}
}

// Register adds c to the set of clients that future Broadcast calls fan
// out to.
func (s *Server[T]) Register(c Client[T]) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.clients[c]; ok {
		return ErrAlreadyRegistered
	}
	s.clients[c] = struct{}{}
	return nil
}

// Unregister removes c; it no longer receives future broadcasts.
func (s *Server[T]) Unregister(c Client[T]) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.clients[c]; !ok {
		return ErrUnknownClient
	}
	delete(s.clients, c)
	return nil
}

// Broadcast forwards ops to every registered client except sender, via
// each client's Update method. It returns the first error encountered
// (by iteration order, which is unspecified), after attempting delivery
// to every other client.
func (s *Server[T]) Broadcast(sender Client[T], ops []core.Operation[T]) error {
	s.mu.Lock()
	if _, ok := s.clients[sender]; !ok {
		s.mu.Unlock()
		return ErrUnknownClient
	}
	targets := make([]Client[T], 0, len(s.clients)-1)
	for c := range s.clients {
		if c == sender {
			continue
		}
		targets = append(targets, c)
	}
	s.mu.Unlock()

	var firstErr error
	for _, c := range targets {
		if err := c.Update(ops); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Len reports the number of currently registered clients.
func (s *Server[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}
