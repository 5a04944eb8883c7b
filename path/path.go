package path

import (
	"errors"

	"github.com/agravier/lwwgraph/core"
	"github.com/agravier/lwwgraph/graph"
)

// ErrMalformedComponentMap is returned when a components snapshot claims
// both endpoints are in the same component, yet a breadth-first search
// from one never reaches the other. A components map produced by
// graph.Graph.Components never triggers this; it exists to fail loudly if
// a caller hand-builds or mutates a components slice incorrectly.
var ErrMalformedComponentMap = errors.New("path: malformed component map")

// ErrNoPath is returned when a and b are not in the same component —
// either one is absent from every component, or they live in different
// ones.
var ErrNoPath = errors.New("path: no path between vertices")

// ShortestPath finds a component in components containing a, then
// searches it for b. It returns the edges of a shortest a-to-b path, in
// traversal order from a to b. If a equals b, it returns an empty,
// non-nil slice. If a and b are not in the same component, it returns
// ErrNoPath.
func ShortestPath[T comparable](components []graph.Component[T], a, b T) ([]core.Edge[T], error) {
	comp, ok := findComponent(components, a)
	if !ok {
		return nil, ErrNoPath
	}
	if _, ok := comp.Neighbors[b]; !ok {
		return nil, ErrNoPath
	}
	if a == b {
		return []core.Edge[T]{}, nil
	}

	return bfsWithin(comp, a, b)
}

func findComponent[T comparable](components []graph.Component[T], v T) (graph.Component[T], bool) {
	for _, c := range components {
		if _, ok := c.Neighbors[v]; ok {
			return c, true
		}
	}
	return graph.Component[T]{}, false
}

func bfsWithin[T comparable](comp graph.Component[T], a, b T) ([]core.Edge[T], error) {
	visited := map[T]struct{}{a: {}}
	parent := make(map[T]T)
	queue := []T{a}

	for qi := 0; qi < len(queue); qi++ {
		v := queue[qi]
		if v == b {
			return reconstruct(parent, a, b), nil
		}
		for n := range comp.Neighbors[v] {
			if n == v {
				continue // self-loop, never a step toward another vertex
			}
			if _, seen := visited[n]; seen {
				continue
			}
			visited[n] = struct{}{}
			parent[n] = v
			queue = append(queue, n)
		}
	}

	// comp.Neighbors[b] exists (checked by the caller) yet the BFS above
	// exhausted the whole component without ever dequeuing b: the
	// component's adjacency is inconsistent with its own membership.
	return nil, ErrMalformedComponentMap
}

func reconstruct[T comparable](parent map[T]T, a, b T) []core.Edge[T] {
	vertices := []T{b}
	for cur := b; cur != a; {
		prev := parent[cur]
		vertices = append(vertices, prev)
		cur = prev
	}
	for i, j := 0, len(vertices)-1; i < j; i, j = i+1, j-1 {
		vertices[i], vertices[j] = vertices[j], vertices[i]
	}

	edges := make([]core.Edge[T], 0, len(vertices)-1)
	for i := 0; i+1 < len(vertices); i++ {
		edges = append(edges, core.NewEdge(vertices[i], vertices[i+1]))
	}
	return edges
}
