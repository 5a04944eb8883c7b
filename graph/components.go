// File: components.go
// Role: connected-components sweep over a materialized (V, E) pair.
//
// Grounded on gridgraph.ConnectedComponents' BFS-over-visited-set pattern
// (queue of unvisited starts, flood-fill each one into its own component),
// adapted from a 2D raster grid to an arbitrary adjacency map.
package graph

import "github.com/agravier/lwwgraph/core"

// connectedComponents partitions vertices into maximal connected
// subgraphs using edges, returning one Component per partition. A vertex
// with no live edges still gets its own singleton component. A self-loop
// {v,v} makes v its own neighbor (v present in Neighbors[v]).
func connectedComponents[T comparable](vertices map[T]struct{}, edges map[core.EdgeKey[T]]core.Edge[T]) []Component[T] {
	adjacency := make(map[T]map[T]struct{}, len(vertices))
	for v := range vertices {
		adjacency[v] = make(map[T]struct{})
	}
	for _, e := range edges {
		a, b := e.Vertices()
		adjacency[a][b] = struct{}{}
		adjacency[b][a] = struct{}{}
	}

	visited := make(map[T]struct{}, len(vertices))
	components := make([]Component[T], 0)

	for start := range vertices {
		if _, done := visited[start]; done {
			continue
		}

		neighbors := make(map[T]map[T]struct{})
		queue := []T{start}
		visited[start] = struct{}{}

		for qi := 0; qi < len(queue); qi++ {
			v := queue[qi]
			neighbors[v] = adjacency[v]

			for n := range adjacency[v] {
				if n == v {
					continue // self-loop: recorded in neighbors[v] already, not a new frontier vertex
				}
				if _, seen := visited[n]; seen {
					continue
				}
				visited[n] = struct{}{}
				queue = append(queue, n)
			}
		}

		components = append(components, Component[T]{Neighbors: neighbors})
	}

	return components
}
