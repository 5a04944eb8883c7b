// Package path computes shortest paths over a Graph's materialized
// components map.
//
// ShortestPath takes a components snapshot (as returned by
// graph.Graph.Components) rather than a live Graph, so a caller that needs
// several path queries against the same state takes one snapshot and
// reuses it, instead of paying materialization cost per query.
//
// Grounded on the teacher's (lvlath) bfs package: the same queue/visited/
// parent walk, trimmed to the single start-and-destination query this
// domain calls for and stripped of the teacher's hook/context/filter
// options, which have no use here since the walk is over an in-memory
// adjacency map rather than a live graph that might need cancellation.
package path
