// Package dijkstra computes minimum-weight paths on a core.Graph with
// non-negative edge weights.
//
// Overview:
//
//   - Dijkstra(g, Source(id), opts...) returns distance and predecessor maps
//     covering every vertex of g in O((V + E) log V) time.
//   - ReconstructPath(prev, start, goal) rebuilds one shortest path.
//   - ShortestPath(g, start, goal) combines both for a single query.
//   - AllPairs(g) runs one Dijkstra per vertex and returns a Route table.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - WithMaxDistance: vertices farther than the cap are reported as unreachable.
//   - WithInfEdgeThreshold: edges with weight ≥ threshold are treated as closed.
//   - Lazy deletion: improved distances push duplicate heap entries; an entry
//     whose distance exceeds the best known one is discarded when popped.
//
// Conventions:
//
//   - Unreachable vertices have distance math.Inf(1) and predecessor "".
//   - The source has distance 0 and predecessor "".
//   - Ties between equal-cost paths resolve to the first one discovered,
//     which makes results deterministic for a given dataset.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V) per source, O(V (V + E) log V) for AllPairs.
//   - Space: O(V + E), heap entries included.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource:      Source was not given or is empty.
//   - ErrNilGraph:         the graph pointer is nil.
//   - ErrVertexNotFound:   source or goal is absent (matches core.ErrUnknownNode).
//   - ErrNegativeWeight:   an edge weight is below zero (detected by an O(E) pre-scan).
//   - ErrBadMaxDistance:   WithMaxDistance got a negative or NaN value.
//   - ErrBadInfThreshold:  WithInfEdgeThreshold got a non-positive or NaN value.
//   - ErrPredecessorCycle: ReconstructPath was given a malformed predecessor map.
//
// Thread safety:
//
//	core.Graph is immutable, so concurrent queries on the same graph are safe.
//	Each call allocates its own heap and maps.
package dijkstra
