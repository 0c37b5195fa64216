// Package core provides the immutable, undirected, weighted Graph that every
// algorithm package in citygraph operates on.
//
// A Graph G = (V,E) is assembled once, either from static specs via Build or
// incrementally through a Builder, and is read-only afterwards:
//
//   - Vertices carry a unique string ID (a city name) and a 2D Position that
//     is consumed only by external renderers.
//   - Edges are unordered pairs of distinct vertices with a finite Weight.
//     (A,B) and (B,A) are the same edge and share one Edge.ID ("e1", "e2", …).
//   - No self-loops and no parallel edges. A second edge between the same
//     unordered pair is rejected with ErrDuplicateEdge, never merged.
//
// Ordering convention:
//
//	Vertices() returns IDs in insertion order. Neighbors(id) and NeighborIDs(id)
//	return neighbors in the order the incident edges were inserted. Traversal
//	packages (dfs, bfs, dijkstra) derive their visit order from this
//	convention only, so results are reproducible for a given insertion order.
//
// Concurrency:
//
//	Graph has no mutating methods once built, therefore it carries no locks
//	and may be shared freely between readers. A Builder is not safe for
//	concurrent use.
//
// Errors:
//
//	ErrEmptyVertexID   - vertex ID is the empty string.
//	ErrDuplicateVertex - vertex ID was added twice.
//	ErrUnknownNode     - a query referenced a vertex that is not in the graph.
//	ErrInvalidEdge     - an edge referenced a vertex that was never added.
//	ErrDuplicateEdge   - the same unordered pair was added twice.
//	ErrLoopNotAllowed  - an edge from a vertex to itself.
//	ErrBadWeight       - NaN or infinite edge weight.
//	ErrEdgeNotFound    - EdgeWeight on a non-adjacent pair.
//	ErrBuilderSealed   - Builder used after Graph() was called.
//
// Weights are not required to be positive at this layer; the dataset package
// enforces positive distances and dijkstra rejects negative weights with its
// own sentinel.
package core
