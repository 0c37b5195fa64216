// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Path(g, start, goal) returns a path with the minimum number of edges,
//     or nil when goal is in another connected component.
//   - BFS(g, start, opts...) returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Supports functional hooks at two stages:
//   - OnEnqueue (when a vertex is first discovered)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - Stops as soon as a goal vertex is visited via WithGoal.
//
// Visited policy
//
//	A vertex is marked visited when it is enqueued, not when it is dequeued.
//	Each vertex therefore enters the queue at most once and its recorded
//	parent is the first vertex that discovered it.
//
// Determinism
//
//	Neighbors are enqueued in core's natural order (edge insertion order),
//	so the visit sequence and the chosen path among equal-hop alternatives
//	are fully reproducible for a given dataset.
//
// Weights
//
//	Edge weights are ignored. For minimum total distance use package dijkstra.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex and edge seen at most once)
//   - Memory: O(V)       (for queue, Depth map, Parent map, visited set)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist (matches core.ErrUnknownNode).
//   - ErrGoalVertexNotFound   if Path's goal does not exist (matches core.ErrUnknownNode).
//   - ErrOptionViolation      if invalid Option (negative MaxDepth, empty goal).
//   - ErrNoPath               from BFSResult.PathTo for an unreached vertex.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
