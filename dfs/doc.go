// Package dfs provides iterative depth-first search over a core.Graph.
//
// What:
//
//   - DFS(g, startID, opts...) explores as far as possible along each branch
//     before backtracking, using an explicit LIFO stack instead of recursion.
//   - Path(g, start, goal) returns the first path the search reaches goal by.
//     It is a valid path but not guaranteed to be the shortest, neither by
//     hop count nor by total weight.
//   - Options: WithOnVisit (pre-order hook, error aborts), WithMaxDepth,
//     WithFilterNeighbor, WithGoal.
//
// Exploration order:
//
//	When a vertex is processed its unvisited neighbors are pushed in reverse
//	of core's natural neighbor order (edge insertion order). The first
//	natural neighbor therefore ends on top of the stack and is explored first.
//	A vertex is marked visited when popped, so the same vertex may be pushed
//	more than once; stale copies are skipped. For a given dataset the output
//	is fully deterministic.
//
// Key Types:
//
//   - Option / DFSOptions: functional traversal configuration
//   - DFSResult: pre-order Order, Depth, Parent, Visited, SkippedNeighbors
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V + E) for the frontier, O(V) for the result maps
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex ID not in graph (matches core.ErrUnknownNode)
//   - ErrGoalVertexNotFound   goal vertex ID not in graph (matches core.ErrUnknownNode)
//   - ErrNoPath               DFSResult.PathTo on an unvisited vertex
//   - hook errors             wrapped from OnVisit
package dfs
