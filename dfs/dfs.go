package dfs

import (
	"fmt"

	"github.com/katalvlaran/citygraph/core"
)

// frame is one frontier entry: a vertex, the vertex that pushed it, and its depth.
type frame struct {
	id     string
	parent string // empty for root
	depth  int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph // underlying graph
	opts  DFSOptions  // traversal options
	stack []frame     // LIFO frontier
	res   *DFSResult  // result collector
}

// DFS performs depth-first search on graph g from startID.
// Returns DFSResult, or an error for invalid input or a failing hook. On a
// hook error the partial result collected so far is returned with it.
func DFS(g *core.Graph, startID string, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&dopts)
	}

	// 3. Verify startID
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	// 4. Initialize result with capacity hint
	n := g.VertexCount()
	res := &DFSResult{
		Order:   make([]string, 0, n),
		Depth:   make(map[string]int, n),
		Parent:  make(map[string]string, n),
		Visited: make(map[string]bool, n),
	}
	walker := &dfsWalker{graph: g, opts: dopts, stack: make([]frame, 0, n), res: res}

	// 5. Traverse
	err := walker.run(startID)

	// 6. Expose diagnostics
	res.SkippedNeighbors = walker.opts.SkippedNeighbors

	return res, err
}

// Path returns the first path DFS finds from start to goal, or nil when goal
// lies in a different connected component. The path is not guaranteed to be
// the shortest by hops or by weight.
//
// Exploration order: the neighbors of a processed vertex are pushed in
// reverse of core's natural neighbor order, so the first natural neighbor is
// on top of the stack and explored first.
//
// start == goal yields []string{start}. Unknown start or goal fails with an
// error matching core.ErrUnknownNode.
func Path(g *core.Graph, start, goal string) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(goal) {
		return nil, fmt.Errorf("%w: %q", ErrGoalVertexNotFound, goal)
	}
	res, err := DFS(g, start, WithGoal(goal))
	if err != nil {
		return nil, err
	}
	if !res.Visited[goal] {
		return nil, nil
	}

	return res.PathTo(goal)
}

// run drains the stack seeded with root.
//
// A vertex is marked visited only when it is popped and processed; the same
// vertex may sit on the stack several times and later copies are skipped.
func (w *dfsWalker) run(root string) error {
	w.stack = append(w.stack, frame{id: root})
	for len(w.stack) > 0 {
		// 1. Pop
		top := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		if w.res.Visited[top.id] {
			continue // stale duplicate
		}

		// 2. Process
		if err := w.visit(top); err != nil {
			return err
		}
		if w.opts.Goal != "" && top.id == w.opts.Goal {
			return nil
		}

		// 3. Depth limit: do not expand beyond MaxDepth
		if w.opts.MaxDepth >= 0 && top.depth >= w.opts.MaxDepth {
			continue
		}

		// 4. Expand
		if err := w.push(top); err != nil {
			return err
		}
	}

	return nil
}

// visit records a popped vertex and runs the pre-order hook.
func (w *dfsWalker) visit(f frame) error {
	w.res.Visited[f.id] = true
	w.res.Depth[f.id] = f.depth
	if f.parent != "" {
		w.res.Parent[f.id] = f.parent
	}
	w.res.Order = append(w.res.Order, f.id)

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(f.id); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", f.id, err)
		}
	}

	return nil
}

// push places the unvisited neighbors of f on the stack in reverse natural order.
func (w *dfsWalker) push(f frame) error {
	nbrs, err := w.graph.NeighborIDs(f.id)
	if err != nil {
		return fmt.Errorf("dfs: NeighborIDs(%q): %w", f.id, err)
	}

	var nid string
	for _, nid = range Reverse(nbrs) {
		if w.res.Visited[nid] {
			continue
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nid) {
			w.opts.SkippedNeighbors++
			continue
		}
		w.stack = append(w.stack, frame{id: nid, parent: f.id, depth: f.depth + 1})
	}

	return nil
}
