package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/citygraph/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS or Path.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the specified start vertex ID
	// does not exist in the graph. It matches core.ErrUnknownNode.
	ErrStartVertexNotFound = fmt.Errorf("dfs: start vertex not found: %w", core.ErrUnknownNode)

	// ErrGoalVertexNotFound indicates that Path's goal vertex ID does not
	// exist in the graph. It matches core.ErrUnknownNode.
	ErrGoalVertexNotFound = fmt.Errorf("dfs: goal vertex not found: %w", core.ErrUnknownNode)

	// ErrNoPath is returned by DFSResult.PathTo for a vertex that was not visited.
	ErrNoPath = errors.New("dfs: no path")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, startID, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type DFSOptions struct {
	// OnVisit, if non-nil, is invoked when a vertex is popped and processed
	// for the first time (pre-order). Returning an error aborts traversal.
	OnVisit func(id string) error

	// MaxDepth, if non-negative, stops expansion below the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbor ID before it is
	// pushed. Return true to keep that neighbor, false to skip it.
	FilterNeighbor func(id string) bool

	// Goal, if non-empty, ends the traversal once this vertex is processed.
	Goal string

	// SkippedNeighbors tracks how many neighbor vertices were skipped
	// due to FilterNeighbor returning false. Useful for diagnostics.
	SkippedNeighbors int
}

// DefaultOptions returns a DFSOptions struct with:
//   - No visit hook
//   - No depth limit (MaxDepth = -1)
//   - No neighbor filtering
//   - No goal (the start vertex's whole component is traversed)
func DefaultOptions() DFSOptions {
	return DFSOptions{
		OnVisit:          nil,
		MaxDepth:         -1,
		FilterNeighbor:   nil,
		Goal:             "",
		SkippedNeighbors: 0,
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the start vertex is visited.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor returns an Option that filters neighbor IDs.
// If fn(id) == false, that neighbor is skipped and counted in SkippedNeighbors.
func WithFilterNeighbor(fn func(id string) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}

// WithGoal returns an Option that stops traversal once goal is processed.
func WithGoal(goal string) Option {
	return func(o *DFSOptions) {
		o.Goal = goal
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records vertices in the sequence they were popped and processed (pre-order).
	Order []string

	// Depth maps each visited vertex ID to its distance (#edges) from the start
	// along the discovered DFS tree, not the shortest distance.
	Depth map[string]int

	// Parent maps each visited vertex ID to the vertex that pushed the frontier
	// entry it was processed from. The start vertex does not appear in this map.
	Parent map[string]string

	// Visited flags which vertices were processed during the traversal.
	Visited map[string]bool

	// SkippedNeighbors reports how many neighbors were skipped
	// due to FilterNeighbor returning false.
	SkippedNeighbors int
}

// PathTo rebuilds the DFS-tree path from the start vertex to dest.
// Returns ErrNoPath if dest was not visited.
func (r *DFSResult) PathTo(dest string) ([]string, error) {
	if !r.Visited[dest] {
		return nil, fmt.Errorf("%w to %q", ErrNoPath, dest)
	}
	path := make([]string, 0, r.Depth[dest]+1)
	for cur, ok := dest, true; ok; cur, ok = r.Parent[cur] {
		path = append(path, cur)
	}

	return Reverse(path), nil
}
