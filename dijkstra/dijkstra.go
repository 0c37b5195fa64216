package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/citygraph/core"
)

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to every vertex of g.
//
// Returns:
//
//   - dist: vertex ID → minimum total weight; math.Inf(1) if unreachable.
//   - prev: vertex ID → predecessor on one shortest path; "" for the source
//     and for unreachable vertices. Both maps contain every vertex of g.
//   - err:  error if inputs are invalid or if a negative weight is detected.
//
// Validation order:
//  1. Source must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. Options must be valid (ErrBadMaxDistance, ErrBadInfThreshold).
//  4. g must contain Source (ErrVertexNotFound).
//  5. No edge may have a negative weight (ErrNegativeWeight).
//
// Among equal-cost alternatives the first one discovered wins: relaxation
// uses a strict "<", neighbors are scanned in core's natural order, and
// heap ties resolve in push order.
func Dijkstra(g *core.Graph, opts ...Option) (map[string]float64, map[string]string, error) {
	// 1) Build Options
	cfg := DefaultOptions("")
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate input
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: source %q", ErrVertexNotFound, cfg.Source)
	}

	// 3) Pre-scan all edges to detect negative weights. Fail fast.
	var e core.Edge
	for _, e = range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %s %s–%s weight=%g", ErrNegativeWeight, e.ID, e.From, e.To, e.Weight)
		}
	}

	// 4) Run
	n := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]float64, n),
		prev:    make(map[string]string, n),
		pq:      make(nodePQ, 0, n),
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[string]float64
	prev    map[string]string
	pq      nodePQ
	seq     int // push counter, breaks heap ties by insertion
}

// init sets every distance to +Inf, clears predecessors and seeds the heap with the source.
func (r *runner) init() {
	for _, v := range r.g.Vertices() {
		r.dist[v] = math.Inf(1)
		r.prev[v] = ""
	}
	r.dist[r.options.Source] = 0
	heap.Init(&r.pq)
	r.push(r.options.Source, 0)
}

// process pops the closest frontier entry until the heap is empty.
//
// An entry whose distance is larger than the best known distance of its
// vertex is stale and discarded, so every vertex is relaxed exactly once.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if item.dist > r.dist[item.id] {
			continue // stale
		}
		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve every neighbor of u through u.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	var e core.Edge
	var newDist float64
	for _, e = range neighbors {
		if e.Weight >= r.options.InfEdgeThreshold {
			continue // closed
		}
		newDist = r.dist[u] + e.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		if newDist >= r.dist[e.To] {
			continue
		}
		r.dist[e.To] = newDist
		r.prev[e.To] = u
		r.push(e.To, newDist)
	}

	return nil
}

func (r *runner) push(id string, dist float64) {
	heap.Push(&r.pq, &nodeItem{id: id, dist: dist, seq: r.seq})
	r.seq++
}

// nodeItem represents a vertex and a tentative distance from the source.
type nodeItem struct {
	id   string  // vertex ID
	dist float64 // distance from source at push time
	seq  int     // push order
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then by push order.
// Outdated entries stay in the heap and are dropped when popped.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by push order.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop moves the minimum there first.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
