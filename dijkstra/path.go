package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/citygraph/core"
)

// ReconstructPath rebuilds the path from start to goal by walking prev
// backwards from goal.
//
//   - start == goal returns []string{start}.
//   - goal without a predecessor (unreachable) returns nil, nil.
//   - goal missing from prev returns ErrVertexNotFound.
//   - a chain longer than len(prev) steps returns ErrPredecessorCycle.
func ReconstructPath(prev map[string]string, start, goal string) ([]string, error) {
	if start == goal {
		return []string{start}, nil
	}
	p, ok := prev[goal]
	if !ok {
		return nil, fmt.Errorf("%w: goal %q", ErrVertexNotFound, goal)
	}
	if p == "" {
		return nil, nil
	}

	rev := []string{goal}
	cur := goal
	for steps := 0; cur != start; steps++ {
		if steps > len(prev) {
			return nil, fmt.Errorf("%w: from %q towards %q", ErrPredecessorCycle, goal, start)
		}
		cur = prev[cur]
		if cur == "" {
			// chain ended on a different root
			return nil, nil
		}
		rev = append(rev, cur)
	}

	path := make([]string, len(rev))
	for i := range rev {
		path[i] = rev[len(rev)-1-i]
	}

	return path, nil
}

// ShortestPath returns the minimum-weight path from start to goal and its
// total weight. An unreachable goal yields nil and math.Inf(1).
func ShortestPath(g *core.Graph, start, goal string) ([]string, float64, error) {
	if g != nil && !g.HasVertex(goal) {
		return nil, math.Inf(1), fmt.Errorf("%w: goal %q", ErrVertexNotFound, goal)
	}
	dist, prev, err := Dijkstra(g, Source(start))
	if err != nil {
		return nil, math.Inf(1), err
	}
	path, err := ReconstructPath(prev, start, goal)
	if err != nil {
		return nil, math.Inf(1), err
	}

	return path, dist[goal], nil
}

// AllPairs runs Dijkstra once per vertex and returns, for every ordered pair
// (from, to), the shortest distance and the path realising it. from == to
// maps to Route{0, [from]}.
func AllPairs(g *core.Graph) (map[string]map[string]Route, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	ids := g.Vertices()
	table := make(map[string]map[string]Route, len(ids))
	var from, to string
	for _, from = range ids {
		dist, prev, err := Dijkstra(g, Source(from))
		if err != nil {
			return nil, err
		}
		row := make(map[string]Route, len(ids))
		for _, to = range ids {
			path, err := ReconstructPath(prev, from, to)
			if err != nil {
				return nil, err
			}
			row[to] = Route{Distance: dist[to], Path: path}
		}
		table[from] = row
	}

	return table, nil
}
