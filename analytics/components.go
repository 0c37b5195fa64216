package analytics

import (
	"fmt"

	"github.com/katalvlaran/citygraph/bfs"
	"github.com/katalvlaran/citygraph/core"
)

// Components returns the connected components of g. Components are ordered
// by their earliest inserted vertex and each lists its vertices in BFS
// order from that vertex.
//
// Complexity: O(V + E).
func Components(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	seen := make(map[string]bool, g.VertexCount())
	var out [][]string
	for _, id := range g.Vertices() {
		if seen[id] {
			continue
		}
		res, err := bfs.BFS(g, id)
		if err != nil {
			return nil, fmt.Errorf("analytics: component of %q: %w", id, err)
		}
		for _, v := range res.Order {
			seen[v] = true
		}
		out = append(out, res.Order)
	}

	return out, nil
}

// Connected reports whether every vertex of g can reach every other.
// An empty graph is not connected.
func Connected(g *core.Graph) (bool, error) {
	comps, err := Components(g)
	if err != nil {
		return false, err
	}

	return len(comps) == 1, nil
}
