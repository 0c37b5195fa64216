package core

import "fmt"

// HasEdge reports whether from and to are adjacent (in either orientation).
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	_, ok := g.index[from][to]

	return ok
}

// EdgeWeight returns the weight of the edge between a and b.
// The result is symmetric: EdgeWeight(a, b) == EdgeWeight(b, a).
// Returns ErrUnknownNode if either vertex is absent, ErrEdgeNotFound if
// they are not adjacent.
// Complexity: O(1).
func (g *Graph) EdgeWeight(a, b string) (float64, error) {
	for _, id := range [2]string{a, b} {
		if _, ok := g.vertices[id]; !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnknownNode, id)
		}
	}
	pos, ok := g.index[a][b]
	if !ok {
		return 0, fmt.Errorf("%w: %s–%s", ErrEdgeNotFound, a, b)
	}

	return g.edges[pos].Weight, nil
}

// Neighbors returns the edges incident to id, each oriented with From == id,
// in the order they were inserted.
// Returns ErrEmptyVertexID for an empty ID or ErrUnknownNode if absent.
// Complexity: O(d), where d is the degree of id.
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	adj, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}
	out := make([]Edge, len(adj))
	copy(out, adj)

	return out, nil
}

// NeighborIDs returns the IDs of the vertices adjacent to id, in edge
// insertion order. This is the "natural" neighbor order that DFS reverses
// and BFS follows.
// Complexity: O(d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(edges))
	for i, e := range edges {
		ids[i] = e.To
	}

	return ids, nil
}

// Edges returns every edge once, in insertion order and orientation.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}
