package core

import "fmt"

// HasVertex reports whether a vertex with the given ID exists in the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false // empty ID considered absent
	}
	_, exists := g.vertices[id]

	return exists
}

// Vertex returns a copy of the vertex with the given ID.
// Returns ErrUnknownNode if it does not exist.
// Complexity: O(1).
func (g *Graph) Vertex(id string) (Vertex, error) {
	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}

	return *v, nil
}

// Vertices returns all vertex IDs in insertion order.
// The returned slice is a fresh copy.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	return len(g.order)
}

// Degree returns the number of edges incident to id.
// Self-loops and parallel edges cannot exist, so this equals the number of
// distinct neighbors.
// Returns ErrUnknownNode if the vertex does not exist.
// Complexity: O(1).
func (g *Graph) Degree(id string) (int, error) {
	if _, ok := g.vertices[id]; !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}

	return len(g.adjacency[id]), nil
}
