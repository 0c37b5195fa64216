// Package core: graph construction.
//
// This file provides Builder, the only way to populate a Graph, and Build,
// which assembles a Graph from static vertex and edge specs in one call.
// Both preserve insertion order, which fixes neighbor enumeration order for
// every algorithm downstream.

package core

import (
	"fmt"
	"math"
)

const (
	edgeIDPrefix = "e"
)

// Builder accumulates vertices and edges and seals them into a Graph.
type Builder struct {
	g *Graph
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{g: newGraph(0, 0)}
}

// AddVertex inserts a new vertex with the given ID and position.
// Returns ErrEmptyVertexID if id is empty, ErrDuplicateVertex if it was
// already added, or ErrBuilderSealed after Graph() was called.
// Complexity: O(1) amortized.
func (b *Builder) AddVertex(id string, pos Position) error {
	if b.g == nil {
		return ErrBuilderSealed
	}
	if id == "" {
		return ErrEmptyVertexID
	}
	if _, exists := b.g.vertices[id]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateVertex, id)
	}
	b.g.vertices[id] = &Vertex{ID: id, Position: pos}
	b.g.order = append(b.g.order, id)
	b.g.adjacency[id] = nil

	return nil
}

// AddEdge connects from and to with an undirected edge of the given weight
// and returns its Edge.ID.
//
// Unlike a mutable graph, endpoints are never auto-created: both vertices
// must have been added first, otherwise ErrInvalidEdge is returned.
// Returns ErrEmptyVertexID, ErrLoopNotAllowed, ErrBadWeight, ErrInvalidEdge,
// ErrDuplicateEdge or ErrBuilderSealed.
// Complexity: O(1) amortized.
func (b *Builder) AddEdge(from, to string, weight float64) (string, error) {
	// 1) Builder state and input validation
	if b.g == nil {
		return "", ErrBuilderSealed
	}
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to {
		return "", fmt.Errorf("%w: %q", ErrLoopNotAllowed, from)
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return "", fmt.Errorf("%w: %s–%s weight=%v", ErrBadWeight, from, to, weight)
	}

	// 2) Both endpoints must already exist
	g := b.g
	for _, id := range [2]string{from, to} {
		if _, ok := g.vertices[id]; !ok {
			return "", fmt.Errorf("%w: %s–%s references %q", ErrInvalidEdge, from, to, id)
		}
	}

	// 3) Unordered pair uniqueness: the index is mirrored, one lookup suffices
	if _, dup := g.index[from][to]; dup {
		return "", fmt.Errorf("%w: %s–%s", ErrDuplicateEdge, from, to)
	}

	// 4) Store canonical edge and both oriented adjacency entries
	e := Edge{
		ID:     fmt.Sprintf("%s%d", edgeIDPrefix, len(g.edges)+1),
		From:   from,
		To:     to,
		Weight: weight,
	}
	pos := len(g.edges)
	g.edges = append(g.edges, e)
	g.adjacency[from] = append(g.adjacency[from], e)
	g.adjacency[to] = append(g.adjacency[to], e.Reversed())
	g.ensureIndex(from)[to] = pos
	g.ensureIndex(to)[from] = pos

	return e.ID, nil
}

// Graph seals the Builder and returns the constructed Graph.
// Any later AddVertex or AddEdge call fails with ErrBuilderSealed;
// calling Graph again returns nil.
func (b *Builder) Graph() *Graph {
	g := b.g
	b.g = nil

	return g
}

// Build assembles an immutable Graph from vertex and edge specs, in order.
// The first failing spec aborts construction and its error is returned
// with the spec index for context.
// Complexity: O(V + E).
func Build(vertices []VertexSpec, edges []EdgeSpec) (*Graph, error) {
	b := &Builder{g: newGraph(len(vertices), len(edges))}
	for i, v := range vertices {
		if err := b.AddVertex(v.ID, v.Position); err != nil {
			return nil, fmt.Errorf("vertex #%d: %w", i, err)
		}
	}
	for i, e := range edges {
		if _, err := b.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("edge #%d: %w", i, err)
		}
	}

	return b.Graph(), nil
}

// ensureIndex lazily allocates the inner lookup map of id.
func (g *Graph) ensureIndex(id string) map[string]int {
	inner, ok := g.index[id]
	if !ok {
		inner = make(map[string]int)
		g.index[id] = inner
	}

	return inner
}
