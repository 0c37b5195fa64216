package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrDuplicateVertex indicates a vertex ID was added more than once.
	ErrDuplicateVertex = errors.New("core: duplicate vertex")

	// ErrUnknownNode indicates an operation referenced a non-existent vertex.
	ErrUnknownNode = errors.New("core: unknown node")

	// ErrInvalidEdge indicates an edge references a vertex absent from the graph.
	ErrInvalidEdge = errors.New("core: edge references unknown vertex")

	// ErrDuplicateEdge indicates the same unordered vertex pair was connected twice.
	ErrDuplicateEdge = errors.New("core: duplicate edge")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrBadWeight indicates a NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: weight must be a finite number")

	// ErrEdgeNotFound indicates the two vertices are not adjacent.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBuilderSealed indicates the Builder already produced its Graph.
	ErrBuilderSealed = errors.New("core: builder already sealed")
)

// Position is a 2D coordinate pair (longitude, latitude for cities).
type Position struct {
	X float64
	Y float64
}

// Vertex represents a node in the graph.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Position is used only for rendering; no algorithm reads it.
	Position Position
}

// Edge represents an undirected, weighted connection.
//
// Values returned by Neighbors are oriented so that From is the queried
// vertex; values returned by Edges keep the insertion orientation.
type Edge struct {
	// ID uniquely identifies this edge in the Graph, shared by both orientations.
	ID string

	// From is one endpoint vertex ID.
	From string

	// To is the other endpoint vertex ID.
	To string

	// Weight is the distance between the endpoints.
	Weight float64
}

// Reversed returns the same edge seen from its other endpoint.
func (e Edge) Reversed() Edge {
	return Edge{ID: e.ID, From: e.To, To: e.From, Weight: e.Weight}
}

// VertexSpec describes a vertex to be created by Build.
type VertexSpec struct {
	ID       string
	Position Position
}

// EdgeSpec describes an undirected edge to be created by Build.
type EdgeSpec struct {
	From   string
	To     string
	Weight float64
}

// Graph is the immutable in-memory graph.
//
// order keeps vertex insertion order; adjacency[id] keeps the incident edges
// of id in insertion order, each oriented with From == id; index gives O(1)
// lookups of the edge between two vertices.
type Graph struct {
	vertices  map[string]*Vertex
	order     []string
	edges     []Edge
	adjacency map[string][]Edge
	index     map[string]map[string]int // from → to → position in edges
}

// newGraph allocates an empty Graph with the given capacity hints.
func newGraph(vertexHint, edgeHint int) *Graph {
	return &Graph{
		vertices:  make(map[string]*Vertex, vertexHint),
		order:     make([]string, 0, vertexHint),
		edges:     make([]Edge, 0, edgeHint),
		adjacency: make(map[string][]Edge, vertexHint),
		index:     make(map[string]map[string]int, vertexHint),
	}
}
