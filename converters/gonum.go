package converters

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/citygraph/core"
)

// ErrNilGraph is returned when a nil *core.Graph is passed to a converter.
var ErrNilGraph = errors.New("converters: graph is nil")

// CityNode is a gonum node carrying the city name and map position.
// It implements dot.Node and encoding.Attributer for Graphviz output.
type CityNode struct {
	id   int64
	Name string
	Pos  core.Position
}

// ID implements graph.Node.
func (n CityNode) ID() int64 { return n.id }

// RouteEdge is a gonum weighted edge labeled with the core edge ID.
type RouteEdge struct {
	F, T   CityNode
	W      float64
	EdgeID string
}

// From implements graph.Edge.
func (e RouteEdge) From() graph.Node { return e.F }

// To implements graph.Edge.
func (e RouteEdge) To() graph.Node { return e.T }

// ReversedEdge implements graph.Edge; the label and weight are kept.
func (e RouteEdge) ReversedEdge() graph.Edge {
	e.F, e.T = e.T, e.F

	return e
}

// Weight implements graph.WeightedEdge.
func (e RouteEdge) Weight() float64 { return e.W }

// GonumGraph wraps a gonum undirected weighted graph built from a core.Graph
// together with the mapping between city names and gonum node IDs.
type GonumGraph struct {
	graph *simple.WeightedUndirectedGraph
	ids   map[string]int64 // Map from city name to graph ID
	names []string         // Index is graph ID
}

// ToGonum converts g into a gonum graph. Node IDs are assigned 0..V-1 in
// vertex insertion order, so the mapping is stable for a given dataset.
// Absent edges weigh +Inf and self weights are 0, matching path semantics.
func ToGonum(g *core.Graph) (*GonumGraph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	vertices := g.Vertices()
	gg := &GonumGraph{
		graph: simple.NewWeightedUndirectedGraph(0, math.Inf(1)),
		ids:   make(map[string]int64, len(vertices)),
		names: make([]string, 0, len(vertices)),
	}
	nodes := make(map[string]CityNode, len(vertices))

	var name string
	for _, name = range vertices {
		v, err := g.Vertex(name)
		if err != nil {
			return nil, fmt.Errorf("converters: vertex %q: %w", name, err)
		}
		n := CityNode{id: int64(len(gg.names)), Name: v.ID, Pos: v.Position}
		gg.graph.AddNode(n)
		gg.ids[name] = n.id
		gg.names = append(gg.names, name)
		nodes[name] = n
	}

	var e core.Edge
	for _, e = range g.Edges() {
		gg.graph.SetWeightedEdge(RouteEdge{F: nodes[e.From], T: nodes[e.To], W: e.Weight, EdgeID: e.ID})
	}

	return gg, nil
}

// Graph returns the underlying gonum graph.
func (gg *GonumGraph) Graph() *simple.WeightedUndirectedGraph {
	return gg.graph
}

// ID returns the gonum node ID of a city.
func (gg *GonumGraph) ID(name string) (int64, bool) {
	id, ok := gg.ids[name]

	return id, ok
}

// Name returns the city name of a gonum node ID, or "" if out of range.
func (gg *GonumGraph) Name(id int64) string {
	if id < 0 || id >= int64(len(gg.names)) {
		return ""
	}

	return gg.names[id]
}

// Names maps a gonum node path back to city names.
func (gg *GonumGraph) Names(nodes []graph.Node) []string {
	if nodes == nil {
		return nil
	}
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = gg.Name(n.ID())
	}

	return out
}
