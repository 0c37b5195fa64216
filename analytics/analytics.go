// Package analytics computes degree statistics over a core.Graph.
//
// Summarize walks the vertices once in insertion order, so ties for the
// maximum and minimum degree are always won by the vertex inserted first.
//
// Complexity: O(V) time, O(V) space for the degree table.
package analytics

import (
	"errors"
	"math"

	"github.com/katalvlaran/citygraph/core"
)

var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("analytics: graph is nil")

	// ErrEmptyGraph is returned for a graph without vertices, where the
	// average degree and the extremes are undefined.
	ErrEmptyGraph = errors.New("analytics: graph has no vertices")
)

// Summary is the degree profile of a graph.
// Field tags follow the keys of the printed network summary.
type Summary struct {
	NodeCount     int            `json:"nodes"`
	EdgeCount     int            `json:"edges"`
	AverageDegree float64        `json:"average_degree"`
	MaxDegreeNode string         `json:"max_degree_city"`
	MaxDegree     int            `json:"max_degree"`
	MinDegreeNode string         `json:"min_degree_city"`
	MinDegree     int            `json:"min_degree"`
	Degrees       map[string]int `json:"degrees"`

	// Order lists vertex IDs in insertion order for stable presentation of Degrees.
	Order []string `json:"-"`
}

// Summarize returns the degree summary of g.
// AverageDegree is sum(degree)/V rounded to two decimal places.
func Summarize(g *core.Graph) (*Summary, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	order := g.Vertices()
	if len(order) == 0 {
		return nil, ErrEmptyGraph
	}

	s := &Summary{
		NodeCount: len(order),
		EdgeCount: g.EdgeCount(),
		Degrees:   make(map[string]int, len(order)),
		Order:     order,
	}
	sum := 0
	for i, id := range order {
		d, err := g.Degree(id)
		if err != nil {
			return nil, err
		}
		s.Degrees[id] = d
		sum += d
		// strict comparisons keep the earliest vertex on ties
		if i == 0 || d > s.MaxDegree {
			s.MaxDegreeNode, s.MaxDegree = id, d
		}
		if i == 0 || d < s.MinDegree {
			s.MinDegreeNode, s.MinDegree = id, d
		}
	}
	s.AverageDegree = round2(float64(sum) / float64(len(order)))

	return s, nil
}

// round2 rounds x to two decimal places, halves away from zero.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
