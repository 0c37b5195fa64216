package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/citygraph/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that a source or goal vertex does not exist.
	// It matches core.ErrUnknownNode.
	ErrVertexNotFound = fmt.Errorf("dijkstra: vertex not found: %w", core.ErrUnknownNode)

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was negative or NaN.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was zero, negative or NaN,
	// which would treat every edge as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrPredecessorCycle indicates a malformed predecessor map whose chain
	// from goal never reaches the start.
	ErrPredecessorCycle = errors.New("dijkstra: predecessor chain does not terminate")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting vertex ID (must be non-empty and present in the graph).
// MaxDistance      – vertices farther than this stay unreachable. Default +Inf.
// InfEdgeThreshold – edges with weight ≥ this threshold are skipped. Default +Inf.
type Options struct {
	Source           string  // The ID of the source vertex
	MaxDistance      float64 // Maximum distance to explore
	InfEdgeThreshold float64 // Weight threshold above which edges are non-traversable

	err error // first invalid option, reported by Dijkstra
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID. It is required.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed max are reported as unreachable.
// A negative or NaN value makes Dijkstra fail with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			o.setErr(fmt.Errorf("%w: got %v", ErrBadMaxDistance, max))
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats every edge with weight ≥ threshold as closed.
// A zero, negative or NaN value makes Dijkstra fail with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if !(threshold > 0) {
			o.setErr(fmt.Errorf("%w: got %v", ErrBadInfThreshold, threshold))
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct for the given source vertex ID
// with no distance cap and no closed edges.
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

func (o *Options) setErr(err error) {
	if o.err == nil {
		o.err = err
	}
}

// Route is one entry of the all-pairs table.
// An unreachable destination has Distance +Inf and a nil Path.
type Route struct {
	Distance float64
	Path     []string
}

// Reachable reports whether the route exists.
func (r Route) Reachable() bool {
	return !math.IsInf(r.Distance, 1)
}
