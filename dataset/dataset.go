// Package dataset holds the static city/route configuration that a
// citygraph Graph is built from.
//
// A Dataset is a plain value: it is loaded once at startup (either the
// built-in Reference dataset or a TOML file via Load), validated, and passed
// explicitly into core graph construction. Nothing in this package keeps
// package-level mutable state.
package dataset

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/citygraph/core"
)

// Sentinel errors returned by Validate and Load.
var (
	// ErrEmptyDataset indicates a dataset without any city.
	ErrEmptyDataset = errors.New("dataset: no cities")

	// ErrEmptyCityName indicates a city with an empty name.
	ErrEmptyCityName = errors.New("dataset: city name is empty")

	// ErrDuplicateCity indicates the same city name appears twice.
	ErrDuplicateCity = errors.New("dataset: duplicate city")

	// ErrUnknownCity indicates a route endpoint that is not a listed city.
	ErrUnknownCity = errors.New("dataset: route references unknown city")

	// ErrBadDistance indicates a zero or negative route distance.
	ErrBadDistance = errors.New("dataset: distance must be positive")
)

// City is a named point with 2D coordinates (longitude X, latitude Y).
type City struct {
	Name string  `koanf:"name"`
	X    float64 `koanf:"x"`
	Y    float64 `koanf:"y"`
}

// Route is an undirected road between two cities.
type Route struct {
	From     string  `koanf:"from"`
	To       string  `koanf:"to"`
	Distance float64 `koanf:"distance"`
}

// Dataset is the full input of a network: cities in insertion order and
// routes in insertion order. Both orders are significant because they fix
// the graph's vertex and neighbor enumeration order.
type Dataset struct {
	Cities []City  `koanf:"cities"`
	Routes []Route `koanf:"routes"`
}

// Validate checks the dataset invariants that core.Build does not enforce:
// at least one city, unique non-empty names, known route endpoints and
// strictly positive distances. Duplicate routes and self-loops are left to
// core.Build, which reports them with its own sentinels.
func (d Dataset) Validate() error {
	if len(d.Cities) == 0 {
		return ErrEmptyDataset
	}
	seen := make(map[string]struct{}, len(d.Cities))
	for i, c := range d.Cities {
		if c.Name == "" {
			return fmt.Errorf("%w: city #%d", ErrEmptyCityName, i)
		}
		if _, dup := seen[c.Name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateCity, c.Name)
		}
		seen[c.Name] = struct{}{}
	}
	for i, r := range d.Routes {
		for _, end := range [2]string{r.From, r.To} {
			if _, ok := seen[end]; !ok {
				return fmt.Errorf("%w: route #%d %s–%s references %q", ErrUnknownCity, i, r.From, r.To, end)
			}
		}
		if !(r.Distance > 0) {
			return fmt.Errorf("%w: route #%d %s–%s distance=%v", ErrBadDistance, i, r.From, r.To, r.Distance)
		}
	}

	return nil
}

// Graph validates the dataset and builds the immutable core.Graph from it.
func (d Dataset) Graph() (*core.Graph, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	vertices := make([]core.VertexSpec, len(d.Cities))
	for i, c := range d.Cities {
		vertices[i] = core.VertexSpec{ID: c.Name, Position: core.Position{X: c.X, Y: c.Y}}
	}
	edges := make([]core.EdgeSpec, len(d.Routes))
	for i, r := range d.Routes {
		edges[i] = core.EdgeSpec{From: r.From, To: r.To, Weight: r.Distance}
	}

	return core.Build(vertices, edges)
}

// Reference returns the built-in network of eight cities and ten routes.
// Each call returns a fresh copy, so callers cannot alter the reference.
func Reference() Dataset {
	return Dataset{
		Cities: []City{
			{Name: "Kyiv", X: 30.5234, Y: 50.4501},
			{Name: "Zhytomyr", X: 28.6767, Y: 50.2547},
			{Name: "Vinnytsia", X: 28.4682, Y: 49.2331},
			{Name: "Lviv", X: 24.0316, Y: 49.8420},
			{Name: "Lutsk", X: 25.3244, Y: 50.7472},
			{Name: "Lublin", X: 22.5684, Y: 51.2465},
			{Name: "Warsaw", X: 21.0122, Y: 52.2297},
			{Name: "Krakow", X: 19.9445, Y: 50.0647},
		},
		Routes: []Route{
			{From: "Kyiv", To: "Zhytomyr", Distance: 140},
			{From: "Zhytomyr", To: "Vinnytsia", Distance: 120},
			{From: "Vinnytsia", To: "Lviv", Distance: 360},
			{From: "Lviv", To: "Lutsk", Distance: 150},
			{From: "Lutsk", To: "Kyiv", Distance: 430},
			{From: "Lviv", To: "Lublin", Distance: 225},
			{From: "Lublin", To: "Warsaw", Distance: 170},
			{From: "Lviv", To: "Krakow", Distance: 330},
			{From: "Krakow", To: "Warsaw", Distance: 295},
			{From: "Lutsk", To: "Lublin", Distance: 180},
		},
	}
}
