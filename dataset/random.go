package dataset

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// Random generator limits.
const (
	minRandomCities = 1
	probMin         = 0.0
	probMax         = 1.0
	randomGridSpan  = 100.0 // cities are placed in [0, span)²
)

var (
	// ErrTooFewCities indicates that Random was asked for fewer than one city.
	ErrTooFewCities = errors.New("dataset: city count too small")

	// ErrInvalidProbability indicates a route probability outside [0, 1].
	ErrInvalidProbability = errors.New("dataset: probability out of range")

	// ErrNeedRandSource indicates a nil RNG.
	ErrNeedRandSource = errors.New("dataset: rng is required")
)

// CityName returns the generated name of the idx-th random city: "C0", "C1", ….
func CityName(idx int) string {
	return fmt.Sprintf("C%d", idx)
}

// Random samples an Erdős–Rényi-like map over n cities where each unordered
// pair {i, j}, i < j, gets a route independently with probability p.
//
// Cities are placed uniformly in a square and a route's distance is the
// Euclidean distance between its endpoints, rounded up to a whole unit and
// at least 1, so every generated dataset passes Validate.
//
// Determinism: cities are drawn in index order and pairs are tried with i
// ascending then j ascending, so a fixed seed yields a fixed dataset.
// rng must be non-nil even for p ∈ {0, 1}, since positions are random too.
func Random(n int, p float64, rng *rand.Rand) (Dataset, error) {
	if n < minRandomCities {
		return Dataset{}, fmt.Errorf("Random: n=%d < min=%d: %w", n, minRandomCities, ErrTooFewCities)
	}
	if p < probMin || p > probMax || math.IsNaN(p) {
		return Dataset{}, fmt.Errorf("Random: p=%.6f not in [%.1f,%.1f]: %w", p, probMin, probMax, ErrInvalidProbability)
	}
	if rng == nil {
		return Dataset{}, fmt.Errorf("Random: %w", ErrNeedRandSource)
	}

	ds := Dataset{Cities: make([]City, n)}
	for i := 0; i < n; i++ {
		ds.Cities[i] = City{
			Name: CityName(i),
			X:    rng.Float64() * randomGridSpan,
			Y:    rng.Float64() * randomGridSpan,
		}
	}

	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			// Bernoulli trial; p == 1 never fails because Float64 < 1.
			if rng.Float64() >= p {
				continue
			}
			a, b := ds.Cities[i], ds.Cities[j]
			d := math.Max(1, math.Ceil(math.Hypot(a.X-b.X, a.Y-b.Y)))
			ds.Routes = append(ds.Routes, Route{From: a.Name, To: b.Name, Distance: d})
		}
	}

	return ds, nil
}
