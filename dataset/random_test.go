package dataset_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citygraph/dataset"
)

func TestRandom_Validation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := dataset.Random(0, 0.5, rng)
	assert.ErrorIs(t, err, dataset.ErrTooFewCities)
	_, err = dataset.Random(3, 1.5, rng)
	assert.ErrorIs(t, err, dataset.ErrInvalidProbability)
	_, err = dataset.Random(3, -0.1, rng)
	assert.ErrorIs(t, err, dataset.ErrInvalidProbability)
	_, err = dataset.Random(3, 0.5, nil)
	assert.ErrorIs(t, err, dataset.ErrNeedRandSource)
}

func TestRandom_Extremes(t *testing.T) {
	empty, err := dataset.Random(5, 0, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	assert.Len(t, empty.Cities, 5)
	assert.Empty(t, empty.Routes)

	full, err := dataset.Random(5, 1, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	assert.Len(t, full.Routes, 10)
	assert.Equal(t, dataset.CityName(0), full.Routes[0].From)
	assert.Equal(t, dataset.CityName(1), full.Routes[0].To)
}

func TestRandom_ValidAndDeterministic(t *testing.T) {
	a, err := dataset.Random(20, 0.2, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	b, err := dataset.Random(20, 0.2, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	require.NoError(t, a.Validate())
	g, err := a.Graph()
	require.NoError(t, err)
	assert.Equal(t, 20, g.VertexCount())
	assert.Equal(t, len(a.Routes), g.EdgeCount())
	for _, r := range a.Routes {
		assert.GreaterOrEqual(t, r.Distance, 1.0)
	}
}
