package dataset_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citygraph/core"
	"github.com/katalvlaran/citygraph/dataset"
)

func TestReference_Shape(t *testing.T) {
	d := dataset.Reference()
	require.NoError(t, d.Validate())
	assert.Len(t, d.Cities, 8)
	assert.Len(t, d.Routes, 10)

	g, err := d.Graph()
	require.NoError(t, err)
	assert.Equal(t, 8, g.VertexCount())
	assert.Equal(t, 10, g.EdgeCount())

	v, err := g.Vertex("Kyiv")
	require.NoError(t, err)
	assert.Equal(t, core.Position{X: 30.5234, Y: 50.4501}, v.Position)
}

func TestReference_ReturnsFreshCopy(t *testing.T) {
	d := dataset.Reference()
	d.Cities[0].Name = "Changed"
	d.Routes = d.Routes[:1]

	again := dataset.Reference()
	assert.Equal(t, "Kyiv", again.Cities[0].Name)
	assert.Len(t, again.Routes, 10)
}

func TestValidate(t *testing.T) {
	base := func() dataset.Dataset {
		return dataset.Dataset{
			Cities: []dataset.City{{Name: "A"}, {Name: "B"}},
			Routes: []dataset.Route{{From: "A", To: "B", Distance: 1}},
		}
	}
	cases := []struct {
		name   string
		mutate func(*dataset.Dataset)
		want   error
	}{
		{"empty", func(d *dataset.Dataset) { d.Cities = nil }, dataset.ErrEmptyDataset},
		{"empty name", func(d *dataset.Dataset) { d.Cities[1].Name = "" }, dataset.ErrEmptyCityName},
		{"duplicate city", func(d *dataset.Dataset) { d.Cities[1].Name = "A" }, dataset.ErrDuplicateCity},
		{"unknown endpoint", func(d *dataset.Dataset) { d.Routes[0].To = "Z" }, dataset.ErrUnknownCity},
		{"zero distance", func(d *dataset.Dataset) { d.Routes[0].Distance = 0 }, dataset.ErrBadDistance},
		{"negative distance", func(d *dataset.Dataset) { d.Routes[0].Distance = -1 }, dataset.ErrBadDistance},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := base()
			tc.mutate(&d)
			assert.ErrorIs(t, d.Validate(), tc.want)
			_, err := d.Graph()
			assert.ErrorIs(t, err, tc.want)
		})
	}
	require.NoError(t, base().Validate())
}

func TestGraph_DuplicateRouteSurfacesCoreError(t *testing.T) {
	d := dataset.Dataset{
		Cities: []dataset.City{{Name: "A"}, {Name: "B"}},
		Routes: []dataset.Route{
			{From: "A", To: "B", Distance: 1},
			{From: "B", To: "A", Distance: 2},
		},
	}
	_, err := d.Graph()
	assert.ErrorIs(t, err, core.ErrDuplicateEdge)
}

func TestLoad_ReferenceFileMatchesBuiltIn(t *testing.T) {
	d, err := dataset.Load(filepath.Join("testdata", "reference.toml"))
	require.NoError(t, err)
	assert.Equal(t, dataset.Reference(), d)
}

func TestLoad_Errors(t *testing.T) {
	_, err := dataset.Load(filepath.Join("testdata", "negative_distance.toml"))
	assert.ErrorIs(t, err, dataset.ErrBadDistance)

	_, err = dataset.Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	broken := filepath.Join(t.TempDir(), "broken.toml")
	require.NoError(t, os.WriteFile(broken, []byte("[[cities]\nname = "), 0o600))
	_, err = dataset.Load(broken)
	assert.Error(t, err)
}
