// Package dijkstra_test contains unit tests for the Dijkstra implementation.
// These tests validate input checks, the reference scenario against a
// brute-force oracle and gonum's all-pairs Dijkstra, distance caps, closed
// edges, ties and predecessor reconstruction.
package dijkstra_test

import (
	"math"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"

	"github.com/katalvlaran/citygraph/converters"
	"github.com/katalvlaran/citygraph/core"
	"github.com/katalvlaran/citygraph/dataset"
	"github.com/katalvlaran/citygraph/dijkstra"
)

// buildWeighted creates an undirected graph from "U-V:W" triples.
// A bare "U" adds an isolated vertex.
func buildWeighted(t testing.TB, specs ...string) *core.Graph {
	t.Helper()
	b := core.NewBuilder()
	seen := map[string]bool{}
	add := func(id string) {
		if !seen[id] {
			seen[id] = true
			require.NoError(t, b.AddVertex(id, core.Position{}))
		}
	}
	for _, s := range specs {
		pair, weight, hasWeight := strings.Cut(s, ":")
		ends := strings.Split(pair, "-")
		for _, id := range ends {
			add(id)
		}
		if !hasWeight {
			continue
		}
		w, err := strconv.ParseFloat(weight, 64)
		require.NoError(t, err)
		_, err = b.AddEdge(ends[0], ends[1], w)
		require.NoError(t, err)
	}

	return b.Graph()
}

func referenceGraph(t testing.TB) *core.Graph {
	t.Helper()
	g, err := dataset.Reference().Graph()
	require.NoError(t, err)

	return g
}

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestDijkstra_EmptySource(t *testing.T) {
	g := buildWeighted(t, "A-B:1")
	_, _, err := dijkstra.Dijkstra(g)
	assert.ErrorIs(t, err, dijkstra.ErrEmptySource)

	// ErrEmptySource has priority over ErrNilGraph.
	_, _, err = dijkstra.Dijkstra(nil)
	assert.ErrorIs(t, err, dijkstra.ErrEmptySource)
}

func TestDijkstra_NilGraphWithSource(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(nil, dijkstra.Source("X"))
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestDijkstra_SourceNotFound(t *testing.T) {
	g := buildWeighted(t, "A-B:1")
	_, _, err := dijkstra.Dijkstra(g, dijkstra.Source("X"))
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
	assert.ErrorIs(t, err, core.ErrUnknownNode)
}

func TestDijkstra_NegativeWeightDetectedEarly(t *testing.T) {
	g := buildWeighted(t, "A-B:1", "B-C:-5")
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
	assert.Contains(t, err.Error(), "B–C")
	assert.Nil(t, dist)
	assert.Nil(t, prev)
}

func TestDijkstra_BadOptions(t *testing.T) {
	g := buildWeighted(t, "A-B:1")
	_, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(-1))
	assert.ErrorIs(t, err, dijkstra.ErrBadMaxDistance)
	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(math.NaN()))
	assert.ErrorIs(t, err, dijkstra.ErrBadMaxDistance)
	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithInfEdgeThreshold(0))
	assert.ErrorIs(t, err, dijkstra.ErrBadInfThreshold)
	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithInfEdgeThreshold(math.NaN()))
	assert.ErrorIs(t, err, dijkstra.ErrBadInfThreshold)
}

// ------------------------------------------------------------------------
// 2. Reference scenario.
// ------------------------------------------------------------------------

func TestDijkstra_ReferenceFromKyiv(t *testing.T) {
	g := referenceGraph(t)
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("Kyiv"))
	require.NoError(t, err)

	wantDist := map[string]float64{
		"Kyiv": 0, "Zhytomyr": 140, "Vinnytsia": 260, "Lutsk": 430,
		"Lviv": 580, "Lublin": 610, "Warsaw": 780, "Krakow": 910,
	}
	wantPrev := map[string]string{
		"Kyiv": "", "Zhytomyr": "Kyiv", "Vinnytsia": "Zhytomyr", "Lutsk": "Kyiv",
		"Lviv": "Lutsk", "Lublin": "Lutsk", "Warsaw": "Lublin", "Krakow": "Lviv",
	}
	assert.Equal(t, wantDist, dist)
	assert.Equal(t, wantPrev, prev)

	p, err := dijkstra.ReconstructPath(prev, "Kyiv", "Krakow")
	require.NoError(t, err)
	assert.Equal(t, []string{"Kyiv", "Lutsk", "Lviv", "Krakow"}, p)
}

// TestShortestPath_MatchesBruteForce enumerates every simple Kyiv→Krakow
// path and checks that Dijkstra returns the cheapest one.
func TestShortestPath_MatchesBruteForce(t *testing.T) {
	g := referenceGraph(t)
	costs := simplePathCosts(t, g, "Kyiv", "Krakow")
	require.NotEmpty(t, costs)

	best := math.Inf(1)
	for _, c := range costs {
		best = math.Min(best, c)
	}
	assert.Equal(t, 910.0, best)
	assert.Contains(t, costs, 950.0)
	assert.Contains(t, costs, 1075.0)
	assert.Contains(t, costs, 1165.0)

	p, d, err := dijkstra.ShortestPath(g, "Kyiv", "Krakow")
	require.NoError(t, err)
	assert.Equal(t, best, d)
	assert.Equal(t, d, pathWeight(t, g, p))
}

// TestAllPairs_MatchesGonum compares every distance with gonum's
// independent all-pairs Dijkstra.
func TestAllPairs_MatchesGonum(t *testing.T) {
	g := referenceGraph(t)
	table, err := dijkstra.AllPairs(g)
	require.NoError(t, err)

	gg, err := converters.ToGonum(g)
	require.NoError(t, err)
	oracle := path.DijkstraAllPaths(gg.Graph())

	ids := g.Vertices()
	require.Len(t, table, len(ids))
	for _, from := range ids {
		require.Len(t, table[from], len(ids))
		for _, to := range ids {
			u, _ := gg.ID(from)
			v, _ := gg.ID(to)
			route := table[from][to]
			assert.InDelta(t, oracle.Weight(u, v), route.Distance, 1e-9, "%s -> %s", from, to)
			assert.Equal(t, route.Distance, pathWeight(t, g, route.Path), "%s -> %s path weight", from, to)
			assert.Equal(t, route.Distance, table[to][from].Distance, "%s <-> %s symmetry", from, to)
		}
		assert.Equal(t, dijkstra.Route{Distance: 0, Path: []string{from}}, table[from][from])
	}
}

// TestAllPairs_RandomMatchesGonum repeats the oracle check on sampled maps,
// sparse enough to be disconnected now and then.
func TestAllPairs_RandomMatchesGonum(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		ds, err := dataset.Random(12, 0.2, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)
		g, err := ds.Graph()
		require.NoError(t, err)

		table, err := dijkstra.AllPairs(g)
		require.NoError(t, err)
		gg, err := converters.ToGonum(g)
		require.NoError(t, err)
		oracle := path.DijkstraAllPaths(gg.Graph())

		for _, from := range g.Vertices() {
			for _, to := range g.Vertices() {
				u, _ := gg.ID(from)
				v, _ := gg.ID(to)
				want := oracle.Weight(u, v)
				got := table[from][to]
				if math.IsInf(want, 1) {
					assert.True(t, math.IsInf(got.Distance, 1), "seed %d %s -> %s", seed, from, to)
					assert.Nil(t, got.Path, "seed %d %s -> %s", seed, from, to)
					continue
				}
				assert.InDelta(t, want, got.Distance, 1e-9, "seed %d %s -> %s", seed, from, to)
				assert.InDelta(t, got.Distance, pathWeight(t, g, got.Path), 1e-9, "seed %d %s -> %s", seed, from, to)
			}
		}
	}
}

func TestAllPairs_Islands(t *testing.T) {
	ds, err := dataset.Load("../dataset/testdata/islands.toml")
	require.NoError(t, err)
	g, err := ds.Graph()
	require.NoError(t, err)

	table, err := dijkstra.AllPairs(g)
	require.NoError(t, err)

	assert.Equal(t, 1.5, table["A"]["B"].Distance)
	assert.Equal(t, []string{"A", "B"}, table["A"]["B"].Path)
	assert.True(t, table["A"]["B"].Reachable())

	r := table["A"]["D"]
	assert.True(t, math.IsInf(r.Distance, 1))
	assert.Nil(t, r.Path)
	assert.False(t, r.Reachable())

	_, err = dijkstra.AllPairs(nil)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestDijkstra_UnreachableIsInf(t *testing.T) {
	g := buildWeighted(t, "A-B:2", "C")
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)
	assert.True(t, math.IsInf(dist["C"], 1))
	assert.Equal(t, "", prev["C"])
	assert.Len(t, dist, 3)
	assert.Len(t, prev, 3)

	p, d, err := dijkstra.ShortestPath(g, "A", "C")
	require.NoError(t, err)
	assert.Nil(t, p)
	assert.True(t, math.IsInf(d, 1))
}

func TestDijkstra_SingleVertex_ReturnsZero(t *testing.T) {
	g := buildWeighted(t, "A")
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"A": 0}, dist)
	assert.Equal(t, map[string]string{"A": ""}, prev)
}

// ------------------------------------------------------------------------
// 3. Heap behavior, caps and thresholds.
// ------------------------------------------------------------------------

// TestDijkstra_ImprovedEntryWins covers a vertex pushed twice: the stale
// heavier entry must not overwrite the improved one.
func TestDijkstra_ImprovedEntryWins(t *testing.T) {
	g := buildWeighted(t, "A-B:10", "A-C:1", "C-B:1", "B-D:1")
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)
	assert.Equal(t, 2.0, dist["B"])
	assert.Equal(t, "C", prev["B"])
	assert.Equal(t, 3.0, dist["D"])
}

// TestDijkstra_TieKeepsFirstDiscovered pins the deterministic tie-break.
func TestDijkstra_TieKeepsFirstDiscovered(t *testing.T) {
	g := buildWeighted(t, "A-B:1", "A-C:1", "B-D:1", "C-D:1")
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)
	assert.Equal(t, 2.0, dist["D"])
	assert.Equal(t, "B", prev["D"])
}

func TestDijkstra_ZeroWeightEdge(t *testing.T) {
	g := buildWeighted(t, "A-B:0", "B-C:3")
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)
	assert.Equal(t, 0.0, dist["B"])
	assert.Equal(t, 3.0, dist["C"])
}

func TestDijkstra_MaxDistanceLimits(t *testing.T) {
	g := referenceGraph(t)
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("Kyiv"), dijkstra.WithMaxDistance(600))
	require.NoError(t, err)

	assert.Equal(t, 580.0, dist["Lviv"])
	for _, far := range []string{"Lublin", "Warsaw", "Krakow"} {
		assert.True(t, math.IsInf(dist[far], 1), far)
		assert.Equal(t, "", prev[far], far)
	}
}

func TestDijkstra_MaxDistanceZero(t *testing.T) {
	g := buildWeighted(t, "A-B:0", "B-C:1")
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(0))
	require.NoError(t, err)
	assert.Equal(t, 0.0, dist["A"])
	assert.Equal(t, 0.0, dist["B"])
	assert.True(t, math.IsInf(dist["C"], 1))
}

func TestDijkstra_InfThresholdClosesRoute(t *testing.T) {
	g := referenceGraph(t)
	// Kyiv–Lutsk (430) is closed, so everything goes through Zhytomyr.
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("Kyiv"), dijkstra.WithInfEdgeThreshold(400))
	require.NoError(t, err)
	assert.Equal(t, 620.0, dist["Lviv"])
	assert.Equal(t, 770.0, dist["Lutsk"])
	assert.Equal(t, "Lviv", prev["Lutsk"])
	assert.Equal(t, 950.0, dist["Krakow"])
}

// ------------------------------------------------------------------------
// 4. Path reconstruction.
// ------------------------------------------------------------------------

func TestReconstructPath(t *testing.T) {
	prev := map[string]string{"A": "", "B": "A", "C": "B", "D": ""}

	p, err := dijkstra.ReconstructPath(prev, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, p)

	p, err = dijkstra.ReconstructPath(prev, "A", "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, p)

	p, err = dijkstra.ReconstructPath(prev, "A", "D")
	require.NoError(t, err)
	assert.Nil(t, p)

	_, err = dijkstra.ReconstructPath(prev, "A", "Z")
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestReconstructPath_CycleGuard(t *testing.T) {
	prev := map[string]string{"A": "", "B": "C", "C": "B"}
	_, err := dijkstra.ReconstructPath(prev, "A", "B")
	assert.ErrorIs(t, err, dijkstra.ErrPredecessorCycle)
}

func TestShortestPath_Errors(t *testing.T) {
	g := buildWeighted(t, "A-B:1")
	_, _, err := dijkstra.ShortestPath(g, "A", "Z")
	assert.ErrorIs(t, err, core.ErrUnknownNode)
	_, _, err = dijkstra.ShortestPath(g, "Z", "A")
	assert.ErrorIs(t, err, core.ErrUnknownNode)
	_, _, err = dijkstra.ShortestPath(nil, "A", "B")
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestDijkstra_Idempotent(t *testing.T) {
	g := referenceGraph(t)
	d1, p1, err := dijkstra.Dijkstra(g, dijkstra.Source("Warsaw"))
	require.NoError(t, err)
	d2, p2, err := dijkstra.Dijkstra(g, dijkstra.Source("Warsaw"))
	require.NoError(t, err)
	assert.Equal(t, d1, d2)
	assert.Equal(t, p1, p2)
}

// ------------------------------------------------------------------------
// helpers
// ------------------------------------------------------------------------

// simplePathCosts returns the total weight of every simple path from start to goal.
func simplePathCosts(t *testing.T, g *core.Graph, start, goal string) []float64 {
	t.Helper()
	var costs []float64
	onPath := map[string]bool{start: true}
	var walk func(cur string, cost float64)
	walk = func(cur string, cost float64) {
		if cur == goal {
			costs = append(costs, cost)
			return
		}
		edges, err := g.Neighbors(cur)
		require.NoError(t, err)
		for _, e := range edges {
			if onPath[e.To] {
				continue
			}
			onPath[e.To] = true
			walk(e.To, cost+e.Weight)
			onPath[e.To] = false
		}
	}
	walk(start, 0)

	return costs
}

// pathWeight sums edge weights along p; nil yields +Inf.
func pathWeight(t *testing.T, g *core.Graph, p []string) float64 {
	t.Helper()
	if p == nil {
		return math.Inf(1)
	}
	total := 0.0
	for i := 1; i < len(p); i++ {
		w, err := g.EdgeWeight(p[i-1], p[i])
		require.NoError(t, err)
		total += w
	}

	return total
}
