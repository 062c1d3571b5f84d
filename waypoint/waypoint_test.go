package waypoint_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/los"
	"github.com/katalvlaran/gridpath/waypoint"
)

func mustParse(t testing.TB, src string) *gridgraph.Grid {
	t.Helper()
	g, err := gridgraph.ParseMap(strings.NewReader(src))
	require.NoError(t, err)

	return g
}

func pts(xy ...int) []gridgraph.Point {
	out := make([]gridgraph.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, gridgraph.Pt(xy[i], xy[i+1]))
	}

	return out
}

func TestPull_Degenerate(t *testing.T) {
	g := mustParse(t, "...\n")
	assert.Empty(t, waypoint.Pull(g, nil))
	assert.Empty(t, waypoint.Reduce(g, []gridgraph.Point{}))

	single := pts(1, 0)
	got := waypoint.Reduce(g, single)
	assert.Equal(t, single, got)
	got[0] = gridgraph.Pt(2, 0)
	assert.Equal(t, gridgraph.Pt(1, 0), single[0], "input must not alias output")
}

func TestPull_StraightCorridor(t *testing.T) {
	g := mustParse(t, "......\n")
	path := pts(0, 0, 1, 0, 2, 0, 3, 0, 4, 0, 5, 0)
	assert.Equal(t, pts(0, 0, 5, 0), waypoint.Pull(g, path))
}

func TestPull_AroundWall(t *testing.T) {
	g := mustParse(t, "" +
		"...#..\n" +
		"...#..\n" +
		"......\n")
	path := pts(0, 0, 1, 0, 2, 0, 2, 1, 2, 2, 3, 2, 4, 2, 5, 2, 5, 1, 5, 0)
	want := pts(0, 0, 2, 2, 5, 2, 5, 0)
	assert.Equal(t, want, waypoint.Pull(g, path))
	assert.Equal(t, want, waypoint.Reduce(g, path))
}

func TestPull_LCorridor(t *testing.T) {
	g := mustParse(t, "" +
		"....\n" +
		"###.\n" +
		"###.\n" +
		"###.\n")
	path := pts(0, 0, 1, 0, 2, 0, 3, 0, 3, 1, 3, 2, 3, 3)
	assert.Equal(t, pts(0, 0, 3, 0, 3, 3), waypoint.Pull(g, path))
}

// TestPull_WallStart checks that a start cell blocking its own sight line
// still lets the scan advance instead of repeating the start.
func TestPull_WallStart(t *testing.T) {
	g := mustParse(t, "#...\n")
	path := pts(0, 0, 1, 0, 2, 0, 3, 0)
	assert.Equal(t, pts(0, 0, 1, 0, 3, 0), waypoint.Pull(g, path))
	assert.Equal(t, pts(0, 0, 1, 0, 3, 0), waypoint.Reduce(g, path))
}

// TestReduce_SecondPass covers a path where one greedy pass leaves a
// waypoint that a second pass removes.
func TestReduce_SecondPass(t *testing.T) {
	g := mustParse(t, "" +
		"..#\n" +
		"...\n" +
		"...\n")
	path := pts(0, 0, 1, 0, 1, 1, 2, 1, 2, 2)
	assert.Equal(t, pts(0, 0, 1, 1, 2, 2), waypoint.Pull(g, path))
	assert.Equal(t, pts(0, 0, 2, 2), waypoint.Reduce(g, path))
}

// TestReduce_Properties runs A* on random grids and checks endpoints,
// pairwise visibility, subsequence order and idempotence of the result.
func TestReduce_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for iter := 0; iter < 300; iter++ {
		w, h := 2+rng.Intn(14), 2+rng.Intn(14)
		g, err := gridgraph.New(w, h, 1)
		require.NoError(t, err)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				c := gridgraph.Cost(rng.Intn(10))
				if rng.Float64() < 0.3 {
					c = gridgraph.Impassable
				}
				require.NoError(t, g.SetCost(gridgraph.Pt(x, y), c))
			}
		}
		start := gridgraph.Pt(rng.Intn(w), rng.Intn(h))
		goal := gridgraph.Pt(rng.Intn(w), rng.Intn(h))
		require.NoError(t, g.SetCost(start, 1))
		require.NoError(t, g.SetCost(goal, 1))

		res, err := astar.Search(g, start, goal)
		require.NoError(t, err)
		if !res.Found {
			continue
		}

		wps := waypoint.Reduce(g, res.Path)
		require.NotEmpty(t, wps)
		assert.Equal(t, res.Path[0], wps[0])
		assert.Equal(t, res.Path[len(res.Path)-1], wps[len(wps)-1])
		for i := 1; i < len(wps); i++ {
			assert.True(t, los.HasLineOfSight(g, wps[i-1], wps[i], gridgraph.Impassable),
				"iter %d: %v cannot see %v", iter, wps[i-1], wps[i])
		}
		assert.True(t, isSubsequence(wps, res.Path), "iter %d", iter)
		assert.Equal(t, wps, waypoint.Reduce(g, wps), "iter %d: not idempotent", iter)
		assert.LessOrEqual(t, len(wps), len(waypoint.Pull(g, res.Path)))
	}
}

func isSubsequence(sub, seq []gridgraph.Point) bool {
	j := 0
	for _, p := range seq {
		if j < len(sub) && sub[j] == p {
			j++
		}
	}

	return j == len(sub)
}
