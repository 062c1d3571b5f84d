package gridgraph_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
)

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestNew_DefaultCost verifies every cell starts at the default cost.
func TestNew_DefaultCost(t *testing.T) {
	g, err := gridgraph.New(4, 3, 7)
	require.NoError(t, err)
	assert.Equal(t, 4, g.Width())
	assert.Equal(t, 3, g.Height())
	assert.Equal(t, 12, g.Len())
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, gridgraph.Cost(7), g.Cost(gridgraph.Pt(x, y)))
		}
	}
}

// TestNew_ZeroSize verifies degenerate grids are valid and contain no cells.
func TestNew_ZeroSize(t *testing.T) {
	g, err := gridgraph.New(0, 5, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, g.Len())
	assert.False(t, g.InBounds(gridgraph.Pt(0, 0)))
}

func TestNew_NegativeSize(t *testing.T) {
	_, err := gridgraph.New(-1, 2, 0)
	assert.ErrorIs(t, err, gridgraph.ErrNegativeSize)
}

// TestFromRows_Errors verifies that FromRows rejects empty or ragged inputs.
func TestFromRows_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows [][]gridgraph.Cost
		err  error
	}{
		{"EmptyRows", [][]gridgraph.Cost{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]gridgraph.Cost{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]gridgraph.Cost{{1, 2}, {3}}, gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.FromRows(tc.rows)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestFromRows_CopiesInput ensures later edits to the source slice are not visible.
func TestFromRows_CopiesInput(t *testing.T) {
	rows := [][]gridgraph.Cost{{1, 2}, {3, 4}}
	g, err := gridgraph.FromRows(rows)
	require.NoError(t, err)
	rows[0][0] = 99
	assert.Equal(t, gridgraph.Cost(1), g.Cost(gridgraph.Pt(0, 0)))
	assert.Equal(t, gridgraph.Cost(3), g.Cost(gridgraph.Pt(0, 1)))
	assert.Equal(t, gridgraph.Cost(4), g.Cost(gridgraph.Pt(1, 1)))
}

//----------------------------------------------------------------------------//
// Accessors
//----------------------------------------------------------------------------//

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	g, err := gridgraph.New(3, 2, 1)
	require.NoError(t, err)

	for _, p := range []gridgraph.Point{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, g.InBounds(p), "InBounds(%v)", p)
	}
	for _, p := range []gridgraph.Point{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.False(t, g.InBounds(p), "InBounds(%v)", p)
	}
}

// TestSetCost_SingleCell verifies SetCost touches only the addressed cell.
func TestSetCost_SingleCell(t *testing.T) {
	g, err := gridgraph.New(3, 3, 1)
	require.NoError(t, err)
	require.NoError(t, g.SetCost(gridgraph.Pt(1, 2), gridgraph.Impassable))

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			want := gridgraph.Cost(1)
			if x == 1 && y == 2 {
				want = gridgraph.Impassable
			}
			c, err := g.CostAt(gridgraph.Pt(x, y))
			require.NoError(t, err)
			assert.Equal(t, want, c, "cell (%d,%d)", x, y)
		}
	}
	assert.False(t, g.Passable(gridgraph.Pt(1, 2)))
	assert.True(t, g.Passable(gridgraph.Pt(1, 1)))
}

// TestOutOfBounds verifies checked access reports ErrOutOfBounds and the
// unchecked accessor panics instead of reading a neighboring row.
func TestOutOfBounds(t *testing.T) {
	g, err := gridgraph.New(2, 2, 1)
	require.NoError(t, err)

	_, err = g.CostAt(gridgraph.Pt(2, 0))
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
	assert.ErrorIs(t, g.SetCost(gridgraph.Pt(0, -1), 3), gridgraph.ErrOutOfBounds)
	assert.Panics(t, func() { g.Cost(gridgraph.Pt(2, 0)) })
}

func TestIndexCoordinate_RoundTrip(t *testing.T) {
	g, err := gridgraph.New(5, 4, 0)
	require.NoError(t, err)
	for i := 0; i < g.Len(); i++ {
		p := g.Coordinate(i)
		assert.True(t, g.InBounds(p))
		assert.Equal(t, i, g.Index(p))
	}
	assert.Equal(t, 7, g.Index(gridgraph.Pt(2, 1)))
}

func TestClone_Independent(t *testing.T) {
	g, err := gridgraph.New(2, 2, 1)
	require.NoError(t, err)
	c := g.Clone()
	require.NoError(t, c.SetCost(gridgraph.Pt(0, 0), 9))
	assert.Equal(t, gridgraph.Cost(1), g.Cost(gridgraph.Pt(0, 0)))
	assert.Equal(t, gridgraph.Cost(9), c.Cost(gridgraph.Pt(0, 0)))
}

func TestPoint_String(t *testing.T) {
	assert.Equal(t, "(3,-1)", gridgraph.Pt(3, -1).String())
}

//----------------------------------------------------------------------------//
// Rendering
//----------------------------------------------------------------------------//

// TestString_Colors checks hex formatting and the green/red split at 127/128.
func TestString_Colors(t *testing.T) {
	g, err := gridgraph.FromRows([][]gridgraph.Cost{{0x7F, 0x80}, {0x01, gridgraph.Impassable}})
	require.NoError(t, err)

	want := "\n" +
		"\x1b[32m7F\x1b[0m\x1b[91m80\x1b[0m" +
		"\n" +
		"\x1b[32m01\x1b[0m\x1b[91mFF\x1b[0m"
	assert.Equal(t, want, g.String())
}

func TestFormat_Overlay(t *testing.T) {
	g, err := gridgraph.ParseMap(strings.NewReader("..#\n.3.\n"))
	require.NoError(t, err)

	var b strings.Builder
	err = g.Format(&b, func(p gridgraph.Point) (rune, bool) {
		return '*', p == gridgraph.Pt(1, 0)
	})
	require.NoError(t, err)
	assert.Equal(t, ".*#\n.3.\n", b.String())
}
