package gridgraph_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// TestParseMap_Alphabet covers every symbol class of the map format.
func TestParseMap_Alphabet(t *testing.T) {
	g, err := gridgraph.ParseMap(strings.NewReader("#. 9aF\r\n\n\n"))
	require.NoError(t, err)
	require.Equal(t, 6, g.Width())
	require.Equal(t, 1, g.Height())

	want := []gridgraph.Cost{gridgraph.Impassable, 1, 0, 9, 10, 15}
	for x, c := range want {
		assert.Equal(t, c, g.Cost(gridgraph.Pt(x, 0)), "x=%d", x)
	}
}

func TestParseMap_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		err  error
	}{
		{"Empty", "", gridgraph.ErrEmptyGrid},
		{"OnlyBlankLines", "\n\n", gridgraph.ErrEmptyGrid},
		{"Ragged", "...\n..\n", gridgraph.ErrNonRectangular},
		{"BadSymbol", "..\n.x\n", gridgraph.ErrBadSymbol},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.ParseMap(strings.NewReader(tc.in))
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestParseMap_BadSymbolPosition(t *testing.T) {
	_, err := gridgraph.ParseMap(strings.NewReader("..\n.x\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2, column 2")
}

// TestParseMap_FormatRoundTrip verifies Format writes what ParseMap reads.
func TestParseMap_FormatRoundTrip(t *testing.T) {
	src := "#..3\n. fa\n####\n"
	g, err := gridgraph.ParseMap(strings.NewReader(src))
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, g.Format(&b, nil))
	assert.Equal(t, src, b.String())
}

func TestSymbol(t *testing.T) {
	assert.Equal(t, '#', gridgraph.Symbol(gridgraph.Impassable))
	assert.Equal(t, '.', gridgraph.Symbol(1))
	assert.Equal(t, ' ', gridgraph.Symbol(0))
	assert.Equal(t, '7', gridgraph.Symbol(7))
	assert.Equal(t, 'c', gridgraph.Symbol(12))
	assert.Equal(t, '+', gridgraph.Symbol(16))
	assert.Equal(t, '+', gridgraph.Symbol(200))
}
