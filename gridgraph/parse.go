package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Map symbols understood by ParseMap and written by Format.
const (
	SymbolWall  = '#' // Impassable
	SymbolFloor = '.' // cost 1
	SymbolFree  = ' ' // cost 0
)

// ParseMap reads a plain-text map, one row per line:
//
//	'#'            Impassable
//	'.'            cost 1
//	' '            cost 0
//	0-9, a-f, A-F  cost 0..15
//
// Trailing '\r' and trailing blank lines are dropped. All rows must have the
// same length.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrBadSymbol (with line and
// column) on malformed input, or the reader's error.
// Complexity: O(W×H).
func ParseMap(r io.Reader) (*Grid, error) {
	var rows [][]Cost
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimRight(sc.Text(), "\r")
		row := make([]Cost, 0, len(text))
		for col, ch := range text {
			c, ok := symbolCost(ch)
			if !ok {
				return nil, fmt.Errorf("%w %q at line %d, column %d", ErrBadSymbol, ch, line, col+1)
			}
			row = append(row, c)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: reading map: %w", err)
	}
	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}

	return FromRows(rows)
}

// symbolCost maps one map character to its cost.
func symbolCost(ch rune) (Cost, bool) {
	switch {
	case ch == SymbolWall:
		return Impassable, true
	case ch == SymbolFloor:
		return 1, true
	case ch == SymbolFree:
		return 0, true
	case ch >= '0' && ch <= '9':
		return Cost(ch - '0'), true
	case ch >= 'a' && ch <= 'f':
		return Cost(ch-'a') + 10, true
	case ch >= 'A' && ch <= 'F':
		return Cost(ch-'A') + 10, true
	}

	return 0, false
}

// Symbol returns the map symbol for c, the inverse of ParseMap. Costs above 15
// that are not Impassable have no exact symbol and render as '+'.
func Symbol(c Cost) rune {
	switch {
	case c == Impassable:
		return SymbolWall
	case c == 1:
		return SymbolFloor
	case c == 0:
		return SymbolFree
	case c < 10:
		return rune('0' + c)
	case c < 16:
		return rune('a' + c - 10)
	}

	return '+'
}
