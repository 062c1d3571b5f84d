package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const (
	ansiGreen = "\x1b[32m"
	ansiRed   = "\x1b[91m"
	ansiReset = "\x1b[0m"

	// colorSplit is the highest cost rendered green by String.
	colorSplit Cost = Impassable / 2
)

// String renders every cell as two upper-case hex digits, green for costs
// at or below the midpoint of the cost range and red above it. Each row is
// preceded by a line break. Intended for debugging only.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.height * (1 + g.width*(2+len(ansiGreen)+len(ansiReset))))
	for y := 0; y < g.height; y++ {
		b.WriteByte('\n')
		for x := 0; x < g.width; x++ {
			c := g.cells[y*g.width+x]
			if c <= colorSplit {
				b.WriteString(ansiGreen)
			} else {
				b.WriteString(ansiRed)
			}
			fmt.Fprintf(&b, "%02X", c)
			b.WriteString(ansiReset)
		}
	}

	return b.String()
}

// Format writes g in the ParseMap alphabet, one row per line. When mark is
// non-nil it is consulted per cell; a true result replaces the cell symbol
// with the returned rune (e.g. to overlay a path).
func (g *Grid) Format(w io.Writer, mark func(p Point) (rune, bool)) error {
	bw := bufio.NewWriter(w)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			p := Point{X: x, Y: y}
			ch := Symbol(g.cells[y*g.width+x])
			if mark != nil {
				if r, ok := mark(p); ok {
					ch = r
				}
			}
			bw.WriteRune(ch)
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
