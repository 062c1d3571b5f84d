// Package dijkstra_test provides examples demonstrating the grid distance field.
// Each example is runnable via “go test -run Example”.
package dijkstra_test

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// ExampleDistances prints the distance field of a small map with a wall
// and a patch of mud (cost 3).
func ExampleDistances() {
	g, _ := gridgraph.ParseMap(strings.NewReader("" +
		"..#.\n" +
		".33.\n" +
		"....\n"))

	f, err := dijkstra.Distances(g, gridgraph.Pt(0, 0))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for y := 0; y < g.Height(); y++ {
		row := make([]string, 0, g.Width())
		for x := 0; x < g.Width(); x++ {
			if d, ok := f.Distance(gridgraph.Pt(x, y)); ok {
				row = append(row, strconv.FormatInt(d, 10))
			} else {
				row = append(row, "#")
			}
		}
		fmt.Println(strings.Join(row, ","))
	}
	path, _ := f.PathTo(gridgraph.Pt(3, 0))
	fmt.Println(path)

	// Output:
	// 0,2,#,14
	// 2,6,10,12
	// 4,6,8,10
	// [(0,0) (1,0) (1,1) (2,1) (3,1) (3,0)]
}
