package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridpath/bresenham"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/waypoint"
)

const (
	runePath     = 'o'
	runeWaypoint = '*'
	runeSegment  = '·'
)

var (
	styleLow      = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleHigh     = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleWall     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	stylePath     = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleWaypoint = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleEndpoint = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	exploredBg    = tcell.ColorNavy
)

type cellSet map[gridgraph.Point]struct{}

func (s cellSet) has(p gridgraph.Point) bool {
	_, ok := s[p]
	return ok
}

// viewer draws one planned route: costs, explored cells, and either the raw
// path or the waypoints joined by their sight lines.
type viewer struct {
	screen tcell.Screen
	grid   *gridgraph.Grid
	p      planned

	explored  cellSet
	path      cellSet
	waypoints cellSet
	segments  cellSet

	showWaypoints bool
}

func runViewer(g *gridgraph.Grid, p planned) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	newViewer(screen, g, p).loop()

	return nil
}

func newViewer(screen tcell.Screen, g *gridgraph.Grid, p planned) *viewer {
	v := &viewer{
		screen:        screen,
		grid:          g,
		p:             p,
		explored:      make(cellSet, len(p.explored)),
		path:          make(cellSet, len(p.route.Path)),
		waypoints:     make(cellSet),
		segments:      make(cellSet),
		showWaypoints: p.cfg.reduce,
	}
	for _, pt := range p.explored {
		v.explored[pt] = struct{}{}
	}
	for _, pt := range p.route.Path {
		v.path[pt] = struct{}{}
	}

	// The route may have been planned without reduction; the viewer can
	// still toggle to waypoints.
	wps := waypoint.Reduce(g, p.route.Path)
	for i, pt := range wps {
		v.waypoints[pt] = struct{}{}
		if i == 0 {
			continue
		}
		prev := wps[i-1]
		for _, xy := range bresenham.Line(prev.X, prev.Y, pt.X, pt.Y) {
			v.segments[gridgraph.Pt(xy[0], xy[1])] = struct{}{}
		}
	}

	return v
}

func (v *viewer) loop() {
	for {
		v.draw()
		switch ev := v.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			v.screen.Sync()
		case *tcell.EventKey:
			if !v.handleKey(ev.Key(), ev.Rune()) {
				return
			}
		}
	}
}

// handleKey applies one key press and reports whether the viewer should
// keep running.
func (v *viewer) handleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
		switch r {
		case 'q':
			return false
		case 'r':
			v.showWaypoints = !v.showWaypoints
		}
	}

	return true
}

func (v *viewer) draw() {
	v.screen.Clear()
	for y := 0; y < v.grid.Height(); y++ {
		for x := 0; x < v.grid.Width(); x++ {
			r, st := v.cell(gridgraph.Pt(x, y))
			v.screen.SetContent(x, y, r, nil, st)
		}
	}

	mode := "raw path"
	if v.showWaypoints {
		mode = "waypoints"
	}
	v.text(0, v.grid.Height()+1, summary(v.grid, v.p))
	v.text(0, v.grid.Height()+2, fmt.Sprintf("showing %s  [r] toggle  [q] quit", mode))
	v.screen.Show()
}

// cell picks the rune and style for p. Endpoints beat route marks, which
// beat the terrain symbol; explored cells get a tinted background.
func (v *viewer) cell(p gridgraph.Point) (rune, tcell.Style) {
	c := v.grid.Cost(p)
	r, st := gridgraph.Symbol(c), styleLow
	switch {
	case c == gridgraph.Impassable:
		st = styleWall
	case c > gridgraph.Impassable/2:
		st = styleHigh
	}
	if v.explored.has(p) {
		st = st.Background(exploredBg)
	}

	switch {
	case p == v.p.cfg.from:
		return 'S', styleEndpoint
	case p == v.p.cfg.to:
		return 'G', styleEndpoint
	case v.showWaypoints && v.waypoints.has(p):
		return runeWaypoint, styleWaypoint
	case v.showWaypoints && v.segments.has(p):
		return runeSegment, stylePath
	case !v.showWaypoints && v.path.has(p):
		return runePath, stylePath
	}

	return r, st
}

func (v *viewer) text(x, y int, s string) {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, styleStatus)
		x++
	}
}
