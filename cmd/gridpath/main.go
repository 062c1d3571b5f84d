// Command gridpath plans a route over a text map and prints it.
//
// Usage:
//
//	gridpath -map level.txt -from 0,0 -to 5,0 [-reduce=false] [-legacy] [-max n] [-view] [-beep]
//
// The map uses the gridgraph.ParseMap alphabet ('#' wall, '.' floor, ' ' free,
// hex digits for costs 0..15). "-map -" reads it from stdin.
//
// Output marks the start 'S', the goal 'G', waypoints '*' and the remaining
// path cells 'o'. With -view the route is drawn on a terminal screen instead;
// press r to toggle between waypoints and the raw path, q or Esc to quit.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridpath"
	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

type config struct {
	mapPath  string
	from, to gridgraph.Point
	reduce   bool
	legacy   bool
	maxExp   int
	view     bool
	beep     bool
}

func main() {
	var cfg config
	var from, to string
	flag.StringVar(&cfg.mapPath, "map", "", "map file, or - for stdin")
	flag.StringVar(&from, "from", "0,0", "start cell as x,y")
	flag.StringVar(&to, "to", "", "goal cell as x,y (default: bottom-right corner)")
	flag.BoolVar(&cfg.reduce, "reduce", true, "reduce the path to waypoints")
	flag.BoolVar(&cfg.legacy, "legacy", false, "keep the first score of open nodes (compatibility mode)")
	flag.IntVar(&cfg.maxExp, "max", 0, "give up after this many expansions (0 = no cap)")
	flag.BoolVar(&cfg.view, "view", false, "draw the route on a terminal screen")
	flag.BoolVar(&cfg.beep, "beep", false, "play a tone when the search finishes")
	flag.Parse()

	if cfg.mapPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	g, err := loadMap(cfg.mapPath)
	if err != nil {
		log.Fatalf("load map: %v", err)
	}
	if cfg.from, err = parsePoint(from); err != nil {
		log.Fatalf("-from: %v", err)
	}
	if to == "" {
		cfg.to = gridgraph.Pt(g.Width()-1, g.Height()-1)
	} else if cfg.to, err = parsePoint(to); err != nil {
		log.Fatalf("-to: %v", err)
	}

	p, err := plan(g, cfg)
	if err != nil {
		log.Fatalf("plan: %v", err)
	}

	if cfg.beep {
		chime(p.route.Found)
	}

	if cfg.view {
		if err := runViewer(g, p); err != nil {
			log.Fatalf("view: %v", err)
		}
		return
	}
	if err := report(os.Stdout, g, p); err != nil {
		log.Fatalf("write: %v", err)
	}
}

// planned is a finished search together with what the viewer needs to
// replay it.
type planned struct {
	cfg      config
	route    gridpath.Route
	explored []gridgraph.Point
}

func plan(g *gridgraph.Grid, cfg config) (planned, error) {
	p := planned{cfg: cfg}
	search := []astar.Option{
		astar.WithMaxExpansions(cfg.maxExp),
		astar.WithOnExpand(func(pt gridgraph.Point, _ astar.Score) {
			p.explored = append(p.explored, pt)
		}),
	}
	if cfg.legacy {
		search = append(search, astar.WithLegacyOpenSet())
	}
	opts := []gridpath.PlanOption{gridpath.WithSearch(search...)}
	if !cfg.reduce {
		opts = append(opts, gridpath.WithoutReduce())
	}

	route, err := gridpath.Plan(g, cfg.from, cfg.to, opts...)
	if err != nil {
		return p, err
	}
	p.route = route

	return p, nil
}

// report writes the map with the route overlaid, followed by a summary line.
func report(w io.Writer, g *gridgraph.Grid, p planned) error {
	marks := overlay(p.cfg.from, p.cfg.to, p.route.Path, p.route.Waypoints)
	if err := g.Format(w, func(pt gridgraph.Point) (rune, bool) {
		r, ok := marks[pt]
		return r, ok
	}); err != nil {
		return err
	}

	_, err := fmt.Fprintln(w, summary(g, p))

	return err
}

func summary(g *gridgraph.Grid, p planned) string {
	r := p.route
	if r.Found {
		return fmt.Sprintf("route %v -> %v: cost %d, %d cells, %d waypoints, %d expanded",
			p.cfg.from, p.cfg.to, r.Cost, len(r.Path), len(r.Waypoints), r.Expanded)
	}

	reason := "search gave up"
	if !g.Connected(p.cfg.from, p.cfg.to, gridgraph.Impassable) {
		reason = "start and goal are not connected"
	}

	return fmt.Sprintf("no route %v -> %v: %s (%d expanded)", p.cfg.from, p.cfg.to, reason, r.Expanded)
}

// overlay maps cells to the rune drawn over them. Later marks win: path,
// then waypoints, then the endpoints.
func overlay(from, to gridgraph.Point, path, waypoints []gridgraph.Point) map[gridgraph.Point]rune {
	marks := make(map[gridgraph.Point]rune, len(path)+2)
	for _, pt := range path {
		marks[pt] = 'o'
	}
	for _, pt := range waypoints {
		marks[pt] = '*'
	}
	marks[from] = 'S'
	marks[to] = 'G'

	return marks
}

func loadMap(path string) (*gridgraph.Grid, error) {
	if path == "-" {
		return gridgraph.ParseMap(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return gridgraph.ParseMap(f)
}

// parsePoint reads "x,y" with optional spaces.
func parsePoint(s string) (gridgraph.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return gridgraph.Point{}, fmt.Errorf("want x,y, got %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return gridgraph.Point{}, fmt.Errorf("bad x in %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return gridgraph.Point{}, fmt.Errorf("bad y in %q: %w", s, err)
	}

	return gridgraph.Pt(x, y), nil
}
