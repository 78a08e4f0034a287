package bfs_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/gridbfs/bfs"
	"github.com/katalvlaran/gridbfs/grid"
	"github.com/katalvlaran/gridbfs/render"
)

// ExampleSearch finds the detour around a single wall on a 3×3 board.
func ExampleSearch() {
	l, _ := grid.ParseLayout([]string{
		"S..",
		".#.",
		"..E",
	})
	g, _ := l.Build()

	res, err := bfs.Search(g, l.Start, l.End)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Outcome, res.Len())
	fmt.Println(res.Path)
	fmt.Println(res.Overlay)
	// Output:
	// found 4
	// [(0,0) (1,0) (2,0) (2,1) (2,2)]
	// [{(2,1) right} {(2,0) right} {(1,0) down}]
}

// ExampleSearch_text prints only the finished board with its arrows.
func ExampleSearch_text() {
	l, _ := grid.ParseLayout([]string{
		"S.#....",
		"..#.##.",
		"....#E.",
	})
	g, _ := l.Build()

	// print every 1000th step frame: on a board this small, only the overlay
	sink := render.NewText(os.Stdout, render.WithEvery(1000))
	if _, err := bfs.Search(g, l.Start, l.End, bfs.WithRenderer(sink)); err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// So#>>>v
	// vo#^##v
	// >>>^#E<
}

// ExampleEngine_FindShortestPath shows the disconnected outcome and state.
func ExampleEngine_FindShortestPath() {
	l, _ := grid.ParseLayout([]string{
		"S#.",
		"##E",
	})
	g, _ := l.Build()

	e, _ := bfs.New()
	res, _ := e.FindShortestPath(g, l.Start, l.End)
	fmt.Println(res.Outcome, e.State(), g.Count(grid.Path))
	// Output:
	// no_path exhausted 0
}
