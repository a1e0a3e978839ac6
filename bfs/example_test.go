package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/lvcolor/bfs"
	"github.com/katalvlaran/lvcolor/core"
)

// ExampleBFSResult_Partition splits a 2×3 ladder into its two bipartite sides.
func ExampleBFSResult_Partition() {
	//	A───B───C
	//	│   │   │
	//	D───E───F
	g := core.NewGraph()
	for _, e := range [][2]string{
		{"A", "B"}, {"B", "C"},
		{"D", "E"}, {"E", "F"},
		{"A", "D"}, {"B", "E"}, {"C", "F"},
	} {
		_, _ = g.AddEdge(e[0], e[1])
	}

	res, err := bfs.BFS(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	a, b := res.Partition()
	fmt.Println(a)
	fmt.Println(b)
	// Output:
	// [A C E]
	// [B D F]
}
