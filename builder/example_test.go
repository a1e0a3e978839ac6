package builder_test

import (
	"fmt"

	"github.com/katalvlaran/lvcolor/builder"
	"github.com/katalvlaran/lvcolor/coloring"
)

// ExampleBuildLists builds the 6-cycle and colors it with every algorithm.
func ExampleBuildLists() {
	vs, es, err := builder.BuildLists(nil, builder.Cycle(6))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(vs)
	for _, e := range coloring.Compare(vs, es, len(vs)).Entries {
		fmt.Println(e.Algorithm, e.TotalColors)
	}
	// Output:
	// [A B C D E F]
	// firstfit 2
	// CBIP 2
	// greedy 2
	// welshpowell 2
}

// ExampleSampleSizes lists the reference sample graphs.
func ExampleSampleSizes() {
	for _, s := range builder.Samples() {
		fmt.Printf("%2d vertices, %2d edges  %s\n", s.Size, s.EdgeCount, s.Name)
	}
	// Output:
	//  5 vertices,  7 edges  order-sensitive
	//  7 vertices, 11 edges  dense-7
	//  8 vertices, 16 edges  near-complete-8
	// 10 vertices, 17 edges  hubs-10
	// 12 vertices, 22 edges  dense-12
	// 16 vertices, 52 edges  clebsch-like-16
}
