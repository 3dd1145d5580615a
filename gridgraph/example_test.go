// File: gridgraph/example_test.go
package gridgraph_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridroute/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: link management
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_AddUndirectedEdge shows that only grid-adjacent cells can be
// linked and that links are always stored on both endpoints.
func ExampleGrid_AddUndirectedEdge() {
	g := gridgraph.NewGrid()
	a := g.AddNode(0, 0, 0)
	b := g.AddNode(1, 0, 1)
	c := g.AddNode(1, 1, 3)

	fmt.Println("a-b:", g.AddUndirectedEdge(a, b))
	fmt.Println("a-c:", g.AddUndirectedEdge(a, c)) // diagonal
	fmt.Println("b-c:", g.AddUndirectedEdge(b, c))
	for _, n := range g.Neighbors(b) {
		fmt.Printf("b links (%d,%d)\n", n.X, n.Y)
	}

	// Output:
	// a-b: true
	// a-c: false
	// b-c: true
	// b links (0,0)
	// b links (1,1)
}

// ExampleGrid_RemoveUndirectedEdge shows the difference between a missing
// endpoint (ignored) and a missing relation (reported).
func ExampleGrid_RemoveUndirectedEdge() {
	g := gridgraph.NewGrid()
	a := g.AddNode(0, 0, 0)
	b := g.AddNode(0, 1, 1)

	fmt.Println(g.RemoveUndirectedEdge(a, &gridgraph.Cell{X: 5, Y: 5}))
	err := g.RemoveUndirectedEdge(a, b)
	fmt.Println(errors.Is(err, gridgraph.ErrRelationNotFound))

	// Output:
	// <nil>
	// true
}
