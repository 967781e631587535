package graph_test

import (
	"fmt"

	"github.com/Arnyev/Max-Common-Subgraph/graph"
)

// ExampleNew builds the 4-cycle and queries it.
func ExampleNew() {
	g, err := graph.New([][]bool{
		{false, true, false, true},
		{true, false, true, false},
		{false, true, false, true},
		{true, false, true, false},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.Order(), g.EdgeCount(), g.Neighbours(0), g.NonNeighbours(0))
	// Output:
	// 4 4 [1 3] [2]
}

// ExampleNewProduct shows the pair encoding of the modular product.
func ExampleNewProduct() {
	edge := graph.MustNew([][]bool{{false, true}, {true, false}})
	p := graph.NewProduct(edge, edge)
	a, b := p.Decompose(3)
	fmt.Println(p.Order(), a, b, p.AreAdjacent(p.Index(0, 0), p.Index(1, 1)))
	// Output:
	// 4 1 1 true
}
