package precedence_test

import (
	"fmt"

	"github.com/katalvlaran/maneuvergen/precedence"
)

// ExampleBuild shows a seeded random precedence graph and its order strength.
func ExampleBuild() {
	g, err := precedence.Build(3, precedence.RandomOrder(0), precedence.WithSeed(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(len(g.Arcs), g.Density)
	// Output: 0 0
}

// ExampleSpec_Constructor dispatches on a configured topology.
func ExampleSpec_Constructor() {
	spec := precedence.StagedSpec(precedence.KindSequential, 2)
	if err := spec.Validate(4); err != nil {
		fmt.Println("error:", err)
		return
	}
	ctor, _ := spec.Constructor()
	g, _ := precedence.Build(4, ctor, precedence.WithSeed(7))
	fmt.Println(spec, precedence.IsAcyclic(4, g.Arcs))
	// Output: sequential(k=2) true
}

// ExampleLevels lays out a small DAG by depth.
func ExampleLevels() {
	layers, _ := precedence.Levels(4, []precedence.Arc{{From: 1, To: 3}, {From: 2, To: 3}, {From: 3, To: 4}})
	fmt.Println(layers)
	// Output: [[1 2] [3] [4]]
}
