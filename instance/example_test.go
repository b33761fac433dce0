package instance_test

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/maneuvergen/instance"
	"github.com/katalvlaran/maneuvergen/precedence"
)

// ExampleGenerate builds a small instance with a sequential topology.
func ExampleGenerate() {
	cfg := instance.DefaultConfig(4, 1)
	cfg.Precedence = precedence.StagedSpec(precedence.KindSequential, 2)
	cfg.Triangular = true
	cfg.IntegerOnly = true
	cfg.Seed = 3

	in, err := instance.Generate(context.Background(), cfg)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(in.N(), in.M(), in.RemoteCount(), in.Validate(0) == nil, in.CheckTriangular(0) == nil)
	// Output: 4 1 1 true true
}

// ExampleRead parses the text format.
func ExampleRead() {
	const text = `2 1 1
1 M 3
2 R 1
1 0
2 1 1
0 5 6
5 0 7
6 7 0
`
	in, err := instance.Read(strings.NewReader(text))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(in.Precedence(), in.Duration(1), in.Technology(2))
	_, _ = in.WriteTo(os.Stdout)
	// Output:
	// [{1 2}] 3 R
	// 2 1 1.0
	// 1 M 3
	// 2 R 1
	// 1 0
	// 2 1 1
	// 0 5 6
	// 5 0 7
	// 6 7 0
}
