package benchmark_test

import (
	"fmt"

	"github.com/katalvlaran/maneuvergen/benchmark"
)

func ExampleInstanceName() {
	fmt.Println(benchmark.InstanceName("ORCS", "", 50, 10, benchmark.TagIntree, 20, 2))
	// Output: ORCS-050-10-T-20-03
}

func ExampleGroup_Jobs() {
	jobs, err := benchmark.DefaultGroup().Jobs()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(len(jobs), jobs[0].Name, jobs[0].Config.Precedence)
	// Output: 576 ORCS-006-02-S-02-01 sequential(k=2)
}
