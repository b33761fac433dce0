package main

import (
	"os"

	"github.com/katalvlaran/maneuvergen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
