package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/maneuvergen/instance"
	"github.com/katalvlaran/maneuvergen/precedence"
)

func newInspectCmd() *cobra.Command {
	var triangular bool
	var eps float64
	c := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Print a summary of an instance file and check its invariants",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := instance.ReadFile(args[0])
			if err != nil {
				return err
			}
			arcs := in.Precedence()
			layers, err := precedence.Levels(in.N(), arcs)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "switches:   %d (%d remote)\n", in.N(), in.RemoteCount())
			fmt.Fprintf(out, "teams:      %d\n", in.M())
			fmt.Fprintf(out, "arcs:       %d\n", len(arcs))
			fmt.Fprintf(out, "levels:     %d\n", len(layers))
			fmt.Fprintf(out, "density:    %.3f\n", in.Density())

			if err = in.Validate(eps); err != nil {
				return err
			}
			if triangular {
				if err = in.CheckTriangular(eps); err != nil {
					return err
				}
			}
			fmt.Fprintln(out, "valid")
			return nil
		},
	}
	c.Flags().BoolVar(&triangular, "triangular", false, "also check the triangular inequality")
	c.Flags().Float64Var(&eps, "eps", 1e-9, "numeric tolerance")
	return c
}
