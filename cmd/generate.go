package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/maneuvergen/instance"
	"github.com/katalvlaran/maneuvergen/precedence"
)

type generateOptions struct {
	filename    string
	switches    int
	teams       int
	seed        int64
	triangular  bool
	integerOnly bool
	kind        string
	stages      int
	density     float64
	remoteRate  float64
	pMin, pMax  float64
	sMin, sMax  float64
	dotPath     string
	workers     int
}

func newGenerateCmd(root *rootOptions) *cobra.Command {
	o := &generateOptions{}
	c := &cobra.Command{
		Use:   "generate",
		Short: "Generate one instance and write it to <filename>.txt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, root, o)
		},
	}
	f := c.Flags()
	f.StringVar(&o.filename, "filename", "", "output path without the .txt extension")
	f.IntVar(&o.switches, "switches", 0, "number of switches")
	f.IntVar(&o.teams, "teams", 0, "number of teams")
	f.Int64Var(&o.seed, "seed", 0, "seed of the random number generator")
	f.BoolVar(&o.triangular, "triangular", false, "enforce the triangular inequality on travel times")
	f.BoolVar(&o.integerOnly, "integer-only", false, "draw integer durations only")
	f.StringVar(&o.kind, "precedence", string(precedence.KindRandom), "precedence graph: random, independent, intree, sequential, mixed")
	f.IntVar(&o.stages, "stages", 0, "number of stages (all but random)")
	f.Float64Var(&o.density, "density", 0, "target order strength (random only)")
	f.Float64Var(&o.remoteRate, "tx-remote", instance.DefaultRemoteRate, "proportion of remote switches")
	f.Float64Var(&o.pMin, "p-min", instance.DefaultManeuverMin, "minimum maneuver time")
	f.Float64Var(&o.pMax, "p-max", instance.DefaultManeuverMax, "maximum maneuver time")
	f.Float64Var(&o.sMin, "s-min", instance.DefaultTravelMin, "minimum travel time")
	f.Float64Var(&o.sMax, "s-max", instance.DefaultTravelMax, "maximum travel time")
	f.StringVar(&o.dotPath, "dot", "", "also write the precedence graph in DOT format to this path")
	f.IntVar(&o.workers, "workers", 0, "teams relaxed concurrently (0: GOMAXPROCS)")
	for _, name := range []string{"filename", "switches", "teams"} {
		_ = c.MarkFlagRequired(name)
	}
	return c
}

// config turns the flags into an instance config. Stages and density are
// passed on only when given, so a missing parameter is reported by
// validation instead of silently defaulting.
func (o *generateOptions) config(cmd *cobra.Command) (instance.Config, error) {
	kind, err := precedence.ParseKind(o.kind)
	if err != nil {
		return instance.Config{}, err
	}
	spec := precedence.Spec{Kind: kind}
	if cmd.Flags().Changed("stages") {
		spec.Stages = &o.stages
	}
	if cmd.Flags().Changed("density") {
		spec.Density = &o.density
	}
	return instance.Config{
		Switches:    o.switches,
		Teams:       o.teams,
		Maneuver:    instance.Range{Min: o.pMin, Max: o.pMax},
		Travel:      instance.Range{Min: o.sMin, Max: o.sMax},
		RemoteRate:  o.remoteRate,
		Precedence:  spec,
		Triangular:  o.triangular,
		IntegerOnly: o.integerOnly,
		Seed:        o.seed,
	}, nil
}

func runGenerate(cmd *cobra.Command, root *rootOptions, o *generateOptions) error {
	log := root.newLogger(cmd, "generate", "", false)

	cfg, err := o.config(cmd)
	if err != nil {
		return err
	}
	opts := []instance.Option{instance.WithLogger(log)}
	if o.workers > 0 {
		opts = append(opts, instance.WithWorkers(o.workers))
	}
	in, err := instance.Generate(cmd.Context(), cfg, opts...)
	if err != nil {
		return err
	}

	path := o.filename + ".txt"
	if err = instance.WriteFile(path, in); err != nil {
		return err
	}
	if o.dotPath != "" {
		if err = writeDOTFile(o.dotPath, in); err != nil {
			return err
		}
	}
	log.Infof("wrote %s (n=%d m=%d %s density=%.3f)", path, in.N(), in.M(), cfg.Precedence, in.Density())
	return nil
}

func writeDOTFile(path string, in *instance.Instance) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dot: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("dot: %w", cerr)
		}
	}()
	return in.WriteDOT(f, "precedence")
}
