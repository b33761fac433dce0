package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/maneuvergen/benchmark"
	"github.com/katalvlaran/maneuvergen/config"
	"github.com/katalvlaran/maneuvergen/metrics"
)

type benchmarkOptions struct {
	configPath  string
	dot         bool
	metricsFile string
	workers     int
}

func newBenchmarkCmd(root *rootOptions) *cobra.Command {
	o := &benchmarkOptions{}
	c := &cobra.Command{
		Use:   "benchmark <path>",
		Short: "Generate a benchmark group into <path>/files (and <path>/figures)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBenchmark(cmd, root, o, args[0])
		},
	}
	f := c.Flags()
	f.StringVarP(&o.configPath, "config", "c", "", "YAML or JSON settings file (default group when empty)")
	f.BoolVar(&o.dot, "dot", false, "write precedence graphs as DOT files under figures/")
	f.StringVar(&o.metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile after the run")
	f.IntVar(&o.workers, "workers", 0, "teams relaxed concurrently per instance (0: GOMAXPROCS)")
	return c
}

func runBenchmark(cmd *cobra.Command, root *rootOptions, o *benchmarkOptions, dir string) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := root.newLogger(cmd, "benchmark", cfg.Logging.Level, cfg.Logging.Console)

	rec, err := metrics.NewRecorder(nil)
	if err != nil {
		return err
	}
	opts := []benchmark.RunnerOption{
		benchmark.WithLogger(log),
		benchmark.WithRecorder(rec),
		benchmark.WithDOT(o.dot),
	}
	if o.workers > 0 {
		opts = append(opts, benchmark.WithWorkers(o.workers))
	}

	sum, runErr := benchmark.NewRunner(opts...).Run(cmd.Context(), cfg.Benchmark, dir)

	textfile := o.metricsFile
	if textfile == "" {
		textfile = cfg.Metrics.Textfile
	}
	if textfile != "" {
		if err = rec.WriteTextfile(textfile); err != nil {
			log.Errorf("metrics: %v", err)
		}
	}
	if runErr != nil {
		return runErr
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %d instances in %s\n", sum.Group, len(sum.Files), dir)
	for _, tag := range sum.Tags() {
		s := sum.ByTag[tag]
		fmt.Fprintf(out, "  %s  count=%d  density mean=%.3f sd=%.3f min=%.3f max=%.3f\n",
			tag, s.Count, s.Mean, s.StdDev, s.Min, s.Max)
	}
	return nil
}
