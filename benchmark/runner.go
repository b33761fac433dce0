// SPDX-License-Identifier: MIT
// Package: maneuvergen/benchmark
//
// runner.go - batch generation of a group into a directory.
//
// Layout:
//
//	dir/files/<name>.txt     instance text files
//	dir/figures/<name>.dot   precedence graphs (WithDOT)
//
// Instances are generated one after the other; each instance relaxes its
// teams concurrently. Cancellation is checked between instances.

package benchmark

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/maneuvergen/instance"
	"github.com/katalvlaran/maneuvergen/logger"
	"github.com/katalvlaran/maneuvergen/metrics"
)

// Subdirectories of a run.
const (
	FilesDir   = "files"
	FiguresDir = "figures"
)

// Runner generates benchmark groups.
type Runner struct {
	log     logger.Logger
	rec     *metrics.Recorder
	dot     bool
	workers int
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the progress logger. Panics on nil.
func WithLogger(l logger.Logger) RunnerOption {
	if l == nil {
		panic("benchmark: WithLogger(nil)")
	}
	return func(r *Runner) { r.log = l }
}

// WithRecorder records every generation in rec.
func WithRecorder(rec *metrics.Recorder) RunnerOption {
	return func(r *Runner) { r.rec = rec }
}

// WithDOT enables writing figures/<name>.dot next to every instance.
func WithDOT(enabled bool) RunnerOption {
	return func(r *Runner) { r.dot = enabled }
}

// WithWorkers bounds per-instance relaxation concurrency. Panics if w < 1.
func WithWorkers(w int) RunnerOption {
	if w < 1 {
		panic("benchmark: WithWorkers(w < 1)")
	}
	return func(r *Runner) { r.workers = w }
}

// NewRunner returns a Runner with a no-op logger and no metrics.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{log: logger.Nop}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// TagStats summarizes the densities of one precedence family.
type TagStats struct {
	Count  int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Summary describes a finished run.
type Summary struct {
	Group string
	// Files lists the written instance paths in generation order.
	Files []string
	// ByTag holds density statistics per family tag.
	ByTag map[string]TagStats
}

// Tags returns the tags of s.ByTag in ascending order.
func (s *Summary) Tags() []string {
	tags := make([]string, 0, len(s.ByTag))
	for t := range s.ByTag {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

// Run generates every job of g under dir. On error, files already written
// stay in place and the partial summary is returned with the error.
func (r *Runner) Run(ctx context.Context, g Group, dir string) (*Summary, error) {
	jobs, err := g.Jobs()
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	filesDir := filepath.Join(dir, FilesDir)
	if err = os.MkdirAll(filesDir, 0o755); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	figuresDir := filepath.Join(dir, FiguresDir)
	if r.dot {
		if err = os.MkdirAll(figuresDir, 0o755); err != nil {
			return nil, fmt.Errorf("Run: %w", err)
		}
	}

	genOpts := []instance.Option{instance.WithLogger(r.log)}
	if r.workers > 0 {
		genOpts = append(genOpts, instance.WithWorkers(r.workers))
	}

	r.log.Infof("Creating instances from group %s (%d instances)", g.Name, len(jobs))
	sum := &Summary{Group: g.Name, ByTag: make(map[string]TagStats)}
	densities := make(map[string][]float64)
	defer func() {
		for tag, ds := range densities {
			sum.ByTag[tag] = summarize(ds)
		}
	}()

	for idx, job := range jobs {
		if err = ctx.Err(); err != nil {
			return sum, fmt.Errorf("Run: %w", err)
		}
		start := time.Now()
		kind := string(job.Config.Precedence.Kind)

		path, density, err := r.runJob(ctx, job, filesDir, figuresDir, genOpts)
		if err != nil {
			if r.rec != nil {
				r.rec.ObserveFailure(kind)
			}
			r.log.Errorf("instance %s: %v", job.Name, err)
			return sum, fmt.Errorf("Run: %s: %w", job.Name, err)
		}
		if r.rec != nil {
			r.rec.ObserveInstance(kind, density, time.Since(start))
		}
		sum.Files = append(sum.Files, path)
		densities[job.Tag] = append(densities[job.Tag], density)

		done := idx + 1
		r.log.Infof("Progress: %d of %d (%.2f%%)", done, len(jobs), float64(done)/float64(len(jobs))*100)
	}
	return sum, nil
}

// runJob generates and writes one instance, returning its path and density.
func (r *Runner) runJob(ctx context.Context, job Job, filesDir, figuresDir string, opts []instance.Option) (string, float64, error) {
	in, err := instance.Generate(ctx, job.Config, opts...)
	if err != nil {
		return "", 0, err
	}
	path := filepath.Join(filesDir, job.Name+".txt")
	if err = instance.WriteFile(path, in); err != nil {
		return "", 0, err
	}
	if r.dot {
		if err = writeDOT(filepath.Join(figuresDir, job.Name+".dot"), job.Name, in); err != nil {
			return "", 0, err
		}
	}
	return path, in.Density(), nil
}

func writeDOT(path, name string, in *instance.Instance) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return in.WriteDOT(f, dotName(name))
}

// dotName turns an instance name into a DOT identifier.
func dotName(name string) string {
	b := []byte(name)
	for i, c := range b {
		if c == '-' || c == '.' {
			b[i] = '_'
		}
	}
	if len(b) > 0 && b[0] >= '0' && b[0] <= '9' {
		return "g_" + string(b)
	}
	return string(b)
}

func summarize(ds []float64) TagStats {
	ts := TagStats{Count: len(ds)}
	if len(ds) == 0 {
		return ts
	}
	ts.Mean, ts.StdDev = stat.MeanStdDev(ds, nil)
	if len(ds) == 1 {
		ts.StdDev = 0
	}
	ts.Min, ts.Max = ds[0], ds[0]
	for _, d := range ds[1:] {
		if d < ts.Min {
			ts.Min = d
		}
		if d > ts.Max {
			ts.Max = d
		}
	}
	return ts
}
