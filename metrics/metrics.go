// Package metrics records instance generation in Prometheus collectors and
// exports them in the node-exporter textfile format, so batch runs can be
// scraped after the fact without an HTTP endpoint.
package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "maneuvergen"

// Recorder holds the generation collectors.
type Recorder struct {
	reg       *prometheus.Registry
	instances *prometheus.CounterVec
	failures  *prometheus.CounterVec
	density   *prometheus.HistogramVec
	duration  prometheus.Histogram
}

// NewRecorder registers the collectors on reg. A nil reg gets a fresh
// registry. Collectors already registered on reg are reused.
func NewRecorder(reg *prometheus.Registry) (*Recorder, error) {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	r := &Recorder{
		reg: reg,
		instances: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "instances_total",
			Help:      "Number of instances generated, by precedence kind.",
		}, []string{"kind"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "failures_total",
			Help:      "Number of failed generations, by precedence kind.",
		}, []string{"kind"}),
		density: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "density",
			Help:      "Order strength of generated precedence graphs.",
			Buckets:   prometheus.LinearBuckets(0.1, 0.1, 10),
		}, []string{"kind"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_seconds",
			Help:      "Wall time to generate and write one instance.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
		}),
	}

	var err error
	if r.instances, err = register(reg, r.instances); err != nil {
		return nil, err
	}
	if r.failures, err = register(reg, r.failures); err != nil {
		return nil, err
	}
	if r.density, err = register(reg, r.density); err != nil {
		return nil, err
	}
	if r.duration, err = register(reg, r.duration); err != nil {
		return nil, err
	}
	return r, nil
}

// register adds c to reg or returns the collector already there.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, fmt.Errorf("metrics: register: %w", err)
	}
	return c, nil
}

// ObserveInstance records one successful generation.
func (r *Recorder) ObserveInstance(kind string, density float64, elapsed time.Duration) {
	r.instances.WithLabelValues(kind).Inc()
	r.density.WithLabelValues(kind).Observe(density)
	r.duration.Observe(elapsed.Seconds())
}

// ObserveFailure records one failed generation.
func (r *Recorder) ObserveFailure(kind string) {
	r.failures.WithLabelValues(kind).Inc()
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// WriteTextfile writes every metric of the registry to path in the textfile
// collector format. The file is replaced atomically.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}
	return nil
}
