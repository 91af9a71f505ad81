// Package metrics records generation outcomes as Prometheus metrics.
//
// netgen runs as a short-lived batch command, so metrics are written to a
// file in the text exposition format for the node_exporter textfile
// collector rather than served over HTTP.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/imamik/netgen/internal/network"
)

// Recorder implements network.Recorder on a private registry.
type Recorder struct {
	registry *prometheus.Registry

	runsTotal     *prometheus.CounterVec
	failuresTotal *prometheus.CounterVec
	resources     prometheus.Gauge
}

var _ network.Recorder = (*Recorder)(nil)

// NewRecorder creates a recorder with its own registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		runsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "netgen",
				Subsystem: "generator",
				Name:      "runs_total",
				Help:      "Total number of manifest generations by result",
			},
			[]string{"result"},
		),
		failuresTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "netgen",
				Subsystem: "generator",
				Name:      "failures_total",
				Help:      "Total number of rejected contexts by validation failure kind",
			},
			[]string{"kind"},
		),
		resources: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "netgen",
				Subsystem: "generator",
				Name:      "resources",
				Help:      "Number of resources in the last generated manifest",
			},
		),
	}

	r.registry.MustRegister(r.runsTotal, r.failuresTotal, r.resources)
	return r
}

// Generated records a successful generation.
func (r *Recorder) Generated(resources int) {
	r.runsTotal.WithLabelValues("success").Inc()
	r.resources.Set(float64(resources))
}

// Failed records a rejected context.
func (r *Recorder) Failed(kind network.ErrorKind) {
	r.runsTotal.WithLabelValues("failure").Inc()
	r.failuresTotal.WithLabelValues(string(kind)).Inc()
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile writes all metrics to path atomically.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics file: %w", err)
	}
	return nil
}
