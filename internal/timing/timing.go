// Package timing records named phase durations for the command line tool.
//
// Each phase is a gauge in a private prometheus registry, labelled by phase
// name. Print reads them back through the registry, in the order the phases
// were started.
package timing

import (
	"fmt"
	"io"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

const (
	namespace  = "vpg"
	metricName = namespace + "_phase_duration_seconds"
	phaseLabel = "phase"
)

// Timing collects phase durations.
type Timing struct {
	reg    *prometheus.Registry
	phases *prometheus.GaugeVec

	mu    sync.Mutex
	order []string
}

// New returns an empty Timing with its own registry.
func New() *Timing {
	phases := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "phase_duration_seconds",
		Help:      "Wall-clock duration of a tool phase in seconds",
	}, []string{phaseLabel})

	reg := prometheus.NewRegistry()
	reg.MustRegister(phases)
	return &Timing{reg: reg, phases: phases}
}

// Timer measures one running phase.
type Timer struct {
	timer *prometheus.Timer
}

// Start begins timing phase. Starting a phase twice overwrites the first
// measurement but keeps its position.
func (t *Timing) Start(phase string) *Timer {
	t.mu.Lock()
	seen := false
	for _, p := range t.order {
		if p == phase {
			seen = true
			break
		}
	}
	if !seen {
		t.order = append(t.order, phase)
	}
	t.mu.Unlock()

	return &Timer{timer: prometheus.NewTimer(prometheus.ObserverFunc(t.phases.WithLabelValues(phase).Set))}
}

// Finish records the elapsed time of the phase.
func (t *Timer) Finish() {
	t.timer.ObserveDuration()
}

// Registry exposes the underlying registry, e.g. for a push gateway.
func (t *Timing) Registry() *prometheus.Registry { return t.reg }

// Durations returns the recorded seconds per finished phase.
func (t *Timing) Durations() (map[string]float64, error) {
	families, err := t.reg.Gather()
	if err != nil {
		return nil, fmt.Errorf("gather timings: %w", err)
	}
	out := make(map[string]float64)
	for _, mf := range families {
		if mf.GetName() != metricName {
			continue
		}
		for _, m := range mf.GetMetric() {
			out[phaseOf(m)] = m.GetGauge().GetValue()
		}
	}
	return out, nil
}

func phaseOf(m *dto.Metric) string {
	for _, lp := range m.GetLabel() {
		if lp.GetName() == phaseLabel {
			return lp.GetValue()
		}
	}
	return ""
}

// Print writes one "<phase>: <seconds>s" line per started phase.
func (t *Timing) Print(w io.Writer) error {
	durations, err := t.Durations()
	if err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, phase := range t.order {
		if _, err := fmt.Fprintf(w, "%s: %.3fs\n", phase, durations[phase]); err != nil {
			return err
		}
	}
	return nil
}
