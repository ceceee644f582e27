package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Selection outcomes.
const (
	OutcomeServed = "served"
	OutcomeCached = "cached"
	OutcomeEmpty  = "empty"
	OutcomeError  = "error"
)

// Tracking results.
const (
	ResultRecorded     = "recorded"
	ResultDeduplicated = "deduplicated"
	ResultFailed       = "failed"
)

// Engine records ad selection and tracking activity. A nil *Engine is valid
// and records nothing.
type Engine struct {
	selections *prometheus.CounterVec
	latency    *prometheus.HistogramVec
	events     *prometheus.CounterVec
	overshoot  *prometheus.CounterVec
	backend    *prometheus.CounterVec
}

// NewEngine registers the engine metrics on the provided registerer.
func NewEngine(reg prometheus.Registerer) *Engine {
	if reg == nil {
		return &Engine{}
	}
	selections := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ad_selections_total",
		Help: "Ad selection requests by outcome.",
	}, []string{"outcome"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ad_selection_duration_seconds",
		Help:    "Time spent selecting an advertisement.",
		Buckets: prometheus.DefBuckets,
	}, []string{"outcome"})
	events := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ad_events_total",
		Help: "Tracked ad events by kind and result.",
	}, []string{"event", "result"})
	overshoot := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "campaign_overshoot_total",
		Help: "Accruals that left a campaign past one of its limits.",
	}, []string{"limit"})
	backend := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ad_store_errors_total",
		Help: "Cache and dedup backend failures that were tolerated.",
	}, []string{"store"})
	reg.MustRegister(selections, latency, events, overshoot, backend)
	return &Engine{
		selections: selections,
		latency:    latency,
		events:     events,
		overshoot:  overshoot,
		backend:    backend,
	}
}

// ObserveSelection counts a selection and its duration.
func (e *Engine) ObserveSelection(outcome string, d time.Duration) {
	if e == nil || e.selections == nil {
		return
	}
	e.selections.WithLabelValues(outcome).Inc()
	e.latency.WithLabelValues(outcome).Observe(d.Seconds())
}

// IncEvent counts a tracking call.
func (e *Engine) IncEvent(event, result string) {
	if e == nil || e.events == nil {
		return
	}
	e.events.WithLabelValues(normalizeLabel(event), result).Inc()
}

// IncOvershoot counts an accrual past a limit.
func (e *Engine) IncOvershoot(limit string) {
	if e == nil || e.overshoot == nil {
		return
	}
	e.overshoot.WithLabelValues(normalizeLabel(limit)).Inc()
}

// IncBackendError counts a tolerated failure of the named store.
func (e *Engine) IncBackendError(store string) {
	if e == nil || e.backend == nil {
		return
	}
	e.backend.WithLabelValues(normalizeLabel(store)).Inc()
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
