package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Prometheus metrics for the relayer pipeline
var (
	EventsIngestedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "teleport_events_ingested_total",
			Help: "Total number of burn events stored by the ingestor",
		},
		[]string{"source_chain_id"},
	)

	EventsSkippedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "teleport_events_skipped_total",
			Help: "Total number of malformed burn events skipped by the ingestor",
		},
		[]string{"source_chain_id", "field"},
	)

	PendingLeaves = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "commitment_pending_leaves",
			Help: "Number of leaves waiting to be sealed into a batch",
		},
		[]string{"source_chain_id"},
	)

	BatchesSealedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "commitment_batches_sealed_total",
			Help: "Total number of sealed commitment batches",
		},
		[]string{"source_chain_id"},
	)

	RootsSubmittedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "roots_submitted_total",
			Help: "Total number of updateRoot transactions sent",
		},
	)

	BatchesConfirmedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "commitment_batches_confirmed_total",
			Help: "Total number of batches whose root reached confirmation depth",
		},
	)

	BatchesFailedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "commitment_batches_failed_total",
			Help: "Total number of batches marked submission_failed",
		},
	)

	ProofsServedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "proofs_served_total",
			Help: "Total number of proof lookups by result",
		},
		[]string{"result"},
	)

	ProofRequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "proof_request_duration_seconds",
			Help:    "Duration of proof lookups",
			Buckets: prometheus.DefBuckets,
		},
	)

	TransitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "teleport_transitions_total",
			Help: "Total number of teleport record transitions by target status",
		},
		[]string{"status"},
	)
)

var registerOnce sync.Once

// Register registers all Prometheus metrics with the default registry
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(EventsIngestedTotal)
		prometheus.MustRegister(EventsSkippedTotal)
		prometheus.MustRegister(PendingLeaves)
		prometheus.MustRegister(BatchesSealedTotal)
		prometheus.MustRegister(RootsSubmittedTotal)
		prometheus.MustRegister(BatchesConfirmedTotal)
		prometheus.MustRegister(BatchesFailedTotal)
		prometheus.MustRegister(ProofsServedTotal)
		prometheus.MustRegister(ProofRequestDuration)
		prometheus.MustRegister(TransitionsTotal)
	})
}
