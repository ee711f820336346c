package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder holds the service's Prometheus collectors. A nil *Recorder is
// valid and records nothing.
type Recorder struct {
	items          *prometheus.CounterVec
	skippedDocs    prometheus.Counter
	cacheLookups   *prometheus.CounterVec
	ingestDuration *prometheus.HistogramVec
}

// NewRecorder creates the collectors and registers them with reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		items: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mailcamp",
			Name:      "ingested_items_total",
			Help:      "Uploaded rows and documents by source and outcome.",
		}, []string{"source", "outcome"}),
		skippedDocs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "mailcamp",
			Name:      "skipped_documents_total",
			Help:      "Stored documents that failed to deserialize on read.",
		}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mailcamp",
			Name:      "cache_lookups_total",
			Help:      "Campaign snapshot cache lookups by result.",
		}, []string{"result"}),
		ingestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "mailcamp",
			Name:      "ingest_duration_seconds",
			Help:      "Wall time of ingestion calls.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"source"}),
	}
	reg.MustRegister(r.items, r.skippedDocs, r.cacheLookups, r.ingestDuration)
	return r
}

// Ingested records the outcome of one ingestion call.
func (r *Recorder) Ingested(source string, inserted, failed int, took time.Duration) {
	if r == nil {
		return
	}
	r.items.WithLabelValues(source, "inserted").Add(float64(inserted))
	r.items.WithLabelValues(source, "failed").Add(float64(failed))
	r.ingestDuration.WithLabelValues(source).Observe(took.Seconds())
}

// SkippedDocuments counts documents dropped during reconstruction.
func (r *Recorder) SkippedDocuments(n int) {
	if r == nil {
		return
	}
	r.skippedDocs.Add(float64(n))
}

// CacheLookup counts a snapshot lookup; result is hit, miss or error.
func (r *Recorder) CacheLookup(result string) {
	if r == nil {
		return
	}
	r.cacheLookups.WithLabelValues(result).Inc()
}
