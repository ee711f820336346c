package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorder(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRecorder(reg)

	r.Ingested("file", 90, 10, time.Second)
	r.Ingested("file", 5, 0, time.Second)
	r.SkippedDocuments(2)
	r.CacheLookup("hit")
	r.CacheLookup("miss")
	r.CacheLookup("hit")

	assert.Equal(t, 95.0, testutil.ToFloat64(r.items.WithLabelValues("file", "inserted")))
	assert.Equal(t, 10.0, testutil.ToFloat64(r.items.WithLabelValues("file", "failed")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.skippedDocs))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.cacheLookups.WithLabelValues("hit")))
}

func TestNilRecorder(t *testing.T) {
	var r *Recorder
	assert.NotPanics(t, func() {
		r.Ingested("document", 1, 1, time.Millisecond)
		r.SkippedDocuments(1)
		r.CacheLookup("error")
	})
}
