package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.Unit("kanji", OutcomeCreated)
	m.Unit("kanji", OutcomeCreated)
	m.Unit("kanji", OutcomeSkipped)
	m.Run("kanji", nil)
	m.Run("kanji", errors.New("listing unavailable"))
	m.Backfill()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.units.WithLabelValues("kanji", OutcomeCreated)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.units.WithLabelValues("kanji", OutcomeSkipped)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.runs.WithLabelValues("kanji", ResultSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.runs.WithLabelValues("kanji", ResultError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.backfills))
}

func TestMetrics_NilReceiver(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.Unit("radical", OutcomeFailed)
		m.Run("radical", nil)
		m.Backfill()
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.Unit("vocabulary", OutcomeFailed)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Result().Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `wanikani_units_total{kind="vocabulary",outcome="failed"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
