package observability

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ObserveLoad(t *testing.T) {
	m := NewMetrics()
	m.ObserveLoad("chicago", 6, 1, 5*time.Millisecond)
	m.ObserveLoad("chicago", 4, 0, time.Millisecond)

	assert.Equal(t, 10.0, testutil.ToFloat64(m.rowsLoaded.WithLabelValues("chicago")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rowsSkipped.WithLabelValues("chicago")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.loadDuration))
}

func TestMetrics_ObserveStatAndRun(t *testing.T) {
	m := NewMetrics()
	m.ObserveStat("time", time.Millisecond)
	m.ObserveStat("user", time.Millisecond)
	m.ObserveRun(OutcomeOK)
	m.ObserveRun(OutcomeOK)
	m.ObserveRun(OutcomeEmpty)

	assert.Equal(t, 2, testutil.CollectAndCount(m.statDuration))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.runs.WithLabelValues(OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.runs.WithLabelValues(OutcomeEmpty)))
}

func TestMetrics_WriteTextfile(t *testing.T) {
	m := NewMetrics()
	m.ObserveRun(OutcomeError)

	path := filepath.Join(t.TempDir(), "bikeshare.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `bikeshare_runs_total{outcome="error"} 1`)
}
