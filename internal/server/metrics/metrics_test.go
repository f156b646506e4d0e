package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.Commits.WithLabelValues("partial").Inc()
	m.PendingRelocations.Add(2)
	m.ReconciledRecords.WithLabelValues("insert").Add(3)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Commits.WithLabelValues("partial")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.PendingRelocations))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.ReconciledRecords.WithLabelValues("insert")))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := map[string]bool{}
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["filekeeper_commits_total"])
	assert.True(t, names["filekeeper_pending_relocation_keys_total"])
}

func TestNew_DoubleRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)
	require.Panics(t, func() { New(reg) })
}

func TestNewUnregistered_Independent(t *testing.T) {
	a := NewUnregistered()
	b := NewUnregistered()
	a.Deletes.WithLabelValues("ok").Inc()
	assert.Equal(t, 0.0, testutil.ToFloat64(b.Deletes.WithLabelValues("ok")))
}
