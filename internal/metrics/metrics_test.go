package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RegistersInstruments(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.InvoicesCreated.WithLabelValues("standard").Inc()
	m.QuotesComputed.Inc()
	m.ValidationFailures.WithLabelValues("property_area").Inc()
	m.InvoiceTotal.Observe(137.2356)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.InvoicesCreated.WithLabelValues("standard")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.QuotesComputed))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 4)
}

func TestNew_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)
	assert.Panics(t, func() { New(reg) })
}
