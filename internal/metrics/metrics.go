// Package metrics exposes Prometheus instruments for the lawncare service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "lawncare"

type Metrics struct {
	InvoicesCreated    *prometheus.CounterVec
	QuotesComputed     prometheus.Counter
	ValidationFailures *prometheus.CounterVec
	InvoiceTotal       prometheus.Histogram
}

// New creates the instruments and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		InvoicesCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invoices_created_total",
			Help:      "Invoices issued, by rate schedule.",
		}, []string{"rate_schedule"}),
		QuotesComputed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quotes_computed_total",
			Help:      "Quotes computed without issuing an invoice.",
		}),
		ValidationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validation_failures_total",
			Help:      "Rejected requests, by offending field.",
		}, []string{"field"}),
		InvoiceTotal: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "invoice_total_amount",
			Help:      "Unrounded invoice totals including tax.",
			Buckets:   []float64{25, 50, 100, 250, 500, 1000, 2500, 5000},
		}),
	}

	reg.MustRegister(m.InvoicesCreated, m.QuotesComputed, m.ValidationFailures, m.InvoiceTotal)
	return m
}
