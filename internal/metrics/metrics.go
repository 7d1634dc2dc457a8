// Package metrics counts catalog fetch outcomes for the end-of-run summary.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Outcome labels a single upstream request.
type Outcome string

// Fetch outcomes.
const (
	OutcomeOK      Outcome = "ok"
	OutcomeMissing Outcome = "missing"
	OutcomeFailed  Outcome = "failed"
)

const (
	catalogMetric = "bookstats_catalog_requests_total"
	detailMetric  = "bookstats_detail_requests_total"
)

// FetchMetrics holds the counters of one run on a private registry.
type FetchMetrics struct {
	registry *prometheus.Registry
	catalog  *prometheus.CounterVec
	detail   *prometheus.CounterVec
}

// NewFetchMetrics registers fresh counters.
func NewFetchMetrics() *FetchMetrics {
	m := &FetchMetrics{
		registry: prometheus.NewRegistry(),
		catalog: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: catalogMetric,
				Help: "Catalog lookups by ISBN, by outcome",
			},
			[]string{"outcome"},
		),
		detail: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: detailMetric,
				Help: "Detail record lookups by key, by outcome",
			},
			[]string{"outcome"},
		),
	}

	m.registry.MustRegister(m.catalog, m.detail)

	return m
}

// CatalogResult records the outcome of a catalog lookup.
func (m *FetchMetrics) CatalogResult(o Outcome) {
	m.catalog.WithLabelValues(string(o)).Inc()
}

// DetailResult records the outcome of a detail lookup.
func (m *FetchMetrics) DetailResult(o Outcome) {
	m.detail.WithLabelValues(string(o)).Inc()
}

// Summary is a snapshot of the counters.
type Summary struct {
	CatalogOK      int
	CatalogMissing int
	CatalogFailed  int
	DetailOK       int
	DetailMissing  int
	DetailFailed   int
}

// Summary gathers the current counter values.
func (m *FetchMetrics) Summary() (Summary, error) {
	families, err := m.registry.Gather()
	if err != nil {
		return Summary{}, fmt.Errorf("failed to gather metrics: %w", err)
	}

	var s Summary

	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			n := int(counterValue(metric))

			switch mf.GetName() {
			case catalogMetric:
				switch Outcome(outcomeLabel(metric)) {
				case OutcomeOK:
					s.CatalogOK = n
				case OutcomeMissing:
					s.CatalogMissing = n
				case OutcomeFailed:
					s.CatalogFailed = n
				}
			case detailMetric:
				switch Outcome(outcomeLabel(metric)) {
				case OutcomeOK:
					s.DetailOK = n
				case OutcomeMissing:
					s.DetailMissing = n
				case OutcomeFailed:
					s.DetailFailed = n
				}
			}
		}
	}

	return s, nil
}

// String returns a one-line rendering of the summary.
func (s Summary) String() string {
	return fmt.Sprintf(
		"catalog: %d ok, %d missing, %d failed | detail: %d ok, %d missing, %d failed",
		s.CatalogOK,
		s.CatalogMissing,
		s.CatalogFailed,
		s.DetailOK,
		s.DetailMissing,
		s.DetailFailed,
	)
}

func counterValue(m *dto.Metric) float64 {
	if c := m.GetCounter(); c != nil {
		return c.GetValue()
	}

	return 0
}

func outcomeLabel(m *dto.Metric) string {
	for _, lp := range m.GetLabel() {
		if lp.GetName() == "outcome" {
			return lp.GetValue()
		}
	}

	return ""
}
