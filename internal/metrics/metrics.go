// Package metrics bundles the Prometheus collectors of the configurator.
package metrics

import (
	"github.com/myrjola/droneconfigurator/internal/catalog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"net/http"
	"strconv"
)

const namespace = "configurator"

// Metrics is registered on its own registry so that several servers can live in the same process, e.g. in tests.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests     *prometheus.CounterVec
	HTTPDuration     *prometheus.HistogramVec
	SelectionChanges *prometheus.CounterVec
	LeadsSubmitted   *prometheus.CounterVec
	NotifyFailures   *prometheus.CounterVec
	CatalogItems     *prometheus.GaugeVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Handled HTTP requests by method and status code.",
		}, []string{"method", "code"}),
		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "code"}),
		SelectionChanges: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "selection_changes_total",
			Help:      "Accepted configurator selection changes by field.",
		}, []string{"field"}),
		LeadsSubmitted: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "leads_submitted_total",
			Help:      "Submitted leads by whether the configuration is a standard package.",
		}, []string{"standard"}),
		NotifyFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lead_notify_failures_total",
			Help:      "Lead notifications that failed, by notifier.",
		}, []string{"notifier"}),
		CatalogItems: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_items",
			Help:      "Number of catalog items loaded at startup by category.",
		}, []string{"category"}),
	}
}

// ObserveCatalog records the catalog size per category.
func (m *Metrics) ObserveCatalog(c *catalog.Catalog) {
	m.CatalogItems.WithLabelValues(string(catalog.CategoryScenario)).Set(float64(len(c.Scenarios())))
	m.CatalogItems.WithLabelValues(string(catalog.CategoryPlatform)).Set(float64(len(c.Platforms())))
	m.CatalogItems.WithLabelValues(string(catalog.CategoryPayload)).Set(float64(len(c.Payloads())))
	m.CatalogItems.WithLabelValues(string(catalog.CategoryPowerSource)).Set(float64(len(c.PowerSources())))
	m.CatalogItems.WithLabelValues(string(catalog.CategoryAccessory)).Set(float64(len(c.Accessories())))
	m.CatalogItems.WithLabelValues("standard-package").Set(float64(len(c.StandardPackages())))
}

// LeadSubmitted counts a submitted lead.
func (m *Metrics) LeadSubmitted(standard bool) {
	m.LeadsSubmitted.WithLabelValues(strconv.FormatBool(standard)).Inc()
}

// InstrumentHandler counts and times the requests served by next.
func (m *Metrics) InstrumentHandler(next http.Handler) http.Handler {
	return promhttp.InstrumentHandlerDuration(m.HTTPDuration,
		promhttp.InstrumentHandlerCounter(m.HTTPRequests, next))
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
