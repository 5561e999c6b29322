package metrics

import (
	"strings"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "webformtags"

func NewPrometheusRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return registry
}

type PrometheusRegistryAdapter struct {
	registry *prometheus.Registry
	service  string
}

func NewPrometheusRegistryAdapter(registry *prometheus.Registry, service string) *PrometheusRegistryAdapter {
	return &PrometheusRegistryAdapter{registry, service}
}

func (source *PrometheusRegistryAdapter) NewTimer(path ...string) Timer {
	histogramOpts := prometheus.HistogramOpts{Namespace: namespace, Subsystem: source.service, Name: getPrometheusMetricName(path)}
	histogram := prometheus.NewHistogram(histogramOpts)
	source.registry.MustRegister(histogram)
	return &prometheusTimer{histogram: histogram}
}

func (source *PrometheusRegistryAdapter) NewMeter(path ...string) Meter {
	summaryOpts := prometheus.SummaryOpts{Namespace: namespace, Subsystem: source.service, Name: getPrometheusMetricName(path)}
	summary := prometheus.NewSummary(summaryOpts)
	source.registry.MustRegister(summary)
	return &prometheusMeter{summary: summary}
}

func (source *PrometheusRegistryAdapter) NewCounter(path ...string) Counter {
	counterOpts := prometheus.CounterOpts{Namespace: namespace, Subsystem: source.service, Name: getPrometheusMetricName(path)}
	counter := prometheus.NewCounter(counterOpts)
	source.registry.MustRegister(counter)
	return &prometheusCounter{counter: counter}
}

type prometheusMeter struct {
	count   int64
	summary prometheus.Summary
}

func (source *prometheusMeter) Mark(value int64) {
	atomic.AddInt64(&source.count, 1)
	source.summary.Observe(float64(value))
}

func (source *prometheusMeter) Count() int64 {
	return atomic.LoadInt64(&source.count)
}

type prometheusTimer struct {
	histogram prometheus.Histogram
	count     int64
}

func (source *prometheusTimer) UpdateSince(ts time.Time) {
	source.histogram.Observe(time.Since(ts).Seconds())
	atomic.AddInt64(&source.count, 1)
}

func (source *prometheusTimer) Count() int64 {
	return atomic.LoadInt64(&source.count)
}

type prometheusCounter struct {
	counter prometheus.Counter
	count   int64
}

func (source *prometheusCounter) Inc() {
	source.counter.Inc()
	atomic.AddInt64(&source.count, 1)
}

func (source *prometheusCounter) Count() int64 {
	return atomic.LoadInt64(&source.count)
}

func getPrometheusMetricName(path []string) string {
	return ReplaceNonAllowedMetricCharacters(strings.Join(path, "_"))
}
