package metrics

import (
	"fmt"
	"net"
	"os"
	"regexp"
	"strings"
	"time"

	goMetricsGraphite "github.com/cyberdelia/go-metrics-graphite"
	goMetrics "github.com/rcrowley/go-metrics"
)

var nonAllowedMetricCharsRegex = regexp.MustCompile("[^a-zA-Z0-9_]")

// ReplaceNonAllowedMetricCharacters makes sender types and other free-form names safe to use as metric name parts
func ReplaceNonAllowedMetricCharacters(metric string) string {
	return nonAllowedMetricCharsRegex.ReplaceAllString(metric, "_")
}

// hostnamePlaceholder in graphite prefix is replaced with short host name
const hostnamePlaceholder = "{hostname}"

// GraphiteRegistryConfig is graphite relay settings
type GraphiteRegistryConfig struct {
	Enabled      bool
	RuntimeStats bool
	URI          string
	Prefix       string
	Interval     time.Duration
}

// GraphiteRegistry keeps go-metrics registry flushed to graphite relay
type GraphiteRegistry struct {
	registry goMetrics.Registry
}

// NewGraphiteRegistry creates registry and, when enabled, starts flushing it as <prefix>.<service>.<metric>
func NewGraphiteRegistry(config GraphiteRegistryConfig, serviceName string) (*GraphiteRegistry, error) {
	registry := goMetrics.NewRegistry()
	if !config.Enabled {
		return &GraphiteRegistry{registry}, nil
	}

	address, err := net.ResolveTCPAddr("tcp", config.URI)
	if err != nil {
		return nil, fmt.Errorf("can't resolve graphite uri %s: %w", config.URI, err)
	}
	prefix, err := expandPrefix(config.Prefix, os.Hostname)
	if err != nil {
		return nil, fmt.Errorf("can't expand graphite prefix %s: %w", config.Prefix, err)
	}
	if config.RuntimeStats {
		goMetrics.RegisterRuntimeMemStats(registry)
		go goMetrics.CaptureRuntimeMemStats(registry, config.Interval)
	}
	go goMetricsGraphite.Graphite(registry, config.Interval, graphiteMetricName([]string{prefix, serviceName}), address)
	return &GraphiteRegistry{registry}, nil
}

// NewTimer implements Registry
func (source *GraphiteRegistry) NewTimer(path ...string) Timer {
	return goMetrics.NewRegisteredTimer(graphiteMetricName(path), source.registry)
}

// NewMeter implements Registry
func (source *GraphiteRegistry) NewMeter(path ...string) Meter {
	return goMetrics.NewRegisteredMeter(graphiteMetricName(path), source.registry)
}

// NewCounter implements Registry
func (source *GraphiteRegistry) NewCounter(path ...string) Counter {
	return &graphiteCounter{goMetrics.NewRegisteredCounter(graphiteMetricName(path), source.registry)}
}

func expandPrefix(prefix string, hostname func() (string, error)) (string, error) {
	if !strings.Contains(prefix, hostnamePlaceholder) {
		return prefix, nil
	}
	host, err := hostname()
	if err != nil {
		return prefix, err
	}
	short, _, _ := strings.Cut(host, ".")
	return strings.ReplaceAll(prefix, hostnamePlaceholder, short), nil
}

type graphiteCounter struct {
	counter goMetrics.Counter
}

func (source *graphiteCounter) Inc() {
	source.counter.Inc(1)
}

func (source *graphiteCounter) Count() int64 {
	return source.counter.Count()
}

func graphiteMetricName(path []string) string {
	return strings.Join(path, ".")
}
