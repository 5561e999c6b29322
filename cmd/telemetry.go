package cmd

import (
	"context"
	"net"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tealiumiq/webformtags"
	"github.com/tealiumiq/webformtags/metrics"
)

const defaultMetricsPath = "/metrics"

type Telemetry struct {
	Metrics  metrics.Registry
	stopFunc func()
}

func (source *Telemetry) Stop() {
	source.stopFunc()
}

func ConfigureTelemetry(logger webformtags.Logger, config TelemetryConfig, service string) (*Telemetry, error) {
	listener, err := net.Listen("tcp", config.Listen)
	if err != nil {
		return nil, err
	}

	serverMux := http.NewServeMux()
	metricsRegistry, err := configureTelemetry(config, service, serverMux)
	if err != nil {
		listener.Close() //nolint
		return nil, err
	}

	server := &http.Server{Handler: serverMux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		server.Serve(listener) //nolint
	}()

	return &Telemetry{
		Metrics: metricsRegistry,
		stopFunc: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second) //nolint
			defer cancel()

			if err := server.Shutdown(ctx); err != nil {
				logger.Error().
					Error(err).
					Msg("Can't stop telemetry server correctly")
			}
		},
	}, nil
}

func configureTelemetry(config TelemetryConfig, service string, serverMux *http.ServeMux) (metrics.Registry, error) {
	metricRegistries := []metrics.Registry{}

	if config.Pprof.Enabled {
		configurePprofServer(serverMux)
	}

	if config.Prometheus.Enabled {
		prometheusRegistry := metrics.NewPrometheusRegistry()
		prometheusRegistryAdapter := metrics.NewPrometheusRegistryAdapter(prometheusRegistry, service)
		metricRegistries = append(metricRegistries, prometheusRegistryAdapter)

		metricsPath := config.Prometheus.MetricsPath
		if metricsPath == "" {
			metricsPath = defaultMetricsPath
		}
		serverMux.Handle(metricsPath, promhttp.InstrumentMetricHandler(prometheusRegistry, promhttp.HandlerFor(prometheusRegistry, promhttp.HandlerOpts{})))
	}

	if config.Graphite.Enabled {
		graphiteRegistry, err := metrics.NewGraphiteRegistry(config.Graphite.GetSettings(), service)
		if err != nil {
			return nil, err
		}

		metricRegistries = append(metricRegistries, graphiteRegistry)
	}

	return metrics.NewCompositeRegistry(metricRegistries...), nil
}

func configurePprofServer(serverMux *http.ServeMux) {
	serverMux.HandleFunc("/pprof/", pprof.Index)
	serverMux.HandleFunc("/pprof/cmdline", pprof.Cmdline)
	serverMux.HandleFunc("/pprof/profile", pprof.Profile)
	serverMux.HandleFunc("/pprof/symbol", pprof.Symbol)
	serverMux.HandleFunc("/pprof/trace", pprof.Trace)
	serverMux.HandleFunc("/pprof/heap", pprof.Handler("heap").ServeHTTP)
	serverMux.HandleFunc("/pprof/goroutine", pprof.Handler("goroutine").ServeHTTP)
}
