package pkg

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

var (
	metricNamespace = "taskmux"

	// Registered at init rather than lazily so the Logger can count whether
	// or not the metrics server runs.
	MetricLinesWritten = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricNamespace,
		Name:      "lines_written",
		Help:      "The count of completed output lines written, per command.",
	}, []string{"command"})
	MetricBytesWritten = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: metricNamespace,
		Name:      "bytes_written",
		Help:      "The total bytes written to the output sink.",
	})
	MetricWritesSuppressed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: metricNamespace,
		Name:      "writes_suppressed",
		Help:      "The count of writes dropped because the command is hidden.",
	})
)

func StartMetricsServer(port int) {
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(prometheus.DefaultGatherer, promhttp.HandlerOpts{})) // Uses a clean instrumentation free handler
		prometheus.Unregister(collectors.NewGoCollector())                                              // Unregisters the go metrics
		prometheusAddress := fmt.Sprintf(":%d", port)
		log.Info().Msgf("Starting metrics service on '%s/metrics'", prometheusAddress)
		err := http.ListenAndServe(prometheusAddress, mux)
		if err != nil {
			log.Error().Err(err).Msgf("metrics service returned error")
		}
	}()
}
