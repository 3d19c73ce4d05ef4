// Package metrics keeps run gauges in a private registry and writes them in the node-exporter
// textfile format.
package metrics

//go:generate go run go.uber.org/mock/mockgen -source=./metrics.go -destination=./mocks/metrics_mock.go -package=mocks

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"roomslots/config"
)

const namespace = "roomslots"

type Metrics interface {
	ObserveGeneration(generated, total, businesses, rooms int, duration time.Duration)
	ObservePublish(rows int, duration time.Duration)
	Flush() error
}

type metricsImpl struct {
	registry     *prometheus.Registry
	textfilePath string

	generatedRows prometheus.Gauge
	totalRows     prometheus.Gauge
	businesses    prometheus.Gauge
	rooms         prometheus.Gauge
	publishedRows prometheus.Gauge
	duration      *prometheus.GaugeVec
}

func New(config *config.Config) Metrics {
	registry := prometheus.NewRegistry()

	m := &metricsImpl{
		registry:     registry,
		textfilePath: config.Metrics.TextfilePath,
		generatedRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "generated_rows",
			Help:      "Slots synthesised by the last generator run.",
		}),
		totalRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "total_rows",
			Help:      "Rows in the combined slots table.",
		}),
		businesses: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "businesses",
			Help:      "Distinct businesses in the combined slots table.",
		}),
		rooms: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "rooms",
			Help:      "Distinct room names in the combined slots table.",
		}),
		publishedRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "published_rows",
			Help:      "Rows written to Postgres by the last publish run.",
		}),
		duration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_duration_seconds",
			Help:      "Wall time of the last run.",
		}, []string{"command"}),
	}

	registry.MustRegister(
		m.generatedRows,
		m.totalRows,
		m.businesses,
		m.rooms,
		m.publishedRows,
		m.duration,
	)

	return m
}

func (m *metricsImpl) ObserveGeneration(generated, total, businesses, rooms int, duration time.Duration) {
	m.generatedRows.Set(float64(generated))
	m.totalRows.Set(float64(total))
	m.businesses.Set(float64(businesses))
	m.rooms.Set(float64(rooms))
	m.duration.WithLabelValues("generate").Set(duration.Seconds())
}

func (m *metricsImpl) ObservePublish(rows int, duration time.Duration) {
	m.publishedRows.Set(float64(rows))
	m.duration.WithLabelValues("publish").Set(duration.Seconds())
}

// Flush writes the registry to the configured textfile. It is a no-op when no path is set.
func (m *metricsImpl) Flush() error {
	if m.textfilePath == "" {
		return nil
	}

	if err := prometheus.WriteToTextfile(m.textfilePath, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}

	return nil
}
