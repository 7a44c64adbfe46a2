package app

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// runMetrics describes one export run in Prometheus textfile form, for
// node_exporter's textfile collector to pick up after a scheduled run.
type runMetrics struct {
	reg         *prometheus.Registry
	rows        *prometheus.GaugeVec
	places      prometheus.Gauge
	duration    prometheus.Gauge
	lastSuccess prometheus.Gauge
}

func newRunMetrics() *runMetrics {
	m := &runMetrics{
		reg: prometheus.NewRegistry(),
		rows: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{Namespace: "tripexport", Name: "table_rows", Help: "Rows written per exported table."},
			[]string{"table"},
		),
		places:      prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "tripexport", Name: "places_loaded", Help: "Places in the input document."}),
		duration:    prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "tripexport", Name: "run_duration_seconds", Help: "Wall time of the export run."}),
		lastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "tripexport", Name: "last_success_timestamp_seconds", Help: "Unix time of the last successful run."}),
	}
	m.reg.MustRegister(m.rows, m.places, m.duration, m.lastSuccess)
	return m
}

func (m *runMetrics) observe(places int, results []tableResult, took time.Duration, finished time.Time) {
	m.places.Set(float64(places))
	for _, r := range results {
		m.rows.WithLabelValues(r.table.Name).Set(float64(len(r.table.Rows)))
	}
	m.duration.Set(took.Seconds())
	m.lastSuccess.Set(float64(finished.Unix()))
}

func (m *runMetrics) writeTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.reg)
}
