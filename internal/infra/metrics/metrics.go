package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "rolepanel"

// Metrics usa un registry propio para que cada test arranque en cero.
type Metrics struct {
	reg *prometheus.Registry

	commands     *prometheus.CounterVec
	toggles      *prometheus.CounterVec
	syncChannels *prometheus.CounterVec
	failures     *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		reg: reg,
		commands: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "text_commands_total",
			Help:      "Text commands seen, by trigger and outcome.",
		}, []string{"command", "outcome"}),
		toggles: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "role_toggles_total",
			Help:      "Role panel clicks, by resulting action.",
		}, []string{"action"}),
		syncChannels: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "permission_sync_channels_total",
			Help:      "Channels visited by the permission sync job, by result.",
		}, []string{"result"}),
		failures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "handler_failures_total",
			Help:      "Unexpected handler failures, by surface.",
		}, []string{"surface"}),
	}
}

func (m *Metrics) Command(command, outcome string) {
	m.commands.WithLabelValues(command, outcome).Inc()
}

func (m *Metrics) Toggle(action string) {
	m.toggles.WithLabelValues(action).Inc()
}

func (m *Metrics) Sync(updated, failed, skipped int) {
	m.syncChannels.WithLabelValues("updated").Add(float64(updated))
	m.syncChannels.WithLabelValues("failed").Add(float64(failed))
	m.syncChannels.WithLabelValues("skipped").Add(float64(skipped))
}

func (m *Metrics) Failure(surface string) {
	m.failures.WithLabelValues(surface).Inc()
}

func (m *Metrics) Registry() *prometheus.Registry { return m.reg }

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}
