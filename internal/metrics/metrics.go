package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	SubmissionsTotal  *prometheus.CounterVec
	QRFailuresTotal   prometheus.Counter
	CopyRequestsTotal *prometheus.CounterVec
	ActiveSessions    prometheus.Gauge
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		SubmissionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "portal_submissions_total",
			Help: "Total form submissions, labeled by validation result",
		}, []string{"result"}),
		QRFailuresTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "portal_qr_generation_failures_total",
			Help: "Total QR image generations that failed (text credentials still served)",
		}),
		CopyRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "portal_copy_requests_total",
			Help: "Total clipboard copy requests, labeled by outcome",
		}, []string{"outcome"}),
		ActiveSessions: factory.NewGauge(prometheus.GaugeOpts{
			Name: "portal_active_sessions",
			Help: "Current number of live visitor sessions",
		}),
	}
}

func (m *Metrics) IncrementSubmissions(granted bool) {
	result := "rejected"
	if granted {
		result = "granted"
	}
	m.SubmissionsTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) IncrementQRFailures() {
	m.QRFailuresTotal.Inc()
}

func (m *Metrics) IncrementCopyRequests(ok bool) {
	outcome := "error"
	if ok {
		outcome = "ok"
	}
	m.CopyRequestsTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) SetActiveSessions(count int) {
	m.ActiveSessions.Set(float64(count))
}
