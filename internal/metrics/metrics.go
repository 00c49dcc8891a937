package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dtroode/helpdesk-auth/internal/model"
)

const namespace = "auth"

var _ model.Metrics = (*Metrics)(nil)

// Metrics exposes session core counters to Prometheus.
type Metrics struct {
	logins        *prometheus.CounterVec
	refreshes     *prometheus.CounterVec
	refreshReuse  prometheus.Counter
	logouts       *prometheus.CounterVec
	resetRequests prometheus.Counter
	resetConfirms *prometheus.CounterVec
	purged        prometheus.Counter
}

// New creates the counters and registers them with reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "logins_total",
			Help:      "Login attempts by result.",
		}, []string{"result"}),
		refreshes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "refresh_total",
			Help:      "Refresh token rotations by result.",
		}, []string{"result"}),
		refreshReuse: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "refresh_reuse_total",
			Help:      "Rotated refresh tokens presented again.",
		}),
		logouts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "logouts_total",
			Help:      "Logouts by scope.",
		}, []string{"scope"}),
		resetRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "password_reset_requests_total",
			Help:      "Password reset requests received.",
		}),
		resetConfirms: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "password_reset_confirms_total",
			Help:      "Password reset confirmations by result.",
		}, []string{"result"}),
		purged: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "refresh_tokens_purged_total",
			Help:      "Expired refresh tokens deleted.",
		}),
	}

	for _, c := range []prometheus.Collector{
		m.logins, m.refreshes, m.refreshReuse, m.logouts,
		m.resetRequests, m.resetConfirms, m.purged,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) LoginAttempt(result string) {
	m.logins.WithLabelValues(result).Inc()
}

func (m *Metrics) RefreshAttempt(result string) {
	m.refreshes.WithLabelValues(result).Inc()
}

func (m *Metrics) RefreshReuse() {
	m.refreshReuse.Inc()
}

func (m *Metrics) Logout(scope string) {
	m.logouts.WithLabelValues(scope).Inc()
}

func (m *Metrics) PasswordResetRequested() {
	m.resetRequests.Inc()
}

func (m *Metrics) PasswordResetConfirmed(result string) {
	m.resetConfirms.WithLabelValues(result).Inc()
}

func (m *Metrics) RefreshTokensPurged(n int64) {
	if n > 0 {
		m.purged.Add(float64(n))
	}
}
