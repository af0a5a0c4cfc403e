// Package metrics records business counters with Prometheus.
package metrics

import (
	"net/http"

	"blog/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "blog"

// Prometheus implements service.Metrics on a private registry.
type Prometheus struct {
	registry        *prometheus.Registry
	signUps         *prometheus.CounterVec
	logins          *prometheus.CounterVec
	sessionResolves *prometheus.CounterVec
	postsCreated    prometheus.Counter
}

var _ service.Metrics = (*Prometheus)(nil)

// NewPrometheus registers the blog counters plus the Go and process collectors.
func NewPrometheus() *Prometheus {
	registry := prometheus.NewRegistry()

	m := &Prometheus{
		registry: registry,
		signUps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "signups_total",
			Help:      "Signup attempts by outcome.",
		}, []string{"outcome"}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "logins_total",
			Help:      "Login attempts by outcome.",
		}, []string{"outcome"}),
		sessionResolves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "session_resolutions_total",
			Help:      "Session cookie resolutions by outcome.",
		}, []string{"outcome"}),
		postsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "posts_created_total",
			Help:      "Posts created.",
		}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.signUps,
		m.logins,
		m.sessionResolves,
		m.postsCreated,
	)

	return m
}

// NewMetrics exposes the Prometheus recorder as the domain interface.
func NewMetrics(p *Prometheus) service.Metrics {
	return p
}

func (m *Prometheus) ObserveSignUp(outcome string) {
	m.signUps.WithLabelValues(outcome).Inc()
}

func (m *Prometheus) ObserveLogin(outcome string) {
	m.logins.WithLabelValues(outcome).Inc()
}

func (m *Prometheus) ObserveSessionResolve(outcome string) {
	m.sessionResolves.WithLabelValues(outcome).Inc()
}

func (m *Prometheus) ObservePostCreated() {
	m.postsCreated.Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Nop discards every observation.
type Nop struct{}

func (Nop) ObserveSignUp(string)         {}
func (Nop) ObserveLogin(string)          {}
func (Nop) ObserveSessionResolve(string) {}
func (Nop) ObservePostCreated()          {}
