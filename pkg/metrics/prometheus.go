// Package metrics expõe as métricas Prometheus da API
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager concentra as métricas da aplicação em um registry dedicado
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	notFound            *prometheus.CounterVec
	usersCreated        prometheus.Counter

	// Snapshot do pipeline, atualizado pelo job agendado
	pipelineDeals       *prometheus.GaugeVec
	pipelineValue       *prometheus.GaugeVec
	teamAdoption        prometheus.Gauge
	snapshotLastUnix    prometheus.Gauge
	snapshotDurationSec prometheus.Histogram
}

func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "salesflow",
		subsystem:        "api",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
		m.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "Total de requisições HTTP por método, rota e status",
	}, []string{"method", "route", "status"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_seconds",
		Help:      "Latência das requisições HTTP em segundos",
		Buckets:   m.histogramBuckets,
	}, []string{"method", "route"})

	m.notFound = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "lookups_not_found_total",
		Help:      "Consultas por ID que não encontraram o recurso",
	}, []string{"resource"})

	m.usersCreated = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "users_created_total",
		Help:      "Usuários criados com sucesso",
	})

	m.pipelineDeals = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "pipeline",
		Name:      "deals",
		Help:      "Quantidade de deals por faixa de risco",
	}, []string{"risk"})

	m.pipelineValue = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "pipeline",
		Name:      "deal_value",
		Help:      "Valor somado dos deals por faixa de risco",
	}, []string{"risk"})

	m.teamAdoption = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "pipeline",
		Name:      "team_playbook_adoption_avg",
		Help:      "Média de adoção do playbook no time",
	})

	m.snapshotLastUnix = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "pipeline",
		Name:      "snapshot_last_unix",
		Help:      "Horário (unix) do último snapshot concluído",
	})

	m.snapshotDurationSec = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "pipeline",
		Name:      "snapshot_duration_seconds",
		Help:      "Duração do cálculo do snapshot",
		Buckets:   m.histogramBuckets,
	})
}

// Enabled informa se a coleta está ativa
func (m *Manager) Enabled() bool {
	return m != nil && m.enabled
}

// Registry devolve o registry usado pelo Manager
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveRequest registra uma requisição concluída
func (m *Manager) ObserveRequest(method, route string, status int, duration time.Duration) {
	if !m.Enabled() {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordNotFound conta uma consulta que não encontrou o recurso
func (m *Manager) RecordNotFound(resource string) {
	if !m.Enabled() {
		return
	}
	m.notFound.WithLabelValues(resource).Inc()
}

// RecordUserCreated conta um usuário criado
func (m *Manager) RecordUserCreated() {
	if !m.Enabled() {
		return
	}
	m.usersCreated.Inc()
}

// SetRiskBand publica quantidade e valor de uma faixa de risco
func (m *Manager) SetRiskBand(risk string, count int, value int64) {
	if !m.Enabled() {
		return
	}
	m.pipelineDeals.WithLabelValues(risk).Set(float64(count))
	m.pipelineValue.WithLabelValues(risk).Set(float64(value))
}

func (m *Manager) SetTeamAdoption(avg float64) {
	if !m.Enabled() {
		return
	}
	m.teamAdoption.Set(avg)
}

// MarkSnapshot registra a conclusão de um snapshot
func (m *Manager) MarkSnapshot(at time.Time, duration time.Duration) {
	if !m.Enabled() {
		return
	}
	m.snapshotLastUnix.Set(float64(at.Unix()))
	m.snapshotDurationSec.Observe(duration.Seconds())
}

// Handler expõe o registry no formato de exposição do Prometheus
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Instrument envolve o handler de uma rota, medindo status e latência.
// route é o template registrado (ex.: /api/deals/:id), não o path concreto.
func (m *Manager) Instrument(method, route string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !m.Enabled() {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			m.ObserveRequest(method, route, rec.status, time.Since(start))
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
