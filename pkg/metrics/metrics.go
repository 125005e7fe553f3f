package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Chamadas ao Flowbiz
	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "flowbiz_request_duration_seconds",
			Help:    "Duração das chamadas ao Flowbiz em segundos",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"command", "status_class"},
	)

	UpstreamTransportErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "flowbiz_transport_errors_total",
			Help: "Total de falhas de transporte nas chamadas ao Flowbiz",
		},
		[]string{"command", "kind"},
	)

	// Agregação de campanhas
	AggregationAccountFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campaign_aggregation_account_failures_total",
			Help: "Contas que esgotaram as tentativas na agregação de campanhas",
		},
		[]string{"account"},
	)

	AggregationRetries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campaign_aggregation_retries_total",
			Help: "Novas tentativas de busca de campanhas por conta",
		},
		[]string{"account"},
	)

	AggregatedCampaigns = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "campaign_aggregation_last_total",
			Help: "Quantidade de campanhas na última agregação",
		},
	)

	// Estatísticas do banco
	StatsLookupErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "campaign_stats_lookup_errors_total",
			Help: "Falhas ao consultar acessos e leads no banco",
		},
	)

	// Circuit breaker por conta
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "flowbiz_circuit_breaker_state",
			Help: "Estado do circuit breaker (0=fechado, 1=meio-aberto, 2=aberto)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "flowbiz_circuit_breaker_transitions_total",
			Help: "Transições de estado do circuit breaker",
		},
		[]string{"name", "from", "to"},
	)

	// API HTTP
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duração das requisições HTTP recebidas",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "status"},
	)

	HTTPPanics = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "http_panics_total",
			Help: "Panics recuperados pelo middleware",
		},
	)

	// Agendador do painel
	SnapshotSyncRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_snapshot_sync_runs_total",
			Help: "Execuções da sincronização do snapshot do painel",
		},
		[]string{"result"},
	)
)

// StatusClass agrupa o status HTTP em 2xx, 4xx, 5xx
func StatusClass(status int) string {
	if status <= 0 {
		return "error"
	}
	return strconv.Itoa(status/100) + "xx"
}

// Handler expõe as métricas no formato do Prometheus
func Handler() http.Handler {
	return promhttp.Handler()
}
