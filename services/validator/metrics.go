package validator

import (
	"sync"

	"github.com/bsv-blockchain/ledger-validator/util"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	prometheusTransactionsProcessed prometheus.Counter
	prometheusTransactionsAccepted  *prometheus.CounterVec
	prometheusTransactionsRejected  *prometheus.CounterVec
	prometheusUtxoSetSize           prometheus.Gauge
	prometheusValidatePhase         *prometheus.HistogramVec
	prometheusValidate              prometheus.Histogram
)

var (
	prometheusMetricsInitOnce sync.Once
)

func initPrometheusMetrics() {
	prometheusMetricsInitOnce.Do(_initPrometheusMetrics)
}

func _initPrometheusMetrics() {
	prometheusTransactionsProcessed = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "ledger",
			Subsystem: "validator",
			Name:      "transactions_processed",
			Help:      "Number of transactions replayed by the validation engine",
		},
	)

	prometheusTransactionsAccepted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ledger",
			Subsystem: "validator",
			Name:      "transactions_accepted",
			Help:      "Number of transactions accepted by the validation engine, by kind",
		},
		[]string{"kind"},
	)

	prometheusTransactionsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ledger",
			Subsystem: "validator",
			Name:      "transactions_rejected",
			Help:      "Number of transactions rejected by the validation engine, by reason",
		},
		[]string{"reason"},
	)

	prometheusUtxoSetSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "ledger",
			Subsystem: "validator",
			Name:      "utxo_set_size",
			Help:      "Number of unspent outputs after the last processed transaction",
		},
	)

	prometheusValidatePhase = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "ledger",
			Subsystem: "validator",
			Name:      "validate_phase",
			Help:      "Histogram of the duration of each validation phase",
			Buckets:   util.MetricsBucketsMilliLongSeconds,
		},
		[]string{"phase"},
	)

	prometheusValidate = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "ledger",
			Subsystem: "validator",
			Name:      "validate",
			Help:      "Histogram of complete validation runs",
			Buckets:   util.MetricsBucketsSeconds,
		},
	)
}
