package metrics

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

type Outcome string

const (
	Success                  Outcome       = "success"
	Error                    Outcome       = "error"
	MetricRequestTimeout     time.Duration = 5 * time.Second
	MetricRequestIdleTimeout time.Duration = 10 * time.Second
)

func (O Outcome) String() string {
	return string(O)
}

var (
	once                      sync.Once
	metricsRouter             *chi.Mux
	queueSendErrorCounter     prometheus.Counter
	pollerDurationHistogram   *prometheus.HistogramVec
	contestedTerritoriesGauge prometheus.Gauge
	totalStakedGauge          prometheus.Gauge
	controlChangeCounter      *prometheus.CounterVec
	revenueDistributedCounter *prometheus.CounterVec
	epochSettlementDuration   prometheus.Histogram
	dbLatency                 *prometheus.HistogramVec
)

// Init initializes the metrics package.
func Init(metricsPort int) {
	once.Do(func() {
		initMetricsRouter(metricsPort)
		registerMetrics()
	})
}

// initMetricsRouter initializes the metrics router.
func initMetricsRouter(metricsPort int) {
	metricsRouter = chi.NewRouter()
	metricsRouter.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})
	// Create a custom server with timeout settings
	metricsAddr := fmt.Sprintf(":%d", metricsPort)
	server := &http.Server{
		Addr:         metricsAddr,
		Handler:      metricsRouter,
		ReadTimeout:  MetricRequestTimeout,
		WriteTimeout: MetricRequestTimeout,
		IdleTimeout:  MetricRequestIdleTimeout,
	}

	// Start the server in a separate goroutine
	go func() {
		log.Printf("Starting metrics server on %s", metricsAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msgf("Error starting metrics server on %s", metricsAddr)
		}
	}()
}

// registerMetrics initializes and register the Prometheus metrics.
func registerMetrics() {
	defaultHistogramBucketsSeconds := []float64{0.1, 0.5, 1, 2.5, 5, 10, 30}

	// add a counter for the number of errors from the fail to push message into queue
	queueSendErrorCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "queue_send_error_count",
			Help: "The total number of errors when sending messages to the queue",
		},
	)

	pollerDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "poller_duration_seconds",
			Help:    "Histogram of poller durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"type", "status"},
	)

	contestedTerritoriesGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "contested_territories_count",
			Help: "Number of territories currently in contested state",
		},
	)

	totalStakedGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "total_active_stake",
			Help: "Total active stake across all territories in base units",
		},
	)

	controlChangeCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "territory_control_changes_total",
			Help: "The total number of territory control handovers per faction",
		},
		[]string{"faction"},
	)

	revenueDistributedCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "revenue_distributed_total",
			Help: "Total revenue distributed per recipient in base units",
		},
		[]string{"recipient"},
	)

	epochSettlementDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "epoch_settlement_duration_seconds",
			Help:    "Revenue epoch settlement duration in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
	)

	dbLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "db_latency_seconds",
			Help: "DB latency in seconds splitted by method and execution status",
		},
		[]string{"method", "status"},
	)

	prometheus.MustRegister(
		queueSendErrorCounter,
		pollerDurationHistogram,
		contestedTerritoriesGauge,
		totalStakedGauge,
		controlChangeCounter,
		revenueDistributedCounter,
		epochSettlementDuration,
		dbLatency,
	)
}

func RecordDbLatency(d time.Duration, method string, failure bool) {
	status := Success
	if failure {
		status = Error
	}

	dbLatency.WithLabelValues(method, status.String()).Observe(d.Seconds())
}

func RecordContestedTerritoriesCount(count int64) {
	contestedTerritoriesGauge.Set(float64(count))
}

func RecordTotalActiveStake(amount uint64) {
	totalStakedGauge.Set(float64(amount))
}

func IncTerritoryControlChange(faction string) {
	controlChangeCounter.WithLabelValues(faction).Inc()
}

func RecordRevenueDistributed(recipient string, amount uint64) {
	revenueDistributedCounter.WithLabelValues(recipient).Add(float64(amount))
}

func RecordEpochSettlementDuration(d time.Duration) {
	epochSettlementDuration.Observe(d.Seconds())
}

func RecordQueueSendError() {
	queueSendErrorCounter.Inc()
}
