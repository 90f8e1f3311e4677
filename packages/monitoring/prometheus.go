package monitoring

import (
	"fmt"
	"net/http"
	"time"

	"github.com/paulbellamy/ratecounter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

const rateInterval = 10 * time.Second

// RequestRate counts outgoing platform requests over a sliding 10s window.
var RequestRate = ratecounter.NewRateCounter(rateInterval)

var BungieRequest = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "bungie_request_ms",
		Buckets: []float64{10, 20, 50, 100, 150, 200, 250, 300, 500, 750, 1000, 1500, 2000, 5000},
	},
	[]string{"method", "status"},
)

// Track the count of each Bungie error status returned by the API
var BungieErrorCode = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "bungie_error_status_count",
	},
	[]string{"error_status"},
)

var BungieRequestRate = prometheus.NewGaugeFunc(
	prometheus.GaugeOpts{
		Name: "bungie_requests_per_10s",
	},
	func() float64 {
		return float64(RequestRate.Rate())
	},
)

var QueueMessages = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "queue_messages_processed",
	},
	[]string{"queue", "status"},
)

// ObserveRequest records one completed (or failed) platform request. status
// is the HTTP status code, or 0 when no response arrived.
func ObserveRequest(method string, status int, elapsed time.Duration) {
	RequestRate.Incr(1)
	label := "transport_error"
	if status > 0 {
		label = fmt.Sprintf("%d", status)
	}
	BungieRequest.WithLabelValues(method, label).Observe(float64(elapsed.Milliseconds()))
}

func Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		BungieRequest,
		BungieErrorCode,
		BungieRequestRate,
		QueueMessages,
	}
}

func RegisterPrometheus(port int) {
	prometheus.MustRegister(Collectors()...)

	http.Handle("/metrics", promhttp.Handler())

	go func() {
		addr := fmt.Sprintf(":%d", port)
		log.Info().Str("addr", addr).Msg("serving metrics")
		if err := http.ListenAndServe(addr, nil); err != nil {
			log.Fatal().Err(err).Msg("metrics server stopped")
		}
	}()
}
