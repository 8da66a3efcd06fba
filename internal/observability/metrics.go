package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	outboundRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "stravaproxy",
		Subsystem: "upstream",
		Name:      "requests_total",
		Help:      "Outbound requests to Strava by method and response status.",
	}, []string{"method", "status"})
	outboundDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "stravaproxy",
		Subsystem: "upstream",
		Name:      "request_duration_seconds",
		Help:      "Duration of outbound requests to Strava.",
		Buckets:   prometheus.DefBuckets,
	})
)

func init() {
	prometheus.MustRegister(outboundRequests, outboundDuration)
}

// RecordUpstreamRequest counts one outbound call. A status of 0 means the
// request never produced a response.
func RecordUpstreamRequest(method string, status int, elapsed time.Duration) {
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	outboundRequests.WithLabelValues(method, label).Inc()
	outboundDuration.Observe(elapsed.Seconds())
}
