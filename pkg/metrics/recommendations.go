package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the for-you HTTP handler
	RecommendForYouLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "recommend_for_you_latency_seconds",
		Help:    "Latency of the for-you recommendations handler",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of for-you pages served
	RecommendForYouRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recommend_for_you_requests_total",
		Help: "Total number of for-you recommendation requests",
	})

	// Total tracked interaction events, labelled by event type
	InteractionEventsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "recommend_interaction_events_total",
		Help: "Total tracked interaction events",
	}, []string{"event_type"})
)

func Init() {
	prometheus.MustRegister(
		RecommendForYouLatency,
		RecommendForYouRequests,
		InteractionEventsTotal,
	)
}
