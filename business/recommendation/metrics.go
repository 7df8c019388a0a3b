package recommendation

import "github.com/prometheus/client_golang/prometheus"

var (
	ServedByStrategyTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "recommend_served_by_strategy_total",
		Help: "For-you pages served, by strategy label",
	}, []string{"strategy"})

	CacheLookupsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "recommend_cache_lookups_total",
		Help: "Recommendation cache lookups, by outcome",
	}, []string{"outcome"})
)

func init() {
	prometheus.MustRegister(ServedByStrategyTotal, CacheLookupsTotal)
}
