package recommendation

import (
	"societyBackend/domain"
	"time"
)

// FactorWeights are the hybrid scoring weights. They sum to 1.0 by default
// but the final score is a plain weighted sum, never re-normalized.
type FactorWeights struct {
	Preference   float64
	Quality      float64
	Availability float64
	Popularity   float64
	Behavioral   float64
}

// Config is the immutable tuning surface of the engine. It is injected into
// the service so tests can run with alternate weight sets.
type Config struct {
	Weights FactorWeights

	// signed per-event weights; also drive behavioral affinity
	EventWeights map[domain.EventType]float64

	// event types that invalidate a user's cached recommendations on write
	HighSignalEvents map[domain.EventType]bool

	// lifetime interaction count below which a user is served cold start
	ColdStartThreshold int64

	CandidateLimit      int
	BookingHistoryLimit int
	CacheTTL            time.Duration

	// preferenceMatch value for users with no completed bookings
	NeutralPreference float64
}

const (
	defaultWPreference   = 0.35
	defaultWQuality      = 0.20
	defaultWAvailability = 0.15
	defaultWPopularity   = 0.15
	defaultWBehavioral   = 0.15

	defaultColdStartThreshold  = 10
	defaultCandidateLimit      = 100
	defaultBookingHistoryLimit = 20
	defaultCacheTTL            = 300 * time.Second
	defaultNeutralPreference   = 0.5
)

func DefaultConfig() Config {
	return Config{
		Weights: FactorWeights{
			Preference:   defaultWPreference,
			Quality:      defaultWQuality,
			Availability: defaultWAvailability,
			Popularity:   defaultWPopularity,
			Behavioral:   defaultWBehavioral,
		},
		EventWeights: map[domain.EventType]float64{
			domain.EventView:             0.1,
			domain.EventProfileOpen:      0.3,
			domain.EventBookmark:         0.7,
			domain.EventUnbookmark:       -0.3,
			domain.EventMessageSent:      0.8,
			domain.EventBookingStarted:   0.9,
			domain.EventBookingCompleted: 1.0,
			domain.EventBookingCancelled: -0.5,
		},
		HighSignalEvents: map[domain.EventType]bool{
			domain.EventBookmark:         true,
			domain.EventUnbookmark:       true,
			domain.EventBookingCompleted: true,
			domain.EventBookingCancelled: true,
		},
		ColdStartThreshold:  defaultColdStartThreshold,
		CandidateLimit:      defaultCandidateLimit,
		BookingHistoryLimit: defaultBookingHistoryLimit,
		CacheTTL:            defaultCacheTTL,
		NeutralPreference:   defaultNeutralPreference,
	}
}

// EventWeight returns the tabulated weight for an event type, 0 for unknown
// types (still persisted, never high-signal).
func (cfg Config) EventWeight(t domain.EventType) float64 {
	return cfg.EventWeights[t]
}

// IsHighSignal reports whether an event type invalidates cached results.
func (cfg Config) IsHighSignal(t domain.EventType) bool {
	return cfg.HighSignalEvents[t]
}

// EventTypeLabel returns the metrics label for an event type. Types outside
// the weight table collapse to a single "unknown" label so clients cannot
// mint unbounded series.
func (cfg Config) EventTypeLabel(t domain.EventType) string {
	if _, ok := cfg.EventWeights[t]; ok {
		return string(t)
	}
	return "unknown"
}
