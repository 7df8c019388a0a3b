package domain

// Strategy names how a recommendation page was produced.
type Strategy string

const (
	StrategyColdStart Strategy = "cold_start"
	StrategyHybrid    Strategy = "hybrid"
)

// ScoreBreakdown exposes the per-factor values behind a score.
type ScoreBreakdown struct {
	PreferenceMatch    float64 `json:"preference_match"`
	ProfileQuality     float64 `json:"profile_quality"`
	Availability       float64 `json:"availability"`
	Popularity         float64 `json:"popularity"`
	BehavioralAffinity float64 `json:"behavioral_affinity"`
}

// ScoredCompanion is one ranked recommendation. CompanionID is the profile
// id; Companion is the display snapshot the client renders.
type ScoredCompanion struct {
	CompanionID ProfileID          `json:"companion_id"`
	Score       float64            `json:"score"`
	Reason      string             `json:"reason"`
	Breakdown   ScoreBreakdown     `json:"breakdown"`
	Companion   CandidateCompanion `json:"companion"`
}

// ForYouResult is one page of the personalized feed.
type ForYouResult struct {
	Companions []ScoredCompanion `json:"companions"`
	HasMore    bool              `json:"has_more"`
	Total      int               `json:"total"`
	Strategy   Strategy          `json:"strategy"`
}
