package recommendation

import (
	"sort"

	"societyBackend/domain"
)

// Reason labels, in tie-break priority order.
const (
	ReasonPreferences = "Matches your preferences"
	ReasonQuality     = "Highly rated profile"
	ReasonPopular     = "Popular choice"
	ReasonActivity    = "Based on your activity"
)

// UserSignals is everything the hybrid scorer needs about the viewer,
// fetched up front by the service. Scoring itself does no I/O.
type UserSignals struct {
	// distinct occasion types from the user's recent completed bookings
	PreferredOccasions []string
	HasBookingHistory  bool

	// companion owner ids the user has favorited
	FavoriteOwners map[domain.UserID]bool

	// per companion owner: Σ over event types of count × event weight
	InteractionScores map[domain.UserID]float64
}

// scoreHybrid computes the five-factor weighted score for every candidate
// and returns them sorted by score descending.
func scoreHybrid(cfg Config, sig UserSignals, candidates []domain.CandidateCompanion) []domain.ScoredCompanion {
	scored := make([]domain.ScoredCompanion, 0, len(candidates))

	for _, cand := range candidates {
		breakdown := domain.ScoreBreakdown{
			PreferenceMatch:    preferenceMatch(cfg, sig, cand),
			ProfileQuality:     profileQuality(cand),
			Availability:       availabilityScore(cand),
			Popularity:         popularityScore(cand),
			BehavioralAffinity: behavioralAffinity(sig, cand),
		}

		score := cfg.Weights.Preference*breakdown.PreferenceMatch +
			cfg.Weights.Quality*breakdown.ProfileQuality +
			cfg.Weights.Availability*breakdown.Availability +
			cfg.Weights.Popularity*breakdown.Popularity +
			cfg.Weights.Behavioral*breakdown.BehavioralAffinity

		scored = append(scored, domain.ScoredCompanion{
			CompanionID: cand.ProfileID,
			Score:       score,
			Reason:      pickReason(breakdown),
			Breakdown:   breakdown,
			Companion:   cand,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}

// scoreColdStart keeps the candidates' incoming order (the repository sorts
// by rating then completed bookings); the reported score is a separate
// quality formula and may disagree with that ordering.
func scoreColdStart(cfg Config, candidates []domain.CandidateCompanion) []domain.ScoredCompanion {
	scored := make([]domain.ScoredCompanion, 0, len(candidates))

	for _, cand := range candidates {
		score := 0.0
		if cand.PhotoCount >= 3 {
			score += 0.3
		}
		if cand.IsVerifiedOwner {
			score += 0.3
		}
		if len(cand.Bio) > 50 {
			score += 0.2
		}
		score += 0.2 * (cand.RatingAvg / 5.0)

		// preference and behavioral stay zero here: both need user signals
		// and this path runs exactly because there are none
		scored = append(scored, domain.ScoredCompanion{
			CompanionID: cand.ProfileID,
			Score:       score,
			Reason:      ReasonPopular,
			Breakdown: domain.ScoreBreakdown{
				ProfileQuality: profileQuality(cand),
				Availability:   availabilityScore(cand),
				Popularity:     popularityScore(cand),
			},
			Companion: cand,
		})
	}

	return scored
}

// preferenceMatch is the fraction of the user's preferred occasion types the
// candidate offers; neutral when the user has no completed bookings.
func preferenceMatch(cfg Config, sig UserSignals, cand domain.CandidateCompanion) float64 {
	if !sig.HasBookingHistory || len(sig.PreferredOccasions) == 0 {
		return cfg.NeutralPreference
	}

	offered := make(map[string]bool, len(cand.ServiceTypes))
	for _, s := range cand.ServiceTypes {
		offered[s] = true
	}

	matched := 0
	for _, occ := range sig.PreferredOccasions {
		if offered[occ] {
			matched++
		}
	}

	return float64(matched) / float64(len(sig.PreferredOccasions))
}

func profileQuality(cand domain.CandidateCompanion) float64 {
	score := 0.0
	if cand.VerifiedPhotoCount >= 3 {
		score += 0.4
	}
	if cand.IsVerifiedOwner {
		score += 0.4
	}
	if len(cand.Bio) > 50 {
		score += 0.2
	}
	return score
}

func availabilityScore(cand domain.CandidateCompanion) float64 {
	if cand.IsActive {
		return 1.0
	}
	return 0.3
}

func popularityScore(cand domain.CandidateCompanion) float64 {
	completed := float64(cand.CompletedBookings) / 50.0
	if completed > 1 {
		completed = 1
	}
	return 0.7*(cand.RatingAvg/5.0) + 0.3*completed
}

// behavioralAffinity combines historical interaction weight with a favorite
// boost, capped at 1.
func behavioralAffinity(sig UserSignals, cand domain.CandidateCompanion) float64 {
	score := (sig.InteractionScores[cand.OwnerUserID] / 5.0) * 0.6
	if sig.FavoriteOwners[cand.OwnerUserID] {
		score += 0.4
	}
	if score > 1 {
		score = 1
	}
	// negative interaction history can pull this slightly below zero; only
	// the upper bound is enforced
	return score
}

// pickReason returns the label of the strongest factor; ties break in
// preference > quality > popularity > behavioral order. Availability never
// carries a label.
func pickReason(b domain.ScoreBreakdown) string {
	reason := ReasonPreferences
	best := b.PreferenceMatch

	if b.ProfileQuality > best {
		reason = ReasonQuality
		best = b.ProfileQuality
	}
	if b.Popularity > best {
		reason = ReasonPopular
		best = b.Popularity
	}
	if b.BehavioralAffinity > best {
		reason = ReasonActivity
	}

	return reason
}
