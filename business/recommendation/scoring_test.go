package recommendation

import (
	"strings"
	"testing"

	"societyBackend/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeCandidate(profileID domain.ProfileID, ownerID domain.UserID) domain.CandidateCompanion {
	return domain.CandidateCompanion{
		ProfileID:          profileID,
		OwnerUserID:        ownerID,
		IsActive:           true,
		VerificationStatus: domain.VerificationVerified,
	}
}

func TestEventWeightTable(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		eventType domain.EventType
		expected  float64
	}{
		{domain.EventView, 0.1},
		{domain.EventProfileOpen, 0.3},
		{domain.EventBookmark, 0.7},
		{domain.EventUnbookmark, -0.3},
		{domain.EventMessageSent, 0.8},
		{domain.EventBookingStarted, 0.9},
		{domain.EventBookingCompleted, 1.0},
		{domain.EventBookingCancelled, -0.5},
		{domain.EventType("SOMETHING_ELSE"), 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.eventType), func(t *testing.T) {
			assert.Equal(t, tt.expected, cfg.EventWeight(tt.eventType))
		})
	}
}

func TestHighSignalSet(t *testing.T) {
	cfg := DefaultConfig()

	highSignal := []domain.EventType{
		domain.EventBookmark,
		domain.EventUnbookmark,
		domain.EventBookingCompleted,
		domain.EventBookingCancelled,
	}
	lowSignal := []domain.EventType{
		domain.EventView,
		domain.EventProfileOpen,
		domain.EventMessageSent,
		domain.EventBookingStarted,
		domain.EventType("SOMETHING_ELSE"),
	}

	for _, et := range highSignal {
		assert.True(t, cfg.IsHighSignal(et), "expected %s to be high signal", et)
	}
	for _, et := range lowSignal {
		assert.False(t, cfg.IsHighSignal(et), "expected %s to be low signal", et)
	}
}

func TestEventTypeLabel_BoundedCardinality(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "BOOKMARK", cfg.EventTypeLabel(domain.EventBookmark))
	assert.Equal(t, "VIEW", cfg.EventTypeLabel(domain.EventView))

	// anything outside the weight table shares one label
	assert.Equal(t, "unknown", cfg.EventTypeLabel(domain.EventType("SHARED_TO_STORY")))
	assert.Equal(t, "unknown", cfg.EventTypeLabel(domain.EventType("")))
}

func TestPreferenceMatch_DefaultWithoutBookings(t *testing.T) {
	cfg := DefaultConfig()
	sig := UserSignals{HasBookingHistory: false}

	cand := activeCandidate(1, 10)
	cand.ServiceTypes = []string{"dinner", "travel"}

	assert.Equal(t, 0.5, preferenceMatch(cfg, sig, cand))
}

func TestPreferenceMatch_Fraction(t *testing.T) {
	cfg := DefaultConfig()
	sig := UserSignals{
		HasBookingHistory:  true,
		PreferredOccasions: []string{"dinner", "travel", "events", "party"},
	}

	cand := activeCandidate(1, 10)
	cand.ServiceTypes = []string{"dinner", "events"}

	assert.Equal(t, 0.5, preferenceMatch(cfg, sig, cand))
}

func TestProfileQuality(t *testing.T) {
	tests := []struct {
		name     string
		modify   func(c *domain.CandidateCompanion)
		expected float64
	}{
		{
			name:     "nothing",
			modify:   func(c *domain.CandidateCompanion) {},
			expected: 0.0,
		},
		{
			name: "verified photos only",
			modify: func(c *domain.CandidateCompanion) {
				c.VerifiedPhotoCount = 3
			},
			expected: 0.4,
		},
		{
			name: "two verified photos do not count",
			modify: func(c *domain.CandidateCompanion) {
				c.VerifiedPhotoCount = 2
			},
			expected: 0.0,
		},
		{
			name: "verified owner and long bio",
			modify: func(c *domain.CandidateCompanion) {
				c.IsVerifiedOwner = true
				c.Bio = strings.Repeat("x", 51)
			},
			expected: 0.6,
		},
		{
			name: "everything",
			modify: func(c *domain.CandidateCompanion) {
				c.VerifiedPhotoCount = 5
				c.IsVerifiedOwner = true
				c.Bio = strings.Repeat("x", 80)
			},
			expected: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cand := activeCandidate(1, 10)
			tt.modify(&cand)
			assert.InDelta(t, tt.expected, profileQuality(cand), 1e-9)
		})
	}
}

func TestPopularityScore(t *testing.T) {
	cand := activeCandidate(1, 10)
	cand.RatingAvg = 5.0
	cand.CompletedBookings = 100

	// completed bookings saturate at 50
	assert.InDelta(t, 1.0, popularityScore(cand), 1e-9)

	cand.RatingAvg = 2.5
	cand.CompletedBookings = 25
	assert.InDelta(t, 0.7*0.5+0.3*0.5, popularityScore(cand), 1e-9)
}

func TestBehavioralAffinity_CappedAtOne(t *testing.T) {
	cand := activeCandidate(1, 10)
	sig := UserSignals{
		FavoriteOwners: map[domain.UserID]bool{10: true},
		InteractionScores: map[domain.UserID]float64{
			// overwhelming positive history
			10: 500,
		},
	}

	assert.Equal(t, 1.0, behavioralAffinity(sig, cand))
}

func TestBehavioralAffinity_FavoriteOnly(t *testing.T) {
	cand := activeCandidate(1, 10)
	sig := UserSignals{
		FavoriteOwners:    map[domain.UserID]bool{10: true},
		InteractionScores: map[domain.UserID]float64{},
	}

	assert.InDelta(t, 0.4, behavioralAffinity(sig, cand), 1e-9)
}

func TestAvailabilityScore(t *testing.T) {
	cand := activeCandidate(1, 10)
	assert.Equal(t, 1.0, availabilityScore(cand))

	cand.IsActive = false
	assert.Equal(t, 0.3, availabilityScore(cand))
}

func TestPickReason_TieBreakOrder(t *testing.T) {
	tests := []struct {
		name      string
		breakdown domain.ScoreBreakdown
		expected  string
	}{
		{
			name: "all equal prefers preference label",
			breakdown: domain.ScoreBreakdown{
				PreferenceMatch:    0.5,
				ProfileQuality:     0.5,
				Popularity:         0.5,
				BehavioralAffinity: 0.5,
			},
			expected: ReasonPreferences,
		},
		{
			name: "quality beats preference",
			breakdown: domain.ScoreBreakdown{
				PreferenceMatch: 0.5,
				ProfileQuality:  0.8,
			},
			expected: ReasonQuality,
		},
		{
			name: "popularity wins",
			breakdown: domain.ScoreBreakdown{
				PreferenceMatch: 0.2,
				ProfileQuality:  0.3,
				Popularity:      0.9,
			},
			expected: ReasonPopular,
		},
		{
			name: "behavioral wins only when strictly greater",
			breakdown: domain.ScoreBreakdown{
				PreferenceMatch:    0.4,
				BehavioralAffinity: 0.9,
			},
			expected: ReasonActivity,
		},
		{
			name: "availability never carries a label",
			breakdown: domain.ScoreBreakdown{
				Availability:    1.0,
				PreferenceMatch: 0.1,
			},
			expected: ReasonPreferences,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, pickReason(tt.breakdown))
		})
	}
}

func TestScoreHybrid_SortedDescending(t *testing.T) {
	cfg := DefaultConfig()
	sig := UserSignals{HasBookingHistory: false}

	weak := activeCandidate(1, 10)
	strong := activeCandidate(2, 20)
	strong.VerifiedPhotoCount = 5
	strong.IsVerifiedOwner = true
	strong.Bio = strings.Repeat("x", 80)
	strong.RatingAvg = 5.0
	strong.CompletedBookings = 60

	scored := scoreHybrid(cfg, sig, []domain.CandidateCompanion{weak, strong})

	require.Len(t, scored, 2)
	assert.Equal(t, domain.ProfileID(2), scored[0].CompanionID)
	assert.Greater(t, scored[0].Score, scored[1].Score)
}

func TestScoreColdStart_FormulaAndOrder(t *testing.T) {
	cfg := DefaultConfig()

	full := activeCandidate(1, 10)
	full.PhotoCount = 4
	full.IsVerifiedOwner = true
	full.Bio = strings.Repeat("x", 60)
	full.RatingAvg = 4.0

	bare := activeCandidate(2, 20)
	bare.RatingAvg = 5.0

	// repository order is the serving order; scores may disagree with it
	scored := scoreColdStart(cfg, []domain.CandidateCompanion{bare, full})

	require.Len(t, scored, 2)
	assert.Equal(t, domain.ProfileID(2), scored[0].CompanionID)
	assert.InDelta(t, 0.2, scored[0].Score, 1e-9)
	assert.Equal(t, domain.ProfileID(1), scored[1].CompanionID)
	assert.InDelta(t, 0.3+0.3+0.2+0.2*(4.0/5.0), scored[1].Score, 1e-9)
}

func TestScoreColdStart_BreakdownReportsProfileFactors(t *testing.T) {
	cfg := DefaultConfig()

	cand := activeCandidate(1, 10)
	cand.VerifiedPhotoCount = 3
	cand.RatingAvg = 4.0
	cand.CompletedBookings = 25

	scored := scoreColdStart(cfg, []domain.CandidateCompanion{cand})

	require.Len(t, scored, 1)
	b := scored[0].Breakdown
	assert.InDelta(t, 0.4, b.ProfileQuality, 1e-9)
	assert.InDelta(t, 1.0, b.Availability, 1e-9)
	assert.InDelta(t, 0.7*(4.0/5.0)+0.3*0.5, b.Popularity, 1e-9)

	// user-signal factors have nothing to report without history
	assert.Zero(t, b.PreferenceMatch)
	assert.Zero(t, b.BehavioralAffinity)
}

func TestScoreHybrid_EndToEndScenario(t *testing.T) {
	cfg := DefaultConfig()

	p1 := activeCandidate(1, 100)
	p1.ServiceTypes = []string{"dinner"}
	p1.RatingAvg = 4.5
	p1.VerifiedPhotoCount = 3
	p1.PhotoCount = 3
	p1.IsVerifiedOwner = true
	p1.Bio = strings.Repeat("a", 80)

	p2 := activeCandidate(2, 200)
	p2.RatingAvg = 3.0

	sig := UserSignals{
		HasBookingHistory:  true,
		PreferredOccasions: []string{"dinner"},
		FavoriteOwners:     map[domain.UserID]bool{100: true},
		InteractionScores:  map[domain.UserID]float64{100: 1.5},
	}

	scored := scoreHybrid(cfg, sig, []domain.CandidateCompanion{p2, p1})

	require.Len(t, scored, 2)
	assert.Equal(t, domain.ProfileID(1), scored[0].CompanionID)
	assert.Greater(t, scored[0].Score, scored[1].Score)
	assert.Contains(t, []string{ReasonPreferences, ReasonQuality}, scored[0].Reason)
}
