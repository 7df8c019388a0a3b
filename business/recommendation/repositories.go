package recommendation

import (
	"context"
	"societyBackend/domain"
)

// CompanionRepository is the user/companion directory view the engine needs.
type CompanionRepository interface {
	// FindBlockedUserIDs returns every user who blocked or was blocked by
	// userID (symmetric), excluding userID itself.
	FindBlockedUserIDs(ctx context.Context, userID domain.UserID) ([]domain.UserID, error)

	// FindCandidateProfileIDs returns up to limit eligible profile ids:
	// active, not hidden, VERIFIED, owner not in excludedOwners and not userID.
	FindCandidateProfileIDs(ctx context.Context, userID domain.UserID, excludedOwners []domain.UserID, limit int) ([]domain.ProfileID, error)

	// FindCandidatesByIDs fetches fresh scoring snapshots for the given
	// profiles, ordered by rating_avg DESC, completed_bookings DESC.
	// Profiles that turned inactive or hidden since selection are dropped.
	FindCandidatesByIDs(ctx context.Context, ids []domain.ProfileID) ([]domain.CandidateCompanion, error)

	// ResolveOwner maps a companion reference (profile id or owner-user id)
	// to the owner-user id. Returns domain-level not-found when the
	// reference matches neither namespace.
	ResolveOwner(ctx context.Context, ref uint) (domain.UserID, error)
}

type InteractionRepository interface {
	Create(ctx context.Context, interaction *domain.Interaction) error
	CountByUser(ctx context.Context, userID domain.UserID) (int64, error)

	// GroupByCompanion returns per (companion owner, event type) counts for
	// the user, restricted to the given owners.
	GroupByCompanion(ctx context.Context, userID domain.UserID, companionUserIDs []domain.UserID) ([]domain.InteractionGroup, error)
}

type BookingRepository interface {
	// FindCompletedByHirer returns the most recent COMPLETED bookings,
	// newest first, up to limit.
	FindCompletedByHirer(ctx context.Context, hirerID domain.UserID, limit int) ([]domain.Booking, error)
}

type FavoriteRepository interface {
	FindByHirer(ctx context.Context, hirerID domain.UserID) ([]domain.Favorite, error)
}
