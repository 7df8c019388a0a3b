package recommendation

import (
	"context"
	"societyBackend/domain"
	"time"
)

// Cache stores the full ranked list per user. Entries are immutable for
// their TTL; invalidation is always a full delete, never a partial patch.
type Cache interface {
	// GetForYou returns (nil, nil) on a cache miss.
	GetForYou(ctx context.Context, userID domain.UserID) ([]domain.ScoredCompanion, error)
	SetForYou(ctx context.Context, userID domain.UserID, companions []domain.ScoredCompanion, ttl time.Duration) error
	DeleteForYou(ctx context.Context, userID domain.UserID) error
}
