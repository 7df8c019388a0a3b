package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"societyBackend/domain"

	"github.com/redis/go-redis/v9"
)

// RecommendationCache stores the full ranked list per user as a JSON value
// with a TTL. Expiry is enforced by Redis itself on read; there is no sweep.
type RecommendationCache struct {
	client *redis.Client
}

func NewRecommendationCache(client *redis.Client) *RecommendationCache {
	return &RecommendationCache{
		client: client,
	}
}

func forYouKey(userID domain.UserID) string {
	return fmt.Sprintf("reco:foryou:%d", userID)
}

// GetForYou returns (nil, nil) on a cache miss.
func (r *RecommendationCache) GetForYou(ctx context.Context, userID domain.UserID) ([]domain.ScoredCompanion, error) {
	val, err := r.client.Get(ctx, forYouKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get recommendations from Redis: %w", err)
	}

	var companions []domain.ScoredCompanion
	if err := json.Unmarshal([]byte(val), &companions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached recommendations: %w", err)
	}

	return companions, nil
}

func (r *RecommendationCache) SetForYou(ctx context.Context, userID domain.UserID, companions []domain.ScoredCompanion, ttl time.Duration) error {
	jsonData, err := json.Marshal(companions)
	if err != nil {
		return fmt.Errorf("failed to marshal recommendations: %w", err)
	}

	if err := r.client.Set(ctx, forYouKey(userID), jsonData, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store recommendations in Redis: %w", err)
	}

	return nil
}

func (r *RecommendationCache) DeleteForYou(ctx context.Context, userID domain.UserID) error {
	if err := r.client.Del(ctx, forYouKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to delete cached recommendations: %w", err)
	}

	return nil
}
