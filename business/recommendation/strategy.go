package recommendation

import (
	"context"
	"fmt"
	"societyBackend/domain"
)

// chooseStrategy applies the lifetime interaction threshold. The count is
// cumulative, not decayed: once a user crosses it they stay hybrid.
func (s *Service) chooseStrategy(ctx context.Context, userID domain.UserID) (domain.Strategy, error) {
	count, err := s.interactionRepo.CountByUser(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to count interactions: %w", err)
	}

	if count < s.cfg.ColdStartThreshold {
		return domain.StrategyColdStart, nil
	}
	return domain.StrategyHybrid, nil
}
