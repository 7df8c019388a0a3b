package recommendation

import (
	"context"
	"fmt"
	"societyBackend/domain"
)

// selectCandidates produces the bounded eligible candidate set for a user:
// symmetric block exclusion plus active/visible/verified profile filters.
// No ranking happens here; that is the scorer's job.
func (s *Service) selectCandidates(ctx context.Context, userID domain.UserID) ([]domain.ProfileID, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	blocked, err := s.companionRepo.FindBlockedUserIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load block set: %w", err)
	}

	ids, err := s.companionRepo.FindCandidateProfileIDs(ctx, userID, blocked, s.cfg.CandidateLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidates: %w", err)
	}

	return ids, nil
}
