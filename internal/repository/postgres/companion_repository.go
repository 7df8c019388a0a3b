package postgres

import (
	"context"
	"errors"
	"fmt"

	"societyBackend/business/recommendation"
	"societyBackend/domain"

	"gorm.io/gorm"
)

type CompanionRepository struct {
	DB *gorm.DB
}

func NewCompanionRepository(db *gorm.DB) *CompanionRepository {
	return &CompanionRepository{DB: db}
}

// candidateRow scans the profile/owner join used for scoring snapshots.
type candidateRow struct {
	domain.CompanionProfile
	OwnerVerified bool `gorm:"column:owner_verified"`
}

func (r *CompanionRepository) FindBlockedUserIDs(ctx context.Context, userID domain.UserID) ([]domain.UserID, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var blocks []domain.UserBlock
	err := r.DB.WithContext(ctx).
		Where("blocker_id = ? OR blocked_id = ?", userID, userID).
		Find(&blocks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find user blocks: %w", err)
	}

	seen := make(map[domain.UserID]bool, len(blocks))
	ids := make([]domain.UserID, 0, len(blocks))
	for _, b := range blocks {
		for _, id := range []domain.UserID{b.BlockerID, b.BlockedID} {
			if id == userID || seen[id] {
				continue
			}
			seen[id] = true
			ids = append(ids, id)
		}
	}

	return ids, nil
}

func (r *CompanionRepository) FindCandidateProfileIDs(ctx context.Context, userID domain.UserID, excludedOwners []domain.UserID, limit int) ([]domain.ProfileID, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if limit <= 0 {
		limit = 100
	}

	query := r.DB.WithContext(ctx).
		Model(&domain.CompanionProfile{}).
		Where("is_active = ?", true).
		Where("is_hidden = ?", false).
		Where("verification_status = ?", domain.VerificationVerified).
		Where("owner_user_id <> ?", userID)

	if len(excludedOwners) > 0 {
		query = query.Where("owner_user_id NOT IN ?", excludedOwners)
	}

	var ids []domain.ProfileID
	if err := query.Limit(limit).Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to find candidate profiles: %w", err)
	}

	return ids, nil
}

func (r *CompanionRepository) FindCandidatesByIDs(ctx context.Context, ids []domain.ProfileID) ([]domain.CandidateCompanion, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if len(ids) == 0 {
		return []domain.CandidateCompanion{}, nil
	}

	var rows []candidateRow
	err := r.DB.WithContext(ctx).
		Model(&domain.CompanionProfile{}).
		Select("companion_profiles.*, users.is_verified AS owner_verified").
		Joins("JOIN users ON users.id = companion_profiles.owner_user_id").
		Where("companion_profiles.id IN ?", ids).
		Where("companion_profiles.is_active = ?", true).
		Where("companion_profiles.is_hidden = ?", false).
		Order("companion_profiles.rating_avg DESC, companion_profiles.completed_bookings DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate snapshots: %w", err)
	}

	candidates := make([]domain.CandidateCompanion, 0, len(rows))
	for _, row := range rows {
		candidates = append(candidates, domain.CandidateCompanion{
			ProfileID:          row.ID,
			OwnerUserID:        row.OwnerUserID,
			IsActive:           row.IsActive,
			IsHidden:           row.IsHidden,
			VerificationStatus: row.VerificationStatus,
			RatingAvg:          row.RatingAvg,
			RatingCount:        row.RatingCount,
			CompletedBookings:  row.CompletedBookings,
			TotalBookings:      row.TotalBookings,
			Bio:                row.Bio,
			PhotoCount:         row.PhotoCount,
			VerifiedPhotoCount: row.VerifiedPhotoCount,
			Languages:          row.Languages,
			HourlyRate:         row.HourlyRate,
			ServiceTypes:       row.ServiceTypes,
			IsVerifiedOwner:    row.OwnerVerified,
		})
	}

	return candidates, nil
}

// ResolveOwner maps a companion reference to its owner-user id. The profile
// id namespace is checked first; a reference that is already an owner-user
// id resolves to itself, so resolution is idempotent.
func (r *CompanionRepository) ResolveOwner(ctx context.Context, ref uint) (domain.UserID, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("context error: %w", err)
	}

	var profile domain.CompanionProfile
	err := r.DB.WithContext(ctx).
		Select("id", "owner_user_id").
		First(&profile, "id = ?", ref).Error
	if err == nil {
		return profile.OwnerUserID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, fmt.Errorf("failed to look up companion profile: %w", err)
	}

	err = r.DB.WithContext(ctx).
		Select("id", "owner_user_id").
		First(&profile, "owner_user_id = ?", ref).Error
	if err == nil {
		return profile.OwnerUserID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, fmt.Errorf("failed to look up companion owner: %w", err)
	}

	return 0, recommendation.ErrCompanionNotFound
}
