package postgres

import (
	"context"
	"fmt"

	"societyBackend/domain"

	"gorm.io/gorm"
)

type InteractionRepository struct {
	DB *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) *InteractionRepository {
	return &InteractionRepository{DB: db}
}

func (r *InteractionRepository) Create(ctx context.Context, interaction *domain.Interaction) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(interaction).Error; err != nil {
		return fmt.Errorf("failed to save interaction: %w", err)
	}

	return nil
}

func (r *InteractionRepository) CountByUser(ctx context.Context, userID domain.UserID) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("context error: %w", err)
	}

	var count int64
	err := r.DB.WithContext(ctx).
		Model(&domain.Interaction{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count interactions: %w", err)
	}

	return count, nil
}

func (r *InteractionRepository) GroupByCompanion(ctx context.Context, userID domain.UserID, companionUserIDs []domain.UserID) ([]domain.InteractionGroup, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if len(companionUserIDs) == 0 {
		return []domain.InteractionGroup{}, nil
	}

	var groups []domain.InteractionGroup
	err := r.DB.WithContext(ctx).
		Model(&domain.Interaction{}).
		Select("companion_user_id, event_type, COUNT(*) AS count").
		Where("user_id = ?", userID).
		Where("companion_user_id IN ?", companionUserIDs).
		Group("companion_user_id, event_type").
		Scan(&groups).Error
	if err != nil {
		return nil, fmt.Errorf("failed to group interactions: %w", err)
	}

	return groups, nil
}
