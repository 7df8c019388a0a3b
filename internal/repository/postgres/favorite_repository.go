package postgres

import (
	"context"
	"errors"
	"fmt"

	"societyBackend/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FavoriteRepository struct {
	DB *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{DB: db}
}

func (r *FavoriteRepository) FindByHirer(ctx context.Context, hirerID domain.UserID) ([]domain.Favorite, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var favorites []domain.Favorite
	err := r.DB.WithContext(ctx).
		Where("hirer_id = ?", hirerID).
		Order("created_at DESC").
		Find(&favorites).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find favorites: %w", err)
	}

	return favorites, nil
}

func (r *FavoriteRepository) Create(ctx context.Context, favorite *domain.Favorite) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	err := r.DB.WithContext(ctx).Clauses(
		clause.OnConflict{
			Columns:   []clause.Column{{Name: "hirer_id"}, {Name: "companion_user_id"}},
			DoNothing: true,
		},
	).Create(favorite).Error
	if err != nil {
		return fmt.Errorf("failed to save favorite: %w", err)
	}

	return nil
}

func (r *FavoriteRepository) DeleteByPair(ctx context.Context, hirerID, companionUserID domain.UserID) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).
		Where("hirer_id = ? AND companion_user_id = ?", hirerID, companionUserID).
		Delete(&domain.Favorite{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete favorite: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("favorite not found")
	}

	return nil
}
