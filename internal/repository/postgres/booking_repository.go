package postgres

import (
	"context"
	"fmt"

	"societyBackend/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	DB *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{DB: db}
}

func (r *BookingRepository) FindCompletedByHirer(ctx context.Context, hirerID domain.UserID, limit int) ([]domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if limit <= 0 {
		limit = 20
	}

	var bookings []domain.Booking
	err := r.DB.WithContext(ctx).
		Where("hirer_id = ?", hirerID).
		Where("status = ?", domain.BookingStatusCompleted).
		Order("created_at DESC").
		Limit(limit).
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find completed bookings: %w", err)
	}

	return bookings, nil
}
