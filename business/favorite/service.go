package favorite

import (
	"context"
	"fmt"

	"societyBackend/domain"
)

type FavoriteRepository interface {
	FindByHirer(ctx context.Context, hirerID domain.UserID) ([]domain.Favorite, error)
	Create(ctx context.Context, favorite *domain.Favorite) error
	DeleteByPair(ctx context.Context, hirerID, companionUserID domain.UserID) error
}

// CompanionResolver maps a companion reference (profile id or owner-user id)
// to the owner-user id favorites are keyed by.
type CompanionResolver interface {
	ResolveOwner(ctx context.Context, ref uint) (domain.UserID, error)
}

type Service struct {
	favoriteRepo FavoriteRepository
	resolver     CompanionResolver
}

func NewService(favoriteRepo FavoriteRepository, resolver CompanionResolver) *Service {
	return &Service{
		favoriteRepo: favoriteRepo,
		resolver:     resolver,
	}
}

func (s *Service) List(ctx context.Context, hirerID domain.UserID) ([]domain.Favorite, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	return s.favoriteRepo.FindByHirer(ctx, hirerID)
}

func (s *Service) Add(ctx context.Context, hirerID domain.UserID, companionRef uint) (domain.Favorite, error) {
	if err := ctx.Err(); err != nil {
		return domain.Favorite{}, fmt.Errorf("context error: %w", err)
	}

	ownerID, err := s.resolver.ResolveOwner(ctx, companionRef)
	if err != nil {
		return domain.Favorite{}, fmt.Errorf("failed to resolve companion: %w", err)
	}

	fav := domain.Favorite{
		HirerID:         hirerID,
		CompanionUserID: ownerID,
	}
	if err := s.favoriteRepo.Create(ctx, &fav); err != nil {
		return domain.Favorite{}, err
	}

	return fav, nil
}

func (s *Service) Remove(ctx context.Context, hirerID domain.UserID, companionRef uint) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	ownerID, err := s.resolver.ResolveOwner(ctx, companionRef)
	if err != nil {
		return fmt.Errorf("failed to resolve companion: %w", err)
	}

	return s.favoriteRepo.DeleteByPair(ctx, hirerID, ownerID)
}
