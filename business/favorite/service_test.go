package favorite

import (
	"context"
	"errors"
	"testing"

	"societyBackend/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFavoriteRepo struct {
	favorites []domain.Favorite
	deleted   [][2]domain.UserID
}

func (f *fakeFavoriteRepo) FindByHirer(_ context.Context, hirerID domain.UserID) ([]domain.Favorite, error) {
	out := make([]domain.Favorite, 0, len(f.favorites))
	for _, fav := range f.favorites {
		if fav.HirerID == hirerID {
			out = append(out, fav)
		}
	}
	return out, nil
}

func (f *fakeFavoriteRepo) Create(_ context.Context, favorite *domain.Favorite) error {
	f.favorites = append(f.favorites, *favorite)
	return nil
}

func (f *fakeFavoriteRepo) DeleteByPair(_ context.Context, hirerID, companionUserID domain.UserID) error {
	f.deleted = append(f.deleted, [2]domain.UserID{hirerID, companionUserID})
	return nil
}

type fakeResolver struct {
	owners map[uint]domain.UserID
}

func (f *fakeResolver) ResolveOwner(_ context.Context, ref uint) (domain.UserID, error) {
	if owner, ok := f.owners[ref]; ok {
		return owner, nil
	}
	return 0, errors.New("companion not found")
}

func TestAdd_ResolvesProfileReferenceToOwner(t *testing.T) {
	repo := &fakeFavoriteRepo{}
	svc := NewService(repo, &fakeResolver{owners: map[uint]domain.UserID{5: 105}})

	fav, err := svc.Add(context.Background(), 1, 5)

	require.NoError(t, err)
	assert.Equal(t, domain.UserID(1), fav.HirerID)
	assert.Equal(t, domain.UserID(105), fav.CompanionUserID)
	require.Len(t, repo.favorites, 1)
}

func TestAdd_UnknownCompanion(t *testing.T) {
	repo := &fakeFavoriteRepo{}
	svc := NewService(repo, &fakeResolver{owners: map[uint]domain.UserID{}})

	_, err := svc.Add(context.Background(), 1, 999)

	assert.ErrorContains(t, err, "failed to resolve companion")
	assert.Empty(t, repo.favorites)
}

func TestRemove(t *testing.T) {
	repo := &fakeFavoriteRepo{}
	svc := NewService(repo, &fakeResolver{owners: map[uint]domain.UserID{5: 105}})

	require.NoError(t, svc.Remove(context.Background(), 1, 5))
	require.Len(t, repo.deleted, 1)
	assert.Equal(t, [2]domain.UserID{1, 105}, repo.deleted[0])
}

func TestList_ScopedToHirer(t *testing.T) {
	repo := &fakeFavoriteRepo{favorites: []domain.Favorite{
		{HirerID: 1, CompanionUserID: 105},
		{HirerID: 2, CompanionUserID: 106},
	}}
	svc := NewService(repo, &fakeResolver{})

	favs, err := svc.List(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, favs, 1)
	assert.Equal(t, domain.UserID(105), favs[0].CompanionUserID)
}
