package usecase

import (
	"context"
	"testing"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/product"
	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pair struct {
	user    uuid.UUID
	product int64
}

type fakeRepo struct {
	order []pair
}

func (f *fakeRepo) index(userID uuid.UUID, productID int64) int {
	for i, p := range f.order {
		if p.user == userID && p.product == productID {
			return i
		}
	}
	return -1
}

func (f *fakeRepo) Add(ctx context.Context, userID uuid.UUID, productID int64) error {
	if f.index(userID, productID) < 0 {
		f.order = append(f.order, pair{userID, productID})
	}
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, userID uuid.UUID, productID int64) error {
	if i := f.index(userID, productID); i >= 0 {
		f.order = append(f.order[:i], f.order[i+1:]...)
	}
	return nil
}

func (f *fakeRepo) FindProductIDs(ctx context.Context, userID uuid.UUID) ([]int64, error) {
	ids := []int64{}
	for _, p := range f.order {
		if p.user == userID {
			ids = append(ids, p.product)
		}
	}
	return ids, nil
}

func (f *fakeRepo) Contains(ctx context.Context, userID uuid.UUID, productID int64) (bool, error) {
	return f.index(userID, productID) >= 0, nil
}

type fakeProducts struct {
	product.Repository
	known map[int64]string
}

func (f fakeProducts) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	name, ok := f.known[id]
	if !ok {
		return nil, nil
	}
	return &model.Product{ID: id, Name: name}, nil
}

func (f fakeProducts) FindByIDs(ctx context.Context, ids []int64) ([]model.Product, error) {
	out := []model.Product{}
	for _, id := range ids {
		if p, _ := f.FindByID(ctx, id); p != nil {
			out = append(out, *p)
		}
	}
	return out, nil
}

func setup() (*fakeRepo, *favoriteUseCase) {
	repo := &fakeRepo{}
	products := fakeProducts{known: map[int64]string{1: "Gold Standard", 2: "Creatine Kick", 3: "Super Mass"}}
	uc := NewFavoriteUseCase(repo, products, logger.NewNop()).(*favoriteUseCase)
	return repo, uc
}

func TestFavorites(t *testing.T) {
	ctx := context.Background()
	_, uc := setup()
	alice, bob := uuid.New(), uuid.New()

	require.NoError(t, uc.Add(ctx, 2, alice))
	require.NoError(t, uc.Add(ctx, 1, alice))
	require.NoError(t, uc.Add(ctx, 2, alice))
	require.NoError(t, uc.Add(ctx, 3, bob))

	fav, err := uc.GetByUser(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, alice, fav.UserID)
	require.Len(t, fav.Products, 2, "adding twice keeps one entry")
	assert.EqualValues(t, 2, fav.Products[0].ID)
	assert.EqualValues(t, 1, fav.Products[1].ID)

	in, err := uc.Contains(ctx, 3, alice)
	require.NoError(t, err)
	assert.False(t, in)

	require.NoError(t, uc.Delete(ctx, 2, alice))
	require.NoError(t, uc.Delete(ctx, 2, alice), "deleting an absent favorite is a no-op")

	fav, err = uc.GetByUser(ctx, alice)
	require.NoError(t, err)
	require.Len(t, fav.Products, 1)
	assert.EqualValues(t, 1, fav.Products[0].ID)

	fav, err = uc.GetByUser(ctx, bob)
	require.NoError(t, err)
	assert.Len(t, fav.Products, 1)
}

func TestFavorites_UnknownProduct(t *testing.T) {
	repo, uc := setup()

	err := uc.Add(context.Background(), 99, uuid.New())
	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.Empty(t, repo.order)
}

func TestFavorites_EmptyUser(t *testing.T) {
	_, uc := setup()

	fav, err := uc.GetByUser(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.NotNil(t, fav.Products)
	assert.Empty(t, fav.Products)
}
