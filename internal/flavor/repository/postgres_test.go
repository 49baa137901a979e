package repository

import (
	"context"
	"testing"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/testutil/pgtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPGRepository(t *testing.T) {
	db := pgtest.Open(t, "catalog_flavor_repo")
	repo := NewPGRepository(db)
	ctx := context.Background()

	f := &model.Flavor{Name: "Шоколад"}
	require.NoError(t, repo.Create(ctx, f))
	assert.NotZero(t, f.ID)

	t.Run("duplicate name", func(t *testing.T) {
		err := repo.Create(ctx, &model.Flavor{Name: "Шоколад"})
		assert.ErrorIs(t, err, model.ErrValidation)
	})

	found, err := repo.FindByID(ctx, f.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Шоколад", found.Name)

	f.Name = "Какао"
	require.NoError(t, repo.Update(ctx, f))
	found, err = repo.FindByID(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, "Какао", found.Name)

	assert.ErrorIs(t, repo.Update(ctx, &model.Flavor{ID: f.ID + 100, Name: "Мята"}), model.ErrNotFound)

	require.NoError(t, repo.Delete(ctx, f.ID))
	assert.ErrorIs(t, repo.Delete(ctx, f.ID), model.ErrNotFound)

	missing, err := repo.FindByID(ctx, f.ID)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
