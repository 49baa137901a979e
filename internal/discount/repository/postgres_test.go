package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/fekuna/omnipos-catalog-service/internal/discount"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/testutil/pgtest"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) (*PGRepository, *sqlx.DB) {
	t.Helper()
	db := pgtest.Open(t, "catalog_discount_repo")
	pgtest.Exec(t, db,
		`INSERT INTO products (id, category, brand, name, cost) VALUES
			(1, 0, 0, 'Gold Standard', 2750.00),
			(2, 3, 4, 'Creatine Kick', 19.99),
			(3, 5, 6, 'Super Mass', 990.00)`,
	)
	return NewPGRepository(db), db
}

func price(percent int) discount.PriceFunc {
	return func(cost decimal.Decimal) (decimal.Decimal, error) {
		return discount.DiscountedCost(cost, percent)
	}
}

func TestPGRepository_Apply(t *testing.T) {
	repo, db := setupRepo(t)
	ctx := context.Background()

	d := &model.Discount{Percent: 15, Description: "-15%"}
	require.NoError(t, repo.Create(ctx, d))
	require.NotZero(t, d.ID)

	require.NoError(t, repo.Apply(ctx, d, []int64{1, 2}, price(d.Percent)))

	var row struct {
		Cost        decimal.NullDecimal `db:"discount_cost"`
		Description string              `db:"discount_description"`
		DiscountID  *int64              `db:"discount_id"`
		Version     int64               `db:"version"`
	}
	require.NoError(t, db.Get(&row, `SELECT discount_cost, discount_description, discount_id, version FROM products WHERE id = 2`))
	assert.True(t, row.Cost.Decimal.Equal(decimal.NewFromInt(17)))
	assert.Equal(t, "-15%", row.Description)
	require.NotNil(t, row.DiscountID)
	assert.Equal(t, d.ID, *row.DiscountID)
	assert.EqualValues(t, 2, row.Version)

	ids, err := repo.FindProductIDs(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, ids)

	onSale, err := repo.FindDiscountedProductIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, onSale)
}

func TestPGRepository_ApplyUnknownProductRollsBack(t *testing.T) {
	repo, db := setupRepo(t)
	ctx := context.Background()

	d := &model.Discount{Percent: 50}
	require.NoError(t, repo.Create(ctx, d))

	err := repo.Apply(ctx, d, []int64{1, 404}, price(d.Percent))
	assert.ErrorIs(t, err, model.ErrNotFound)

	var governed int
	require.NoError(t, db.Get(&governed, `SELECT count(*) FROM products WHERE discount_id IS NOT NULL`))
	assert.Zero(t, governed)
}

func TestPGRepository_ZeroPercentNotOnSale(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	d := &model.Discount{Percent: 0}
	require.NoError(t, repo.Create(ctx, d))
	require.NoError(t, repo.Apply(ctx, d, []int64{3}, price(d.Percent)))

	onSale, err := repo.FindDiscountedProductIDs(ctx)
	require.NoError(t, err)
	assert.Empty(t, onSale)
}

func TestPGRepository_UpdateAndFind(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	d := &model.Discount{Percent: 10, Description: "old"}
	require.NoError(t, repo.Create(ctx, d))

	d.Percent = 25
	d.Description = "new"
	require.NoError(t, repo.Update(ctx, d, price(d.Percent)))

	found, err := repo.FindByID(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, 25, found.Percent)

	missing, err := repo.FindByID(ctx, d.ID+100)
	require.NoError(t, err)
	assert.Nil(t, missing)

	err = repo.Update(ctx, &model.Discount{ID: d.ID + 100, Percent: 1}, price(1))
	assert.ErrorIs(t, err, model.ErrNotFound)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestPGRepository_UpdateReprices(t *testing.T) {
	repo, db := setupRepo(t)
	ctx := context.Background()

	d := &model.Discount{Percent: 10, Description: "-10%"}
	require.NoError(t, repo.Create(ctx, d))
	require.NoError(t, repo.Apply(ctx, d, []int64{1, 3}, price(d.Percent)))

	d.Percent = 20
	d.Description = "-20%"
	require.NoError(t, repo.Update(ctx, d, price(d.Percent)))

	var prices []decimal.Decimal
	require.NoError(t, db.Select(&prices, `SELECT discount_cost FROM products WHERE discount_id = $1 ORDER BY id`, d.ID))
	require.Len(t, prices, 2)
	assert.True(t, prices[0].Equal(decimal.NewFromInt(2200)))
	assert.True(t, prices[1].Equal(decimal.NewFromInt(792)))

	var description string
	require.NoError(t, db.Get(&description, `SELECT discount_description FROM products WHERE id = 1`))
	assert.Equal(t, "-20%", description)

	t.Run("failed repricing keeps the old percent", func(t *testing.T) {
		broken := func(decimal.Decimal) (decimal.Decimal, error) {
			return decimal.Zero, errors.New("pricing failed")
		}
		err := repo.Update(ctx, &model.Discount{ID: d.ID, Percent: 50, Description: "-50%"}, broken)
		require.Error(t, err)

		found, err := repo.FindByID(ctx, d.ID)
		require.NoError(t, err)
		assert.Equal(t, 20, found.Percent)

		var cost decimal.Decimal
		require.NoError(t, db.Get(&cost, `SELECT discount_cost FROM products WHERE id = 1`))
		assert.True(t, cost.Equal(decimal.NewFromInt(2200)))
	})
}
