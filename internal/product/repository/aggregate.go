package repository

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type productFlavorRow struct {
	ProductID int64 `db:"product_id"`
	model.Flavor
}

// loadAggregates fills Flavors (by position) and Pictures (by id) for every
// product with two queries, regardless of how many products there are.
func loadAggregates(ctx context.Context, q sqlx.QueryerContext, products []model.Product) error {
	if len(products) == 0 {
		return nil
	}

	ids := make([]int64, len(products))
	index := make(map[int64]int, len(products))
	for i := range products {
		ids[i] = products[i].ID
		index[products[i].ID] = i
		products[i].Flavors = []*model.Flavor{}
		products[i].Pictures = []model.Picture{}
	}

	var flavors []productFlavorRow
	err := sqlx.SelectContext(ctx, q, &flavors, `
		SELECT pf.product_id, f.id, f.name
		FROM product_flavors pf
		    JOIN flavors f ON f.id = pf.flavor_id
		WHERE pf.product_id = ANY($1)
		ORDER BY pf.product_id, pf.position
	`, pq.Array(ids))
	if err != nil {
		return err
	}
	for _, row := range flavors {
		i := index[row.ProductID]
		f := row.Flavor
		products[i].Flavors = append(products[i].Flavors, &f)
	}

	var pictures []model.Picture
	err = sqlx.SelectContext(ctx, q, &pictures, `
		SELECT id, product_id, path, nutrition_path
		FROM pictures
		WHERE product_id = ANY($1)
		ORDER BY id
	`, pq.Array(ids))
	if err != nil {
		return err
	}
	for _, pic := range pictures {
		i := index[pic.ProductID]
		products[i].Pictures = append(products[i].Pictures, pic)
	}

	return nil
}
