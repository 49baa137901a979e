package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fekuna/omnipos-catalog-service/internal/discount"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, d *model.Discount) error {
	query := `
        INSERT INTO discounts (percent, description)
        VALUES ($1, $2)
        RETURNING id
    `
	err := r.DB.QueryRowxContext(ctx, query, d.Percent, d.Description).Scan(&d.ID)
	if err != nil {
		return fmt.Errorf("failed to insert discount: %w", err)
	}
	return nil
}

func (r *PGRepository) FindByID(ctx context.Context, id int64) (*model.Discount, error) {
	var d model.Discount
	err := r.DB.GetContext(ctx, &d, `SELECT id, percent, description FROM discounts WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Discount, error) {
	discounts := []model.Discount{}
	err := r.DB.SelectContext(ctx, &discounts, `SELECT id, percent, description FROM discounts ORDER BY id`)
	return discounts, err
}

func (r *PGRepository) Update(ctx context.Context, d *model.Discount, price discount.PriceFunc) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.NamedExecContext(ctx, `
        UPDATE discounts
        SET percent = :percent, description = :description
        WHERE id = :id
    `, d)
	if err != nil {
		return fmt.Errorf("failed to update discount: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("discount %d: %w", d.ID, model.ErrNotFound)
	}

	ids := []int64{}
	if err := tx.SelectContext(ctx, &ids, `SELECT id FROM products WHERE discount_id = $1 ORDER BY id`, d.ID); err != nil {
		return err
	}
	if err := applyTx(ctx, tx, d, ids, price); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *PGRepository) FindDiscountedProductIDs(ctx context.Context) ([]int64, error) {
	ids := []int64{}
	err := r.DB.SelectContext(ctx, &ids, `
        SELECT p.id
        FROM products p
        JOIN discounts d ON d.id = p.discount_id
        WHERE d.percent > 0
        ORDER BY p.id
    `)
	return ids, err
}

func (r *PGRepository) FindProductIDs(ctx context.Context, discountID int64) ([]int64, error) {
	ids := []int64{}
	err := r.DB.SelectContext(ctx, &ids, `SELECT id FROM products WHERE discount_id = $1 ORDER BY id`, discountID)
	return ids, err
}

func (r *PGRepository) Apply(ctx context.Context, d *model.Discount, productIDs []int64, price discount.PriceFunc) error {
	if len(productIDs) == 0 {
		return nil
	}

	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := applyTx(ctx, tx, d, productIDs, price); err != nil {
		return err
	}

	return tx.Commit()
}

// applyTx locks the products, then stores d and the derived price on each.
func applyTx(ctx context.Context, tx *sqlx.Tx, d *model.Discount, productIDs []int64, price discount.PriceFunc) error {
	if len(productIDs) == 0 {
		return nil
	}

	var rows []struct {
		ID   int64           `db:"id"`
		Cost decimal.Decimal `db:"cost"`
	}
	err := tx.SelectContext(ctx, &rows, `
        SELECT id, cost FROM products
        WHERE id = ANY($1)
        ORDER BY id
        FOR UPDATE
    `, pq.Array(productIDs))
	if err != nil {
		return err
	}

	costs := make(map[int64]decimal.Decimal, len(rows))
	for _, row := range rows {
		costs[row.ID] = row.Cost
	}

	for _, id := range productIDs {
		cost, ok := costs[id]
		if !ok {
			return fmt.Errorf("product %d: %w", id, model.ErrNotFound)
		}
		discounted, err := price(cost)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `
            UPDATE products
            SET discount_id = $1,
                discount_cost = $2,
                discount_description = $3,
                version = version + 1
            WHERE id = $4
        `, d.ID, discounted, d.Description, id)
		if err != nil {
			return fmt.Errorf("failed to apply discount to product %d: %w", id, err)
		}
	}
	return nil
}
