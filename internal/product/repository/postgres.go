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

const productColumns = `id, category, brand, name, description, cost, discount_cost,
	discount_description, discount_id, amount_in_stock, version`

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, p *model.Product) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
        INSERT INTO products (
            category, brand, name, description, cost, discount_cost,
            discount_description, discount_id, amount_in_stock
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id, version
    `
	err = tx.QueryRowxContext(ctx, query,
		p.Category, p.Brand, p.Name, p.Description, p.Cost, p.DiscountCost,
		p.DiscountDescription, p.DiscountID, p.AmountInStock,
	).Scan(&p.ID, &p.Version)
	if err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}

	if err := insertFlavors(ctx, tx, p.ID, p.Flavors); err != nil {
		return err
	}
	if err := insertPictures(ctx, tx, p.ID, p.Pictures); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *PGRepository) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	return r.findOne(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
}

func (r *PGRepository) FindByName(ctx context.Context, name string) (*model.Product, error) {
	return r.findOne(ctx, `SELECT `+productColumns+` FROM products WHERE name = $1 ORDER BY id LIMIT 1`, name)
}

func (r *PGRepository) findOne(ctx context.Context, query string, args ...interface{}) (*model.Product, error) {
	var p model.Product
	err := r.DB.GetContext(ctx, &p, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	products := []model.Product{p}
	if err := loadAggregates(ctx, r.DB, products); err != nil {
		return nil, err
	}
	return &products[0], nil
}

// FindByIDs returns the products in the order of ids, skipping unknown ids.
func (r *PGRepository) FindByIDs(ctx context.Context, ids []int64) ([]model.Product, error) {
	if len(ids) == 0 {
		return []model.Product{}, nil
	}

	found, err := r.findMany(ctx, `SELECT `+productColumns+` FROM products WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]model.Product, len(found))
	for _, p := range found {
		byID[p.ID] = p
	}

	products := make([]model.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			products = append(products, p)
		}
	}
	return products, nil
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	return r.findMany(ctx, `SELECT `+productColumns+` FROM products ORDER BY id`)
}

func (r *PGRepository) FindByCategory(ctx context.Context, category model.Category) ([]model.Product, error) {
	return r.findMany(ctx, `SELECT `+productColumns+` FROM products WHERE category = $1 ORDER BY id`, category)
}

func (r *PGRepository) FindByBrand(ctx context.Context, brand model.Brand) ([]model.Product, error) {
	return r.findMany(ctx, `SELECT `+productColumns+` FROM products WHERE brand = $1 ORDER BY id`, brand)
}

func (r *PGRepository) FindPage(ctx context.Context, page, pageSize int) ([]model.Product, error) {
	offset := (page - 1) * pageSize
	return r.findMany(ctx, `SELECT `+productColumns+` FROM products ORDER BY id LIMIT $1 OFFSET $2`, pageSize, offset)
}

func (r *PGRepository) findMany(ctx context.Context, query string, args ...interface{}) ([]model.Product, error) {
	products := []model.Product{}
	if err := r.DB.SelectContext(ctx, &products, query, args...); err != nil {
		return nil, err
	}
	if err := loadAggregates(ctx, r.DB, products); err != nil {
		return nil, err
	}
	return products, nil
}

// Update replaces every mutable field, the flavor set and the pictures in one
// transaction. The discount fields from p are kept only for products no
// discount governs. p.Version must be the token the caller read; a mismatch yields
// model.ErrConcurrencyConflict. On success p.Version holds the new token.
func (r *PGRepository) Update(ctx context.Context, p *model.Product) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var governing struct {
		Percent     sql.NullInt64  `db:"percent"`
		Description sql.NullString `db:"description"`
	}
	err = tx.GetContext(ctx, &governing, `
        SELECT d.percent, d.description
        FROM products p
        LEFT JOIN discounts d ON d.id = p.discount_id
        WHERE p.id = $1
        FOR UPDATE OF p
    `, p.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("product %d: %w", p.ID, model.ErrNotFound)
		}
		return err
	}

	// A governed product's sale price follows its discount and the new cost.
	if governing.Percent.Valid {
		discounted, err := discount.DiscountedCost(p.Cost, int(governing.Percent.Int64))
		if err != nil {
			return err
		}
		p.DiscountCost = decimal.NewNullDecimal(discounted)
		p.DiscountDescription = governing.Description.String
	}

	query := `
        UPDATE products
        SET category = :category,
            brand = :brand,
            name = :name,
            description = :description,
            cost = :cost,
            discount_cost = :discount_cost,
            discount_description = :discount_description,
            amount_in_stock = :amount_in_stock,
            version = version + 1
        WHERE id = :id AND version = :version
    `
	res, err := tx.NamedExecContext(ctx, query, p)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("product %d: %w", p.ID, model.ErrConcurrencyConflict)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM product_flavors WHERE product_id = $1`, p.ID); err != nil {
		return err
	}
	if err := insertFlavors(ctx, tx, p.ID, p.Flavors); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM pictures WHERE product_id = $1`, p.ID); err != nil {
		return err
	}
	if err := insertPictures(ctx, tx, p.ID, p.Pictures); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	p.Version++
	return nil
}

func (r *PGRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("product %d: %w", id, model.ErrNotFound)
	}
	return nil
}

// ReduceStock applies every decrement inside a single transaction and commits
// once at the end, so the batch is all-or-nothing. Rows are locked in id order,
// so concurrent batches queue behind each other.
func (r *PGRepository) ReduceStock(ctx context.Context, items []model.BasketItem) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	ids := make([]int64, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}

	var rows []struct {
		ID    int64 `db:"id"`
		Stock int   `db:"amount_in_stock"`
	}
	err = tx.SelectContext(ctx, &rows, `
        SELECT id, amount_in_stock FROM products
        WHERE id = ANY($1)
        ORDER BY id
        FOR UPDATE
    `, pq.Array(ids))
	if err != nil {
		return err
	}

	stock := make(map[int64]int, len(rows))
	for _, row := range rows {
		stock[row.ID] = row.Stock
	}
	for _, item := range items {
		left, ok := stock[item.ProductID]
		if !ok {
			return fmt.Errorf("product %d: %w", item.ProductID, model.ErrNotFound)
		}
		stock[item.ProductID] = remainingStock(left, item.Amount)
	}

	for _, row := range rows {
		_, err := tx.ExecContext(ctx, `
            UPDATE products
            SET amount_in_stock = $1, version = version + 1
            WHERE id = $2
        `, stock[row.ID], row.ID)
		if err != nil {
			return fmt.Errorf("failed to reduce stock of product %d: %w", row.ID, err)
		}
	}

	return tx.Commit()
}

func (r *PGRepository) FindFlavorByID(ctx context.Context, id int64) (*model.Flavor, error) {
	var f model.Flavor
	err := r.DB.GetContext(ctx, &f, `SELECT id, name FROM flavors WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}

func (r *PGRepository) ListFlavors(ctx context.Context) ([]model.Flavor, error) {
	flavors := []model.Flavor{}
	err := r.DB.SelectContext(ctx, &flavors, `SELECT id, name FROM flavors ORDER BY id`)
	return flavors, err
}

func insertFlavors(ctx context.Context, tx *sqlx.Tx, productID int64, flavors []*model.Flavor) error {
	position := 0
	for _, f := range flavors {
		if f == nil {
			continue
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO product_flavors (product_id, flavor_id, position)
			VALUES ($1, $2, $3)
			ON CONFLICT (product_id, flavor_id) DO NOTHING
		`, productID, f.ID, position)
		if err != nil {
			return fmt.Errorf("failed to link flavor %d: %w", f.ID, err)
		}
		position++
	}
	return nil
}

func insertPictures(ctx context.Context, tx *sqlx.Tx, productID int64, pictures []model.Picture) error {
	for i := range pictures {
		pictures[i].ProductID = productID
		err := tx.QueryRowxContext(ctx, `
			INSERT INTO pictures (product_id, path, nutrition_path)
			VALUES ($1, $2, $3)
			RETURNING id
		`, productID, pictures[i].Path, pictures[i].NutritionPath).Scan(&pictures[i].ID)
		if err != nil {
			return fmt.Errorf("failed to insert picture: %w", err)
		}
	}
	return nil
}

// remainingStock floors the decrement at zero; an oversized order empties the stock.
func remainingStock(stock, amount int) int {
	if amount > stock {
		return 0
	}
	return stock - amount
}
