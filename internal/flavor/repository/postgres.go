package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, f *model.Flavor) error {
	err := r.DB.QueryRowxContext(ctx, `INSERT INTO flavors (name) VALUES ($1) RETURNING id`, f.Name).Scan(&f.ID)
	if err != nil {
		return translate(f.Name, err)
	}
	return nil
}

func (r *PGRepository) FindByID(ctx context.Context, id int64) (*model.Flavor, error) {
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

func (r *PGRepository) Update(ctx context.Context, f *model.Flavor) error {
	res, err := r.DB.NamedExecContext(ctx, `UPDATE flavors SET name = :name WHERE id = :id`, f)
	if err != nil {
		return translate(f.Name, err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("flavor %d: %w", f.ID, model.ErrNotFound)
	}
	return nil
}

// Delete also unlinks the flavor from products and comparisons through the
// schema's cascading foreign keys.
func (r *PGRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM flavors WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("flavor %d: %w", id, model.ErrNotFound)
	}
	return nil
}

func translate(name string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return fmt.Errorf("%w: flavor %q already exists", model.ErrValidation, name)
	}
	return fmt.Errorf("failed to save flavor: %w", err)
}
