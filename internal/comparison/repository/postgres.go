package repository

import (
	"context"
	"fmt"

	"github.com/fekuna/omnipos-catalog-service/internal/comparison/dto"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Upsert(ctx context.Context, userID uuid.UUID, productID, flavorID int64) error {
	query := `
        INSERT INTO comparisons (user_id, product_id, flavor_id)
        VALUES ($1, $2, $3)
        ON CONFLICT (user_id, product_id)
        DO UPDATE SET flavor_id = EXCLUDED.flavor_id, updated_at = now()
    `
	if _, err := r.DB.ExecContext(ctx, query, userID, productID, flavorID); err != nil {
		return fmt.Errorf("failed to save comparison: %w", err)
	}
	return nil
}

// Delete only touches the given user's entry.
func (r *PGRepository) Delete(ctx context.Context, userID uuid.UUID, productID int64) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM comparisons WHERE user_id = $1 AND product_id = $2`, userID, productID)
	return err
}

func (r *PGRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]dto.Selection, error) {
	rows := []dto.Selection{}
	err := r.DB.SelectContext(ctx, &rows, `
        SELECT product_id, flavor_id FROM comparisons
        WHERE user_id = $1
        ORDER BY product_id
    `, userID)
	return rows, err
}
