package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Add(ctx context.Context, userID uuid.UUID, productID int64) error {
	query := `
        INSERT INTO favorites (user_id, product_id)
        VALUES ($1, $2)
        ON CONFLICT (user_id, product_id) DO NOTHING
    `
	if _, err := r.DB.ExecContext(ctx, query, userID, productID); err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}

func (r *PGRepository) Delete(ctx context.Context, userID uuid.UUID, productID int64) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM favorites WHERE user_id = $1 AND product_id = $2`, userID, productID)
	return err
}

func (r *PGRepository) FindProductIDs(ctx context.Context, userID uuid.UUID) ([]int64, error) {
	ids := []int64{}
	err := r.DB.SelectContext(ctx, &ids, `
        SELECT product_id FROM favorites
        WHERE user_id = $1
        ORDER BY created_at, product_id
    `, userID)
	return ids, err
}

func (r *PGRepository) Contains(ctx context.Context, userID uuid.UUID, productID int64) (bool, error) {
	var exists bool
	err := r.DB.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM favorites WHERE user_id = $1 AND product_id = $2)`,
		userID, productID,
	)
	return exists, err
}
