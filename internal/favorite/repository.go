package favorite

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	// Add is a no-op when the pair is already stored.
	Add(ctx context.Context, userID uuid.UUID, productID int64) error
	Delete(ctx context.Context, userID uuid.UUID, productID int64) error
	// FindProductIDs returns the user's favorites, oldest first.
	FindProductIDs(ctx context.Context, userID uuid.UUID) ([]int64, error)
	Contains(ctx context.Context, userID uuid.UUID, productID int64) (bool, error)
}
