package comparison

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/comparison/dto"
	"github.com/google/uuid"
)

type Repository interface {
	// Upsert stores the pair, replacing the flavor of an existing entry.
	Upsert(ctx context.Context, userID uuid.UUID, productID, flavorID int64) error
	Delete(ctx context.Context, userID uuid.UUID, productID int64) error
	FindByUser(ctx context.Context, userID uuid.UUID) ([]dto.Selection, error)
}
