package comparison

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/google/uuid"
)

type UseCase interface {
	Add(ctx context.Context, userID uuid.UUID, productID, flavorID int64) error
	Delete(ctx context.Context, userID uuid.UUID, productID int64) error
	GetAll(ctx context.Context, userID uuid.UUID) ([]model.ComparisonEntry, error)
}
