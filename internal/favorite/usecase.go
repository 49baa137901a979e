package favorite

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/google/uuid"
)

type UseCase interface {
	GetByUser(ctx context.Context, userID uuid.UUID) (*model.Favorites, error)
	Add(ctx context.Context, productID int64, userID uuid.UUID) error
	Delete(ctx context.Context, productID int64, userID uuid.UUID) error
	Contains(ctx context.Context, productID int64, userID uuid.UUID) (bool, error)
}
