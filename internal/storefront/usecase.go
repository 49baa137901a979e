package storefront

import (
	"context"

	feedbackdto "github.com/fekuna/omnipos-catalog-service/internal/feedback/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/storefront/dto"
	"github.com/google/uuid"
)

// UseCase builds view projections. uuid.Nil stands for an anonymous visitor,
// for whom IsInFavorites is always false.
type UseCase interface {
	ProductDetails(ctx context.Context, productID int64, userID uuid.UUID) (*dto.ProductDetails, error)
	Cards(ctx context.Context, products []model.Product, userID uuid.UUID) ([]dto.ProductCard, error)
	AddFeedback(ctx context.Context, input *feedbackdto.AddFeedbackInput) error
	DeleteFeedback(ctx context.Context, feedbackID int64) error
}
