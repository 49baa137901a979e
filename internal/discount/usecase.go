package discount

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/discount/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
)

type UseCase interface {
	GetProductsWithDiscount(ctx context.Context) ([]model.Product, error)

	CreateDiscount(ctx context.Context, input *dto.DiscountInput) (*model.Discount, error)
	UpdateDiscount(ctx context.Context, id int64, input *dto.DiscountInput) (*model.Discount, error)
	ListDiscounts(ctx context.Context) ([]model.Discount, error)
	ApplyDiscount(ctx context.Context, discountID int64, productIDs []int64) error
	RecomputeDiscount(ctx context.Context, discountID int64) error
}
