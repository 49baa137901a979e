package discount

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/shopspring/decimal"
)

// PriceFunc derives a product's sale price from its list cost.
type PriceFunc func(cost decimal.Decimal) (decimal.Decimal, error)

type Repository interface {
	Create(ctx context.Context, discount *model.Discount) error
	FindByID(ctx context.Context, id int64) (*model.Discount, error)
	FindAll(ctx context.Context) ([]model.Discount, error)

	// Update stores the new percent and description and reprices every
	// product the discount governs with price, in one transaction.
	Update(ctx context.Context, discount *model.Discount, price PriceFunc) error

	// Product ids governed by a discount whose percent is above zero.
	FindDiscountedProductIDs(ctx context.Context) ([]int64, error)
	FindProductIDs(ctx context.Context, discountID int64) ([]int64, error)

	// Apply makes discount govern every product in productIDs and stores the
	// price derived by price, all in one transaction.
	Apply(ctx context.Context, discount *model.Discount, productIDs []int64, price PriceFunc) error
}
