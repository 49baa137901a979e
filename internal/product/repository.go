package product

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
)

// Repository is the product store. Every read returns full aggregates with
// flavors and pictures loaded. Single-row reads return (nil, nil) when absent.
type Repository interface {
	Create(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, id int64) (*model.Product, error)
	FindByName(ctx context.Context, name string) (*model.Product, error)
	FindByIDs(ctx context.Context, ids []int64) ([]model.Product, error)
	FindAll(ctx context.Context) ([]model.Product, error)
	FindByCategory(ctx context.Context, category model.Category) ([]model.Product, error)
	FindByBrand(ctx context.Context, brand model.Brand) ([]model.Product, error)
	FindPage(ctx context.Context, page, pageSize int) ([]model.Product, error)
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id int64) error

	// Decrements stock for every item in one transaction, flooring at zero.
	ReduceStock(ctx context.Context, items []model.BasketItem) error

	FindFlavorByID(ctx context.Context, id int64) (*model.Flavor, error)
	ListFlavors(ctx context.Context) ([]model.Flavor, error)
}
