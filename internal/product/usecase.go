package product

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/product/dto"
)

type UseCase interface {
	CreateProduct(ctx context.Context, input *dto.ProductInput) (*model.Product, error)
	GetProduct(ctx context.Context, id int64) (*model.Product, error)
	GetProductByName(ctx context.Context, name string) (*model.Product, error)
	UpdateProduct(ctx context.Context, input *dto.ProductInput) (*model.Product, error)
	DeleteProduct(ctx context.Context, id int64) error

	ListProducts(ctx context.Context, filter *dto.ListFilter) ([]model.Product, error)
	ListByBrand(ctx context.Context, brand model.Brand) ([]model.Product, error)
	ListSale(ctx context.Context) ([]model.Product, error)
	ListPage(ctx context.Context, page, pageSize int) ([]model.Product, error)
	Search(ctx context.Context, query string) ([]model.Product, error)

	ReduceStock(ctx context.Context, items []model.BasketItem) error
	ListFlavors(ctx context.Context) ([]model.Flavor, error)
}

// SaleSource lists products currently under a non-zero discount.
type SaleSource interface {
	GetProductsWithDiscount(ctx context.Context) ([]model.Product, error)
}

// ListCache is the cache-aside store for product listings.
type ListCache interface {
	GetJSON(ctx context.Context, key string, dest interface{}) (bool, error)
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	DeletePattern(ctx context.Context, pattern string) error
}

// ListCachePattern matches every cached product listing. Anything that changes
// product rows must delete it.
const ListCachePattern = "products:list:*"
