package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/product"
	"github.com/fekuna/omnipos-catalog-service/internal/product/dto"
	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
	"go.uber.org/zap"
)

type Config struct {
	SaleQuery       string // Search literal that switches to the on-sale listing
	CacheTTL        time.Duration
	DefaultPageSize int
}

type productUseCase struct {
	repo   product.Repository
	sales  product.SaleSource
	cache  product.ListCache
	cfg    Config
	logger logger.ZapLogger
}

// NewProductUseCase wires the product store, the on-sale source and an
// optional listing cache (nil disables caching).
func NewProductUseCase(repo product.Repository, sales product.SaleSource, cache product.ListCache, cfg Config, log logger.ZapLogger) product.UseCase {
	if cfg.DefaultPageSize <= 0 {
		cfg.DefaultPageSize = 12
	}
	return &productUseCase{
		repo:   repo,
		sales:  sales,
		cache:  cache,
		cfg:    cfg,
		logger: log,
	}
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.ProductInput) (*model.Product, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	p, err := uc.buildProduct(ctx, input)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	uc.invalidateListCache(ctx)
	uc.logger.Info("product created", zap.Int64("product_id", p.ID), zap.String("name", p.Name))

	return p, nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("product %d: %w", id, model.ErrNotFound)
	}
	return p, nil
}

func (uc *productUseCase) GetProductByName(ctx context.Context, name string) (*model.Product, error) {
	p, err := uc.repo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("product %q: %w", name, model.ErrNotFound)
	}
	return p, nil
}

// UpdateProduct replaces the stored product with input as a whole. The
// caller's Version is kept as the expected token so a concurrent edit
// surfaces model.ErrConcurrencyConflict instead of being overwritten.
func (uc *productUseCase) UpdateProduct(ctx context.Context, input *dto.ProductInput) (*model.Product, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	p, err := uc.buildProduct(ctx, input)
	if err != nil {
		return nil, err
	}
	p.ID = input.ID
	p.Version = input.Version

	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	uc.invalidateListCache(ctx)
	uc.logger.Info("product updated", zap.Int64("product_id", p.ID), zap.Int64("version", p.Version))

	return uc.GetProduct(ctx, p.ID)
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.invalidateListCache(ctx)
	uc.logger.Info("product deleted", zap.Int64("product_id", id))

	return nil
}

func (uc *productUseCase) buildProduct(ctx context.Context, input *dto.ProductInput) (*model.Product, error) {
	flavors := make([]*model.Flavor, 0, len(input.FlavorIDs))
	for _, id := range input.FlavorIDs {
		f, err := uc.repo.FindFlavorByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if f == nil {
			return nil, fmt.Errorf("%w: unknown flavor %d", model.ErrValidation, id)
		}
		flavors = append(flavors, f)
	}

	pictures := make([]model.Picture, 0, len(input.Pictures))
	for _, pic := range input.Pictures {
		picture := model.Picture{Path: strings.TrimSpace(pic.Path)}
		if nutrition := strings.TrimSpace(pic.NutritionPath); nutrition != "" {
			picture.NutritionPath = &nutrition
		}
		pictures = append(pictures, picture)
	}

	return &model.Product{
		Category:            input.Category,
		Brand:               input.Brand,
		Name:                strings.TrimSpace(input.Name),
		Description:         input.Description,
		Cost:                input.Cost,
		DiscountCost:        input.DiscountCost,
		DiscountDescription: input.DiscountDescription,
		AmountInStock:       input.AmountInStock,
		Flavors:             flavors,
		Pictures:            pictures,
	}, nil
}

func (uc *productUseCase) ListProducts(ctx context.Context, filter *dto.ListFilter) ([]model.Product, error) {
	if len(filter.HandoffIDs) > 0 {
		return uc.repo.FindByIDs(ctx, filter.HandoffIDs)
	}

	if filter.All {
		return uc.cachedList(ctx, "products:list:all", uc.repo.FindAll)
	}

	if !filter.Category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %d", model.ErrValidation, filter.Category)
	}
	key := fmt.Sprintf("products:list:category:%d", filter.Category)
	return uc.cachedList(ctx, key, func(ctx context.Context) ([]model.Product, error) {
		return uc.repo.FindByCategory(ctx, filter.Category)
	})
}

func (uc *productUseCase) ListByBrand(ctx context.Context, brand model.Brand) ([]model.Product, error) {
	if !brand.Valid() {
		return nil, fmt.Errorf("%w: unknown brand %d", model.ErrValidation, brand)
	}
	key := fmt.Sprintf("products:list:brand:%d", brand)
	return uc.cachedList(ctx, key, func(ctx context.Context) ([]model.Product, error) {
		return uc.repo.FindByBrand(ctx, brand)
	})
}

func (uc *productUseCase) ListSale(ctx context.Context) ([]model.Product, error) {
	return uc.sales.GetProductsWithDiscount(ctx)
}

func (uc *productUseCase) ListPage(ctx context.Context, page, pageSize int) ([]model.Product, error) {
	if pageSize == 0 {
		pageSize = uc.cfg.DefaultPageSize
	}
	if page < 1 || pageSize < 1 {
		return nil, fmt.Errorf("%w: page and page size must be positive", model.ErrValidation)
	}
	return uc.repo.FindPage(ctx, page, pageSize)
}

// Search matches query case-insensitively against brand display name, product
// name and category display name. Matches are concatenated in that order and
// de-duplicated keeping the first occurrence. The sale literal short-circuits
// to the discounted listing.
func (uc *productUseCase) Search(ctx context.Context, query string) ([]model.Product, error) {
	query = strings.TrimSpace(query)
	if uc.cfg.SaleQuery != "" && strings.EqualFold(query, uc.cfg.SaleQuery) {
		return uc.ListSale(ctx)
	}

	products, err := uc.cachedList(ctx, "products:list:all", uc.repo.FindAll)
	if err != nil {
		return nil, err
	}

	return matchProducts(products, query), nil
}

func matchProducts(products []model.Product, query string) []model.Product {
	needle := strings.ToLower(query)

	var byBrand, byName, byCategory []model.Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Brand.DisplayName()), needle) {
			byBrand = append(byBrand, p)
		}
		if strings.Contains(strings.ToLower(p.Name), needle) {
			byName = append(byName, p)
		}
		if strings.Contains(strings.ToLower(p.Category.DisplayName()), needle) {
			byCategory = append(byCategory, p)
		}
	}

	seen := make(map[int64]struct{}, len(products))
	result := make([]model.Product, 0, len(byBrand)+len(byName)+len(byCategory))
	for _, group := range [][]model.Product{byBrand, byName, byCategory} {
		for _, p := range group {
			if _, dup := seen[p.ID]; dup {
				continue
			}
			seen[p.ID] = struct{}{}
			result = append(result, p)
		}
	}
	return result
}

func (uc *productUseCase) ReduceStock(ctx context.Context, items []model.BasketItem) error {
	if len(items) == 0 {
		return nil
	}
	for _, item := range items {
		if item.Amount <= 0 {
			return fmt.Errorf("%w: amount for product %d must be positive", model.ErrValidation, item.ProductID)
		}
	}

	if err := uc.repo.ReduceStock(ctx, items); err != nil {
		return err
	}

	uc.invalidateListCache(ctx)
	uc.logger.Info("stock reduced", zap.Int("items", len(items)))

	return nil
}

func (uc *productUseCase) ListFlavors(ctx context.Context) ([]model.Flavor, error) {
	return uc.repo.ListFlavors(ctx)
}

func (uc *productUseCase) cachedList(ctx context.Context, key string, load func(context.Context) ([]model.Product, error)) ([]model.Product, error) {
	if uc.cache != nil {
		var cached []model.Product
		hit, err := uc.cache.GetJSON(ctx, key, &cached)
		if err != nil {
			uc.logger.Warn("product cache read failed", zap.String("key", key), zap.Error(err))
		}
		if hit {
			return cached, nil
		}
	}

	products, err := load(ctx)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.SetJSON(ctx, key, products, uc.cfg.CacheTTL); err != nil {
			uc.logger.Warn("product cache write failed", zap.String("key", key), zap.Error(err))
		}
	}

	return products, nil
}

func (uc *productUseCase) invalidateListCache(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.DeletePattern(ctx, product.ListCachePattern); err != nil {
		uc.logger.Error("failed to invalidate product cache", zap.Error(err))
	}
}
