package usecase

import (
	"context"
	"fmt"

	"github.com/fekuna/omnipos-catalog-service/internal/discount"
	"github.com/fekuna/omnipos-catalog-service/internal/discount/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/product"
	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type discountUseCase struct {
	repo     discount.Repository
	products product.Repository
	cache    product.ListCache
	logger   logger.ZapLogger
}

// NewDiscountUseCase also satisfies product.SaleSource. cache may be nil.
func NewDiscountUseCase(repo discount.Repository, products product.Repository, cache product.ListCache, log logger.ZapLogger) discount.UseCase {
	return &discountUseCase{
		repo:     repo,
		products: products,
		cache:    cache,
		logger:   log,
	}
}

func (uc *discountUseCase) GetProductsWithDiscount(ctx context.Context) ([]model.Product, error) {
	ids, err := uc.repo.FindDiscountedProductIDs(ctx)
	if err != nil {
		return nil, err
	}
	return uc.products.FindByIDs(ctx, ids)
}

func (uc *discountUseCase) CreateDiscount(ctx context.Context, input *dto.DiscountInput) (*model.Discount, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	d := &model.Discount{Percent: input.Percent, Description: input.Description}
	if err := uc.repo.Create(ctx, d); err != nil {
		return nil, err
	}

	uc.logger.Info("discount created", zap.Int64("discount_id", d.ID), zap.Int("percent", d.Percent))
	return d, nil
}

// UpdateDiscount changes percent and description and reprices every product
// the discount governs in the same transaction.
func (uc *discountUseCase) UpdateDiscount(ctx context.Context, id int64, input *dto.DiscountInput) (*model.Discount, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	d := &model.Discount{ID: id, Percent: input.Percent, Description: input.Description}
	if err := uc.repo.Update(ctx, d, pricer(d.Percent)); err != nil {
		return nil, err
	}

	uc.invalidateListCache(ctx)
	uc.logger.Info("discount updated", zap.Int64("discount_id", d.ID), zap.Int("percent", d.Percent))
	return d, nil
}

func (uc *discountUseCase) ListDiscounts(ctx context.Context) ([]model.Discount, error) {
	return uc.repo.FindAll(ctx)
}

// ApplyDiscount makes the discount govern productIDs. A product that was
// governed by another discount takes the new derived price.
func (uc *discountUseCase) ApplyDiscount(ctx context.Context, discountID int64, productIDs []int64) error {
	d, err := uc.getDiscount(ctx, discountID)
	if err != nil {
		return err
	}

	if err := uc.repo.Apply(ctx, d, productIDs, pricer(d.Percent)); err != nil {
		return err
	}

	uc.invalidateListCache(ctx)
	uc.logger.Info("discount applied",
		zap.Int64("discount_id", d.ID),
		zap.Int("percent", d.Percent),
		zap.Int("products", len(productIDs)),
	)
	return nil
}

func (uc *discountUseCase) RecomputeDiscount(ctx context.Context, discountID int64) error {
	d, err := uc.getDiscount(ctx, discountID)
	if err != nil {
		return err
	}

	ids, err := uc.repo.FindProductIDs(ctx, discountID)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}

	if err := uc.repo.Apply(ctx, d, ids, pricer(d.Percent)); err != nil {
		return err
	}

	uc.invalidateListCache(ctx)
	uc.logger.Info("discount recomputed", zap.Int64("discount_id", d.ID), zap.Int("products", len(ids)))
	return nil
}

func (uc *discountUseCase) getDiscount(ctx context.Context, id int64) (*model.Discount, error) {
	d, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, fmt.Errorf("discount %d: %w", id, model.ErrNotFound)
	}
	return d, nil
}

func pricer(percent int) discount.PriceFunc {
	return func(cost decimal.Decimal) (decimal.Decimal, error) {
		return discount.DiscountedCost(cost, percent)
	}
}

func (uc *discountUseCase) invalidateListCache(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.DeletePattern(ctx, product.ListCachePattern); err != nil {
		uc.logger.Error("failed to invalidate product cache", zap.Error(err))
	}
}
