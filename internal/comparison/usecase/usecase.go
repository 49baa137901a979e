package usecase

import (
	"context"
	"fmt"

	"github.com/fekuna/omnipos-catalog-service/internal/comparison"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/product"
	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type comparisonUseCase struct {
	repo     comparison.Repository
	products product.Repository
	logger   logger.ZapLogger
}

func NewComparisonUseCase(repo comparison.Repository, products product.Repository, log logger.ZapLogger) comparison.UseCase {
	return &comparisonUseCase{
		repo:     repo,
		products: products,
		logger:   log,
	}
}

// Add records the product for comparison with the chosen flavor. Adding the
// same product again keeps one entry with the latest flavor.
func (uc *comparisonUseCase) Add(ctx context.Context, userID uuid.UUID, productID, flavorID int64) error {
	p, err := uc.products.FindByID(ctx, productID)
	if err != nil {
		return err
	}
	if p == nil {
		return fmt.Errorf("product %d: %w", productID, model.ErrNotFound)
	}

	f, err := uc.products.FindFlavorByID(ctx, flavorID)
	if err != nil {
		return err
	}
	if f == nil {
		return fmt.Errorf("flavor %d: %w", flavorID, model.ErrNotFound)
	}
	if !p.HasFlavor(flavorID) {
		return fmt.Errorf("%w: product %d has no flavor %d", model.ErrValidation, productID, flavorID)
	}

	if err := uc.repo.Upsert(ctx, userID, productID, flavorID); err != nil {
		return err
	}

	uc.logger.Debug("comparison saved",
		zap.String("user_id", userID.String()),
		zap.Int64("product_id", productID),
		zap.Int64("flavor_id", flavorID),
	)
	return nil
}

func (uc *comparisonUseCase) Delete(ctx context.Context, userID uuid.UUID, productID int64) error {
	return uc.repo.Delete(ctx, userID, productID)
}

func (uc *comparisonUseCase) GetAll(ctx context.Context, userID uuid.UUID) ([]model.ComparisonEntry, error) {
	rows, err := uc.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, len(rows))
	for i, row := range rows {
		ids[i] = row.ProductID
	}
	products, err := uc.products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	entries := make([]model.ComparisonEntry, 0, len(rows))
	for _, row := range rows {
		p, ok := byID[row.ProductID]
		if !ok {
			continue
		}
		f, err := uc.flavor(ctx, &p, row.FlavorID)
		if err != nil {
			return nil, err
		}
		entries = append(entries, model.ComparisonEntry{UserID: userID, Product: p, Flavor: f})
	}
	return entries, nil
}

// flavor prefers the product's own flavor list and falls back to the store
// when the flavor has since been unlinked from the product.
func (uc *comparisonUseCase) flavor(ctx context.Context, p *model.Product, flavorID int64) (model.Flavor, error) {
	for _, f := range p.Flavors {
		if f != nil && f.ID == flavorID {
			return *f, nil
		}
	}

	f, err := uc.products.FindFlavorByID(ctx, flavorID)
	if err != nil || f == nil {
		return model.Flavor{ID: flavorID}, err
	}
	return *f, nil
}
