package usecase

import (
	"context"
	"fmt"

	"github.com/fekuna/omnipos-catalog-service/internal/favorite"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/product"
	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type favoriteUseCase struct {
	repo     favorite.Repository
	products product.Repository
	logger   logger.ZapLogger
}

func NewFavoriteUseCase(repo favorite.Repository, products product.Repository, log logger.ZapLogger) favorite.UseCase {
	return &favoriteUseCase{
		repo:     repo,
		products: products,
		logger:   log,
	}
}

func (uc *favoriteUseCase) GetByUser(ctx context.Context, userID uuid.UUID) (*model.Favorites, error) {
	ids, err := uc.repo.FindProductIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	products, err := uc.products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	return &model.Favorites{UserID: userID, Products: products}, nil
}

func (uc *favoriteUseCase) Add(ctx context.Context, productID int64, userID uuid.UUID) error {
	p, err := uc.products.FindByID(ctx, productID)
	if err != nil {
		return err
	}
	if p == nil {
		return fmt.Errorf("product %d: %w", productID, model.ErrNotFound)
	}

	if err := uc.repo.Add(ctx, userID, productID); err != nil {
		return err
	}

	uc.logger.Debug("favorite added", zap.String("user_id", userID.String()), zap.Int64("product_id", productID))
	return nil
}

func (uc *favoriteUseCase) Delete(ctx context.Context, productID int64, userID uuid.UUID) error {
	return uc.repo.Delete(ctx, userID, productID)
}

func (uc *favoriteUseCase) Contains(ctx context.Context, productID int64, userID uuid.UUID) (bool, error) {
	return uc.repo.Contains(ctx, userID, productID)
}
