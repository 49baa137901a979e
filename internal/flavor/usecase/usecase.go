package usecase

import (
	"context"
	"fmt"

	"github.com/fekuna/omnipos-catalog-service/internal/flavor"
	"github.com/fekuna/omnipos-catalog-service/internal/flavor/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/product"
	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
	"go.uber.org/zap"
)

type flavorUseCase struct {
	repo   flavor.Repository
	cache  product.ListCache
	logger logger.ZapLogger
}

// NewFlavorUseCase returns the flavor dictionary usecase. Renames and deletes
// change cached product listings, so cache (optional) is flushed after them.
func NewFlavorUseCase(repo flavor.Repository, cache product.ListCache, log logger.ZapLogger) flavor.UseCase {
	return &flavorUseCase{
		repo:   repo,
		cache:  cache,
		logger: log,
	}
}

func (uc *flavorUseCase) CreateFlavor(ctx context.Context, input *dto.FlavorInput) (*model.Flavor, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	f := &model.Flavor{Name: input.Name}
	if err := uc.repo.Create(ctx, f); err != nil {
		return nil, err
	}

	uc.logger.Info("flavor created", zap.Int64("flavor_id", f.ID), zap.String("name", f.Name))
	return f, nil
}

func (uc *flavorUseCase) GetFlavor(ctx context.Context, id int64) (*model.Flavor, error) {
	f, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, fmt.Errorf("flavor %d: %w", id, model.ErrNotFound)
	}
	return f, nil
}

func (uc *flavorUseCase) RenameFlavor(ctx context.Context, input *dto.FlavorInput) (*model.Flavor, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	f := &model.Flavor{ID: input.ID, Name: input.Name}
	if err := uc.repo.Update(ctx, f); err != nil {
		return nil, err
	}

	uc.invalidateListCache(ctx)
	return f, nil
}

func (uc *flavorUseCase) DeleteFlavor(ctx context.Context, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.invalidateListCache(ctx)
	uc.logger.Info("flavor deleted", zap.Int64("flavor_id", id))
	return nil
}

func (uc *flavorUseCase) invalidateListCache(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.DeletePattern(ctx, product.ListCachePattern); err != nil {
		uc.logger.Error("failed to invalidate product cache", zap.Error(err))
	}
}
