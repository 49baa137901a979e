package flavor

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/flavor/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
)

type UseCase interface {
	CreateFlavor(ctx context.Context, input *dto.FlavorInput) (*model.Flavor, error)
	GetFlavor(ctx context.Context, id int64) (*model.Flavor, error)
	RenameFlavor(ctx context.Context, input *dto.FlavorInput) (*model.Flavor, error)
	DeleteFlavor(ctx context.Context, id int64) error
}
