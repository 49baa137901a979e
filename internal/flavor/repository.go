package flavor

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
)

// Repository owns the flavor dictionary. Names are unique; a clash is
// reported as model.ErrValidation.
type Repository interface {
	Create(ctx context.Context, flavor *model.Flavor) error
	FindByID(ctx context.Context, id int64) (*model.Flavor, error)
	Update(ctx context.Context, flavor *model.Flavor) error
	Delete(ctx context.Context, id int64) error
}
