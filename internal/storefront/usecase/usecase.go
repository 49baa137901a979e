package usecase

import (
	"context"
	"fmt"

	"github.com/fekuna/omnipos-catalog-service/internal/favorite"
	"github.com/fekuna/omnipos-catalog-service/internal/feedback"
	feedbackdto "github.com/fekuna/omnipos-catalog-service/internal/feedback/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/product"
	"github.com/fekuna/omnipos-catalog-service/internal/storefront"
	"github.com/fekuna/omnipos-catalog-service/internal/storefront/dto"
	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ratingFetchLimit caps concurrent rating requests per Cards call.
const ratingFetchLimit = 8

type storefrontUseCase struct {
	products  product.Repository
	favorites favorite.Repository
	feedback  feedback.API
	logger    logger.ZapLogger
}

func NewStorefrontUseCase(products product.Repository, favorites favorite.Repository, fb feedback.API, log logger.ZapLogger) storefront.UseCase {
	return &storefrontUseCase{
		products:  products,
		favorites: favorites,
		feedback:  fb,
		logger:    log,
	}
}

func (uc *storefrontUseCase) ProductDetails(ctx context.Context, productID int64, userID uuid.UUID) (*dto.ProductDetails, error) {
	p, err := uc.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("product %d: %w", productID, model.ErrNotFound)
	}

	feedbacks, err := uc.feedback.GetFeedbacks(ctx, productID)
	if err != nil {
		return nil, err
	}

	details := &dto.ProductDetails{Product: *p, Feedbacks: feedbacks}
	if userID != uuid.Nil {
		details.IsInFavorites, err = uc.favorites.Contains(ctx, userID, productID)
		if err != nil {
			return nil, err
		}
	}
	return details, nil
}

// Cards keeps the order of products. Ratings are fetched concurrently and any
// failure fails the whole call.
func (uc *storefrontUseCase) Cards(ctx context.Context, products []model.Product, userID uuid.UUID) ([]dto.ProductCard, error) {
	favorites := map[int64]struct{}{}
	if userID != uuid.Nil {
		ids, err := uc.favorites.FindProductIDs(ctx, userID)
		if err != nil {
			return nil, err
		}
		for _, id := range ids {
			favorites[id] = struct{}{}
		}
	}

	cards := make([]dto.ProductCard, len(products))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(ratingFetchLimit)

	for i := range products {
		_, inFavorites := favorites[products[i].ID]
		cards[i] = dto.ProductCard{Product: products[i], IsInFavorites: inFavorites}

		i := i
		g.Go(func() error {
			rating, err := uc.feedback.GetProductRating(gctx, products[i].ID)
			if err != nil {
				return err
			}
			cards[i].Rating = rating
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		uc.logger.Warn("failed to load product ratings", zap.Error(err))
		return nil, err
	}
	return cards, nil
}

func (uc *storefrontUseCase) AddFeedback(ctx context.Context, input *feedbackdto.AddFeedbackInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	p, err := uc.products.FindByID(ctx, input.ProductID)
	if err != nil {
		return err
	}
	if p == nil {
		return fmt.Errorf("product %d: %w", input.ProductID, model.ErrNotFound)
	}

	if err := uc.feedback.AddFeedback(ctx, input); err != nil {
		return err
	}

	uc.logger.Info("feedback added", zap.Int64("product_id", input.ProductID), zap.String("user_id", input.UserID))
	return nil
}

func (uc *storefrontUseCase) DeleteFeedback(ctx context.Context, feedbackID int64) error {
	return uc.feedback.DeleteFeedback(ctx, feedbackID)
}
