package handler

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/auth"
	"github.com/fekuna/omnipos-catalog-service/internal/favorite"
	"github.com/fekuna/omnipos-catalog-service/internal/rpc"
	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
	"github.com/google/uuid"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// FavoriteHandler serves the signed-in user's favorites.
type FavoriteHandler struct {
	uc     favorite.UseCase
	logger logger.ZapLogger
}

func NewFavoriteHandler(uc favorite.UseCase, log logger.ZapLogger) *FavoriteHandler {
	return &FavoriteHandler{
		uc:     uc,
		logger: log,
	}
}

type productRequest struct {
	ProductID int64 `json:"product_id"`
}

func (h *FavoriteHandler) ListFavorites(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	userID, err := auth.RequireUserID(ctx)
	if err != nil {
		return nil, rpc.Error(h.logger, "unauthenticated", err)
	}

	fav, err := h.uc.GetByUser(ctx, userID)
	if err != nil {
		return nil, rpc.Error(h.logger, "failed to list favorites", err)
	}

	out, err := rpc.Encode(fav)
	if err != nil {
		return nil, rpc.Error(h.logger, "failed to encode response", err)
	}
	return out, nil
}

func (h *FavoriteHandler) AddFavorite(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	userID, in, err := h.parse(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := h.uc.Add(ctx, in.ProductID, userID); err != nil {
		return nil, rpc.Error(h.logger, "failed to add favorite", err)
	}
	return &emptypb.Empty{}, nil
}

func (h *FavoriteHandler) RemoveFavorite(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	userID, in, err := h.parse(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := h.uc.Delete(ctx, in.ProductID, userID); err != nil {
		return nil, rpc.Error(h.logger, "failed to remove favorite", err)
	}
	return &emptypb.Empty{}, nil
}

func (h *FavoriteHandler) parse(ctx context.Context, req *structpb.Struct) (uuid.UUID, productRequest, error) {
	var in productRequest
	userID, err := auth.RequireUserID(ctx)
	if err != nil {
		return userID, in, rpc.Error(h.logger, "unauthenticated", err)
	}
	if err := rpc.Decode(req, &in); err != nil {
		return userID, in, rpc.Error(h.logger, "invalid favorite request", err)
	}
	return userID, in, nil
}
