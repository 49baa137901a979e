package handler

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/auth"
	"github.com/fekuna/omnipos-catalog-service/internal/comparison"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/rpc"
	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

type ComparisonHandler struct {
	uc     comparison.UseCase
	logger logger.ZapLogger
}

func NewComparisonHandler(uc comparison.UseCase, log logger.ZapLogger) *ComparisonHandler {
	return &ComparisonHandler{
		uc:     uc,
		logger: log,
	}
}

type comparisonRequest struct {
	ProductID int64 `json:"product_id"`
	FlavorID  int64 `json:"flavor_id"`
}

func (h *ComparisonHandler) ListComparisons(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	userID, err := auth.RequireUserID(ctx)
	if err != nil {
		return nil, rpc.Error(h.logger, "unauthenticated", err)
	}

	entries, err := h.uc.GetAll(ctx, userID)
	if err != nil {
		return nil, rpc.Error(h.logger, "failed to list comparisons", err)
	}
	if entries == nil {
		entries = []model.ComparisonEntry{}
	}

	out, err := rpc.Encode(map[string]interface{}{"entries": entries})
	if err != nil {
		return nil, rpc.Error(h.logger, "failed to encode response", err)
	}
	return out, nil
}

func (h *ComparisonHandler) AddComparison(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	userID, err := auth.RequireUserID(ctx)
	if err != nil {
		return nil, rpc.Error(h.logger, "unauthenticated", err)
	}
	var in comparisonRequest
	if err := rpc.Decode(req, &in); err != nil {
		return nil, rpc.Error(h.logger, "invalid comparison request", err)
	}

	if err := h.uc.Add(ctx, userID, in.ProductID, in.FlavorID); err != nil {
		return nil, rpc.Error(h.logger, "failed to add comparison", err)
	}
	return &emptypb.Empty{}, nil
}

func (h *ComparisonHandler) RemoveComparison(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	userID, err := auth.RequireUserID(ctx)
	if err != nil {
		return nil, rpc.Error(h.logger, "unauthenticated", err)
	}
	var in comparisonRequest
	if err := rpc.Decode(req, &in); err != nil {
		return nil, rpc.Error(h.logger, "invalid comparison request", err)
	}

	if err := h.uc.Delete(ctx, userID, in.ProductID); err != nil {
		return nil, rpc.Error(h.logger, "failed to remove comparison", err)
	}
	return &emptypb.Empty{}, nil
}
