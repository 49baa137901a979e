package handler

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/discount"
	"github.com/fekuna/omnipos-catalog-service/internal/discount/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/rpc"
	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

type DiscountHandler struct {
	uc     discount.UseCase
	logger logger.ZapLogger
}

func NewDiscountHandler(uc discount.UseCase, log logger.ZapLogger) *DiscountHandler {
	return &DiscountHandler{
		uc:     uc,
		logger: log,
	}
}

type discountRequest struct {
	ID          int64  `json:"id"`
	Percent     int    `json:"percent"`
	Description string `json:"description"`
}

func (h *DiscountHandler) CreateDiscount(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in discountRequest
	if err := rpc.Decode(req, &in); err != nil {
		return nil, rpc.Error(h.logger, "invalid discount", err)
	}

	d, err := h.uc.CreateDiscount(ctx, &dto.DiscountInput{Percent: in.Percent, Description: in.Description})
	if err != nil {
		return nil, rpc.Error(h.logger, "failed to create discount", err)
	}
	return h.encodeDiscount(d)
}

// UpdateDiscount also reprices every product the discount governs.
func (h *DiscountHandler) UpdateDiscount(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in discountRequest
	if err := rpc.Decode(req, &in); err != nil {
		return nil, rpc.Error(h.logger, "invalid discount", err)
	}

	d, err := h.uc.UpdateDiscount(ctx, in.ID, &dto.DiscountInput{Percent: in.Percent, Description: in.Description})
	if err != nil {
		return nil, rpc.Error(h.logger, "failed to update discount", err)
	}
	return h.encodeDiscount(d)
}

func (h *DiscountHandler) ListDiscounts(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	discounts, err := h.uc.ListDiscounts(ctx)
	if err != nil {
		return nil, rpc.Error(h.logger, "failed to list discounts", err)
	}
	if discounts == nil {
		discounts = []model.Discount{}
	}

	out, err := rpc.Encode(map[string]interface{}{"discounts": discounts})
	if err != nil {
		return nil, rpc.Error(h.logger, "failed to encode response", err)
	}
	return out, nil
}

type applyRequest struct {
	DiscountID int64   `json:"discount_id"`
	ProductIDs []int64 `json:"product_ids"`
}

func (h *DiscountHandler) ApplyDiscount(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	var in applyRequest
	if err := rpc.Decode(req, &in); err != nil {
		return nil, rpc.Error(h.logger, "invalid apply request", err)
	}

	if err := h.uc.ApplyDiscount(ctx, in.DiscountID, in.ProductIDs); err != nil {
		return nil, rpc.Error(h.logger, "failed to apply discount", err)
	}
	return &emptypb.Empty{}, nil
}

func (h *DiscountHandler) encodeDiscount(d *model.Discount) (*structpb.Struct, error) {
	out, err := rpc.Encode(map[string]interface{}{"discount": d})
	if err != nil {
		return nil, rpc.Error(h.logger, "failed to encode response", err)
	}
	return out, nil
}
