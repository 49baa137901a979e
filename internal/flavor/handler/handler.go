package handler

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/flavor"
	"github.com/fekuna/omnipos-catalog-service/internal/flavor/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/rpc"
	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

type FlavorHandler struct {
	uc     flavor.UseCase
	logger logger.ZapLogger
}

func NewFlavorHandler(uc flavor.UseCase, log logger.ZapLogger) *FlavorHandler {
	return &FlavorHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *FlavorHandler) CreateFlavor(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in dto.FlavorInput
	if err := rpc.Decode(req, &in); err != nil {
		return nil, rpc.Error(h.logger, "invalid flavor request", err)
	}

	f, err := h.uc.CreateFlavor(ctx, &in)
	if err != nil {
		return nil, rpc.Error(h.logger, "failed to create flavor", err)
	}
	return h.encode(f)
}

func (h *FlavorHandler) GetFlavor(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in dto.FlavorInput
	if err := rpc.Decode(req, &in); err != nil {
		return nil, rpc.Error(h.logger, "invalid flavor request", err)
	}

	f, err := h.uc.GetFlavor(ctx, in.ID)
	if err != nil {
		return nil, rpc.Error(h.logger, "failed to get flavor", err)
	}
	return h.encode(f)
}

func (h *FlavorHandler) RenameFlavor(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in dto.FlavorInput
	if err := rpc.Decode(req, &in); err != nil {
		return nil, rpc.Error(h.logger, "invalid flavor request", err)
	}

	f, err := h.uc.RenameFlavor(ctx, &in)
	if err != nil {
		return nil, rpc.Error(h.logger, "failed to rename flavor", err)
	}
	return h.encode(f)
}

func (h *FlavorHandler) DeleteFlavor(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	var in dto.FlavorInput
	if err := rpc.Decode(req, &in); err != nil {
		return nil, rpc.Error(h.logger, "invalid flavor request", err)
	}

	if err := h.uc.DeleteFlavor(ctx, in.ID); err != nil {
		return nil, rpc.Error(h.logger, "failed to delete flavor", err)
	}
	return &emptypb.Empty{}, nil
}

func (h *FlavorHandler) encode(v interface{}) (*structpb.Struct, error) {
	out, err := rpc.Encode(v)
	if err != nil {
		return nil, rpc.Error(h.logger, "failed to encode response", err)
	}
	return out, nil
}
