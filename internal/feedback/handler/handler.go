package handler

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/auth"
	"github.com/fekuna/omnipos-catalog-service/internal/feedback/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/rpc"
	"github.com/fekuna/omnipos-catalog-service/internal/storefront"
	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// FeedbackHandler forwards feedback writes to the remote feedback service.
type FeedbackHandler struct {
	views  storefront.UseCase
	logger logger.ZapLogger
}

func NewFeedbackHandler(views storefront.UseCase, log logger.ZapLogger) *FeedbackHandler {
	return &FeedbackHandler{
		views:  views,
		logger: log,
	}
}

type addFeedbackRequest struct {
	ProductID int64  `json:"product_id"`
	Login     string `json:"login"`
	Text      string `json:"text"`
	Grade     int    `json:"grade"`
}

func (h *FeedbackHandler) AddFeedback(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	userID, err := auth.RequireUserID(ctx)
	if err != nil {
		return nil, rpc.Error(h.logger, "unauthenticated", err)
	}
	var in addFeedbackRequest
	if err := rpc.Decode(req, &in); err != nil {
		return nil, rpc.Error(h.logger, "invalid feedback", err)
	}

	err = h.views.AddFeedback(ctx, &dto.AddFeedbackInput{
		ProductID: in.ProductID,
		UserID:    userID.String(),
		Login:     in.Login,
		Text:      in.Text,
		Grade:     in.Grade,
	})
	if err != nil {
		return nil, rpc.Error(h.logger, "failed to add feedback", err)
	}
	return &emptypb.Empty{}, nil
}

type deleteFeedbackRequest struct {
	ID int64 `json:"id"`
}

func (h *FeedbackHandler) DeleteFeedback(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	if _, err := auth.RequireUserID(ctx); err != nil {
		return nil, rpc.Error(h.logger, "unauthenticated", err)
	}
	var in deleteFeedbackRequest
	if err := rpc.Decode(req, &in); err != nil {
		return nil, rpc.Error(h.logger, "invalid feedback", err)
	}

	if err := h.views.DeleteFeedback(ctx, in.ID); err != nil {
		return nil, rpc.Error(h.logger, "failed to delete feedback", err)
	}
	return &emptypb.Empty{}, nil
}
