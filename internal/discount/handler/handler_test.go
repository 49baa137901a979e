package handler

import (
	"context"
	"testing"

	"github.com/fekuna/omnipos-catalog-service/internal/discount"
	"github.com/fekuna/omnipos-catalog-service/internal/discount/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/rpc/rpctest"
	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

type fakeUseCase struct {
	discount.UseCase
	applied map[int64][]int64
}

func (f *fakeUseCase) CreateDiscount(ctx context.Context, input *dto.DiscountInput) (*model.Discount, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	return &model.Discount{ID: 7, Percent: input.Percent, Description: input.Description}, nil
}

func (f *fakeUseCase) ListDiscounts(ctx context.Context) ([]model.Discount, error) {
	return nil, nil
}

func (f *fakeUseCase) ApplyDiscount(ctx context.Context, discountID int64, productIDs []int64) error {
	if discountID != 7 {
		return model.ErrNotFound
	}
	f.applied[discountID] = productIDs
	return nil
}

func setup(t *testing.T) (*grpc.ClientConn, *fakeUseCase) {
	uc := &fakeUseCase{applied: map[int64][]int64{}}
	h := NewDiscountHandler(uc, logger.NewNop())
	return rpctest.Serve(t, func(s *grpc.Server) { RegisterDiscountServiceServer(s, h) }), uc
}

func TestDiscountService(t *testing.T) {
	conn, uc := setup(t)
	ctx := context.Background()

	var resp structpb.Struct
	err := rpctest.Call(ctx, conn, ServiceName, "CreateDiscount", map[string]interface{}{"percent": 15, "description": "Весна"}, &resp)
	require.NoError(t, err)
	d := resp.Fields["discount"].GetStructValue().AsMap()
	assert.Equal(t, float64(15), d["percent"])
	assert.Equal(t, float64(7), d["id"])

	err = rpctest.Call(ctx, conn, ServiceName, "CreateDiscount", map[string]interface{}{"percent": 150}, &resp)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	err = rpctest.Call(ctx, conn, ServiceName, "ApplyDiscount",
		map[string]interface{}{"discount_id": 7, "product_ids": []interface{}{1, 2}}, &emptypb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, uc.applied[7])

	err = rpctest.Call(ctx, conn, ServiceName, "ApplyDiscount",
		map[string]interface{}{"discount_id": 8, "product_ids": []interface{}{1}}, &emptypb.Empty{})
	assert.Equal(t, codes.NotFound, status.Code(err))

	err = rpctest.Call(ctx, conn, ServiceName, "ListDiscounts", nil, &resp)
	require.NoError(t, err)
	assert.Empty(t, resp.Fields["discounts"].GetListValue().AsSlice())
}
