package handler

import (
	"context"
	"testing"

	"github.com/fekuna/omnipos-catalog-service/internal/comparison"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/rpc/rpctest"
	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

type fakeUseCase struct {
	comparison.UseCase
	entries map[uuid.UUID]map[int64]int64
}

func (f *fakeUseCase) Add(ctx context.Context, userID uuid.UUID, productID, flavorID int64) error {
	if flavorID == 9 {
		return model.ErrValidation
	}
	if f.entries[userID] == nil {
		f.entries[userID] = map[int64]int64{}
	}
	f.entries[userID][productID] = flavorID
	return nil
}

func (f *fakeUseCase) Delete(ctx context.Context, userID uuid.UUID, productID int64) error {
	delete(f.entries[userID], productID)
	return nil
}

func (f *fakeUseCase) GetAll(ctx context.Context, userID uuid.UUID) ([]model.ComparisonEntry, error) {
	var out []model.ComparisonEntry
	for productID, flavorID := range f.entries[userID] {
		out = append(out, model.ComparisonEntry{
			UserID:  userID,
			Product: model.Product{ID: productID},
			Flavor:  model.Flavor{ID: flavorID, Name: "Шоколад"},
		})
	}
	return out, nil
}

func TestComparisonService(t *testing.T) {
	uc := &fakeUseCase{entries: map[uuid.UUID]map[int64]int64{}}
	h := NewComparisonHandler(uc, logger.NewNop())
	conn := rpctest.Serve(t, func(s *grpc.Server) { RegisterComparisonServiceServer(s, h) })

	user := uuid.New()
	ctx := rpctest.AsUser(context.Background(), user.String())

	require.NoError(t, rpctest.Call(ctx, conn, ServiceName, "AddComparison",
		map[string]interface{}{"product_id": 1, "flavor_id": 2}, &emptypb.Empty{}))

	var resp structpb.Struct
	require.NoError(t, rpctest.Call(ctx, conn, ServiceName, "ListComparisons", nil, &resp))
	entries := resp.Fields["entries"].GetListValue().AsSlice()
	require.Len(t, entries, 1)
	flavor := entries[0].(map[string]interface{})["flavor"].(map[string]interface{})
	assert.Equal(t, float64(2), flavor["id"])

	err := rpctest.Call(ctx, conn, ServiceName, "AddComparison",
		map[string]interface{}{"product_id": 1, "flavor_id": 9}, &emptypb.Empty{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	require.NoError(t, rpctest.Call(ctx, conn, ServiceName, "RemoveComparison",
		map[string]interface{}{"product_id": 1}, &emptypb.Empty{}))
	require.NoError(t, rpctest.Call(ctx, conn, ServiceName, "ListComparisons", nil, &resp))
	assert.Empty(t, resp.Fields["entries"].GetListValue().AsSlice())

	err = rpctest.Call(context.Background(), conn, ServiceName, "RemoveComparison",
		map[string]interface{}{"product_id": 1}, &emptypb.Empty{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}
