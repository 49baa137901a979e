package middleware

import (
	"context"
	"errors"
	"testing"

	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var info = &grpc.UnaryServerInfo{FullMethod: "/catalog.v1.ProductService/GetProduct"}

func TestLoggingInterceptor(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	interceptor := LoggingInterceptor(logger.Wrap(zap.New(core)))

	resp, err := interceptor(context.Background(), nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		return "ok", nil
	})
	assert.NoError(t, err)
	assert.Equal(t, "ok", resp)

	_, err = interceptor(context.Background(), nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		return nil, status.Error(codes.NotFound, "missing")
	})
	assert.Error(t, err)

	entries := logs.All()
	if assert.Len(t, entries, 2) {
		assert.Equal(t, "OK", entries[0].ContextMap()["code"])
		assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
		assert.Equal(t, "NotFound", entries[1].ContextMap()["code"])
	}
}

func TestRecoveryInterceptor(t *testing.T) {
	interceptor := RecoveryInterceptor(logger.NewNop())

	_, err := interceptor(context.Background(), nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		panic(errors.New("boom"))
	})
	assert.Equal(t, codes.Internal, status.Code(err))
}
