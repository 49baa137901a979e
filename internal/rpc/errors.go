package rpc

import (
	"errors"

	"github.com/fekuna/omnipos-catalog-service/internal/auth"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Code maps the catalog error taxonomy onto gRPC codes.
func Code(err error) codes.Code {
	switch {
	case errors.Is(err, model.ErrNotFound):
		return codes.NotFound
	case errors.Is(err, model.ErrConcurrencyConflict):
		return codes.Aborted
	case errors.Is(err, model.ErrValidation):
		return codes.InvalidArgument
	case errors.Is(err, model.ErrRemoteService):
		return codes.Unavailable
	case errors.Is(err, auth.ErrUnauthenticated):
		return codes.Unauthenticated
	default:
		return codes.Internal
	}
}

// Error converts err to a status error, logging only unexpected failures.
func Error(log logger.ZapLogger, msg string, err error) error {
	code := Code(err)
	if code == codes.Internal || code == codes.Unavailable {
		log.Error(msg, zap.Error(err))
	}
	return status.Error(code, err.Error())
}
