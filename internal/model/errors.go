package model

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrConcurrencyConflict = errors.New("concurrency conflict")
	ErrValidation          = errors.New("validation failed")
	ErrRemoteService       = errors.New("remote service failure")
)
