package listener

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/product"
	"github.com/fekuna/omnipos-catalog-service/pkg/broker"
	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fakeUseCase struct {
	product.UseCase
	mu      sync.Mutex
	batches [][]model.BasketItem
	errs    []error // returned by successive calls, then err
	err     error
}

func (f *fakeUseCase) ReduceStock(ctx context.Context, items []model.BasketItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := len(f.batches)
	f.batches = append(f.batches, items)
	if n < len(f.errs) {
		return f.errs[n]
	}
	return f.err
}

func (f *fakeUseCase) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.batches)
}

type chanReader struct {
	ch chan []byte
}

func (r *chanReader) ReadMessage(ctx context.Context) (*broker.Message, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case v, ok := <-r.ch:
		if !ok {
			return nil, errors.New("closed")
		}
		return &broker.Message{Subject: "orders.created", Value: v}, nil
	}
}

const orderEvent = `{
	"event_id": "e-1",
	"event_type": "OrderCreated",
	"payload": {"id": "o-1", "items": [{"product_id": 3, "amount": 2}, {"product_id": 5, "amount": 1}]},
	"timestamp": "2024-05-01T12:00:00Z"
}`

func TestProcessMessage(t *testing.T) {
	uc := &fakeUseCase{}
	l := NewStockListener(nil, uc, logger.NewNop())

	l.processMessage(context.Background(), []byte(orderEvent))

	require.Len(t, uc.batches, 1)
	assert.Equal(t, []model.BasketItem{{ProductID: 3, Amount: 2}, {ProductID: 5, Amount: 1}}, uc.batches[0])
}

func TestProcessMessage_Skips(t *testing.T) {
	uc := &fakeUseCase{}
	l := NewStockListener(nil, uc, logger.NewNop())

	l.processMessage(context.Background(), []byte(`{not json`))
	l.processMessage(context.Background(), []byte(`{"event_type":"OrderCancelled","payload":{"items":[{"product_id":1,"amount":1}]}}`))

	assert.Empty(t, uc.batches)
}

func TestProcessMessage_RetriesConflict(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	uc := &fakeUseCase{errs: []error{fmt.Errorf("product 3: %w", model.ErrConcurrencyConflict)}}
	l := NewStockListener(nil, uc, logger.Wrap(zap.New(core)))
	l.retry = time.Millisecond

	l.processMessage(context.Background(), []byte(orderEvent))

	require.Len(t, uc.batches, 2)
	assert.Equal(t, uc.batches[0], uc.batches[1])
	assert.Empty(t, logs.FilterMessage("Failed to reduce stock for order").All())
	assert.Len(t, logs.FilterMessage("Stock changed concurrently, retrying order").All(), 1)
}

func TestProcessMessage_LogsFailure(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		attempts int
	}{
		{"conflict persists", model.ErrConcurrencyConflict, reduceStockAttempts},
		{"unknown product is not retried", model.ErrNotFound, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.InfoLevel)
			uc := &fakeUseCase{err: tt.err}
			l := NewStockListener(nil, uc, logger.Wrap(zap.New(core)))
			l.retry = time.Millisecond

			l.processMessage(context.Background(), []byte(orderEvent))

			assert.Len(t, uc.batches, tt.attempts)
			failures := logs.FilterMessage("Failed to reduce stock for order").All()
			require.Len(t, failures, 1)
			assert.Equal(t, "o-1", failures[0].ContextMap()["order_id"])
			assert.EqualValues(t, tt.attempts, failures[0].ContextMap()["attempts"])
		})
	}
}

func TestStart_ConsumesUntilCancelled(t *testing.T) {
	uc := &fakeUseCase{}
	reader := &chanReader{ch: make(chan []byte, 2)}
	l := NewStockListener(reader, uc, logger.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		l.Start(ctx)
		close(done)
	}()

	reader.ch <- []byte(orderEvent)
	reader.ch <- []byte(orderEvent)
	assert.Eventually(t, func() bool { return uc.count() == 2 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("listener did not stop")
	}
}
