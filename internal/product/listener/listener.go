package listener

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/product"
	"github.com/fekuna/omnipos-catalog-service/pkg/broker"
	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
	"go.uber.org/zap"
)

const (
	orderCreated = "OrderCreated"

	// NATS core does not redeliver, so a conflicted batch is retried here.
	reduceStockAttempts = 3
)

type MessageReader interface {
	ReadMessage(ctx context.Context) (*broker.Message, error)
}

// StockListener reduces stock for every basket in an OrderCreated event.
type StockListener struct {
	consumer MessageReader
	uc       product.UseCase
	logger   logger.ZapLogger
	backoff  time.Duration
	retry    time.Duration
}

func NewStockListener(consumer MessageReader, uc product.UseCase, logger logger.ZapLogger) *StockListener {
	return &StockListener{
		consumer: consumer,
		uc:       uc,
		logger:   logger,
		backoff:  time.Second,
		retry:    100 * time.Millisecond,
	}
}

func (l *StockListener) Start(ctx context.Context) {
	l.logger.Info("Starting stock NATS listener")
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("Stopping stock NATS listener")
			return
		default:
			msg, err := l.consumer.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				l.logger.Error("Failed to read NATS message", zap.Error(err))
				select {
				case <-ctx.Done():
					return
				case <-time.After(l.backoff):
				}
				continue
			}
			l.processMessage(ctx, msg.Value)
		}
	}
}

type OrderCreatedEvent struct {
	EventID   string       `json:"event_id"`
	EventType string       `json:"event_type"`
	Payload   OrderPayload `json:"payload"`
	Timestamp time.Time    `json:"timestamp"`
}

type OrderPayload struct {
	ID    string             `json:"id"`
	Items []OrderItemPayload `json:"items"`
}

type OrderItemPayload struct {
	ProductID int64 `json:"product_id"`
	Amount    int   `json:"amount"`
}

func (l *StockListener) processMessage(ctx context.Context, value []byte) {
	var event OrderCreatedEvent
	if err := json.Unmarshal(value, &event); err != nil {
		l.logger.Error("Failed to unmarshal event", zap.Error(err))
		return
	}

	if event.EventType != orderCreated {
		return
	}

	items := make([]model.BasketItem, 0, len(event.Payload.Items))
	for _, item := range event.Payload.Items {
		items = append(items, model.BasketItem{ProductID: item.ProductID, Amount: item.Amount})
	}

	l.logger.Info("Processing OrderCreated event",
		zap.String("order_id", event.Payload.ID),
		zap.Int("items", len(items)),
	)

	for attempt := 1; ; attempt++ {
		err := l.uc.ReduceStock(ctx, items)
		if err == nil {
			return
		}
		if !errors.Is(err, model.ErrConcurrencyConflict) || attempt == reduceStockAttempts {
			l.logger.Error("Failed to reduce stock for order",
				zap.String("order_id", event.Payload.ID),
				zap.Int("attempts", attempt),
				zap.Error(err),
			)
			return
		}

		l.logger.Warn("Stock changed concurrently, retrying order",
			zap.String("order_id", event.Payload.ID),
			zap.Int("attempt", attempt),
		)
		select {
		case <-ctx.Done():
			return
		case <-time.After(time.Duration(attempt) * l.retry):
		}
	}
}
