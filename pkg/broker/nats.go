// Package broker provides a pull-style NATS consumer for event listeners.
package broker

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
)

type Config struct {
	URL     string
	Subject string
	Queue   string
}

type Message struct {
	Subject string
	Value   []byte
}

// NatsConsumer reads messages one at a time from a queue subscription so that
// several service replicas share the event stream.
type NatsConsumer struct {
	conn *nats.Conn
	sub  *nats.Subscription
}

func NewConsumer(cfg *Config) (*NatsConsumer, error) {
	nc, err := nats.Connect(cfg.URL,
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(10),
		nats.ReconnectWait(time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}

	sub, err := nc.QueueSubscribeSync(cfg.Subject, cfg.Queue)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("subscribe %s: %w", cfg.Subject, err)
	}

	return &NatsConsumer{conn: nc, sub: sub}, nil
}

// ReadMessage blocks until a message arrives or ctx is done.
func (c *NatsConsumer) ReadMessage(ctx context.Context) (*Message, error) {
	msg, err := c.sub.NextMsgWithContext(ctx)
	if err != nil {
		return nil, err
	}
	return &Message{Subject: msg.Subject, Value: msg.Data}, nil
}

func (c *NatsConsumer) Close() {
	if c.sub != nil {
		_ = c.sub.Unsubscribe()
	}
	if c.conn != nil {
		c.conn.Close()
	}
}
