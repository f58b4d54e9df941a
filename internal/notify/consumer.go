package notify

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/msmahatha/agroCart-harvest-hub/internal/event"
)

type messageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

// Consumer reads order-placed events and sends confirmation emails. Email
// delivery is best-effort: a failed send is logged and the message is not
// retried.
type Consumer struct {
	reader messageReader
	sender EmailSender
	logger *zap.Logger
}

func NewConsumer(sender EmailSender, logger *zap.Logger, brokers ...string) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		Topic:    event.TopicOrderPlaced,
		GroupID:  "notify-service",
		MaxBytes: 10e6, // 10MB
	})
	return &Consumer{reader: reader, sender: sender, logger: logger}
}

func (c *Consumer) Run(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}
		c.processMessage(ctx)
	}
}

func (c *Consumer) Close() {
	if err := c.reader.Close(); err != nil {
		c.logger.Warn("error closing kafka reader", zap.Error(err))
	}
}

func (c *Consumer) processMessage(ctx context.Context) {
	m, err := c.reader.ReadMessage(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		c.logger.Warn("error reading message", zap.Error(err))
		return
	}

	var e event.OrderPlaced
	if err := json.Unmarshal(m.Value, &e); err != nil {
		c.logger.Warn("error parsing order-placed message", zap.Error(err))
		return
	}

	if e.UserEmail == "" {
		c.logger.Warn("order-placed event without user email, skipping",
			zap.String("order_id", e.OrderID))
		return
	}

	if err := c.sender.SendOrderConfirmation(ctx, e); err != nil {
		c.logger.Warn("failed to send order confirmation",
			zap.String("order_id", e.OrderID), zap.Error(err))
		return
	}

	c.logger.Info("order confirmation sent",
		zap.String("order_id", e.OrderID), zap.String("email", e.UserEmail))
}
