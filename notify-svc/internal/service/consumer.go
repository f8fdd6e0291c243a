package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"menuverse/notify-svc/internal/domain"

	"go.uber.org/zap"
)

type Consumer struct {
	Readers  []MessageReader
	Store    StoreInterface
	Notifier Notifier
	Logger   *zap.Logger
	Now      func() time.Time
	// Backoff is the pause after a failed read before trying the broker again.
	Backoff time.Duration
}

const defaultReadBackoff = time.Second

func NewConsumer(store StoreInterface, notifier Notifier, logger *zap.Logger, readers ...MessageReader) *Consumer {
	return &Consumer{
		Readers:  readers,
		Store:    store,
		Notifier: notifier,
		Logger:   logger,
		Now:      time.Now,
		Backoff:  defaultReadBackoff,
	}
}

// Start reads every topic until ctx is cancelled.
func (c *Consumer) Start(ctx context.Context) {
	c.Logger.Info("starting notification consumer", zap.Int("readers", len(c.Readers)))

	var wg sync.WaitGroup
	for _, reader := range c.Readers {
		wg.Add(1)
		go func(reader MessageReader) {
			defer wg.Done()
			c.consume(ctx, reader)
		}(reader)
	}
	wg.Wait()
	c.Logger.Info("notification consumer stopped")
}

func (c *Consumer) consume(ctx context.Context, reader MessageReader) {
	for {
		message, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			c.Logger.Error("error reading message", zap.Error(err), zap.Duration("backoff", c.Backoff))
			select {
			case <-ctx.Done():
				return
			case <-time.After(c.Backoff):
			}
			continue
		}

		var event domain.Event
		if err := json.Unmarshal(message.Value, &event); err != nil {
			c.Logger.Warn("error unmarshaling message", zap.String("topic", message.Topic), zap.Error(err))
			continue
		}

		if err := c.Process(ctx, event); err != nil {
			c.Logger.Error("error processing event",
				zap.String("type", event.Type),
				zap.String("restaurant_id", event.RestaurantID),
				zap.Error(err))
		}
	}
}

// Process dispatches one event. Unknown types are ignored.
func (c *Consumer) Process(ctx context.Context, event domain.Event) error {
	switch event.Type {
	case domain.EventOrderPlaced:
		return c.processOrder(ctx, event)
	case domain.EventReservationConfirmed:
		return c.processReservation(ctx, event)
	default:
		c.Logger.Debug("ignoring event", zap.String("type", event.Type))
		return nil
	}
}

func (c *Consumer) processOrder(ctx context.Context, event domain.Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = c.Now()
	}
	if err := c.Store.RecordOrder(ctx, event); err != nil {
		return err
	}
	c.Logger.Info("order aggregated",
		zap.String("order_id", event.OrderID),
		zap.String("restaurant_id", event.RestaurantID),
		zap.Int("items", len(event.Items)))
	return nil
}

func (c *Consumer) processReservation(ctx context.Context, event domain.Event) error {
	notification := domain.Notification{
		ReservationID: event.ReservationID,
		RestaurantID:  event.RestaurantID,
		Channel:       ChannelWhatsApp,
		Phone:         event.Phone,
		Message:       ConfirmationMessage(event.Phone, event.Date, event.Time),
		SentAt:        c.Now().UTC(),
	}
	if err := c.Notifier.Send(ctx, notification); err != nil {
		return err
	}
	return c.Store.RecordNotification(ctx, notification)
}
