package service

import (
	"context"

	"menuverse/notify-svc/internal/domain"
	"menuverse/notify-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type StoreInterface interface {
	RecordOrder(ctx context.Context, event domain.Event) error
	RecordNotification(ctx context.Context, n domain.Notification) error
}

type Notifier interface {
	Send(ctx context.Context, n domain.Notification) error
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	Process(ctx context.Context, event domain.Event) error
}

var (
	_ MessageReader     = (*kafka.Reader)(nil)
	_ StoreInterface    = (*storage.Store)(nil)
	_ Notifier          = (*WhatsAppNotifier)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
)
