package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"menuverse/config"
	"menuverse/notify-svc/internal/service"
	"menuverse/notify-svc/internal/storage"

	"go.uber.org/zap"
)

const groupID = "notify-svc-consumer"

var topics = []string{"orders", "reservations"}

func newConsumer(store service.StoreInterface, logger *zap.Logger, readers ...service.MessageReader) *service.Consumer {
	return service.NewConsumer(store, service.NewWhatsAppNotifier(logger), logger, readers...)
}

func main() {
	config.LoadEnv()
	logger := config.NewLogger("notify-svc")
	defer logger.Sync()

	if !config.KafkaConfigured() {
		logger.Fatal("KAFKA_BROKER is required")
	}

	rdb := config.MustInitRedis()
	defer rdb.Close()

	readers := make([]service.MessageReader, 0, len(topics))
	for _, topic := range topics {
		reader := config.NewKafkaReader(topic, groupID)
		defer reader.Close()
		readers = append(readers, reader)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	newConsumer(storage.NewStore(rdb), logger, readers...).Start(ctx)
}
