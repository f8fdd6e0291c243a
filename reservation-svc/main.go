package main

import (
	"net/http"
	"time"

	"menuverse/config"
	httpapi "menuverse/reservation-svc/internal/api/http"
	"menuverse/reservation-svc/internal/service"
	"menuverse/reservation-svc/internal/storage"

	"go.uber.org/zap"
)

const reservationsTopic = "reservations"

func main() {
	config.LoadEnv()
	logger := config.NewLogger("reservation-svc")
	defer logger.Sync()

	paymentDelay := config.GetDuration("PAYMENT_DELAY", 2*time.Second)

	var repo service.ReservationRepository
	if config.StorageMode() == config.StoragePostgres {
		db := config.MustInitPostgres()
		defer db.Close()
		pg := storage.NewPostgresRepository(db)
		if err := pg.EnsureSchema(); err != nil {
			logger.Fatal("failed to ensure schema", zap.Error(err))
		}
		repo = pg
	} else {
		repo = storage.NewMemoryRepository()
	}

	var lock service.PaymentLock = storage.NewMemoryLock()
	if config.RedisConfigured() {
		rdb := config.MustInitRedis()
		defer rdb.Close()
		lock = storage.NewRedisLock(rdb, service.PaymentLockTTL(paymentDelay))
	}

	var publisher service.ReservationPublisher
	if config.KafkaConfigured() {
		writer := config.NewKafkaWriter(reservationsTopic)
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
	}

	menu := storage.NewMenuClient(
		config.GetEnv("MENU_SVC_URL", "http://localhost:8081"),
		&http.Client{Timeout: 5 * time.Second},
	)

	reservations := service.NewReservationService(repo, menu, lock, publisher, logger,
		service.WithPaymentDelay(paymentDelay))

	handler := httpapi.NewHandler(reservations, logger)
	httpapi.StartServer(":"+config.GetEnv("PORT", "8082"), httpapi.NewRouter(handler), logger)
}
