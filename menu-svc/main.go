package main

import (
	"database/sql"
	"time"

	"menuverse/config"
	httpapi "menuverse/menu-svc/internal/api/http"
	"menuverse/menu-svc/internal/domain"
	"menuverse/menu-svc/internal/service"
	"menuverse/menu-svc/internal/storage"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const ordersTopic = "orders"

type repositories struct {
	catalog service.RestaurantRepository
	orders  service.OrderRepository
	carts   service.CartStore
}

func openRepositories(db *sql.DB, rdb *redis.Client, cartTTL time.Duration, logger *zap.Logger) repositories {
	var repos repositories
	if db != nil {
		pg := storage.NewPostgresRepository(db)
		if err := pg.EnsureSchema(); err != nil {
			logger.Fatal("failed to ensure schema", zap.Error(err))
		}
		if err := pg.Seed(domain.SeedRestaurants()); err != nil {
			logger.Fatal("failed to seed catalog", zap.Error(err))
		}
		repos.catalog, repos.orders = pg, pg
	} else {
		repos.catalog = storage.NewMemoryCatalog(domain.SeedRestaurants())
		repos.orders = storage.NewMemoryOrders()
	}

	if rdb != nil {
		repos.carts = storage.NewRedisCartStore(rdb, cartTTL)
	} else {
		repos.carts = storage.NewMemoryCartStore()
	}
	return repos
}

func newHandler(repos repositories, publisher service.OrderPublisher, baseURL string, logger *zap.Logger) *httpapi.Handler {
	qr := service.DefaultQRGenerator{Size: 256}
	catalog := service.NewCatalogService(repos.catalog)
	carts := service.NewCartService(repos.catalog, repos.carts, logger)
	return httpapi.NewHandler(
		catalog,
		service.NewPremiumService(repos.catalog),
		carts,
		service.NewOrderService(repos.orders, carts, publisher, qr, baseURL, logger),
		service.NewTableQRService(repos.catalog, qr, baseURL),
		logger,
	)
}

func main() {
	config.LoadEnv()
	logger := config.NewLogger("menu-svc")
	defer logger.Sync()

	var db *sql.DB
	if config.StorageMode() == config.StoragePostgres {
		db = config.MustInitPostgres()
		defer db.Close()
	}

	var rdb *redis.Client
	if config.RedisConfigured() {
		rdb = config.MustInitRedis()
		defer rdb.Close()
	}

	var publisher service.OrderPublisher
	if config.KafkaConfigured() {
		writer := config.NewKafkaWriter(ordersTopic)
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
	}

	repos := openRepositories(db, rdb, config.GetDuration("CART_TTL", 24*time.Hour), logger)
	handler := newHandler(repos, publisher, config.GetEnv("PUBLIC_BASE_URL", "http://localhost:8080"), logger)
	handler.UploadDir = config.GetEnv("UPLOAD_DIR", "./uploads")

	logger.Info("storage configured",
		zap.String("mode", config.StorageMode()),
		zap.Bool("redis_carts", rdb != nil),
		zap.Bool("kafka_events", publisher != nil))

	httpapi.StartServer(":"+config.GetEnv("PORT", "8081"), httpapi.NewRouter(handler), logger)
}
