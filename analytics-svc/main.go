package main

import (
	httpapi "menuverse/analytics-svc/internal/api/http"
	"menuverse/analytics-svc/internal/service"
	"menuverse/config"
)

func main() {
	config.LoadEnv()
	logger := config.NewLogger("analytics-svc")
	defer logger.Sync()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	handler := httpapi.NewHandler(service.NewAnalyticsService(rdb, logger), logger)
	httpapi.StartServer(":"+config.GetEnv("PORT", "8083"), httpapi.NewRouter(handler), logger)
}
