package main

import (
	"net/http"
	"time"

	"menuverse/api-gateway/internal/gateway"
	"menuverse/config"

	"github.com/rs/cors"
	"go.uber.org/zap"
)

func newHandler(cfg gateway.Config, client gateway.HTTPClient, logger *zap.Logger) http.Handler {
	gw := gateway.NewGateway(cfg, client, logger)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8080", "http://127.0.0.1:8080", "*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	return c.Handler(gw.SetupRoutes())
}

func main() {
	config.LoadEnv()
	logger := config.NewLogger("api-gateway")
	defer logger.Sync()

	cfg := gateway.Config{
		MenuSvcURL:        config.GetEnv("MENU_SVC_URL", "http://localhost:8081"),
		ReservationSvcURL: config.GetEnv("RESERVATION_SVC_URL", "http://localhost:8082"),
		AnalyticsSvcURL:   config.GetEnv("ANALYTICS_SVC_URL", "http://localhost:8083"),
		FrontendDir:       config.GetEnv("FRONTEND_DIR", "./frontend"),
		AuthSecret:        config.GetEnv("AUTH_SECRET", ""),
		GoogleClientID:    config.GetEnv("GOOGLE_CLIENT_ID", ""),
	}

	addr := ":" + config.GetEnv("PORT", "8080")
	logger.Info("api gateway starting", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, newHandler(cfg, &http.Client{Timeout: 30 * time.Second}, logger)); err != nil {
		logger.Fatal("api gateway stopped", zap.Error(err))
	}
}
