package service

import (
	"context"

	"menuverse/analytics-svc/internal/domain"
)

type AnalyticsInterface interface {
	Overview(ctx context.Context, restaurantID string) (*domain.Overview, error)
	TopItems(ctx context.Context, restaurantID, period string, limit int) ([]domain.ItemScore, error)
	TopToday(ctx context.Context) ([]domain.ItemScore, error)
	TopAllTime(ctx context.Context) ([]domain.ItemScore, error)
	Notifications(ctx context.Context, restaurantID string, limit int) ([]domain.Notification, error)
}

var _ AnalyticsInterface = (*AnalyticsService)(nil)
