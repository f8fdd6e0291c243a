package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"menuverse/notify-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	dailyTTL         = 7 * 24 * time.Hour
	notificationsCap = 50
)

func DailyKey(date, restaurantID string) string {
	return fmt.Sprintf("analytics:daily:%s:%s", date, restaurantID)
}

func AllTimeKey(restaurantID string) string {
	return "analytics:alltime:" + restaurantID
}

func CounterKey(counter, restaurantID string) string {
	return fmt.Sprintf("analytics:%s:%s", counter, restaurantID)
}

func NotificationsKey(restaurantID string) string {
	return "notifications:" + restaurantID
}

// Store keeps the aggregates the analytics dashboard reads.
type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func (s *Store) RecordOrder(ctx context.Context, event domain.Event) error {
	dailyKey := DailyKey(event.Timestamp.UTC().Format("2006-01-02"), event.RestaurantID)
	allTimeKey := AllTimeKey(event.RestaurantID)

	pipe := s.rdb.TxPipeline()
	for _, item := range event.Items {
		pipe.ZIncrBy(ctx, dailyKey, float64(item.Quantity), item.MenuItemID)
		pipe.ZIncrBy(ctx, allTimeKey, float64(item.Quantity), item.MenuItemID)
	}
	pipe.Expire(ctx, dailyKey, dailyTTL)
	pipe.Incr(ctx, CounterKey("orders", event.RestaurantID))
	pipe.IncrBy(ctx, CounterKey("revenue", event.RestaurantID), int64(event.TotalAmount))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("record order %s: %w", event.OrderID, err)
	}
	return nil
}

func (s *Store) RecordNotification(ctx context.Context, n domain.Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return err
	}

	key := NotificationsKey(n.RestaurantID)
	pipe := s.rdb.TxPipeline()
	pipe.LPush(ctx, key, payload)
	pipe.LTrim(ctx, key, 0, notificationsCap-1)
	pipe.Incr(ctx, CounterKey("reservations", n.RestaurantID))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("record notification %s: %w", n.ReservationID, err)
	}
	return nil
}
