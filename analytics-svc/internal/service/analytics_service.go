package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"menuverse/analytics-svc/internal/domain"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	overviewTopItems      = 5
	overviewNotifications = 10
	globalLimit           = 10
)

// Keys written by notify-svc.
func dailyKey(date, restaurantID string) string {
	return fmt.Sprintf("analytics:daily:%s:%s", date, restaurantID)
}

func allTimeKey(restaurantID string) string {
	return "analytics:alltime:" + restaurantID
}

func counterKey(counter, restaurantID string) string {
	return fmt.Sprintf("analytics:%s:%s", counter, restaurantID)
}

func notificationsKey(restaurantID string) string {
	return "notifications:" + restaurantID
}

type AnalyticsService struct {
	rdb    *redis.Client
	logger *zap.Logger
	now    func() time.Time
}

func NewAnalyticsService(rdb *redis.Client, logger *zap.Logger) *AnalyticsService {
	return &AnalyticsService{rdb: rdb, logger: logger, now: time.Now}
}

// WithClock replaces the clock used to pick today's leaderboard.
func (s *AnalyticsService) WithClock(now func() time.Time) *AnalyticsService {
	s.now = now
	return s
}

func (s *AnalyticsService) today() string {
	return s.now().UTC().Format("2006-01-02")
}

func (s *AnalyticsService) Overview(ctx context.Context, restaurantID string) (*domain.Overview, error) {
	overview := &domain.Overview{RestaurantID: restaurantID}

	var err error
	if overview.TotalOrders, err = s.counter(ctx, "orders", restaurantID); err != nil {
		return nil, err
	}
	if overview.Revenue, err = s.counter(ctx, "revenue", restaurantID); err != nil {
		return nil, err
	}
	if overview.Reservations, err = s.counter(ctx, "reservations", restaurantID); err != nil {
		return nil, err
	}

	today, err := s.leaderboard(ctx, dailyKey(s.today(), restaurantID), restaurantID, 1)
	if err != nil {
		return nil, err
	}
	if len(today) > 0 {
		overview.MostPopularToday = &today[0]
	}

	if overview.TopItems, err = s.leaderboard(ctx, allTimeKey(restaurantID), restaurantID, overviewTopItems); err != nil {
		return nil, err
	}
	if overview.RecentNotifications, err = s.Notifications(ctx, restaurantID, overviewNotifications); err != nil {
		return nil, err
	}
	return overview, nil
}

func (s *AnalyticsService) TopItems(ctx context.Context, restaurantID, period string, limit int) ([]domain.ItemScore, error) {
	if limit <= 0 {
		limit = globalLimit
	}
	switch period {
	case domain.PeriodToday:
		return s.leaderboard(ctx, dailyKey(s.today(), restaurantID), restaurantID, limit)
	case domain.PeriodAll, "":
		return s.leaderboard(ctx, allTimeKey(restaurantID), restaurantID, limit)
	default:
		return nil, domain.ErrInvalidPeriod
	}
}

// TopToday merges today's leaderboards of every restaurant.
func (s *AnalyticsService) TopToday(ctx context.Context) ([]domain.ItemScore, error) {
	prefix := dailyKey(s.today(), "")
	return s.merged(ctx, prefix)
}

func (s *AnalyticsService) TopAllTime(ctx context.Context) ([]domain.ItemScore, error) {
	return s.merged(ctx, allTimeKey(""))
}

func (s *AnalyticsService) Notifications(ctx context.Context, restaurantID string, limit int) ([]domain.Notification, error) {
	if limit <= 0 {
		limit = overviewNotifications
	}
	raw, err := s.rdb.LRange(ctx, notificationsKey(restaurantID), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("read notifications: %w", err)
	}

	notifications := make([]domain.Notification, 0, len(raw))
	for _, entry := range raw {
		var n domain.Notification
		if err := json.Unmarshal([]byte(entry), &n); err != nil {
			s.logger.Warn("skipping malformed notification", zap.String("restaurant_id", restaurantID), zap.Error(err))
			continue
		}
		notifications = append(notifications, n)
	}
	return notifications, nil
}

func (s *AnalyticsService) counter(ctx context.Context, name, restaurantID string) (int, error) {
	value, err := s.rdb.Get(ctx, counterKey(name, restaurantID)).Int()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read %s counter: %w", name, err)
	}
	return value, nil
}

func (s *AnalyticsService) leaderboard(ctx context.Context, key, restaurantID string, limit int) ([]domain.ItemScore, error) {
	result, err := s.rdb.ZRevRangeWithScores(ctx, key, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("read leaderboard %s: %w", key, err)
	}

	items := make([]domain.ItemScore, 0, len(result))
	for _, member := range result {
		items = append(items, domain.ItemScore{
			MenuItemID:   member.Member.(string),
			RestaurantID: restaurantID,
			Quantity:     int(member.Score),
		})
	}
	return items, nil
}

func (s *AnalyticsService) merged(ctx context.Context, prefix string) ([]domain.ItemScore, error) {
	keys, err := s.rdb.Keys(ctx, prefix+"*").Result()
	if err != nil {
		return nil, fmt.Errorf("list leaderboards: %w", err)
	}

	all := []domain.ItemScore{}
	for _, key := range keys {
		items, err := s.leaderboard(ctx, key, strings.TrimPrefix(key, prefix), globalLimit)
		if err != nil {
			s.logger.Warn("skipping leaderboard", zap.String("key", key), zap.Error(err))
			continue
		}
		all = append(all, items...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Quantity != all[j].Quantity {
			return all[i].Quantity > all[j].Quantity
		}
		return all[i].MenuItemID < all[j].MenuItemID
	})
	if len(all) > globalLimit {
		all = all[:globalLimit]
	}
	return all, nil
}
