package tests

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"menuverse/notify-svc/internal/domain"
	"menuverse/notify-svc/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T) (*storage.Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return storage.NewStore(client), mr
}

func TestStore_RecordOrder(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.RecordOrder(ctx, orderEvent()))
	require.NoError(t, store.RecordOrder(ctx, orderEvent()))

	daily := storage.DailyKey("2026-10-19", "spice-palace")
	score, err := mr.ZScore(daily, "butter-chicken")
	require.NoError(t, err)
	assert.Equal(t, float64(4), score)
	assert.Equal(t, 7*24*time.Hour, mr.TTL(daily))

	score, err = mr.ZScore(storage.AllTimeKey("spice-palace"), "naan-garlic")
	require.NoError(t, err)
	assert.Equal(t, float64(2), score)

	orders, err := mr.Get(storage.CounterKey("orders", "spice-palace"))
	require.NoError(t, err)
	assert.Equal(t, "2", orders)

	revenue, err := mr.Get(storage.CounterKey("revenue", "spice-palace"))
	require.NoError(t, err)
	assert.Equal(t, "1754", revenue)
}

func TestStore_RecordNotificationCapsList(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()

	for i := 0; i < 55; i++ {
		n := expectedNotification()
		n.ReservationID = fmt.Sprintf("res_%d", i)
		require.NoError(t, store.RecordNotification(ctx, n))
	}

	list, err := mr.List(storage.NotificationsKey("spice-palace"))
	require.NoError(t, err)
	assert.Len(t, list, 50)

	var newest domain.Notification
	require.NoError(t, json.Unmarshal([]byte(list[0]), &newest))
	assert.Equal(t, "res_54", newest.ReservationID)
	assert.Equal(t, expectedNotification().Message, newest.Message)

	count, err := mr.Get(storage.CounterKey("reservations", "spice-palace"))
	require.NoError(t, err)
	assert.Equal(t, "55", count)
}

func TestStore_RedisUnavailable(t *testing.T) {
	store, mr := newRedisStore(t)
	mr.Close()

	assert.Error(t, store.RecordOrder(context.Background(), orderEvent()))
	assert.Error(t, store.RecordNotification(context.Background(), expectedNotification()))
}
