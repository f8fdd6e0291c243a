package storage

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// KEYS[1]: lock key. ARGV[1]: holder token.
var releaseScript = redis.NewScript(`
	if redis.call('GET', KEYS[1]) == ARGV[1] then
		return redis.call('DEL', KEYS[1])
	end
	return 0`)

// RedisLock marks a reservation as being paid with a short-lived SETNX key,
// so a double submit across replicas cannot confirm twice. The key holds a
// per-acquire token and Release only deletes a key this lock still owns.
type RedisLock struct {
	Client *redis.Client
	TTL    time.Duration

	mu     sync.Mutex
	tokens map[string]string
}

func NewRedisLock(client *redis.Client, ttl time.Duration) *RedisLock {
	return &RedisLock{Client: client, TTL: ttl, tokens: make(map[string]string)}
}

func (l *RedisLock) key(reservationID string) string {
	return "reservation:" + reservationID + ":payment"
}

func (l *RedisLock) Acquire(ctx context.Context, reservationID string) (bool, error) {
	token := uuid.NewString()
	ok, err := l.Client.SetNX(ctx, l.key(reservationID), token, l.TTL).Result()
	if err != nil || !ok {
		return ok, err
	}

	l.mu.Lock()
	l.tokens[reservationID] = token
	l.mu.Unlock()
	return true, nil
}

func (l *RedisLock) Release(ctx context.Context, reservationID string) error {
	l.mu.Lock()
	token, ok := l.tokens[reservationID]
	delete(l.tokens, reservationID)
	l.mu.Unlock()
	if !ok {
		return nil
	}
	return releaseScript.Run(ctx, l.Client, []string{l.key(reservationID)}, token).Err()
}
