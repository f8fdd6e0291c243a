package storage

import (
	"context"
	"strconv"
	"time"

	"menuverse/menu-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

// Every script returns -1 when the cart does not exist.
// KEYS: meta, items, order. ARGV[1]: item id, ARGV[2]: ttl seconds.
var incrementScript = redis.NewScript(`
	if redis.call('EXISTS', KEYS[1]) == 0 then
		return -1
	end
	local qty = redis.call('HINCRBY', KEYS[2], ARGV[1], 1)
	if qty == 1 then
		redis.call('RPUSH', KEYS[3], ARGV[1])
	end
	for i = 1, 3 do
		redis.call('EXPIRE', KEYS[i], ARGV[2])
	end
	return qty`)

var decrementScript = redis.NewScript(`
	if redis.call('EXISTS', KEYS[1]) == 0 then
		return -1
	end
	local qty = tonumber(redis.call('HGET', KEYS[2], ARGV[1]) or '0')
	if qty > 1 then
		qty = redis.call('HINCRBY', KEYS[2], ARGV[1], -1)
	elseif qty == 1 then
		redis.call('HDEL', KEYS[2], ARGV[1])
		redis.call('LREM', KEYS[3], 0, ARGV[1])
		qty = 0
	end
	for i = 1, 3 do
		redis.call('EXPIRE', KEYS[i], ARGV[2])
	end
	return qty`)

// ARGV[3]: quantity; zero or less removes the line.
var setQuantityScript = redis.NewScript(`
	if redis.call('EXISTS', KEYS[1]) == 0 then
		return -1
	end
	local qty = tonumber(ARGV[3])
	if qty <= 0 then
		redis.call('HDEL', KEYS[2], ARGV[1])
		redis.call('LREM', KEYS[3], 0, ARGV[1])
		qty = 0
	else
		if redis.call('HEXISTS', KEYS[2], ARGV[1]) == 0 then
			redis.call('RPUSH', KEYS[3], ARGV[1])
		end
		redis.call('HSET', KEYS[2], ARGV[1], qty)
	end
	for i = 1, 3 do
		redis.call('EXPIRE', KEYS[i], ARGV[2])
	end
	return qty`)

type RedisCartStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCartStore(client *redis.Client, ttl time.Duration) *RedisCartStore {
	return &RedisCartStore{Client: client, TTL: ttl}
}

func (s *RedisCartStore) keys(cartID string) []string {
	prefix := "cart:" + cartID
	return []string{prefix + ":meta", prefix + ":items", prefix + ":order"}
}

func (s *RedisCartStore) ttlSeconds() int {
	return int(s.TTL / time.Second)
}

func (s *RedisCartStore) Create(ctx context.Context, cart *domain.Cart) error {
	meta := s.keys(cart.ID)[0]
	pipe := s.Client.TxPipeline()
	pipe.HSet(ctx, meta, map[string]interface{}{
		"restaurant_id": cart.RestaurantID,
		"table_number":  cart.TableNumber,
	})
	pipe.Expire(ctx, meta, s.TTL)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *RedisCartStore) Meta(ctx context.Context, cartID string) (*domain.Cart, error) {
	fields, err := s.Client.HGetAll(ctx, s.keys(cartID)[0]).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, domain.ErrCartNotFound
	}
	table, _ := strconv.Atoi(fields["table_number"])
	return &domain.Cart{
		ID:           cartID,
		RestaurantID: fields["restaurant_id"],
		TableNumber:  table,
	}, nil
}

func (s *RedisCartStore) Lines(ctx context.Context, cartID string) ([]domain.CartLine, error) {
	keys := s.keys(cartID)
	exists, err := s.Client.Exists(ctx, keys[0]).Result()
	if err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, domain.ErrCartNotFound
	}

	order, err := s.Client.LRange(ctx, keys[2], 0, -1).Result()
	if err != nil {
		return nil, err
	}
	quantities, err := s.Client.HGetAll(ctx, keys[1]).Result()
	if err != nil {
		return nil, err
	}

	lines := make([]domain.CartLine, 0, len(order))
	for _, itemID := range order {
		qty, err := strconv.Atoi(quantities[itemID])
		if err != nil || qty < 1 {
			continue
		}
		lines = append(lines, domain.CartLine{ItemID: itemID, Quantity: qty})
	}
	return lines, nil
}

func (s *RedisCartStore) run(ctx context.Context, script *redis.Script, cartID string, args ...interface{}) (int, error) {
	qty, err := script.Run(ctx, s.Client, s.keys(cartID), args...).Int()
	if err != nil {
		return 0, err
	}
	if qty < 0 {
		return 0, domain.ErrCartNotFound
	}
	return qty, nil
}

func (s *RedisCartStore) Increment(ctx context.Context, cartID, itemID string) (int, error) {
	return s.run(ctx, incrementScript, cartID, itemID, s.ttlSeconds())
}

func (s *RedisCartStore) Decrement(ctx context.Context, cartID, itemID string) (int, error) {
	return s.run(ctx, decrementScript, cartID, itemID, s.ttlSeconds())
}

func (s *RedisCartStore) SetQuantity(ctx context.Context, cartID, itemID string, quantity int) (int, error) {
	return s.run(ctx, setQuantityScript, cartID, itemID, s.ttlSeconds(), quantity)
}

func (s *RedisCartStore) Clear(ctx context.Context, cartID string) error {
	keys := s.keys(cartID)
	exists, err := s.Client.Exists(ctx, keys[0]).Result()
	if err != nil {
		return err
	}
	if exists == 0 {
		return domain.ErrCartNotFound
	}
	return s.Client.Del(ctx, keys[1], keys[2]).Err()
}
