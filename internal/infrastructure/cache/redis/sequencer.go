package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/alimikegami/point-of-sales/cash-payment-service/config"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "cash-payment:trxn-sequence:"

// nextSequence raises the counter to at least the floor taken from the
// ledger before incrementing, so a fresh or flushed Redis never hands out
// a sequence the ledger already used.
var nextSequence = redis.NewScript(`
local current = tonumber(redis.call('GET', KEYS[1]) or '0')
local floor = tonumber(ARGV[1])
if current < floor then
	redis.call('SET', KEYS[1], ARGV[1])
end
return redis.call('INCR', KEYS[1])
`)

func CreateRedisClient(conf config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         conf.Address,
		Password:     conf.Password,
		DB:           conf.DB,
		DialTimeout:  800 * time.Millisecond,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return client, nil
}

// Sequencer hands out strictly increasing reference sequences per mode.
type Sequencer struct {
	client redis.Scripter
}

func CreateSequencer(client redis.Scripter) *Sequencer {
	return &Sequencer{client: client}
}

func (s *Sequencer) Next(ctx context.Context, mode string, floor int64) (int64, error) {
	return nextSequence.Run(ctx, s.client, []string{keyPrefix + mode}, floor).Int64()
}
