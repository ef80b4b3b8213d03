package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Open builds a client from a redis:// or rediss:// URL. It does not dial;
// use Ping to verify the connection.
func Open(url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	if opt.DialTimeout == 0 {
		opt.DialTimeout = 3 * time.Second
	}
	return redis.NewClient(opt), nil
}

// Ping checks the connection within a short deadline.
func Ping(ctx context.Context, rdb *redis.Client) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return rdb.Ping(ctx).Err()
}
