package database

import (
	"github.com/redis/go-redis/v9"
)

// NewRedis builds the client backing the engagement pub/sub channel.
func NewRedis(addr string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})
}
