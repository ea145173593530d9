package db

import "context"

// RedisClient defines the methods the dashboard needs from Redis.
// Get returns ErrKeyNotFound when the key is unset.
type RedisClient interface {
	Set(key, value string) error
	Get(key string) (string, error)
	Del(key string) error
	Publish(channel, message string) error
	// Subscribe calls handler for every message on channel until ctx is done.
	// It returns once the subscription is established.
	Subscribe(ctx context.Context, channel string, handler func(message string)) error
	Ping() error
}
