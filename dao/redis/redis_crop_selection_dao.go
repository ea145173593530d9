package redis

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"farm-dashboard/config"
	"farm-dashboard/db"
)

// SelectionListener receives the newly selected crop key ("" when cleared).
type SelectionListener func(cropKey string)

// RedisCropSelectionDAO persists the selected crop under a single key and
// announces changes on a channel so other views can follow.
type RedisCropSelectionDAO struct {
	client  db.RedisClient
	key     string
	channel string
}

// NewRedisCropSelectionDAO initializes a RedisCropSelectionDAO with the Redis client.
func NewRedisCropSelectionDAO(client db.RedisClient) *RedisCropSelectionDAO {
	return &RedisCropSelectionDAO{
		client:  client,
		key:     config.SELECTED_CROP_KEY,
		channel: config.SELECTED_CROP_CHANNEL,
	}
}

// GetSelectedCrop returns the stored crop key, or "" when nothing is selected.
func (dao *RedisCropSelectionDAO) GetSelectedCrop() (string, error) {
	val, err := dao.client.Get(dao.key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get selected crop from redis: %w", err)
	}
	return val, nil
}

// SetSelectedCrop stores the key (or removes it when empty) and publishes it.
func (dao *RedisCropSelectionDAO) SetSelectedCrop(cropKey string) error {
	cropKey = strings.ToLower(strings.TrimSpace(cropKey))
	if cropKey == "" {
		if err := dao.client.Del(dao.key); err != nil {
			return fmt.Errorf("failed to clear selected crop in redis: %w", err)
		}
	} else if err := dao.client.Set(dao.key, cropKey); err != nil {
		return fmt.Errorf("failed to set selected crop in redis: %w", err)
	}

	if err := dao.client.Publish(dao.channel, cropKey); err != nil {
		return fmt.Errorf("failed to publish selected crop change: %w", err)
	}
	log.Printf("[RedisCropSelectionDAO] Selected crop set to %q", cropKey)
	return nil
}

// Subscribe delivers every published selection change to listener until ctx is done.
func (dao *RedisCropSelectionDAO) Subscribe(ctx context.Context, listener SelectionListener) error {
	return dao.client.Subscribe(ctx, dao.channel, func(message string) {
		listener(message)
	})
}
