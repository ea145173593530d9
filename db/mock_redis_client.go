package db

import (
	"context"
	"fmt"
	"log"
	"sync"
)

// MockRedisClient simulates a Redis client for testing purposes.
type MockRedisClient struct {
	data        map[string]string                 // Key-value store
	subscribers map[string][]func(message string) // channel -> handlers
	mu          sync.RWMutex
	context     context.Context
}

// NewMockRedisClient initializes a new MockRedisClient.
func NewMockRedisClient(ctx context.Context) *MockRedisClient {
	return &MockRedisClient{
		data:        make(map[string]string),
		subscribers: make(map[string][]func(message string)),
		context:     ctx,
	}
}

// Set stores a key-value pair in the mock Redis.
func (m *MockRedisClient) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// Get retrieves a value for a given key from the mock Redis.
func (m *MockRedisClient) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, exists := m.data[key]
	if !exists {
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	return value, nil
}

func (m *MockRedisClient) Del(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Publish delivers message synchronously to every live subscriber.
func (m *MockRedisClient) Publish(channel, message string) error {
	m.mu.RLock()
	handlers := append([]func(string){}, m.subscribers[channel]...)
	m.mu.RUnlock()

	for _, h := range handlers {
		h(message)
	}
	return nil
}

// Subscribe registers handler until ctx is cancelled.
func (m *MockRedisClient) Subscribe(ctx context.Context, channel string, handler func(message string)) error {
	m.mu.Lock()
	idx := len(m.subscribers[channel])
	m.subscribers[channel] = append(m.subscribers[channel], handler)
	m.mu.Unlock()

	go func() {
		// Subscriptions also end when the client's own context does.
		select {
		case <-ctx.Done():
		case <-m.context.Done():
		}
		m.mu.Lock()
		defer m.mu.Unlock()
		// Replace with a no-op so indexes of later subscribers stay valid.
		if idx < len(m.subscribers[channel]) {
			m.subscribers[channel][idx] = func(string) {}
		}
	}()
	return nil
}

// Ping simulates a Redis Ping operation.
func (m *MockRedisClient) Ping() error {
	log.Println("MockRedisClient: Ping successful")
	return nil
}
