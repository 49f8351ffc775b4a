package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/salon-booking/internal/models"
)

const keyPrefix = "availability:"

type AvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisClient(addr, password string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
}

func NewAvailabilityCache(client *redis.Client, ttl time.Duration) *AvailabilityCache {
	return &AvailabilityCache{client: client, ttl: ttl}
}

// day deve estar normalizado (meia-noite no fuso do salão).
func Key(day time.Time) string {
	return keyPrefix + day.Format("2006-01-02")
}

// Get devolve (nil, false, nil) em cache miss.
func (c *AvailabilityCache) Get(ctx context.Context, day time.Time) (*models.Availability, bool, error) {
	raw, err := c.client.Get(ctx, Key(day)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get: %w", err)
	}

	var av models.Availability
	if err := json.Unmarshal(raw, &av); err != nil {
		return nil, false, fmt.Errorf("cache decode: %w", err)
	}
	return &av, true, nil
}

// Set grava sob a chave de day, nunca de av.Date.
func (c *AvailabilityCache) Set(ctx context.Context, day time.Time, av models.Availability) error {
	raw, err := json.Marshal(av)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	if err := c.client.Set(ctx, Key(day), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

func (c *AvailabilityCache) Invalidate(ctx context.Context, day time.Time) error {
	if err := c.client.Del(ctx, Key(day)).Err(); err != nil {
		return fmt.Errorf("cache invalidate: %w", err)
	}
	return nil
}
