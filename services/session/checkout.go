package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"aspcare/models"
	"aspcare/utils"

	"github.com/go-redis/redis/v8"
)

// CheckoutStore keeps review-screen state per session under utils.CheckoutPrefix.
type CheckoutStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCheckoutStore(client *redis.Client, ttl time.Duration) *CheckoutStore {
	return &CheckoutStore{client: client, ttl: ttl}
}

func (c *CheckoutStore) Save(ctx context.Context, st *models.CheckoutState) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("failed to marshal checkout: %w", err)
	}
	return c.client.Set(ctx, utils.CheckoutPrefix+st.SessionID, data, c.ttl).Err()
}

// Get returns nil, nil when no checkout is stored.
func (c *CheckoutStore) Get(ctx context.Context, sessionID string) (*models.CheckoutState, error) {
	data, err := c.client.Get(ctx, utils.CheckoutPrefix+sessionID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get checkout: %w", err)
	}
	var st models.CheckoutState
	if err := json.Unmarshal([]byte(data), &st); err != nil {
		return nil, fmt.Errorf("failed to unmarshal checkout: %w", err)
	}
	return &st, nil
}

func (c *CheckoutStore) Delete(ctx context.Context, sessionID string) error {
	return c.client.Del(ctx, utils.CheckoutPrefix+sessionID).Err()
}
