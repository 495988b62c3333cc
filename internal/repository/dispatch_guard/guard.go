package dispatch_guard

import (
	"context"
	"fmt"
	"time"
)

const keyPrefix = "orders:notification:dispatched:"

// Guard records that a notification attempt was made for an order. The mark
// expires after ttl, long past any broker redelivery window.
type Guard struct {
	client Client
	ttl    time.Duration
	now    func() time.Time
}

func New(client Client, ttl time.Duration) *Guard {
	return &Guard{
		client: client,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Acquire reports true for exactly one caller per order id.
func (g *Guard) Acquire(ctx context.Context, orderID string) (bool, error) {
	acquired, err := g.client.SetNX(ctx, keyPrefix+orderID, g.now().UTC().Format(time.RFC3339), g.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("dispatch guard acquire %s: %w", orderID, err)
	}
	return acquired, nil
}
