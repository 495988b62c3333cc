//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatch_guard_test
package dispatch_guard

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

type Client interface {
	SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd
}
