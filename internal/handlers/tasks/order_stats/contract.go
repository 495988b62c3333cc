//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_stats_test
package order_stats

import (
	"context"

	"orders/internal/entities"
)

type Repository interface {
	CountByState(ctx context.Context) ([]entities.OrderStateCount, error)
}
