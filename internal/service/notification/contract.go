//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"context"

	"orders/internal/entities"
	"orders/pkg/logger"
)

type Sender interface {
	SendOrderCreated(ctx context.Context, order entities.Order) error
}

// DispatchGuard reports true the first time an order id is acquired and
// false afterwards.
type DispatchGuard interface {
	Acquire(ctx context.Context, orderID string) (bool, error)
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
