//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=customer_orders_get_test
package customer_orders_get

import (
	"context"

	"orders/internal/entities"
	"orders/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	CustomerOrders(ctx context.Context, email string) ([]entities.Order, error)
}
