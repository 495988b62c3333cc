//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_payment_put_test
package order_payment_put

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
	ConfirmPayment(ctx context.Context, identity string, orderID string) (*entities.Order, error)
}
