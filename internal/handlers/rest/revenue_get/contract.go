//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=revenue_get_test
package revenue_get

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
	Revenue(ctx context.Context, identity string) ([]entities.RevenuePoint, error)
}
