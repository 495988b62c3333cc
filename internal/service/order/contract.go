//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"orders/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, orderCreate entities.OrderCreate) (*entities.Order, error)
	List(ctx context.Context, page entities.Page) ([]entities.Order, error)
	ListByEmail(ctx context.Context, email string) ([]entities.Order, error)
	GetByID(ctx context.Context, id string) (*entities.Order, error)
	Update(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
	Delete(ctx context.Context, id string) (*entities.Order, error)
	RevenueByDay(ctx context.Context) ([]entities.RevenuePoint, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type Authorizer interface {
	Authorize(identity string) error
}

// Notifier must not block and must not report delivery failures back.
type Notifier interface {
	Dispatch(ctx context.Context, order entities.Order)
}
