package order

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"orders/internal/entities"
)

// Policy switches on checks the storefront never enforced.
type Policy struct {
	// StrictStatus restricts status to the known values and the transition
	// table.
	StrictStatus bool
	// VerifyTotal rejects a submission whose total differs from the sum of
	// its items.
	VerifyTotal bool
}

type Service struct {
	repository Repository
	txManager  TxManager
	authorizer Authorizer
	notifier   Notifier
	policy     Policy
}

func New(
	repository Repository,
	txManager TxManager,
	authorizer Authorizer,
	notifier Notifier,
	policy Policy,
) *Service {
	return &Service{
		repository: repository,
		txManager:  txManager,
		authorizer: authorizer,
		notifier:   notifier,
		policy:     policy,
	}
}

// Create is the only operation open to customers. The new order alert is
// handed to the notifier and never awaited.
func (s *Service) Create(ctx context.Context, orderCreate entities.OrderCreate) (*entities.Order, error) {
	if err := validateCreate(orderCreate); err != nil {
		return nil, err
	}
	if s.policy.VerifyTotal && !totalMatches(orderCreate.Items, *orderCreate.TotalPrice) {
		return nil, ErrTotalMismatch
	}

	snapshot := orderCreate
	snapshot.CustomerName = strings.TrimSpace(orderCreate.CustomerName)
	snapshot.Email = strings.TrimSpace(orderCreate.Email)
	snapshot.Address = strings.TrimSpace(orderCreate.Address)
	snapshot.Items = make([]entities.LineItem, len(orderCreate.Items))
	copy(snapshot.Items, orderCreate.Items)

	order, err := s.repository.Create(ctx, snapshot)
	if err != nil {
		return nil, storeError("create order", err)
	}

	s.notifier.Dispatch(ctx, *order)

	return order, nil
}

func (s *Service) ListPage(ctx context.Context, identity string, page entities.Page) ([]entities.Order, error) {
	if err := s.authorizer.Authorize(identity); err != nil {
		return nil, err
	}
	if err := normalizePage(&page); err != nil {
		return nil, err
	}

	orders, err := s.repository.List(ctx, page)
	if err != nil {
		return nil, storeError("list orders", err)
	}
	return orders, nil
}

// UpdateStatus changes only the status field.
func (s *Service) UpdateStatus(
	ctx context.Context,
	identity string,
	orderID string,
	status entities.OrderStatusType,
) (*entities.Order, error) {
	if err := s.authorizer.Authorize(identity); err != nil {
		return nil, err
	}
	if isBlank(orderID) {
		return nil, ErrInvalidOrderID
	}
	if isBlank(status.String()) {
		return nil, ErrMissingStatus
	}

	if !s.policy.StrictStatus {
		return s.update(ctx, entities.OrderModify{ID: &orderID, Status: &status})
	}

	if !isKnownStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	var updated *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, orderID)
		if err != nil {
			return storeError("get order", err)
		}
		if !canTransition(current.Status, status) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, status)
		}

		updated, err = s.update(ctx, entities.OrderModify{ID: &orderID, Status: &status})
		return err
	})
	if err != nil {
		if errors.Is(err, ErrInvalidTransition) {
			return nil, err
		}
		return nil, storeError("update status", err)
	}
	return updated, nil
}

// ConfirmPayment records that an admin has checked the transaction reference
// out of band. It is idempotent and verifies nothing itself.
func (s *Service) ConfirmPayment(ctx context.Context, identity string, orderID string) (*entities.Order, error) {
	if err := s.authorizer.Authorize(identity); err != nil {
		return nil, err
	}
	if isBlank(orderID) {
		return nil, ErrInvalidOrderID
	}

	confirmed := entities.PaymentConfirmed
	return s.update(ctx, entities.OrderModify{ID: &orderID, PaymentStatus: &confirmed})
}

func (s *Service) Delete(ctx context.Context, identity string, orderID string) (*entities.Order, error) {
	if err := s.authorizer.Authorize(identity); err != nil {
		return nil, err
	}
	if isBlank(orderID) {
		return nil, ErrInvalidOrderID
	}

	order, err := s.repository.Delete(ctx, orderID)
	if err != nil {
		return nil, storeError("delete order", err)
	}
	return order, nil
}

// CustomerOrders returns the order history of one customer email. The email
// is asserted by the caller, same as the admin header.
func (s *Service) CustomerOrders(ctx context.Context, email string) ([]entities.Order, error) {
	if isBlank(email) {
		return nil, ErrMissingCustomerEmail
	}

	orders, err := s.repository.ListByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, storeError("list customer orders", err)
	}
	return orders, nil
}

func (s *Service) Revenue(ctx context.Context, identity string) ([]entities.RevenuePoint, error) {
	if err := s.authorizer.Authorize(identity); err != nil {
		return nil, err
	}

	points, err := s.repository.RevenueByDay(ctx)
	if err != nil {
		return nil, storeError("revenue by day", err)
	}
	return points, nil
}

func (s *Service) update(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	order, err := s.repository.Update(ctx, orderModify)
	if err != nil {
		return nil, storeError("update order", err)
	}
	return order, nil
}

// storeError keeps ErrOrderNotFound matchable and classifies everything else
// as ErrPersistence.
func storeError(op string, err error) error {
	if errors.Is(err, ErrOrderNotFound) || errors.Is(err, ErrPersistence) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrPersistence, op, err)
}
