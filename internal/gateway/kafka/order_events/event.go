package order_events

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"orders/internal/entities"

	"github.com/google/uuid"
)

const OrderCreatedType = "order.created"

var ErrUnexpectedEvent = errors.New("unexpected event type")

type OrderCreatedEvent struct {
	EventID    string       `json:"eventId"`
	EventType  string       `json:"eventType"`
	OccurredAt time.Time    `json:"occurredAt"`
	Order      OrderPayload `json:"order"`
}

type OrderPayload struct {
	ID            string        `json:"_id"`
	CustomerName  string        `json:"customerName"`
	Email         string        `json:"email"`
	Address       string        `json:"address"`
	Items         []ItemPayload `json:"items"`
	TotalPrice    float64       `json:"totalPrice"`
	TransactionID string        `json:"transactionId"`
	Status        string        `json:"status"`
	PaymentStatus string        `json:"paymentStatus"`
	CreatedAt     time.Time     `json:"createdAt"`
}

type ItemPayload struct {
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
}

func NewOrderCreatedEvent(order entities.Order, now time.Time) OrderCreatedEvent {
	items := make([]ItemPayload, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, ItemPayload{
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}

	return OrderCreatedEvent{
		EventID:    uuid.NewString(),
		EventType:  OrderCreatedType,
		OccurredAt: now.UTC(),
		Order: OrderPayload{
			ID:            order.ID,
			CustomerName:  order.CustomerName,
			Email:         order.Email,
			Address:       order.Address,
			Items:         items,
			TotalPrice:    order.TotalPrice,
			TransactionID: order.TransactionID,
			Status:        order.Status.String(),
			PaymentStatus: order.PaymentStatus.String(),
			CreatedAt:     order.CreatedAt,
		},
	}
}

func (e OrderCreatedEvent) ToDomain() entities.Order {
	items := make([]entities.LineItem, 0, len(e.Order.Items))
	for _, item := range e.Order.Items {
		items = append(items, entities.LineItem{
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}

	return entities.Order{
		ID:            e.Order.ID,
		CustomerName:  e.Order.CustomerName,
		Email:         e.Order.Email,
		Address:       e.Order.Address,
		Items:         items,
		TotalPrice:    e.Order.TotalPrice,
		TransactionID: e.Order.TransactionID,
		Status:        entities.OrderStatusType(e.Order.Status),
		PaymentStatus: entities.PaymentStatusType(e.Order.PaymentStatus),
		CreatedAt:     e.Order.CreatedAt,
	}
}

// DecodeOrderCreated parses a message value and rejects other event types
// and events without an order id.
func DecodeOrderCreated(value []byte) (*OrderCreatedEvent, error) {
	var event OrderCreatedEvent
	if err := json.Unmarshal(value, &event); err != nil {
		return nil, fmt.Errorf("decode order event: %w", err)
	}
	if event.EventType != OrderCreatedType {
		return nil, fmt.Errorf("%w: %q", ErrUnexpectedEvent, event.EventType)
	}
	if event.Order.ID == "" {
		return nil, fmt.Errorf("%w: order id missing", ErrUnexpectedEvent)
	}
	return &event, nil
}
