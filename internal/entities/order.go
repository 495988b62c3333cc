package entities

import "time"

type Order struct {
	ID            string
	CustomerName  string
	Email         string
	Address       string
	Items         []LineItem
	TotalPrice    float64
	TransactionID string
	Status        OrderStatusType
	PaymentStatus PaymentStatusType
	CreatedAt     time.Time
}

// LineItem is a snapshot of a cart entry taken at checkout. It is never
// linked back to the catalog.
type LineItem struct {
	Name      string
	UnitPrice float64
	Quantity  int
}

// Subtotal is UnitPrice times Quantity.
func (i LineItem) Subtotal() float64 {
	return i.UnitPrice * float64(i.Quantity)
}

// OrderStatusType is free text. The constants are the values the storefront
// uses; strict mode in the lifecycle engine only accepts these.
type OrderStatusType string

const (
	OrderPending   OrderStatusType = "pending"
	OrderProcessed OrderStatusType = "processed"
	OrderShipped   OrderStatusType = "shipped"
	OrderDelivered OrderStatusType = "delivered"
	OrderCancelled OrderStatusType = "cancelled"
)

const DefaultOrderStatus = OrderPending

func (s OrderStatusType) String() string {
	return string(s)
}

type PaymentStatusType string

const (
	PaymentPending   PaymentStatusType = "pending"
	PaymentConfirmed PaymentStatusType = "confirmed"
)

func (s PaymentStatusType) String() string {
	return string(s)
}

// OrderCreate carries a customer submission. TotalPrice is a pointer so a
// missing total can be told apart from zero.
type OrderCreate struct {
	CustomerName  string
	Email         string
	Address       string
	Items         []LineItem
	TotalPrice    *float64
	TransactionID string
}

type OrderModify struct {
	ID            *string
	Status        *OrderStatusType
	PaymentStatus *PaymentStatusType
}

type Page struct {
	Limit  int
	Offset int
}

const DefaultPageLimit = 50

// RevenuePoint is the order total summed over one UTC calendar day.
type RevenuePoint struct {
	Day     time.Time
	Revenue float64
}

type OrderStateCount struct {
	Status        OrderStatusType
	PaymentStatus PaymentStatusType
	Count         int64
}
