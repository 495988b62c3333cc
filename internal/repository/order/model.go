package order

import "time"

type OrderDB struct {
	ID              string
	CustomerName    string
	CustomerEmail   string
	CustomerAddress string
	OrderDetails    []byte
	Total           float64
	TransactionID   string
	OrderStatus     string
	PaymentStatus   string
	CreatedAt       time.Time
}

type OrderModifyDB struct {
	ID            *string
	OrderStatus   *string
	PaymentStatus *string
}

// lineItemDB is one element of the order_details JSONB array. Rows written by
// the storefront checkout carry "price" instead of "unitPrice".
type lineItemDB struct {
	Name      string   `json:"name"`
	UnitPrice float64  `json:"unitPrice"`
	Price     *float64 `json:"price,omitempty"`
	Quantity  int      `json:"quantity"`
}

type RevenueDB struct {
	Day     time.Time
	Revenue float64
}

type StateCountDB struct {
	OrderStatus   string
	PaymentStatus string
	Count         int64
}
