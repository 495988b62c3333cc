package order_document

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderDocument is the read model. Documents written by this service use the
// camelCase fields; records imported from the relational table carry the
// snake_case ones, and an "id" string next to the generated "_id".
type OrderDocument struct {
	ID            bson.RawValue      `bson:"_id"`
	LegacyID      string             `bson:"id,omitempty"`
	CustomerName  string             `bson:"customerName,omitempty"`
	Email         string             `bson:"email,omitempty"`
	Address       string             `bson:"address,omitempty"`
	Items         []LineItemDocument `bson:"items,omitempty"`
	TotalPrice    *float64           `bson:"totalPrice,omitempty"`
	TransactionID string             `bson:"transactionId,omitempty"`
	Status        string             `bson:"status,omitempty"`
	PaymentStatus string             `bson:"paymentStatus,omitempty"`
	CreatedAt     bson.RawValue      `bson:"createdAt,omitempty"`

	SnakeCustomerName    string             `bson:"customer_name,omitempty"`
	SnakeCustomerEmail   string             `bson:"customer_email,omitempty"`
	SnakeCustomerAddress string             `bson:"customer_address,omitempty"`
	SnakeOrderDetails    []LineItemDocument `bson:"order_details,omitempty"`
	SnakeTotal           *float64           `bson:"total,omitempty"`
	SnakeTransactionID   string             `bson:"transaction_id,omitempty"`
	SnakeOrderStatus     string             `bson:"order_status,omitempty"`
	SnakePaymentStatus   string             `bson:"payment_status,omitempty"`
	SnakeCreatedAt       bson.RawValue      `bson:"created_at,omitempty"`
}

// LineItemDocument accepts "price" for items written by the storefront checkout.
type LineItemDocument struct {
	Name      string   `bson:"name"`
	UnitPrice float64  `bson:"unitPrice"`
	Price     *float64 `bson:"price,omitempty"`
	Quantity  int      `bson:"quantity"`
}

// orderInsertDocument is what Create writes.
type orderInsertDocument struct {
	ID            primitive.ObjectID `bson:"_id"`
	CustomerName  string             `bson:"customerName"`
	Email         string             `bson:"email"`
	Address       string             `bson:"address"`
	Items         []LineItemDocument `bson:"items"`
	TotalPrice    float64            `bson:"totalPrice"`
	TransactionID string             `bson:"transactionId"`
	Status        string             `bson:"status"`
	PaymentStatus string             `bson:"paymentStatus"`
	CreatedAt     time.Time          `bson:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt"`
}

type revenueDocument struct {
	Day     string  `bson:"_id"`
	Revenue float64 `bson:"revenue"`
}

type stateCountDocument struct {
	State struct {
		Status        string `bson:"status"`
		PaymentStatus string `bson:"paymentStatus"`
	} `bson:"_id"`
	Count int64 `bson:"count"`
}
