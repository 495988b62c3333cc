package order_document

import (
	"fmt"
	"time"

	"orders/internal/entities"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func ToDomain(d *OrderDocument) (*entities.Order, error) {
	if d == nil {
		return nil, nil
	}

	id, err := documentID(d)
	if err != nil {
		return nil, err
	}

	createdAt, err := documentTime(firstPresent(d.CreatedAt, d.SnakeCreatedAt))
	if err != nil {
		return nil, fmt.Errorf("order %s: %w", id, err)
	}

	items := d.Items
	if len(items) == 0 {
		items = d.SnakeOrderDetails
	}

	var total float64
	switch {
	case d.TotalPrice != nil:
		total = *d.TotalPrice
	case d.SnakeTotal != nil:
		total = *d.SnakeTotal
	}

	paymentStatus := entities.PaymentStatusType(orDefault(d.PaymentStatus, d.SnakePaymentStatus))
	if paymentStatus == "" {
		paymentStatus = entities.PaymentPending
	}

	return &entities.Order{
		ID:            id,
		CustomerName:  orDefault(d.CustomerName, d.SnakeCustomerName),
		Email:         orDefault(d.Email, d.SnakeCustomerEmail),
		Address:       orDefault(d.Address, d.SnakeCustomerAddress),
		Items:         itemsToDomain(items),
		TotalPrice:    total,
		TransactionID: orDefault(d.TransactionID, d.SnakeTransactionID),
		Status:        entities.OrderStatusType(orDefault(d.Status, d.SnakeOrderStatus)),
		PaymentStatus: paymentStatus,
		CreatedAt:     createdAt,
	}, nil
}

func ToDomainList(documents []OrderDocument) ([]entities.Order, error) {
	result := make([]entities.Order, 0, len(documents))
	for i := range documents {
		o, err := ToDomain(&documents[i])
		if err != nil {
			return nil, err
		}
		result = append(result, *o)
	}
	return result, nil
}

func fromDomainCreate(orderCreate entities.OrderCreate, id primitive.ObjectID, now time.Time) orderInsertDocument {
	return orderInsertDocument{
		ID:            id,
		CustomerName:  orderCreate.CustomerName,
		Email:         orderCreate.Email,
		Address:       orderCreate.Address,
		Items:         itemsFromDomain(orderCreate.Items),
		TotalPrice:    *orderCreate.TotalPrice,
		TransactionID: orderCreate.TransactionID,
		Status:        entities.DefaultOrderStatus.String(),
		PaymentStatus: entities.PaymentPending.String(),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// fromDomainModify builds the $set document. Imported records get the
// camelCase field added, which reads prefer from then on.
func fromDomainModify(orderModify entities.OrderModify, now time.Time) bson.M {
	set := bson.M{"updatedAt": now}
	if orderModify.Status != nil {
		set["status"] = orderModify.Status.String()
	}
	if orderModify.PaymentStatus != nil {
		set["paymentStatus"] = orderModify.PaymentStatus.String()
	}
	return set
}

func itemsFromDomain(items []entities.LineItem) []LineItemDocument {
	documents := make([]LineItemDocument, 0, len(items))
	for _, item := range items {
		documents = append(documents, LineItemDocument{
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}
	return documents
}

func itemsToDomain(documents []LineItemDocument) []entities.LineItem {
	items := make([]entities.LineItem, 0, len(documents))
	for _, document := range documents {
		unitPrice := document.UnitPrice
		if unitPrice == 0 && document.Price != nil {
			unitPrice = *document.Price
		}
		items = append(items, entities.LineItem{
			Name:      document.Name,
			UnitPrice: unitPrice,
			Quantity:  document.Quantity,
		})
	}
	return items
}

// documentID prefers the imported "id" over the generated "_id".
func documentID(d *OrderDocument) (string, error) {
	if d.LegacyID != "" {
		return d.LegacyID, nil
	}

	switch d.ID.Type {
	case bsontype.ObjectID:
		return d.ID.ObjectID().Hex(), nil
	case bsontype.String:
		return d.ID.StringValue(), nil
	default:
		return "", fmt.Errorf("unsupported order _id type %s", d.ID.Type)
	}
}

func documentTime(v bson.RawValue) (time.Time, error) {
	switch v.Type {
	case 0, bsontype.Null:
		return time.Time{}, nil
	case bsontype.DateTime:
		return time.UnixMilli(v.DateTime()).UTC(), nil
	case bsontype.String:
		t, err := time.Parse(time.RFC3339Nano, v.StringValue())
		if err != nil {
			return time.Time{}, fmt.Errorf("parse created at: %w", err)
		}
		return t.UTC(), nil
	default:
		return time.Time{}, fmt.Errorf("unsupported created at type %s", v.Type)
	}
}

func firstPresent(values ...bson.RawValue) bson.RawValue {
	for _, v := range values {
		if v.Type != 0 && v.Type != bsontype.Null {
			return v
		}
	}
	return bson.RawValue{}
}

func orDefault(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
