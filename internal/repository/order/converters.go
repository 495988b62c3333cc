package order

import (
	"encoding/json"
	"fmt"

	"orders/internal/entities"
)

func ToDomain(o *OrderDB) (*entities.Order, error) {
	if o == nil {
		return nil, nil
	}

	items, err := itemsToDomain(o.OrderDetails)
	if err != nil {
		return nil, fmt.Errorf("order %s: %w", o.ID, err)
	}

	paymentStatus := entities.PaymentStatusType(o.PaymentStatus)
	if paymentStatus == "" {
		paymentStatus = entities.PaymentPending
	}

	return &entities.Order{
		ID:            o.ID,
		CustomerName:  o.CustomerName,
		Email:         o.CustomerEmail,
		Address:       o.CustomerAddress,
		Items:         items,
		TotalPrice:    o.Total,
		TransactionID: o.TransactionID,
		Status:        entities.OrderStatusType(o.OrderStatus),
		PaymentStatus: paymentStatus,
		CreatedAt:     o.CreatedAt.UTC(),
	}, nil
}

func ToDomainList(ordersDB []OrderDB) ([]entities.Order, error) {
	result := make([]entities.Order, 0, len(ordersDB))
	for i := range ordersDB {
		o, err := ToDomain(&ordersDB[i])
		if err != nil {
			return nil, err
		}
		result = append(result, *o)
	}
	return result, nil
}

func FromDomainModify(orderModify *entities.OrderModify) *OrderModifyDB {
	if orderModify == nil {
		return nil
	}
	orderDB := &OrderModifyDB{
		ID: orderModify.ID,
	}

	if orderModify.Status != nil {
		status := orderModify.Status.String()
		orderDB.OrderStatus = &status
	}
	if orderModify.PaymentStatus != nil {
		paymentStatus := orderModify.PaymentStatus.String()
		orderDB.PaymentStatus = &paymentStatus
	}

	return orderDB
}

func itemsFromDomain(items []entities.LineItem) ([]byte, error) {
	itemsDB := make([]lineItemDB, 0, len(items))
	for _, item := range items {
		itemsDB = append(itemsDB, lineItemDB{
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}

	raw, err := json.Marshal(itemsDB)
	if err != nil {
		return nil, fmt.Errorf("encode order details: %w", err)
	}
	return raw, nil
}

func itemsToDomain(raw []byte) ([]entities.LineItem, error) {
	if len(raw) == 0 {
		return []entities.LineItem{}, nil
	}

	var itemsDB []lineItemDB
	if err := json.Unmarshal(raw, &itemsDB); err != nil {
		return nil, fmt.Errorf("decode order details: %w", err)
	}

	items := make([]entities.LineItem, 0, len(itemsDB))
	for _, item := range itemsDB {
		unitPrice := item.UnitPrice
		if unitPrice == 0 && item.Price != nil {
			unitPrice = *item.Price
		}
		items = append(items, entities.LineItem{
			Name:      item.Name,
			UnitPrice: unitPrice,
			Quantity:  item.Quantity,
		})
	}
	return items, nil
}
