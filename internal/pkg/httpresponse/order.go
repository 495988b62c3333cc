package httpresponse

import (
	"orders/internal/entities"
	"orders/internal/generated/dto"
)

func OrderDTO(order entities.Order) dto.Order {
	items := make([]dto.OrderItem, len(order.Items))
	for i, item := range order.Items {
		items[i] = dto.OrderItem{
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		}
	}

	return dto.Order{
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
	}
}

func OrderListDTO(orders []entities.Order) []dto.Order {
	result := make([]dto.Order, len(orders))
	for i, order := range orders {
		result[i] = OrderDTO(order)
	}
	return result
}
