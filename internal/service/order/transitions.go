package order

import "orders/internal/entities"

var transitions = map[entities.OrderStatusType][]entities.OrderStatusType{
	entities.OrderPending:   {entities.OrderProcessed, entities.OrderCancelled},
	entities.OrderProcessed: {entities.OrderShipped, entities.OrderCancelled},
	entities.OrderShipped:   {entities.OrderDelivered, entities.OrderCancelled},
	entities.OrderDelivered: nil,
	entities.OrderCancelled: nil,
}

func isKnownStatus(status entities.OrderStatusType) bool {
	_, ok := transitions[status]
	return ok
}

// canTransition allows staying in the same state so repeated updates are not
// rejected. Orders stored with a status outside the table, written before
// strict mode was enabled, may move to any known status.
func canTransition(from, to entities.OrderStatusType) bool {
	if from == to || !isKnownStatus(from) {
		return true
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
