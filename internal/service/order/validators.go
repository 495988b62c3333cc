package order

import (
	"math"
	"strings"

	"orders/internal/entities"
)

const totalTolerance = 0.005

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func validateCreate(orderCreate entities.OrderCreate) error {
	if isBlank(orderCreate.CustomerName) ||
		isBlank(orderCreate.Email) ||
		isBlank(orderCreate.Address) ||
		orderCreate.TotalPrice == nil {
		return ErrMissingRequiredFields
	}

	for _, item := range orderCreate.Items {
		if item.Quantity < 0 {
			return ErrInvalidQuantity
		}
	}
	return nil
}

func itemsTotal(items []entities.LineItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Subtotal()
	}
	return total
}

func totalMatches(items []entities.LineItem, total float64) bool {
	return math.Abs(itemsTotal(items)-total) <= totalTolerance
}

func normalizePage(page *entities.Page) error {
	if page.Limit == 0 {
		page.Limit = entities.DefaultPageLimit
	}
	if page.Limit < 0 || page.Offset < 0 {
		return ErrInvalidPage
	}
	return nil
}
