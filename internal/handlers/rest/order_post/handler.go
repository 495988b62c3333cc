package order_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"orders/internal/entities"
	"orders/internal/generated/dto"
	"orders/internal/pkg/httpresponse"
	"orders/internal/service/order"
	"orders/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "order_post"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var orderCreateDTO dto.OrderCreate
	err := json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		httpresponse.Error(w, h.log, http.StatusBadRequest, "Invalid request body")
		return
	}

	orderCreateEntity := entities.OrderCreate{
		CustomerName: orderCreateDTO.CustomerInfo.Name,
		Email:        orderCreateDTO.CustomerInfo.Email,
		Address:      orderCreateDTO.CustomerInfo.Address,
		TotalPrice:   orderCreateDTO.Total,
	}
	if orderCreateDTO.Items != nil {
		orderCreateEntity.Items = itemsToDomain(*orderCreateDTO.Items)
	}
	if orderCreateDTO.TransactionID != nil {
		orderCreateEntity.TransactionID = *orderCreateDTO.TransactionID
	}

	created, err := h.service.Create(r.Context(), orderCreateEntity)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingRequiredFields):
			httpresponse.Error(w, h.log, http.StatusBadRequest, "Missing required fields")
		case errors.Is(err, order.ErrInvalidQuantity),
			errors.Is(err, order.ErrTotalMismatch):
			httpresponse.Error(w, h.log, http.StatusBadRequest, err.Error())
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("create order")
			httpresponse.Error(w, h.log, http.StatusInternalServerError, "Failed to create order.")
		}
		return
	}

	h.log.With(
		logger.NewField("order", created.ID),
	).Info("order created")

	httpresponse.JSON(w, h.log, http.StatusCreated, dto.OrderResponse{
		Order: httpresponse.OrderDTO(*created),
	})
}

// itemsToDomain takes unitPrice and falls back to price, which the
// storefront checkout sends.
func itemsToDomain(itemDTOs []dto.OrderItemInput) []entities.LineItem {
	items := make([]entities.LineItem, len(itemDTOs))
	for i, itemDTO := range itemDTOs {
		var unitPrice float64
		switch {
		case itemDTO.UnitPrice != nil:
			unitPrice = *itemDTO.UnitPrice
		case itemDTO.Price != nil:
			unitPrice = *itemDTO.Price
		}

		items[i] = entities.LineItem{
			Name:      itemDTO.Name,
			UnitPrice: unitPrice,
			Quantity:  itemDTO.Quantity,
		}
	}
	return items
}
