package customer_orders_get

import (
	"errors"
	"net/http"

	"orders/internal/generated/dto"
	"orders/internal/pkg/httpresponse"
	"orders/internal/service/order"
	"orders/pkg/logger"
)

const customerEmailHeader = "X-Customer-Email"

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "customer_orders_get"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.CustomerOrders(r.Context(), r.Header.Get(customerEmailHeader))
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingCustomerEmail):
			httpresponse.Error(w, h.log, http.StatusBadRequest, "Missing x-customer-email header")
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("list customer orders")
			httpresponse.Error(w, h.log, http.StatusInternalServerError, "Failed to fetch orders.")
		}
		return
	}

	httpresponse.JSON(w, h.log, http.StatusOK, dto.OrdersResponse{
		Orders: httpresponse.OrderListDTO(orders),
	})
}
