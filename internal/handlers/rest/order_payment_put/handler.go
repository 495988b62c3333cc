package order_payment_put

import (
	"errors"
	"net/http"

	"orders/internal/generated/dto"
	"orders/internal/pkg/httpresponse"
	"orders/internal/service/access"
	"orders/internal/service/order"
	"orders/pkg/logger"

	"github.com/gorilla/mux"
)

const adminEmailHeader = "X-Admin-Email"

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "order_payment_put"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP marks the payment confirmed. Repeating the call is harmless.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["orderId"]

	confirmed, err := h.service.ConfirmPayment(r.Context(), r.Header.Get(adminEmailHeader), orderID)
	if err != nil {
		switch {
		case errors.Is(err, access.ErrUnauthenticated):
			httpresponse.Error(w, h.log, http.StatusUnauthorized, "Admin email header missing.")
		case errors.Is(err, access.ErrForbidden):
			httpresponse.Error(w, h.log, http.StatusForbidden, "Access denied. Unauthorized admin.")
		case errors.Is(err, order.ErrInvalidOrderID):
			httpresponse.Error(w, h.log, http.StatusBadRequest, err.Error())
		case errors.Is(err, order.ErrOrderNotFound):
			httpresponse.Error(w, h.log, http.StatusNotFound, "Order not found")
		default:
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("order", orderID),
			).Error("confirm payment")
			httpresponse.Error(w, h.log, http.StatusInternalServerError, "Failed to confirm payment")
		}
		return
	}

	h.log.With(
		logger.NewField("order", confirmed.ID),
		logger.NewField("transaction", confirmed.TransactionID),
	).Info("payment confirmed")

	httpresponse.JSON(w, h.log, http.StatusOK, dto.OrderResponse{
		Order: httpresponse.OrderDTO(*confirmed),
	})
}
