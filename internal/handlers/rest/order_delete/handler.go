package order_delete

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
	handlerLog := log.With(logger.NewField("handler", "order_delete"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["orderId"]

	deleted, err := h.service.Delete(r.Context(), r.Header.Get(adminEmailHeader), orderID)
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
			).Error("delete order")
			httpresponse.Error(w, h.log, http.StatusInternalServerError, "Failed to delete order.")
		}
		return
	}

	h.log.With(
		logger.NewField("order", deleted.ID),
		logger.NewField("admin", r.Header.Get(adminEmailHeader)),
	).Info("order deleted")

	httpresponse.JSON(w, h.log, http.StatusOK, dto.MessageResponse{
		Message: "Order deleted successfully",
	})
}
