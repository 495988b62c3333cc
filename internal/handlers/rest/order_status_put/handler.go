package order_status_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"orders/internal/entities"
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
	handlerLog := log.With(logger.NewField("handler", "order_status_put"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["orderId"]

	// An unreadable body counts as a missing status, reported after the
	// caller is authorized.
	var statusDTO dto.OrderStatusUpdate
	if err := json.NewDecoder(r.Body).Decode(&statusDTO); err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("order", orderID),
		).Warn("decode status body")
		statusDTO.Status = nil
	}

	var status entities.OrderStatusType
	if statusDTO.Status != nil {
		status = entities.OrderStatusType(*statusDTO.Status)
	}

	updated, err := h.service.UpdateStatus(r.Context(), r.Header.Get(adminEmailHeader), orderID, status)
	if err != nil {
		switch {
		case errors.Is(err, access.ErrUnauthenticated):
			httpresponse.Error(w, h.log, http.StatusUnauthorized, "Admin email header missing.")
		case errors.Is(err, access.ErrForbidden):
			httpresponse.Error(w, h.log, http.StatusForbidden, "Access denied. Unauthorized admin.")
		case errors.Is(err, order.ErrMissingStatus):
			httpresponse.Error(w, h.log, http.StatusBadRequest, "Missing status in request body")
		case errors.Is(err, order.ErrInvalidStatus),
			errors.Is(err, order.ErrInvalidOrderID):
			httpresponse.Error(w, h.log, http.StatusBadRequest, err.Error())
		case errors.Is(err, order.ErrInvalidTransition):
			httpresponse.Error(w, h.log, http.StatusConflict, err.Error())
		case errors.Is(err, order.ErrOrderNotFound):
			httpresponse.Error(w, h.log, http.StatusNotFound, "Order not found")
		default:
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("order", orderID),
			).Error("update order status")
			httpresponse.Error(w, h.log, http.StatusInternalServerError, "Failed to update order status")
		}
		return
	}

	h.log.With(
		logger.NewField("order", updated.ID),
		logger.NewField("status", updated.Status.String()),
	).Info("order status updated")

	httpresponse.JSON(w, h.log, http.StatusOK, dto.OrderResponse{
		Order: httpresponse.OrderDTO(*updated),
	})
}
