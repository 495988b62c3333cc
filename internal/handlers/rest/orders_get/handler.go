package orders_get

import (
	"errors"
	"net/http"
	"strconv"

	"orders/internal/entities"
	"orders/internal/generated/dto"
	"orders/internal/pkg/httpresponse"
	"orders/internal/service/access"
	"orders/internal/service/order"
	"orders/pkg/logger"
)

const (
	adminEmailHeader = "X-Admin-Email"

	invalidBound = -1
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "orders_get"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.ListPage(r.Context(), r.Header.Get(adminEmailHeader), parsePage(r))
	if err != nil {
		switch {
		case errors.Is(err, access.ErrUnauthenticated):
			httpresponse.Error(w, h.log, http.StatusUnauthorized, "Admin email header missing.")
		case errors.Is(err, access.ErrForbidden):
			httpresponse.Error(w, h.log, http.StatusForbidden, "Access denied. Unauthorized admin.")
		case errors.Is(err, order.ErrInvalidPage):
			httpresponse.Error(w, h.log, http.StatusBadRequest, "Invalid pagination parameters")
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("list orders")
			httpresponse.Error(w, h.log, http.StatusInternalServerError, "Failed to fetch orders.")
		}
		return
	}

	httpresponse.JSON(w, h.log, http.StatusOK, dto.OrdersResponse{
		Orders: httpresponse.OrderListDTO(orders),
	})
}

// parsePage reads limit and offset. An absent limit means the default page
// size. Malformed or out of range values become invalidBound, so the service
// rejects them with ErrInvalidPage once the caller is authorized.
func parsePage(r *http.Request) entities.Page {
	page := entities.Page{Limit: entities.DefaultPageLimit}
	query := r.URL.Query()

	if raw := query.Get("limit"); raw != "" {
		page.Limit = invalidBound
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			page.Limit = limit
		}
	}

	if raw := query.Get("offset"); raw != "" {
		page.Offset = invalidBound
		if offset, err := strconv.Atoi(raw); err == nil && offset >= 0 {
			page.Offset = offset
		}
	}

	return page
}
