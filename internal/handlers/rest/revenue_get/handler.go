package revenue_get

import (
	"errors"
	"net/http"

	"orders/internal/generated/dto"
	"orders/internal/pkg/httpresponse"
	"orders/internal/service/access"
	"orders/pkg/logger"
)

const (
	adminEmailHeader = "X-Admin-Email"
	dayLayout        = "2006-01-02"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "revenue_get"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	points, err := h.service.Revenue(r.Context(), r.Header.Get(adminEmailHeader))
	if err != nil {
		switch {
		case errors.Is(err, access.ErrUnauthenticated):
			httpresponse.Error(w, h.log, http.StatusUnauthorized, "Admin email header missing.")
		case errors.Is(err, access.ErrForbidden):
			httpresponse.Error(w, h.log, http.StatusForbidden, "Access denied. Unauthorized admin.")
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("revenue by day")
			httpresponse.Error(w, h.log, http.StatusInternalServerError, "Failed to load revenue.")
		}
		return
	}

	res := dto.RevenueResponse{
		Dates:   make([]string, len(points)),
		Revenue: make([]float64, len(points)),
	}
	for i, point := range points {
		res.Dates[i] = point.Day.UTC().Format(dayLayout)
		res.Revenue[i] = point.Revenue
	}

	httpresponse.JSON(w, h.log, http.StatusOK, res)
}
