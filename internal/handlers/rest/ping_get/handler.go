package ping_get

import (
	"net/http"

	"orders/internal/generated/dto"
	"orders/internal/pkg/httpresponse"
	"orders/pkg/logger"

	"github.com/AlekSi/pointer"
)

type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	return &Handler{
		log: log.With(logger.NewField("handler", "ping_get")),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	httpresponse.JSON(w, h.log, http.StatusOK, dto.PingResponse{Message: pointer.ToString("pong")})
}
