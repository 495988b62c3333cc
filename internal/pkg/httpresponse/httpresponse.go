package httpresponse

import (
	"encoding/json"
	"net/http"

	"orders/internal/generated/dto"
	"orders/pkg/logger"
)

type errorLogger interface {
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// JSON writes v with the given status. Encoding failures can only be logged,
// the header is already sent.
func JSON(w http.ResponseWriter, log errorLogger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

// Error writes {"error": msg}.
func Error(w http.ResponseWriter, log errorLogger, status int, msg string) {
	JSON(w, log, status, dto.ErrorResponse{Error: msg})
}
