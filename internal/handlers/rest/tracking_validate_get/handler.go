package tracking_validate_get

import (
	"net/http"

	"trackit/internal/handlers/rest/dto"
	"trackit/internal/handlers/rest/response"
	"trackit/internal/service/tracking"
	"trackit/pkg/logger"
)

type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	handlerLog := log.With(logger.NewField("handler", "tracking_validate_get"))

	return &Handler{
		log: handlerLog,
	}
}

// ServeHTTP always answers 200: a rejected number is a result, not a request error.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var body dto.Validation

	validation, err := tracking.Validate(r.URL.Query().Get("number"))
	if err != nil {
		body = dto.Validation{Error: err.Error()}
	} else {
		body = dto.Validation{
			Valid:          true,
			TrackingNumber: validation.Number,
			Carrier:        string(validation.Carrier),
		}
	}

	if err := response.JSON(w, http.StatusOK, body); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
