package tracking_detect_get

import (
	"net/http"
	"strings"

	"trackit/internal/handlers/rest/dto"
	"trackit/internal/handlers/rest/response"
	"trackit/internal/service/tracking"
	"trackit/pkg/logger"
)

type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	handlerLog := log.With(logger.NewField("handler", "tracking_detect_get"))

	return &Handler{
		log: handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	text := r.URL.Query().Get("text")
	if strings.TrimSpace(text) == "" {
		_ = response.Error(w, http.StatusBadRequest, "text is required")
		return
	}

	var body dto.Detection
	if match, ok := tracking.Detect(text); ok {
		body = dto.Detection{
			Found:          true,
			TrackingNumber: match.Number,
			Format:         string(match.Format),
		}
	}

	if err := response.JSON(w, http.StatusOK, body); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
