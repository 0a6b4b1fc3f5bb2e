package notifications_get

import (
	"net/http"

	"trackit/internal/handlers/rest/dto"
	"trackit/internal/handlers/rest/response"
	"trackit/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "notifications_get"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP lists the notifications received by this process, newest first.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	notifications := h.service.List()

	body := dto.Notifications{
		Capacity:      h.service.Capacity(),
		Notifications: make([]dto.Notification, len(notifications)),
	}
	for i, n := range notifications {
		body.Notifications[i] = dto.NotificationFromEntity(n)
	}

	if err := response.JSON(w, http.StatusOK, body); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
