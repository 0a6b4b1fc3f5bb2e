package notifications_delete

import (
	"net/http"

	"trackit/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "notifications_delete"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.service.Clear()
	h.log.Info("notifications cleared")
	w.WriteHeader(http.StatusNoContent)
}
