package packages_get

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
	handlerLog := log.With(logger.NewField("handler", "packages_get"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	packages, err := h.service.GetPackages(r.Context())
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Warn("list packages failed")
		_ = response.Upstream(w, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, dto.PackagesFromEntity(packages)); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
