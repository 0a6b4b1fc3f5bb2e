package package_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"trackit/internal/entities"
	"trackit/internal/handlers/rest/dto"
	"trackit/internal/handlers/rest/response"
	"trackit/internal/pkg/identity"
	"trackit/internal/service/shipment"
	"trackit/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "package_post"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP creates a package. Without userId in the body the package is owned by the caller.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req dto.PackageCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.UserID == "" {
		req.UserID, _ = identity.UserID(r.Context())
	}

	pkg, err := h.service.CreatePackage(r.Context(), entities.PackageCreate{
		Sender:      req.Sender,
		Receiver:    req.Receiver,
		Destination: req.Destination,
		UserID:      req.UserID,
	})
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrMissingRequiredFields):
			_ = response.Error(w, http.StatusBadRequest, "sender, receiver, destination and userId are required")
		default:
			h.log.With(
				logger.NewField("error", err),
			).Warn("create package failed")
			_ = response.Upstream(w, err)
		}
		return
	}

	if err := response.JSON(w, http.StatusCreated, dto.PackageFromEntity(*pkg)); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
