package package_station_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"trackit/internal/entities"
	"trackit/internal/handlers/rest/dto"
	"trackit/internal/handlers/rest/response"
	"trackit/internal/service/shipment"
	"trackit/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "package_station_put"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req dto.StationUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	station := entities.Station(strings.ToUpper(strings.TrimSpace(req.Station)))

	pkg, err := h.service.UpdatePackageStation(r.Context(), id, station)
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrInvalidStation),
			errors.Is(err, shipment.ErrMissingRequiredFields):
			_ = response.Error(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, shipment.ErrPackageNotFound):
			_ = response.Error(w, http.StatusNotFound, shipment.ErrPackageNotFound.Error())
		default:
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("package_id", id),
			).Warn("update package station failed")
			_ = response.Upstream(w, err)
		}
		return
	}

	if err := response.JSON(w, http.StatusOK, dto.PackageFromEntity(*pkg)); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
