package package_get

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"trackit/internal/handlers/rest/dto"
	"trackit/internal/handlers/rest/response"
	"trackit/internal/service/narrative"
	"trackit/internal/service/shipment"
	"trackit/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "package_get"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP answers with the package, its route progress and the status text shown to the user.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	trackingNumber := mux.Vars(r)["trackingNumber"]

	pkg, err := h.service.GetPackageByTrackingNumber(r.Context(), trackingNumber)
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrInvalidTrackingNumber):
			_ = response.Error(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, shipment.ErrPackageNotFound):
			_ = response.Error(w, http.StatusNotFound, shipment.ErrPackageNotFound.Error())
		default:
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("tracking_number", trackingNumber),
			).Warn("package lookup failed")
			_ = response.Upstream(w, err)
		}
		return
	}

	body := dto.PackageDetails{
		Package:  dto.PackageFromEntity(*pkg),
		Progress: dto.ProgressFromStation(pkg.Station),
		Presentation: dto.PresentationFromNarrative(
			narrative.Describe(pkg.Status.String(), pkg.TrackingNumber, pkg.Destination),
		),
	}

	if err := response.JSON(w, http.StatusOK, body); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
