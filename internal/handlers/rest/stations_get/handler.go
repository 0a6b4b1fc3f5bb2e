package stations_get

import (
	"net/http"

	"trackit/internal/entities"
	"trackit/internal/handlers/rest/dto"
	"trackit/internal/handlers/rest/response"
	"trackit/pkg/logger"
)

type Handler struct {
	log      handlerLogger
	stations []dto.Station
}

func New(log handlerLogger) *Handler {
	handlerLog := log.With(logger.NewField("handler", "stations_get"))

	stations := make([]dto.Station, len(entities.StationOrder))
	for i, s := range entities.StationOrder {
		coords, _ := s.Coordinates()
		stations[i] = dto.Station{
			Name:        string(s),
			Index:       i,
			Coordinates: dto.Coordinates{Lat: coords.Lat, Lng: coords.Lng},
		}
	}

	return &Handler{
		log:      handlerLog,
		stations: stations,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := response.JSON(w, http.StatusOK, h.stations); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
