package package_updated

import "trackit/internal/entities"

// packageUpdatedEvent mirrors the packageUpdated subscription payload.
type packageUpdatedEvent struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	Station     string `json:"station"`
	Coordinates *struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	} `json:"coordinates"`
	History []struct {
		Status string `json:"status"`
		Date   string `json:"date"`
	} `json:"history"`
}

func (e packageUpdatedEvent) toDomain() entities.PackageUpdate {
	update := entities.PackageUpdate{
		PackageID: e.ID,
		Status:    entities.PackageStatus(e.Status),
		Station:   entities.Station(e.Station),
	}
	if e.Coordinates != nil {
		update.Coordinates = entities.Coordinates{Lat: e.Coordinates.Lat, Lng: e.Coordinates.Lng}
	}
	for _, h := range e.History {
		update.History = append(update.History, entities.HistoryEntry{
			Status: entities.PackageStatus(h.Status),
			Date:   h.Date,
		})
	}
	return update
}
