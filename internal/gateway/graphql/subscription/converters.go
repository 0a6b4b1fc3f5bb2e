package subscription

import "trackit/internal/entities"

func toDomain(p *packageUpdated) entities.PackageUpdate {
	update := entities.PackageUpdate{
		PackageID: p.ID,
		Status:    entities.PackageStatus(p.Status),
		Station:   entities.Station(p.Station),
	}
	if p.Coordinates != nil {
		update.Coordinates = entities.Coordinates{Lat: p.Coordinates.Lat, Lng: p.Coordinates.Lng}
	}
	for _, h := range p.History {
		update.History = append(update.History, entities.HistoryEntry{
			Status: entities.PackageStatus(h.Status),
			Date:   h.Date,
		})
	}
	return update
}
