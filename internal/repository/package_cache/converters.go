package package_cache

import "trackit/internal/entities"

func fromDomain(p entities.Package) packageCache {
	c := packageCache{
		ID:             p.ID,
		TrackingNumber: p.TrackingNumber,
		Sender:         p.Sender,
		Receiver:       p.Receiver,
		Destination:    p.Destination,
		Status:         string(p.Status),
		Station:        string(p.Station),
	}
	if p.Coordinates != nil {
		c.Coordinates = &coordinatesCache{Lat: p.Coordinates.Lat, Lng: p.Coordinates.Lng}
	}
	if len(p.History) > 0 {
		c.History = make([]historyEntryCache, len(p.History))
		for i, h := range p.History {
			c.History[i] = historyEntryCache{Status: string(h.Status), Date: h.Date}
		}
	}
	return c
}

func toDomain(c packageCache) *entities.Package {
	p := &entities.Package{
		ID:             c.ID,
		TrackingNumber: c.TrackingNumber,
		Sender:         c.Sender,
		Receiver:       c.Receiver,
		Destination:    c.Destination,
		Status:         entities.PackageStatus(c.Status),
		Station:        entities.Station(c.Station),
	}
	if c.Coordinates != nil {
		p.Coordinates = &entities.Coordinates{Lat: c.Coordinates.Lat, Lng: c.Coordinates.Lng}
	}
	if len(c.History) > 0 {
		p.History = make([]entities.HistoryEntry, len(c.History))
		for i, h := range c.History {
			p.History[i] = entities.HistoryEntry{Status: entities.PackageStatus(h.Status), Date: h.Date}
		}
	}
	return p
}
