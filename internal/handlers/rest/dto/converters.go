package dto

import (
	"trackit/internal/entities"
	"trackit/internal/service/narrative"
	"trackit/internal/service/progress"
)

func PackageFromEntity(p entities.Package) Package {
	out := Package{
		ID:             p.ID,
		TrackingNumber: p.TrackingNumber,
		Sender:         p.Sender,
		Receiver:       p.Receiver,
		Destination:    p.Destination,
		Status:         p.Status.String(),
		Station:        string(p.Station),
		History:        HistoryFromEntity(p.History),
	}
	if p.Coordinates != nil {
		out.Coordinates = &Coordinates{Lat: p.Coordinates.Lat, Lng: p.Coordinates.Lng}
	}
	return out
}

func PackagesFromEntity(packages []entities.Package) []Package {
	out := make([]Package, len(packages))
	for i, p := range packages {
		out[i] = PackageFromEntity(p)
	}
	return out
}

func HistoryFromEntity(history []entities.HistoryEntry) []HistoryEntry {
	out := make([]HistoryEntry, len(history))
	for i, h := range history {
		out[i] = HistoryEntry{Status: h.Status.String(), Date: h.Date}
	}
	return out
}

func ProgressFromStation(station entities.Station) Progress {
	timeline := progress.Timeline(station)
	steps := make([]Step, len(timeline))
	for i, s := range timeline {
		steps[i] = Step{
			Station:     string(s.Station),
			Coordinates: Coordinates{Lat: s.Coordinates.Lat, Lng: s.Coordinates.Lng},
			Reached:     s.Reached,
			Current:     s.Current,
		}
	}
	return Progress{
		StationIndex: progress.Index(station),
		Fraction:     progress.Fraction(station),
		Timeline:     steps,
	}
}

func PresentationFromNarrative(p narrative.Presentation) Presentation {
	return Presentation{
		Label:       p.Label,
		Text:        p.Text,
		ShowDetails: p.ShowDetails,
	}
}

func ChatMessageFromEntity(m entities.ChatMessage) ChatMessage {
	return ChatMessage{
		ID:                m.ID.String(),
		ConversationID:    m.ConversationID.String(),
		Sender:            m.Sender.String(),
		Text:              m.Text,
		HasRedirectButton: m.HasRedirectButton,
		TrackingNumber:    m.TrackingNumber,
		CreatedAt:         m.CreatedAt,
	}
}

func NotificationFromEntity(n entities.Notification) Notification {
	return Notification{
		PackageID:   n.PackageID,
		Status:      n.Status.String(),
		Station:     string(n.Station),
		Coordinates: Coordinates{Lat: n.Coordinates.Lat, Lng: n.Coordinates.Lng},
		History:     HistoryFromEntity(n.History),
		ReceivedAt:  n.ReceivedAt,
	}
}
