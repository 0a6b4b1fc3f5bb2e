// Package dto holds the JSON shapes of the REST API.
package dto

import "time"

type Error struct {
	Error string `json:"error"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type HistoryEntry struct {
	Status string `json:"status"`
	Date   string `json:"date"`
}

type Package struct {
	ID             string         `json:"id"`
	TrackingNumber string         `json:"trackingNumber"`
	Sender         string         `json:"sender"`
	Receiver       string         `json:"receiver"`
	Destination    string         `json:"destination"`
	Status         string         `json:"status"`
	Station        string         `json:"station,omitempty"`
	Coordinates    *Coordinates   `json:"coordinates,omitempty"`
	History        []HistoryEntry `json:"history"`
}

type Step struct {
	Station     string      `json:"station"`
	Coordinates Coordinates `json:"coordinates"`
	Reached     bool        `json:"reached"`
	Current     bool        `json:"current"`
}

type Progress struct {
	StationIndex int     `json:"stationIndex"`
	Fraction     float64 `json:"fraction"`
	Timeline     []Step  `json:"timeline"`
}

type Presentation struct {
	Label       string `json:"label"`
	Text        string `json:"text"`
	ShowDetails bool   `json:"showDetails"`
}

type PackageDetails struct {
	Package      Package      `json:"package"`
	Progress     Progress     `json:"progress"`
	Presentation Presentation `json:"presentation"`
}

type PackageCreate struct {
	Sender      string `json:"sender"`
	Receiver    string `json:"receiver"`
	Destination string `json:"destination"`
	UserID      string `json:"userId"`
}

type StatusUpdate struct {
	Status string `json:"status"`
}

type StationUpdate struct {
	Station string `json:"station"`
}

type Station struct {
	Name        string      `json:"name"`
	Index       int         `json:"index"`
	Coordinates Coordinates `json:"coordinates"`
}

type ChatRequest struct {
	ConversationID string `json:"conversationId"`
	Message        string `json:"message"`
}

type ChatMessage struct {
	ID                string    `json:"id"`
	ConversationID    string    `json:"conversationId"`
	Sender            string    `json:"sender"`
	Text              string    `json:"text"`
	HasRedirectButton bool      `json:"hasRedirectButton"`
	TrackingNumber    string    `json:"trackingNumber,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
}

type Transcript struct {
	ConversationID string        `json:"conversationId"`
	Messages       []ChatMessage `json:"messages"`
}

type Detection struct {
	Found          bool   `json:"found"`
	TrackingNumber string `json:"trackingNumber,omitempty"`
	Format         string `json:"format,omitempty"`
}

type Validation struct {
	Valid          bool   `json:"valid"`
	TrackingNumber string `json:"trackingNumber,omitempty"`
	Carrier        string `json:"carrier,omitempty"`
	Error          string `json:"error,omitempty"`
}

type Notification struct {
	PackageID   string         `json:"packageId"`
	Status      string         `json:"status"`
	Station     string         `json:"station,omitempty"`
	Coordinates Coordinates    `json:"coordinates"`
	History     []HistoryEntry `json:"history"`
	ReceivedAt  time.Time      `json:"receivedAt"`
}

type Notifications struct {
	Capacity      int            `json:"capacity"`
	Notifications []Notification `json:"notifications"`
}
