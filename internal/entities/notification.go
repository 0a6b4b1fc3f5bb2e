package entities

import "time"

// Notification is a package update observed by this process. It lives only in memory.
type Notification struct {
	PackageID   string
	Status      PackageStatus
	Station     Station
	Coordinates Coordinates
	History     []HistoryEntry
	ReceivedAt  time.Time
}

// PackageUpdate is the payload pushed by the packageUpdated subscription.
type PackageUpdate struct {
	PackageID   string
	Status      PackageStatus
	Station     Station
	Coordinates Coordinates
	History     []HistoryEntry
}
