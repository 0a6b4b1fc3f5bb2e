package entities

type Package struct {
	ID             string
	TrackingNumber string
	Sender         string
	Receiver       string
	Destination    string
	Status         PackageStatus
	Station        Station
	Coordinates    *Coordinates
	History        []HistoryEntry
}

type HistoryEntry struct {
	Status PackageStatus
	Date   string
}

type PackageCreate struct {
	Sender      string
	Receiver    string
	Destination string
	UserID      string
}

type PackageStatus string

const (
	StatusPending        PackageStatus = "PENDING"
	StatusConfirmed      PackageStatus = "CONFIRMED"
	StatusProcessing     PackageStatus = "PROCESSING"
	StatusShipped        PackageStatus = "SHIPPED"
	StatusOutForDelivery PackageStatus = "OUT_FOR_DELIVERY"
	StatusDelivered      PackageStatus = "DELIVERED"

	// Display-only sentinels, never sent to the server.
	StatusException PackageStatus = "EXCEPTION"
	StatusNotFound  PackageStatus = "NOT_FOUND"
)

// StatusOrder is the server's linear lifecycle. EXCEPTION may interrupt any
// stage and is deliberately not part of it.
var StatusOrder = []PackageStatus{
	StatusPending,
	StatusConfirmed,
	StatusProcessing,
	StatusShipped,
	StatusOutForDelivery,
	StatusDelivered,
}

func (s PackageStatus) String() string {
	return string(s)
}

// Valid reports whether s is one of the six values the server accepts.
func (s PackageStatus) Valid() bool {
	return s.Rank() >= 0
}

// Rank is the position of s in StatusOrder, or -1.
func (s PackageStatus) Rank() int {
	for i, st := range StatusOrder {
		if st == s {
			return i
		}
	}
	return -1
}
