package package_cache

type coordinatesCache struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type historyEntryCache struct {
	Status string `json:"status"`
	Date   string `json:"date"`
}

type packageCache struct {
	ID             string              `json:"id"`
	TrackingNumber string              `json:"trackingNumber"`
	Sender         string              `json:"sender"`
	Receiver       string              `json:"receiver"`
	Destination    string              `json:"destination"`
	Status         string              `json:"status"`
	Station        string              `json:"station,omitempty"`
	Coordinates    *coordinatesCache   `json:"coordinates,omitempty"`
	History        []historyEntryCache `json:"history,omitempty"`
}
