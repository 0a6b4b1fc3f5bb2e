package subscription

const packageUpdatedQuery = `subscription { packageUpdated { id status station coordinates { lat lng } history { status date } } }`

// packageUpdatedData is the data object of one packageUpdated event.
type packageUpdatedData struct {
	PackageUpdated *packageUpdated `json:"packageUpdated"`
}

type packageUpdated struct {
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
