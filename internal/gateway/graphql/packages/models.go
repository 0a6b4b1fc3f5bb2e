package packages

type coordinatesDTO struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type packageDTO struct {
	ID             string          `json:"id"`
	TrackingNumber string          `json:"trackingNumber"`
	Sender         string          `json:"sender"`
	Receiver       string          `json:"receiver"`
	Destination    string          `json:"destination"`
	Status         string          `json:"status"`
	Station        string          `json:"station"`
	Coordinates    *coordinatesDTO `json:"coordinates"`
}

type getPackagesData struct {
	GetPackages []packageDTO `json:"getPackages"`
}

type getPackageData struct {
	GetPackageByTrackingNumber *packageDTO `json:"getPackageByTrackingNumber"`
}

type createPackageData struct {
	CreatePackage *packageDTO `json:"createPackage"`
}

type updatePackageStatusData struct {
	UpdatePackageStatus *packageDTO `json:"updatePackageStatus"`
}

type updatePackageStationData struct {
	UpdatePackageStation *packageDTO `json:"updatePackageStation"`
}
