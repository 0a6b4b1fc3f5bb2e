package entities

type Coordinates struct {
	Lat float64
	Lng float64
}

type Station string

const (
	StationElenga     Station = "ELENGA"
	StationSirajgonj  Station = "SIRAJGONJ"
	StationSherpur    Station = "SHERPUR"
	StationBogura     Station = "BOGURA"
	StationPolashbari Station = "POLASHBARI"
	StationRangpurHub Station = "RANGPUR_HUB"
)

// StationOrder is the fixed route; position in it defines delivery progress.
var StationOrder = []Station{
	StationElenga,
	StationSirajgonj,
	StationSherpur,
	StationBogura,
	StationPolashbari,
	StationRangpurHub,
}

var stationCoordinates = map[Station]Coordinates{
	StationElenga:     {Lat: 24.3167, Lng: 89.9167},
	StationSirajgonj:  {Lat: 24.4539, Lng: 89.7},
	StationSherpur:    {Lat: 25.0206, Lng: 90.0174},
	StationBogura:     {Lat: 24.8465, Lng: 89.3776},
	StationPolashbari: {Lat: 25.3282, Lng: 89.3915},
	StationRangpurHub: {Lat: 25.7439, Lng: 89.2752},
}

func (s Station) String() string {
	return string(s)
}

func (s Station) Valid() bool {
	_, ok := stationCoordinates[s]
	return ok
}

// Coordinates returns the static location of a known station.
func (s Station) Coordinates() (Coordinates, bool) {
	c, ok := stationCoordinates[s]
	return c, ok
}
