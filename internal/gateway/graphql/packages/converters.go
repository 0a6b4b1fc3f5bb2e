package packages

import "trackit/internal/entities"

func toDomainList(dtos []packageDTO) []entities.Package {
	if len(dtos) == 0 {
		return []entities.Package{}
	}

	packages := make([]entities.Package, 0, len(dtos))
	for i := range dtos {
		packages = append(packages, *toDomain(&dtos[i]))
	}
	return packages
}

func toDomain(dto *packageDTO) *entities.Package {
	if dto == nil {
		return nil
	}

	pkg := &entities.Package{
		ID:             dto.ID,
		TrackingNumber: dto.TrackingNumber,
		Sender:         dto.Sender,
		Receiver:       dto.Receiver,
		Destination:    dto.Destination,
		Status:         entities.PackageStatus(dto.Status),
		Station:        entities.Station(dto.Station),
	}
	if dto.Coordinates != nil {
		pkg.Coordinates = &entities.Coordinates{Lat: dto.Coordinates.Lat, Lng: dto.Coordinates.Lng}
	}
	return pkg
}
