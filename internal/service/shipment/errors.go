package shipment

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidTrackingNumber = errors.New("invalid tracking number")
	ErrInvalidStatus         = errors.New("invalid package status")
	ErrInvalidStation        = errors.New("invalid station")

	ErrPackageNotFound = errors.New("package not found")
	ErrCacheMiss       = errors.New("package not cached")
)
