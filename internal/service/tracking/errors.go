package tracking

import "errors"

var (
	ErrTrackingNumberRequired = errors.New("tracking number is required")
	ErrTrackingNumberTooShort = errors.New("tracking number is too short")
	ErrTrackingNumberTooLong  = errors.New("tracking number is too long")
)
