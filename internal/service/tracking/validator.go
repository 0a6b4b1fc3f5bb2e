package tracking

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	minLength = 8
	maxLength = 35
)

type Carrier string

const (
	CarrierApplication Carrier = "TrackIT"
	CarrierUPS         Carrier = "UPS"
	CarrierFedEx       Carrier = "FedEx"
	CarrierUSPS        Carrier = "USPS"
	CarrierDHL         Carrier = "DHL"
	CarrierUnknown     Carrier = "Unknown"
)

type Validation struct {
	Number  string
	Carrier Carrier
}

type carrierRule struct {
	carrier Carrier
	re      *regexp.Regexp
}

var carrierRules = []carrierRule{
	{carrier: CarrierApplication, re: regexp.MustCompile(`^PKG-[0-9]+$`)},
	{carrier: CarrierUPS, re: regexp.MustCompile(`^1Z[0-9A-Z]{16}$`)},
	{carrier: CarrierFedEx, re: regexp.MustCompile(`^[0-9]{12,14}$`)},
	{carrier: CarrierUSPS, re: regexp.MustCompile(`^[0-9]{20,22}$`)},
	{carrier: CarrierDHL, re: regexp.MustCompile(`^[0-9]{10,11}$`)},
}

// Validate rejects only on length; an unrecognised shape is accepted as CarrierUnknown.
func Validate(number string) (Validation, error) {
	clean := strings.TrimSpace(number)

	switch n := utf8.RuneCountInString(clean); {
	case n == 0:
		return Validation{}, ErrTrackingNumberRequired
	case n < minLength:
		return Validation{}, ErrTrackingNumberTooShort
	case n > maxLength:
		return Validation{}, ErrTrackingNumberTooLong
	}

	for _, rule := range carrierRules {
		if rule.re.MatchString(clean) {
			return Validation{Number: clean, Carrier: rule.carrier}, nil
		}
	}
	return Validation{Number: clean, Carrier: CarrierUnknown}, nil
}
