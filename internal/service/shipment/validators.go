package shipment

import (
	"strings"

	"trackit/internal/entities"
)

func isValidTrackingNumber(n string) bool {
	return n != "" && !strings.ContainsAny(n, " \t\r\n")
}

func isValidPackageCreate(c entities.PackageCreate) bool {
	return strings.TrimSpace(c.Sender) != "" &&
		strings.TrimSpace(c.Receiver) != "" &&
		strings.TrimSpace(c.Destination) != "" &&
		strings.TrimSpace(c.UserID) != ""
}
