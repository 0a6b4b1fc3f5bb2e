// Package narrative turns a package status into the text shown to a user.
package narrative

import (
	"fmt"
	"strings"

	"trackit/internal/entities"
)

// Greeting opens every new conversation.
const Greeting = "Hi! I'm your package tracking assistant. How can I help you today?"

type Presentation struct {
	Label string
	Text  string
	// ShowDetails enables the "view full tracking details" affordance.
	ShowDetails bool
}

// Describe is case-insensitive; dashes and spaces in status are read as underscores.
func Describe(status, trackingNumber, destination string) Presentation {
	switch normalize(status) {
	case string(entities.StatusDelivered):
		return Presentation{
			Label: "Delivered",
			Text: fmt.Sprintf("Great news! Package **%s** was delivered to **%s**.\n\n"+
				"The delivery is complete and no further action is needed. "+
				"If you did not receive it, please contact the carrier.", trackingNumber, destination),
		}
	case string(entities.StatusShipped), "IN_TRANSIT":
		return Presentation{
			Label: "In transit",
			Text: fmt.Sprintf("Package **%s** is on its way to **%s**.\n\n"+
				"It is moving between stations and should arrive as scheduled.", trackingNumber, destination),
			ShowDetails: true,
		}
	case string(entities.StatusProcessing):
		return Presentation{
			Label: "Processing",
			Text: fmt.Sprintf("Package **%s** is being prepared for shipment to **%s**.\n\n"+
				"You will see updates once it leaves.", trackingNumber, destination),
			ShowDetails: true,
		}
	case string(entities.StatusConfirmed):
		return Presentation{
			Label: "Confirmed",
			Text: fmt.Sprintf("Package **%s** is confirmed and ready for processing.\n\n"+
				"Destination: **%s**.", trackingNumber, destination),
			ShowDetails: true,
		}
	case string(entities.StatusPending):
		return Presentation{
			Label: "Pending",
			Text: fmt.Sprintf("Package **%s** is pending and waiting to be processed.\n\n"+
				"Destination: **%s**. Processing will start soon.", trackingNumber, destination),
			ShowDetails: true,
		}
	case string(entities.StatusOutForDelivery):
		return Presentation{
			Label: "Out for delivery",
			Text: fmt.Sprintf("Package **%s** is out for delivery to **%s**.\n\n"+
				"It should arrive today, so make sure someone can receive it.", trackingNumber, destination),
			ShowDetails: true,
		}
	case string(entities.StatusException):
		return Presentation{
			Label: "Exception",
			Text: fmt.Sprintf("There is a delivery exception for package **%s** heading to **%s**.\n\n"+
				"Please contact the carrier to resolve it.", trackingNumber, destination),
			ShowDetails: true,
		}
	case string(entities.StatusNotFound):
		return Presentation{
			Label: "Not found",
			Text: fmt.Sprintf("Package **%s** could not be located.\n\n"+
				"Please double-check the tracking number or ask the sender.", trackingNumber),
		}
	default:
		return Presentation{
			Label: strings.ToUpper(strings.TrimSpace(status)),
			Text: fmt.Sprintf("Found package **%s** with status **%s**.\n\n"+
				"It is heading to **%s**. Open the details for full tracking information.",
				trackingNumber, strings.ToUpper(strings.TrimSpace(status)), destination),
			ShowDetails: true,
		}
	}
}

// DescribeMissing is used when a recognised number yields no package.
func DescribeMissing(trackingNumber string) Presentation {
	return Presentation{
		Label: "Not found",
		Text: fmt.Sprintf("I couldn't find a package with tracking number **%s**.\n\n"+
			"The number may be mistyped, the package may not be registered yet, "+
			"or it may belong to another carrier. Please verify it and try again.", trackingNumber),
	}
}

// GeneralReply answers messages that carry no tracking number.
func GeneralReply(text string) string {
	lower := strings.ToLower(text)

	if !containsAny(lower, "track", "package", "order", "delivery") {
		return "I help with package tracking and delivery questions. " +
			"Share your **tracking number** or ask me about your shipments!"
	}

	switch {
	case strings.Contains(lower, "track"):
		return "Happy to help you track a package! Share your **tracking number** and I'll look it up."
	case containsAny(lower, "where", "status"):
		return "To check where your package is, I need your **tracking number**. " +
			"With it I can show the current station and status."
	case containsAny(lower, "delivery time", "when"):
		return "Delivery times depend on the route. Share your **tracking number** " +
			"and I'll show how far along the package is."
	case containsAny(lower, "lost", "missing"):
		return "Sorry to hear that. Let's check the tracking status first: " +
			"please send your **tracking number**."
	case containsAny(lower, "address", "change"):
		return "Address changes go through the carrier, ideally before the package is out for delivery. " +
			"Share your **tracking number** and I can tell you where it is now."
	default:
		return "I'm here to help with tracking! Send your **tracking number** for details about your shipment."
	}
}

func normalize(status string) string {
	s := strings.ToUpper(strings.TrimSpace(status))
	return strings.NewReplacer("-", "_", " ", "_").Replace(s)
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
