package transcript

import (
	"time"

	"github.com/google/uuid"
)

type ChatMessageDB struct {
	ID                uuid.UUID
	ConversationID    uuid.UUID
	Sender            string
	Text              string
	HasRedirectButton bool
	TrackingNumber    *string
	CreatedAt         time.Time
}
