package entities

import (
	"time"

	"github.com/google/uuid"
)

type ChatSender string

const (
	SenderUser ChatSender = "user"
	SenderBot  ChatSender = "bot"
)

func (s ChatSender) String() string {
	return string(s)
}

type ChatMessage struct {
	ID                uuid.UUID
	ConversationID    uuid.UUID
	Sender            ChatSender
	Text              string
	HasRedirectButton bool
	TrackingNumber    string
	CreatedAt         time.Time
}
