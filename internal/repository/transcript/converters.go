package transcript

import "trackit/internal/entities"

func FromDomain(m entities.ChatMessage) ChatMessageDB {
	db := ChatMessageDB{
		ID:                m.ID,
		ConversationID:    m.ConversationID,
		Sender:            string(m.Sender),
		Text:              m.Text,
		HasRedirectButton: m.HasRedirectButton,
		CreatedAt:         m.CreatedAt,
	}
	if m.TrackingNumber != "" {
		tn := m.TrackingNumber
		db.TrackingNumber = &tn
	}
	return db
}

func ToDomain(m ChatMessageDB) entities.ChatMessage {
	msg := entities.ChatMessage{
		ID:                m.ID,
		ConversationID:    m.ConversationID,
		Sender:            entities.ChatSender(m.Sender),
		Text:              m.Text,
		HasRedirectButton: m.HasRedirectButton,
		CreatedAt:         m.CreatedAt.UTC(),
	}
	if m.TrackingNumber != nil {
		msg.TrackingNumber = *m.TrackingNumber
	}
	return msg
}

func ToDomainList(models []ChatMessageDB) []entities.ChatMessage {
	result := make([]entities.ChatMessage, len(models))
	for i, m := range models {
		result[i] = ToDomain(m)
	}
	return result
}
