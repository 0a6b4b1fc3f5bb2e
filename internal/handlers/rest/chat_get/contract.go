//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=chat_get_test
package chat_get

import (
	"context"

	"github.com/google/uuid"
	"trackit/internal/entities"
	"trackit/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Transcript(ctx context.Context, conversationID uuid.UUID) ([]entities.ChatMessage, error)
}
