//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=chat_post_test
package chat_post

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
	Reply(ctx context.Context, conversationID uuid.UUID, text string) (entities.ChatMessage, error)
}
