package chat_get

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"trackit/internal/handlers/rest/dto"
	"trackit/internal/handlers/rest/response"
	"trackit/internal/service/assistant"
	"trackit/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "chat_get"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conversationID, err := uuid.Parse(mux.Vars(r)["conversationID"])
	if err != nil {
		_ = response.Error(w, http.StatusBadRequest, "invalid conversation id")
		return
	}

	messages, err := h.service.Transcript(r.Context(), conversationID)
	if err != nil {
		switch {
		case errors.Is(err, assistant.ErrConversationNotFound):
			_ = response.Error(w, http.StatusNotFound, err.Error())
		case errors.Is(err, assistant.ErrMissingConversationID):
			_ = response.Error(w, http.StatusBadRequest, err.Error())
		default:
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("conversation_id", conversationID.String()),
			).Error("load transcript failed")
			_ = response.Error(w, http.StatusInternalServerError, "chat is temporarily unavailable")
		}
		return
	}

	body := dto.Transcript{
		ConversationID: conversationID.String(),
		Messages:       make([]dto.ChatMessage, len(messages)),
	}
	for i, m := range messages {
		body.Messages[i] = dto.ChatMessageFromEntity(m)
	}

	if err := response.JSON(w, http.StatusOK, body); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
