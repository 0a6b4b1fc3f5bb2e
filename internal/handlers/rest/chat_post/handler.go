package chat_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"trackit/internal/handlers/rest/dto"
	"trackit/internal/handlers/rest/response"
	"trackit/internal/service/assistant"
	"trackit/pkg/logger"
)

const maxBodyBytes = 16 << 10

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "chat_post"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req dto.ChatRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		_ = response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	conversationID := uuid.Nil
	if req.ConversationID != "" {
		id, err := uuid.Parse(req.ConversationID)
		if err != nil {
			_ = response.Error(w, http.StatusBadRequest, "invalid conversation id")
			return
		}
		conversationID = id
	}

	reply, err := h.service.Reply(r.Context(), conversationID, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, assistant.ErrEmptyMessage):
			_ = response.Error(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, assistant.ErrDuplicateMessage):
			_ = response.Error(w, http.StatusConflict, err.Error())
		default:
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("conversation_id", conversationID.String()),
			).Error("chat reply failed")
			_ = response.Error(w, http.StatusInternalServerError, "chat is temporarily unavailable")
		}
		return
	}

	if err := response.JSON(w, http.StatusOK, dto.ChatMessageFromEntity(reply)); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
