package package_updated

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"trackit/internal/service/notification"
	"trackit/pkg/logger"
)

type Handler struct {
	service                  NotificationService
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, service NotificationService, timeout time.Duration) *Handler {
	return &Handler{
		service:                  service,
		log:                      log.With(logger.NewField("handler", "package.updated")),
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("claim messages channel closed")
				return nil
			}
			if h.messageProcessing(sess, message) {
				return nil
			}
		case <-sess.Context().Done():
			h.log.Info("session context done")
			return nil
		}
	}
}

// messageProcessing reports whether ConsumeClaim should stop. The message is left
// unmarked in that case so it is redelivered.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event packageUpdatedEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("bad package.updated message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("package_id", event.ID),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)

	_, err := h.service.Add(ctx, event.toDomain())
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(logger.NewField("error", err)).Warn("context cancelled, message will be reprocessed")
			return true
		case errors.Is(err, notification.ErrMissingPackageID):
			msgLog.Warn("package.updated without package id skipped")
		default:
			msgLog.With(logger.NewField("error", err)).Warn("store package update")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("package.updated stored")
	sess.MarkMessage(message, "")
	return false
}
