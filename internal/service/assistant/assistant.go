// Package assistant runs the chat assistant: it spots tracking numbers in user
// messages, looks the package up and keeps the conversation transcript.
package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"trackit/internal/entities"
	"trackit/internal/service/narrative"
	"trackit/internal/service/tracking"
	"trackit/pkg/logger"
)

type Service struct {
	shipment  Shipment
	repo      Repository
	txManager TxManager
	log       serviceLogger
	now       func() time.Time
	newID     func() uuid.UUID
}

type Option func(s *Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func WithIDGenerator(newID func() uuid.UUID) Option {
	return func(s *Service) {
		s.newID = newID
	}
}

func New(shipment Shipment, repo Repository, txManager TxManager, log serviceLogger, opts ...Option) *Service {
	s := &Service{
		shipment:  shipment,
		repo:      repo,
		txManager: txManager,
		log:       log,
		now:       time.Now,
		newID:     uuid.New,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Reply stores the user message together with the assistant's answer and returns the answer.
// A nil conversationID starts a new conversation.
func (s *Service) Reply(ctx context.Context, conversationID uuid.UUID, text string) (entities.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return entities.ChatMessage{}, ErrEmptyMessage
	}
	if conversationID == uuid.Nil {
		conversationID = s.newID()
	}

	now := s.now().UTC()
	question := entities.ChatMessage{
		ID:             s.newID(),
		ConversationID: conversationID,
		Sender:         entities.SenderUser,
		Text:           text,
		CreatedAt:      now,
	}

	answer, err := s.answer(ctx, text)
	if err != nil {
		return entities.ChatMessage{}, err
	}
	answer.ID = s.newID()
	answer.ConversationID = conversationID
	answer.Sender = entities.SenderBot
	// the reply must sort after the question
	answer.CreatedAt = now.Add(time.Microsecond)

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repo.Save(ctx, question); err != nil {
			return fmt.Errorf("save user message: %w", err)
		}
		if err := s.repo.Save(ctx, answer); err != nil {
			return fmt.Errorf("save bot message: %w", err)
		}
		return nil
	})
	if err != nil {
		return entities.ChatMessage{}, err
	}

	return answer, nil
}

func (s *Service) answer(ctx context.Context, text string) (entities.ChatMessage, error) {
	match, ok := tracking.Detect(text)
	if !ok {
		return entities.ChatMessage{Text: narrative.GeneralReply(text)}, nil
	}

	pkg, err := s.shipment.GetPackageByTrackingNumber(ctx, match.Number)
	if err != nil {
		if ctx.Err() != nil {
			return entities.ChatMessage{}, ctx.Err()
		}
		s.log.Warn("package lookup failed",
			logger.NewField("tracking_number", match.Number),
			logger.NewField("format", match.Format),
			logger.NewField("error", err),
		)
		missing := narrative.DescribeMissing(match.Number)
		return entities.ChatMessage{Text: missing.Text, TrackingNumber: match.Number}, nil
	}

	p := narrative.Describe(pkg.Status.String(), pkg.TrackingNumber, pkg.Destination)
	return entities.ChatMessage{
		Text:              p.Text,
		HasRedirectButton: p.ShowDetails,
		TrackingNumber:    pkg.TrackingNumber,
	}, nil
}

// Transcript lists the stored messages of a conversation, oldest first.
func (s *Service) Transcript(ctx context.Context, conversationID uuid.UUID) ([]entities.ChatMessage, error) {
	if conversationID == uuid.Nil {
		return nil, ErrMissingConversationID
	}

	messages, err := s.repo.ListByConversation(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("list conversation %s: %w", conversationID, err)
	}
	if len(messages) == 0 {
		return nil, ErrConversationNotFound
	}
	return messages, nil
}

// CleanupTranscripts deletes every message older than retention.
func (s *Service) CleanupTranscripts(ctx context.Context, retention time.Duration) (int64, error) {
	if retention <= 0 {
		return 0, ErrInvalidRetention
	}

	cutoff := s.now().UTC().Add(-retention)
	deleted, err := s.repo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete messages before %s: %w", cutoff.Format(time.RFC3339), err)
	}
	if deleted > 0 {
		s.log.Info("transcripts cleaned up",
			logger.NewField("deleted", deleted),
			logger.NewField("cutoff", cutoff),
		)
	}
	return deleted, nil
}
