package transcript

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"trackit/internal/entities"
	"trackit/internal/repository"
	"trackit/internal/service/assistant"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const table = "chat_messages"

var columns = []string{
	"id",
	"conversation_id",
	"sender",
	"text",
	"has_redirect_button",
	"tracking_number",
	"created_at",
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Save(ctx context.Context, message entities.ChatMessage) error {
	m := FromDomain(message)

	query, args, err := qb.
		Insert(table).
		Columns(columns...).
		Values(m.ID, m.ConversationID, m.Sender, m.Text, m.HasRedirectButton, m.TrackingNumber, m.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build transcript insert: %w", err)
	}

	if _, err := r.querier.Exec(ctx, query, args...); err != nil {
		switch {
		case repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation):
			return assistant.ErrDuplicateMessage
		case repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation):
			return fmt.Errorf("transcript save, constraint %s rejected sender %q: %w",
				repository.ConstraintName(err), m.Sender, err)
		}
		return fmt.Errorf("unexpected transcript repository save error: %w", err)
	}
	return nil
}

func (r *Repository) ListByConversation(ctx context.Context, conversationID uuid.UUID) ([]entities.ChatMessage, error) {
	query, args, err := qb.
		Select(columns...).
		From(table).
		Where(sq.Eq{"conversation_id": conversationID}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build transcript select: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected transcript repository list error: %w", err)
	}
	defer rows.Close()

	models := make([]ChatMessageDB, 0, 16)
	for rows.Next() {
		var m ChatMessageDB
		err := rows.Scan(
			&m.ID,
			&m.ConversationID,
			&m.Sender,
			&m.Text,
			&m.HasRedirectButton,
			&m.TrackingNumber,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected transcript repository list error: %w", err)
		}
		models = append(models, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected transcript repository list error: %w", err)
	}

	return ToDomainList(models), nil
}

// DeleteOlderThan removes messages created strictly before the cutoff.
func (r *Repository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query, args, err := qb.
		Delete(table).
		Where(sq.Lt{"created_at": cutoff}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build transcript delete: %w", err)
	}

	tag, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("unexpected transcript repository delete error: %w", err)
	}
	return tag.RowsAffected(), nil
}
