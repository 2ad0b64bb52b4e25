package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"studydeck/constants"
	"studydeck/gen/ent"
	"studydeck/gen/ent/chatmessage"
	"studydeck/internal/entity"
	"studydeck/internal/llm"
	"studydeck/internal/utils"
)

type ChatRepository interface {
	AppendMessage(ctx context.Context, documentID uuid.UUID, role constants.ChatRole, content string) (*ent.ChatMessage, error)
	History(ctx context.Context, documentID uuid.UUID) ([]entity.ChatMessage, error)
	RecentTurns(ctx context.Context, documentID uuid.UUID, limit int) ([]llm.Turn, error)
}

type chatRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewChatRepository(client *ent.Client, logger *slog.Logger) ChatRepository {
	return &chatRepository{
		client: client,
		logger: logger,
	}
}

func (r *chatRepository) AppendMessage(ctx context.Context, documentID uuid.UUID, role constants.ChatRole, content string) (*ent.ChatMessage, error) {
	m, err := r.client.ChatMessage.Create().
		SetDocumentID(documentID).
		SetRole(string(role)).
		SetContent(content).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to append chat message", "document_id", documentID, "role", role, "error", err)
		return nil, err
	}
	return m, nil
}

func (r *chatRepository) History(ctx context.Context, documentID uuid.UUID) ([]entity.ChatMessage, error) {
	rows, err := r.client.ChatMessage.Query().
		Where(chatmessage.DocumentID(documentID)).
		Order(chatmessage.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to load chat history", "document_id", documentID, "error", err)
		return nil, err
	}
	msgs := make([]entity.ChatMessage, len(rows))
	for i, row := range rows {
		msgs[i] = utils.ToChatMessage(row)
	}
	return msgs, nil
}

// RecentTurns returns the last limit turns in chronological order, shaped for
// the generation client.
func (r *chatRepository) RecentTurns(ctx context.Context, documentID uuid.UUID, limit int) ([]llm.Turn, error) {
	q := r.client.ChatMessage.Query().
		Where(chatmessage.DocumentID(documentID)).
		Order(ent.Desc(chatmessage.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		r.logger.Error("failed to load recent chat turns", "document_id", documentID, "error", err)
		return nil, err
	}
	// query returned newest-first; replay oldest-first
	turns := make([]llm.Turn, len(rows))
	for i, row := range rows {
		turns[len(rows)-1-i] = llm.Turn{Role: row.Role, Content: row.Content}
	}
	return turns, nil
}
