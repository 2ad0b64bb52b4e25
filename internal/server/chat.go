package server

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"studydeck/constants"
	studyv1 "studydeck/gen/studydeck/v1"
	"studydeck/internal/chat"
	"studydeck/internal/common"
	"studydeck/internal/utils"
)

// Chat answers a question about a document. The user turn is persisted
// before the model runs, the assistant turn after; the answer itself can
// never be an error, only the fixed fallback text.
func (s *StudyService) Chat(ctx context.Context, req *studyv1.ChatRequest) (*studyv1.ChatResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetDocumentId()))
	if err != nil {
		return nil, common.InvalidArgumentError("document_id must be a UUID")
	}
	message := strings.TrimSpace(req.GetMessage())
	if message == "" {
		return nil, common.InvalidArgumentError("message is required")
	}

	doc, err := s.docs.GetByID(ctx, id)
	if err != nil {
		return nil, common.NotFoundError("document not found")
	}
	if doc.ExtractedText == "" {
		return nil, common.InvalidArgumentError("document has no extracted text yet")
	}

	history, err := s.chats.RecentTurns(ctx, id, chat.HistoryWindow)
	if err != nil {
		s.logger.Error("load chat history failed", "document_id", id, "error", err)
		return nil, common.InternalError("load chat history failed")
	}

	if _, err := s.chats.AppendMessage(ctx, id, constants.ChatRoleUser, message); err != nil {
		return nil, common.InternalError("persist chat message failed")
	}

	answer := s.assistant.Respond(ctx, doc.ExtractedText, message, history)

	if _, err := s.chats.AppendMessage(ctx, id, constants.ChatRoleAssistant, answer); err != nil {
		s.logger.Error("persist assistant message failed", "document_id", id, "error", err)
	}
	return &studyv1.ChatResponse{Answer: answer}, nil
}

func (s *StudyService) GetChatHistory(ctx context.Context, req *studyv1.GetChatHistoryRequest) (*studyv1.GetChatHistoryResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetDocumentId()))
	if err != nil {
		return nil, common.InvalidArgumentError("document_id must be a UUID")
	}

	msgs, err := s.chats.History(ctx, id)
	if err != nil {
		s.logger.Error("load chat history failed", "document_id", id, "error", err)
		return nil, common.InternalError("load chat history failed")
	}

	out := make([]*studyv1.ChatMessage, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, utils.ToPBChatMessage(m))
	}
	return &studyv1.GetChatHistoryResponse{Messages: out}, nil
}
