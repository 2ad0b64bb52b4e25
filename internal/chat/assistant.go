// Package chat answers questions about a document over a bounded window of
// prior conversation turns. This path is interactive: it degrades to a fixed
// fallback answer instead of surfacing errors.
package chat

import (
	"context"
	"log/slog"
	"strings"

	"studydeck/internal/llm"
)

// FallbackAnswer is returned whenever the assistant cannot produce a real
// answer. Callers can rely on Respond never failing.
const FallbackAnswer = "Sorry, something went wrong while processing your request. Please try again."

// HistoryWindow bounds how many trailing turns are replayed per call.
const HistoryWindow = 10

type Assistant struct {
	gen    llm.Generator
	model  string
	budget int // document excerpt budget in characters
	logger *slog.Logger
}

// NewAssistant builds an assistant on top of the generation client. model
// and budget may be zero to use the client's configured chat defaults.
func NewAssistant(gen llm.Generator, model string, budget int, logger *slog.Logger) *Assistant {
	if budget <= 0 {
		budget = llm.DefaultMaxChatChars
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Assistant{gen: gen, model: model, budget: budget, logger: logger}
}

// Respond answers userMessage against the document and prior history. It
// never returns an error: any internal failure is logged here and converted
// into FallbackAnswer.
func (a *Assistant) Respond(ctx context.Context, documentText, userMessage string, history []llm.Turn) string {
	out, err := a.gen.Complete(ctx, llm.GenerationRequest{
		SystemPrompt: llm.ChatSystemPrompt(documentText, a.budget),
		UserPrompt:   userMessage,
		History:      windowed(history),
		Model:        a.model,
		MaxTokens:    1000,
	})
	if err != nil {
		a.logger.Error("chat.respond.failed", "error", err)
		return FallbackAnswer
	}
	answer := strings.TrimSpace(out.Text)
	if answer == "" {
		a.logger.Error("chat.respond.empty_answer")
		return FallbackAnswer
	}
	a.logger.Info("chat.respond.ok",
		"total_tokens", out.Usage.TotalTokens,
		"elapsed_ms", out.Elapsed.Milliseconds(),
	)
	return answer
}

// windowed keeps the last HistoryWindow turns in their original
// chronological order.
func windowed(history []llm.Turn) []llm.Turn {
	if len(history) <= HistoryWindow {
		return history
	}
	return history[len(history)-HistoryWindow:]
}
