package chat

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studydeck/internal/llm"
)

// captureGenerator records the Complete request and returns a scripted result.
type captureGenerator struct {
	lastReq llm.GenerationRequest
	outcome llm.GenerationOutcome
	err     error
}

func (c *captureGenerator) Complete(_ context.Context, req llm.GenerationRequest) (llm.GenerationOutcome, error) {
	c.lastReq = req
	return c.outcome, c.err
}

func (c *captureGenerator) GenerateSummary(context.Context, string) (string, llm.GenerationOutcome, error) {
	panic("not used")
}

func (c *captureGenerator) GenerateFlashcards(context.Context, string) ([]llm.Flashcard, llm.GenerationOutcome, error) {
	panic("not used")
}

func (c *captureGenerator) GenerateQuiz(context.Context, string) (llm.Quiz, llm.GenerationOutcome, error) {
	panic("not used")
}

func (c *captureGenerator) Ping(context.Context) error { return nil }

func TestRespondReturnsAnswer(t *testing.T) {
	gen := &captureGenerator{outcome: llm.GenerationOutcome{Text: "  mitosis is cell division  "}}
	a := NewAssistant(gen, "chat-model", 0, nil)

	got := a.Respond(context.Background(), "document", "what is mitosis?", nil)
	assert.Equal(t, "mitosis is cell division", got)
	assert.Equal(t, "chat-model", gen.lastReq.Model)
	assert.Equal(t, "what is mitosis?", gen.lastReq.UserPrompt)
	assert.Equal(t, 1000, gen.lastReq.MaxTokens)
	assert.Contains(t, gen.lastReq.SystemPrompt, "document")
	assert.False(t, gen.lastReq.ExpectJSON)
}

func TestRespondNeverFails(t *testing.T) {
	t.Run("generator error becomes the fallback answer", func(t *testing.T) {
		gen := &captureGenerator{err: llm.ErrConnection}
		a := NewAssistant(gen, "", 0, nil)
		assert.Equal(t, FallbackAnswer, a.Respond(context.Background(), "doc", "q", nil))
	})

	t.Run("blank answer becomes the fallback answer", func(t *testing.T) {
		gen := &captureGenerator{outcome: llm.GenerationOutcome{Text: "   "}}
		a := NewAssistant(gen, "", 0, nil)
		assert.Equal(t, FallbackAnswer, a.Respond(context.Background(), "doc", "q", nil))
	})
}

func TestRespondWindowsHistory(t *testing.T) {
	var history []llm.Turn
	for i := 0; i < 15; i++ {
		history = append(history, llm.Turn{Role: "user", Content: fmt.Sprintf("turn %d", i)})
	}

	gen := &captureGenerator{outcome: llm.GenerationOutcome{Text: "ok"}}
	a := NewAssistant(gen, "", 0, nil)
	a.Respond(context.Background(), "doc", "q", history)

	require.Len(t, gen.lastReq.History, HistoryWindow)
	assert.Equal(t, "turn 5", gen.lastReq.History[0].Content, "oldest surviving turn")
	assert.Equal(t, "turn 14", gen.lastReq.History[9].Content, "chronological order preserved")
}

func TestRespondShortHistoryUntouched(t *testing.T) {
	history := []llm.Turn{{Role: "user", Content: "only turn"}}
	gen := &captureGenerator{outcome: llm.GenerationOutcome{Text: "ok"}}
	a := NewAssistant(gen, "", 0, nil)
	a.Respond(context.Background(), "doc", "q", history)

	assert.Equal(t, history, gen.lastReq.History)
}
