package llm

import (
	"context"
	"time"
)

// FlashcardCount is the number of flashcards requested per document.
const FlashcardCount = 5

// MinQuizQuestions is the minimum number of quiz questions requested.
const MinQuizQuestions = 5

// Flashcard is one study card produced by the flashcards task.
type Flashcard struct {
	Subject    string `json:"subject"`
	Definition string `json:"definition"`
}

// QuizQuestion is one multiple-choice question in a generated quiz.
type QuizQuestion struct {
	QuestionText  string   `json:"question_text"`
	Options       []string `json:"options"`
	CorrectOption string   `json:"correct_option"`
}

// Quiz is the quiz payload produced by the quiz task.
type Quiz struct {
	Title     string         `json:"title"`
	Questions []QuizQuestion `json:"questions"`
}

// Turn is one prior exchange in a document conversation.
type Turn struct {
	Role    string `json:"role"` // "user" | "assistant"
	Content string `json:"content"`
}

// Usage holds token accounting reported by the provider.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Add returns the per-field sum of two usage reports.
func (u Usage) Add(other Usage) Usage {
	return Usage{
		PromptTokens:     u.PromptTokens + other.PromptTokens,
		CompletionTokens: u.CompletionTokens + other.CompletionTokens,
		TotalTokens:      u.TotalTokens + other.TotalTokens,
	}
}

// GenerationRequest describes one completion call. It is immutable once
// built; nothing mutates it after dispatch.
type GenerationRequest struct {
	SystemPrompt string
	UserPrompt   string
	History      []Turn // prior turns, chronological; conversational path only
	Model        string // overrides the configured model when set
	ExpectJSON   bool   // request structured (json_object) output
	MaxTokens    int    // 0 = provider default
}

// GenerationOutcome is the product of one completion call. Each outcome is
// owned by the call that produced it and never shared before return.
type GenerationOutcome struct {
	Payload map[string]any // parsed JSON body when ExpectJSON
	Text    string         // stripped plain content otherwise
	Usage   Usage
	Elapsed time.Duration
	Model   string
}

// Generator is the interface the study-set orchestrator and the chat
// assistant depend on.
type Generator interface {
	GenerateSummary(ctx context.Context, text string) (string, GenerationOutcome, error)
	GenerateFlashcards(ctx context.Context, text string) ([]Flashcard, GenerationOutcome, error)
	GenerateQuiz(ctx context.Context, text string) (Quiz, GenerationOutcome, error)
	Complete(ctx context.Context, req GenerationRequest) (GenerationOutcome, error)
	Ping(ctx context.Context) error
}
