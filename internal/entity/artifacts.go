package entity

import (
	"time"

	"github.com/google/uuid"
)

// Summary is the persisted summary artifact for a document.
type Summary struct {
	ID          uuid.UUID `json:"id"`
	DocumentID  uuid.UUID `json:"document_id"`
	Content     string    `json:"content"`
	ModelName   *string   `json:"model_name,omitempty"`
	TotalTokens *int      `json:"total_tokens,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Flashcard is one persisted study card.
type Flashcard struct {
	ID         uuid.UUID `json:"id"`
	DocumentID uuid.UUID `json:"document_id"`
	Subject    string    `json:"subject"`
	Definition string    `json:"definition"`
	Position   int       `json:"position"`
	CreatedAt  time.Time `json:"created_at"`
}

// Quiz is a persisted quiz with its questions eagerly loaded.
type Quiz struct {
	ID         uuid.UUID      `json:"id"`
	DocumentID uuid.UUID      `json:"document_id"`
	Title      string         `json:"title"`
	ModelName  *string        `json:"model_name,omitempty"`
	Questions  []QuizQuestion `json:"questions"`
	CreatedAt  time.Time      `json:"created_at"`
}

// QuizQuestion is one persisted multiple-choice question.
type QuizQuestion struct {
	ID            uuid.UUID `json:"id"`
	QuizID        uuid.UUID `json:"quiz_id"`
	QuestionText  string    `json:"question_text"`
	Options       []string  `json:"options"`
	CorrectOption string    `json:"correct_option"`
	Position      int       `json:"position"`
}

// StudySet bundles the persisted artifacts of one document.
type StudySet struct {
	Summary    *Summary    `json:"summary,omitempty"`
	Flashcards []Flashcard `json:"flashcards"`
	Quiz       *Quiz       `json:"quiz,omitempty"`
}
