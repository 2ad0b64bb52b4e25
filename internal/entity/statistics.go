package entity

import (
	"time"

	"github.com/google/uuid"
)

// QuizAttempt is one scored run through a quiz.
type QuizAttempt struct {
	ID               uuid.UUID `json:"id"`
	QuizID           uuid.UUID `json:"quiz_id"`
	OwnerID          string    `json:"owner_id"`
	TotalQuestions   int       `json:"total_questions"`
	CorrectAnswers   int       `json:"correct_answers"`
	Score            float64   `json:"score"`
	TimeTakenSeconds *int      `json:"time_taken_seconds,omitempty"`
	CompletedAt      time.Time `json:"completed_at"`
}

// QuizAnswer is one graded answer within an attempt.
type QuizAnswer struct {
	ID             uuid.UUID `json:"id"`
	AttemptID      uuid.UUID `json:"attempt_id"`
	QuestionID     uuid.UUID `json:"question_id"`
	SelectedOption string    `json:"selected_option"`
	IsCorrect      bool      `json:"is_correct"`
}

// UserStatistics aggregates an owner's quiz attempts.
type UserStatistics struct {
	TotalQuizzes     int           `json:"total_quizzes"`
	AverageScore     float64       `json:"average_score"`
	TotalTimeSeconds int           `json:"total_time_seconds"`
	BestScore        float64       `json:"best_score"`
	WorstScore       float64       `json:"worst_score"`
	RecentAttempts   []QuizAttempt `json:"recent_attempts"`
}

// DifficultQuestion flags a question most takers get wrong.
type DifficultQuestion struct {
	QuestionID   uuid.UUID `json:"question_id"`
	QuestionText string    `json:"question_text"`
	ErrorRate    float64   `json:"error_rate"`
}

// QuizStatistics aggregates all attempts against one quiz.
type QuizStatistics struct {
	TotalAttempts      int                 `json:"total_attempts"`
	AverageScore       float64             `json:"average_score"`
	PassRate           float64             `json:"pass_rate"`
	DifficultQuestions []DifficultQuestion `json:"difficult_questions"`
}
