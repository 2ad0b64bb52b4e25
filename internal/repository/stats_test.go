package repository

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studydeck/internal/entity"
)

func question(correct string) entity.QuizQuestion {
	return entity.QuizQuestion{
		ID:            uuid.New(),
		QuestionText:  "What is tested here?",
		Options:       []string{"A", "B", "C", "D"},
		CorrectOption: correct,
	}
}

func TestGradeAnswers(t *testing.T) {
	q1 := question("B")
	q2 := question("D")
	questions := []entity.QuizQuestion{q1, q2}

	correct, graded := gradeAnswers(questions, []AnswerSubmission{
		{QuestionID: q1.ID, SelectedOption: "B"},
		{QuestionID: q2.ID, SelectedOption: "A"},
		{QuestionID: uuid.New(), SelectedOption: "C"}, // not part of the quiz
	})

	assert.Equal(t, 1, correct)
	require.Len(t, graded, 2)
	assert.True(t, graded[0].IsCorrect)
	assert.False(t, graded[1].IsCorrect)
	assert.Equal(t, q2.ID, graded[1].QuestionID)
}

func TestAttemptScore(t *testing.T) {
	assert.Equal(t, 0.0, attemptScore(0, 0))
	assert.Equal(t, 0.0, attemptScore(0, 4))
	assert.Equal(t, 50.0, attemptScore(2, 4))
	assert.Equal(t, 100.0, attemptScore(4, 4))
}

func TestSummarizeAttemptsEmpty(t *testing.T) {
	stats := summarizeAttempts(nil)

	assert.Zero(t, stats.TotalQuizzes)
	assert.Zero(t, stats.AverageScore)
	assert.Zero(t, stats.BestScore)
	assert.Zero(t, stats.WorstScore)
	assert.Zero(t, stats.TotalTimeSeconds)
	assert.Empty(t, stats.RecentAttempts)
}

func TestSummarizeAttempts(t *testing.T) {
	seconds := func(n int) *int { return &n }
	attempts := make([]entity.QuizAttempt, 0, 7)
	for i, score := range []float64{40, 80, 60, 100, 20, 90, 70} {
		attempts = append(attempts, entity.QuizAttempt{
			ID:               uuid.New(),
			Score:            score,
			TimeTakenSeconds: seconds(60 + i),
		})
	}

	stats := summarizeAttempts(attempts)

	assert.Equal(t, 7, stats.TotalQuizzes)
	assert.InDelta(t, 65.71, stats.AverageScore, 0.01)
	assert.Equal(t, 100.0, stats.BestScore)
	assert.Equal(t, 20.0, stats.WorstScore)
	assert.Equal(t, 60*7+21, stats.TotalTimeSeconds)

	// only the five latest attempts, oldest first
	require.Len(t, stats.RecentAttempts, 5)
	assert.Equal(t, 60.0, stats.RecentAttempts[0].Score)
	assert.Equal(t, 70.0, stats.RecentAttempts[4].Score)
}

func TestPassRate(t *testing.T) {
	assert.Equal(t, 50.0, passRate([]float64{100, 70, 69, 0}))
	assert.Equal(t, 0.0, passRate([]float64{10}))
	assert.Equal(t, 100.0, passRate([]float64{70}))
}

func TestDifficultQuestions(t *testing.T) {
	hard := question("A")
	harder := question("A")
	easy := question("A")
	unanswered := question("A")
	questions := []entity.QuizQuestion{hard, harder, easy, unanswered}

	answer := func(q entity.QuizQuestion, ok bool) entity.QuizAnswer {
		return entity.QuizAnswer{QuestionID: q.ID, SelectedOption: "A", IsCorrect: ok}
	}
	answers := []entity.QuizAnswer{
		// hard: 2/3 wrong
		answer(hard, false), answer(hard, false), answer(hard, true),
		// harder: 3/3 wrong
		answer(harder, false), answer(harder, false), answer(harder, false),
		// easy: 1/2 wrong, exactly at the threshold
		answer(easy, false), answer(easy, true),
	}

	out := difficultQuestions(questions, answers)

	require.Len(t, out, 2)
	assert.Equal(t, harder.ID, out[0].QuestionID)
	assert.Equal(t, 100.0, out[0].ErrorRate)
	assert.Equal(t, hard.ID, out[1].QuestionID)
	assert.InDelta(t, 66.67, out[1].ErrorRate, 0.01)
}

func TestDifficultQuestionsTruncatesText(t *testing.T) {
	long := question("A")
	long.QuestionText = strings.Repeat("q", 150)

	out := difficultQuestions(
		[]entity.QuizQuestion{long},
		[]entity.QuizAnswer{{QuestionID: long.ID, SelectedOption: "B", IsCorrect: false}},
	)

	require.Len(t, out, 1)
	assert.Equal(t, strings.Repeat("q", 100)+"...", out[0].QuestionText)
}
