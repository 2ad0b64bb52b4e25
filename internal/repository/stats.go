package repository

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"studydeck/gen/ent"
	"studydeck/gen/ent/quiz"
	"studydeck/gen/ent/quizanswer"
	"studydeck/gen/ent/quizattempt"
	"studydeck/gen/ent/quizquestion"
	"studydeck/internal/entity"
	"studydeck/internal/utils"
)

const (
	// score at or above which an attempt counts as passed
	passingScore = 70.0
	// error rate above which a question is flagged as difficult
	difficultErrorRate = 50.0
	// attempts shown in the recent history
	recentAttemptWindow = 5
)

// AnswerSubmission is one answer of a quiz attempt as submitted.
type AnswerSubmission struct {
	QuestionID     uuid.UUID
	SelectedOption string
}

type StatsRepository interface {
	// RecordAttempt grades the submitted answers against the quiz and
	// persists the attempt with its per-answer results.
	RecordAttempt(ctx context.Context, ownerID string, quizID uuid.UUID, answers []AnswerSubmission, timeTakenSeconds *int) (*entity.QuizAttempt, error)
	UserStatistics(ctx context.Context, ownerID string) (*entity.UserStatistics, error)
	QuizStatistics(ctx context.Context, quizID uuid.UUID) (*entity.QuizStatistics, error)
}

type statsRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewStatsRepository(client *ent.Client, logger *slog.Logger) StatsRepository {
	return &statsRepository{
		client: client,
		logger: logger,
	}
}

func (r *statsRepository) RecordAttempt(ctx context.Context, ownerID string, quizID uuid.UUID, answers []AnswerSubmission, timeTakenSeconds *int) (*entity.QuizAttempt, error) {
	q, err := r.client.Quiz.Query().
		Where(quiz.ID(quizID)).
		WithQuestions().
		Only(ctx)
	if err != nil {
		return nil, err
	}
	questions := make([]entity.QuizQuestion, len(q.Edges.Questions))
	for i, question := range q.Edges.Questions {
		questions[i] = utils.ToQuizQuestion(question)
	}

	correct, graded := gradeAnswers(questions, answers)

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	attempt, err := r.recordAttemptTx(ctx, tx, ownerID, quizID, len(questions), correct, graded, timeTakenSeconds)
	if err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			r.logger.Error("failed to roll back attempt tx", "quiz_id", quizID, "error", rerr)
		}
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit attempt: %w", err)
	}

	out := utils.ToQuizAttempt(attempt)
	r.logger.Info("quiz attempt recorded",
		"quiz_id", quizID,
		"owner_id", ownerID,
		"score", out.Score,
		"correct", out.CorrectAnswers,
		"total", out.TotalQuestions,
	)
	return &out, nil
}

func (r *statsRepository) recordAttemptTx(ctx context.Context, tx *ent.Tx, ownerID string, quizID uuid.UUID, total, correct int, graded []gradedAnswer, timeTakenSeconds *int) (*ent.QuizAttempt, error) {
	builder := tx.QuizAttempt.Create().
		SetQuizID(quizID).
		SetOwnerID(ownerID).
		SetTotalQuestions(total).
		SetCorrectAnswers(correct).
		SetScore(attemptScore(correct, total))
	if timeTakenSeconds != nil {
		builder = builder.SetTimeTakenSeconds(*timeTakenSeconds)
	}
	attempt, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("save attempt: %w", err)
	}

	rows := make([]*ent.QuizAnswerCreate, len(graded))
	for i, g := range graded {
		rows[i] = tx.QuizAnswer.Create().
			SetAttemptID(attempt.ID).
			SetQuestionID(g.QuestionID).
			SetSelectedOption(g.SelectedOption).
			SetIsCorrect(g.IsCorrect)
	}
	if _, err := tx.QuizAnswer.CreateBulk(rows...).Save(ctx); err != nil {
		return nil, fmt.Errorf("save answers: %w", err)
	}
	return attempt, nil
}

func (r *statsRepository) UserStatistics(ctx context.Context, ownerID string) (*entity.UserStatistics, error) {
	rows, err := r.client.QuizAttempt.Query().
		Where(quizattempt.OwnerID(ownerID)).
		Order(quizattempt.ByCompletedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to load attempts", "owner_id", ownerID, "error", err)
		return nil, err
	}
	attempts := make([]entity.QuizAttempt, len(rows))
	for i, row := range rows {
		attempts[i] = utils.ToQuizAttempt(row)
	}
	return summarizeAttempts(attempts), nil
}

func (r *statsRepository) QuizStatistics(ctx context.Context, quizID uuid.UUID) (*entity.QuizStatistics, error) {
	attemptRows, err := r.client.QuizAttempt.Query().
		Where(quizattempt.QuizID(quizID)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to load quiz attempts", "quiz_id", quizID, "error", err)
		return nil, err
	}
	stats := &entity.QuizStatistics{TotalAttempts: len(attemptRows)}
	if len(attemptRows) == 0 {
		return stats, nil
	}

	scores := make([]float64, len(attemptRows))
	for i, row := range attemptRows {
		scores[i] = row.Score
	}
	stats.AverageScore = mean(scores)
	stats.PassRate = passRate(scores)

	questionRows, err := r.client.QuizQuestion.Query().
		Where(quizquestion.QuizID(quizID)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to load quiz questions", "quiz_id", quizID, "error", err)
		return nil, err
	}
	answerRows, err := r.client.QuizAnswer.Query().
		Where(quizanswer.HasAttemptWith(quizattempt.QuizID(quizID))).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to load quiz answers", "quiz_id", quizID, "error", err)
		return nil, err
	}

	questions := make([]entity.QuizQuestion, len(questionRows))
	for i, row := range questionRows {
		questions[i] = utils.ToQuizQuestion(row)
	}
	answers := make([]entity.QuizAnswer, len(answerRows))
	for i, row := range answerRows {
		answers[i] = utils.ToQuizAnswer(row)
	}
	stats.DifficultQuestions = difficultQuestions(questions, answers)
	return stats, nil
}

type gradedAnswer struct {
	QuestionID     uuid.UUID
	SelectedOption string
	IsCorrect      bool
}

// gradeAnswers checks each submission against its question's correct option.
// Submissions referencing unknown questions are dropped.
func gradeAnswers(questions []entity.QuizQuestion, answers []AnswerSubmission) (int, []gradedAnswer) {
	byID := make(map[uuid.UUID]string, len(questions))
	for _, q := range questions {
		byID[q.ID] = q.CorrectOption
	}

	correct := 0
	graded := make([]gradedAnswer, 0, len(answers))
	for _, a := range answers {
		want, ok := byID[a.QuestionID]
		if !ok {
			continue
		}
		isCorrect := a.SelectedOption == want
		if isCorrect {
			correct++
		}
		graded = append(graded, gradedAnswer{
			QuestionID:     a.QuestionID,
			SelectedOption: a.SelectedOption,
			IsCorrect:      isCorrect,
		})
	}
	return correct, graded
}

func attemptScore(correct, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(correct) / float64(total) * 100
}

// summarizeAttempts expects attempts in chronological order.
func summarizeAttempts(attempts []entity.QuizAttempt) *entity.UserStatistics {
	stats := &entity.UserStatistics{RecentAttempts: []entity.QuizAttempt{}}
	if len(attempts) == 0 {
		return stats
	}

	stats.TotalQuizzes = len(attempts)
	stats.BestScore = attempts[0].Score
	stats.WorstScore = attempts[0].Score
	var sum float64
	for _, a := range attempts {
		sum += a.Score
		if a.Score > stats.BestScore {
			stats.BestScore = a.Score
		}
		if a.Score < stats.WorstScore {
			stats.WorstScore = a.Score
		}
		if a.TimeTakenSeconds != nil {
			stats.TotalTimeSeconds += *a.TimeTakenSeconds
		}
	}
	stats.AverageScore = sum / float64(len(attempts))

	recent := attempts
	if len(recent) > recentAttemptWindow {
		recent = recent[len(recent)-recentAttemptWindow:]
	}
	stats.RecentAttempts = append(stats.RecentAttempts, recent...)
	return stats
}

func mean(scores []float64) float64 {
	var sum float64
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}

func passRate(scores []float64) float64 {
	passed := 0
	for _, s := range scores {
		if s >= passingScore {
			passed++
		}
	}
	return float64(passed) / float64(len(scores)) * 100
}

// difficultQuestions flags questions whose error rate exceeds the threshold,
// hardest first.
func difficultQuestions(questions []entity.QuizQuestion, answers []entity.QuizAnswer) []entity.DifficultQuestion {
	type tally struct{ total, correct int }
	counts := make(map[uuid.UUID]*tally, len(questions))
	for _, a := range answers {
		t := counts[a.QuestionID]
		if t == nil {
			t = &tally{}
			counts[a.QuestionID] = t
		}
		t.total++
		if a.IsCorrect {
			t.correct++
		}
	}

	var out []entity.DifficultQuestion
	for _, q := range questions {
		t := counts[q.ID]
		if t == nil || t.total == 0 {
			continue
		}
		errorRate := float64(t.total-t.correct) / float64(t.total) * 100
		if errorRate <= difficultErrorRate {
			continue
		}
		out = append(out, entity.DifficultQuestion{
			QuestionID:   q.ID,
			QuestionText: truncateQuestionText(q.QuestionText),
			ErrorRate:    errorRate,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ErrorRate > out[j].ErrorRate })
	return out
}

func truncateQuestionText(text string) string {
	const max = 100
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}
