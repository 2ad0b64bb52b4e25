package server

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"studydeck/gen/ent"
	studyv1 "studydeck/gen/studydeck/v1"
	"studydeck/internal/entity"
	"studydeck/internal/repository"
)

type stubStats struct {
	attempt   *entity.QuizAttempt
	userStats *entity.UserStatistics
	quizStats *entity.QuizStatistics
	err       error

	lastOwnerID string
	lastQuizID  uuid.UUID
	lastAnswers []repository.AnswerSubmission
	lastTime    *int
}

func (s *stubStats) RecordAttempt(_ context.Context, ownerID string, quizID uuid.UUID, answers []repository.AnswerSubmission, timeTakenSeconds *int) (*entity.QuizAttempt, error) {
	s.lastOwnerID = ownerID
	s.lastQuizID = quizID
	s.lastAnswers = answers
	s.lastTime = timeTakenSeconds
	return s.attempt, s.err
}

func (s *stubStats) UserStatistics(_ context.Context, ownerID string) (*entity.UserStatistics, error) {
	s.lastOwnerID = ownerID
	return s.userStats, s.err
}

func (s *stubStats) QuizStatistics(_ context.Context, quizID uuid.UUID) (*entity.QuizStatistics, error) {
	s.lastQuizID = quizID
	return s.quizStats, s.err
}

func newStatsService(stats repository.StatsRepository) *StudyService {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	return NewStudyService(Deps{Stats: stats}, logger)
}

func TestRecordQuizAttempt(t *testing.T) {
	quizID := uuid.New()
	questionID := uuid.New()
	seconds := 95
	stub := &stubStats{attempt: &entity.QuizAttempt{
		ID:               uuid.New(),
		QuizID:           quizID,
		OwnerID:          "owner-1",
		TotalQuestions:   5,
		CorrectAnswers:   4,
		Score:            80,
		TimeTakenSeconds: &seconds,
		CompletedAt:      time.Now(),
	}}
	svc := newStatsService(stub)

	resp, err := svc.RecordQuizAttempt(context.Background(), &studyv1.RecordQuizAttemptRequest{
		OwnerId: "owner-1",
		QuizId:  quizID.String(),
		Answers: []*studyv1.QuizAnswerSubmission{
			{QuestionId: questionID.String(), SelectedOption: "B"},
		},
		TimeTakenSeconds: 95,
	})
	require.NoError(t, err)

	assert.Equal(t, "owner-1", stub.lastOwnerID)
	assert.Equal(t, quizID, stub.lastQuizID)
	require.Len(t, stub.lastAnswers, 1)
	assert.Equal(t, questionID, stub.lastAnswers[0].QuestionID)
	assert.Equal(t, "B", stub.lastAnswers[0].SelectedOption)
	require.NotNil(t, stub.lastTime)
	assert.Equal(t, 95, *stub.lastTime)

	attempt := resp.GetAttempt()
	require.NotNil(t, attempt)
	assert.Equal(t, int32(5), attempt.GetTotalQuestions())
	assert.Equal(t, int32(4), attempt.GetCorrectAnswers())
	assert.Equal(t, 80.0, attempt.GetScore())
	assert.Equal(t, int32(95), attempt.GetTimeTakenSeconds())
}

func TestRecordQuizAttemptValidation(t *testing.T) {
	svc := newStatsService(&stubStats{})

	cases := []*studyv1.RecordQuizAttemptRequest{
		{QuizId: uuid.New().String(), Answers: []*studyv1.QuizAnswerSubmission{{QuestionId: uuid.New().String(), SelectedOption: "A"}}},
		{OwnerId: "o", QuizId: "not-a-uuid", Answers: []*studyv1.QuizAnswerSubmission{{QuestionId: uuid.New().String(), SelectedOption: "A"}}},
		{OwnerId: "o", QuizId: uuid.New().String()},
		{OwnerId: "o", QuizId: uuid.New().String(), Answers: []*studyv1.QuizAnswerSubmission{{QuestionId: "bad", SelectedOption: "A"}}},
		{OwnerId: "o", QuizId: uuid.New().String(), Answers: []*studyv1.QuizAnswerSubmission{{QuestionId: uuid.New().String()}}},
	}
	for _, req := range cases {
		_, err := svc.RecordQuizAttempt(context.Background(), req)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	}
}

func TestRecordQuizAttemptUnknownQuiz(t *testing.T) {
	svc := newStatsService(&stubStats{err: &ent.NotFoundError{}})

	_, err := svc.RecordQuizAttempt(context.Background(), &studyv1.RecordQuizAttemptRequest{
		OwnerId: "o",
		QuizId:  uuid.New().String(),
		Answers: []*studyv1.QuizAnswerSubmission{{QuestionId: uuid.New().String(), SelectedOption: "A"}},
	})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestGetUserStatistics(t *testing.T) {
	stub := &stubStats{userStats: &entity.UserStatistics{
		TotalQuizzes:     3,
		AverageScore:     75.5,
		TotalTimeSeconds: 300,
		BestScore:        95,
		WorstScore:       50,
		RecentAttempts:   []entity.QuizAttempt{{ID: uuid.New(), Score: 95}},
	}}
	svc := newStatsService(stub)

	resp, err := svc.GetUserStatistics(context.Background(), &studyv1.GetUserStatisticsRequest{OwnerId: "owner-1"})
	require.NoError(t, err)

	assert.Equal(t, "owner-1", stub.lastOwnerID)
	assert.Equal(t, int32(3), resp.GetTotalQuizzes())
	assert.Equal(t, 75.5, resp.GetAverageScore())
	assert.Equal(t, int32(300), resp.GetTotalTimeSeconds())
	assert.Equal(t, 95.0, resp.GetBestScore())
	assert.Equal(t, 50.0, resp.GetWorstScore())
	require.Len(t, resp.GetRecentAttempts(), 1)
	assert.Equal(t, 95.0, resp.GetRecentAttempts()[0].GetScore())

	_, err = svc.GetUserStatistics(context.Background(), &studyv1.GetUserStatisticsRequest{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestGetQuizStatistics(t *testing.T) {
	questionID := uuid.New()
	stub := &stubStats{quizStats: &entity.QuizStatistics{
		TotalAttempts: 4,
		AverageScore:  62.5,
		PassRate:      25,
		DifficultQuestions: []entity.DifficultQuestion{
			{QuestionID: questionID, QuestionText: "Which option?", ErrorRate: 75},
		},
	}}
	svc := newStatsService(stub)

	resp, err := svc.GetQuizStatistics(context.Background(), &studyv1.GetQuizStatisticsRequest{QuizId: uuid.New().String()})
	require.NoError(t, err)

	assert.Equal(t, int32(4), resp.GetTotalAttempts())
	assert.Equal(t, 62.5, resp.GetAverageScore())
	assert.Equal(t, 25.0, resp.GetPassRate())
	require.Len(t, resp.GetDifficultQuestions(), 1)
	assert.Equal(t, questionID.String(), resp.GetDifficultQuestions()[0].GetQuestionId())
	assert.Equal(t, 75.0, resp.GetDifficultQuestions()[0].GetErrorRate())

	_, err = svc.GetQuizStatistics(context.Background(), &studyv1.GetQuizStatisticsRequest{QuizId: "nope"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}
