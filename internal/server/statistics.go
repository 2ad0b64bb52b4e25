package server

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"studydeck/gen/ent"
	studyv1 "studydeck/gen/studydeck/v1"
	"studydeck/internal/common"
	"studydeck/internal/repository"
	"studydeck/internal/utils"
)

// RecordQuizAttempt grades and stores one run through a quiz. Answers for
// questions outside the quiz are ignored, matching the grading rules.
func (s *StudyService) RecordQuizAttempt(ctx context.Context, req *studyv1.RecordQuizAttemptRequest) (*studyv1.RecordQuizAttemptResponse, error) {
	ownerID := strings.TrimSpace(req.GetOwnerId())
	if ownerID == "" {
		return nil, common.InvalidArgumentError("owner_id is required")
	}
	quizID, err := uuid.Parse(strings.TrimSpace(req.GetQuizId()))
	if err != nil {
		return nil, common.InvalidArgumentError("quiz_id must be a UUID")
	}
	if len(req.GetAnswers()) == 0 {
		return nil, common.InvalidArgumentError("answers are required")
	}

	answers := make([]repository.AnswerSubmission, 0, len(req.GetAnswers()))
	for _, a := range req.GetAnswers() {
		questionID, err := uuid.Parse(strings.TrimSpace(a.GetQuestionId()))
		if err != nil {
			return nil, common.InvalidArgumentError("answers.question_id must be a UUID")
		}
		selected := strings.TrimSpace(a.GetSelectedOption())
		if selected == "" {
			return nil, common.InvalidArgumentError("answers.selected_option is required")
		}
		answers = append(answers, repository.AnswerSubmission{
			QuestionID:     questionID,
			SelectedOption: selected,
		})
	}

	var timeTaken *int
	if req.GetTimeTakenSeconds() > 0 {
		v := int(req.GetTimeTakenSeconds())
		timeTaken = &v
	}

	attempt, err := s.stats.RecordAttempt(ctx, ownerID, quizID, answers, timeTaken)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError("quiz not found")
		}
		s.logger.Error("record quiz attempt failed", "quiz_id", quizID, "error", err)
		return nil, common.InternalError("record quiz attempt failed")
	}
	return &studyv1.RecordQuizAttemptResponse{Attempt: utils.ToPBQuizAttempt(*attempt)}, nil
}

func (s *StudyService) GetUserStatistics(ctx context.Context, req *studyv1.GetUserStatisticsRequest) (*studyv1.GetUserStatisticsResponse, error) {
	ownerID := strings.TrimSpace(req.GetOwnerId())
	if ownerID == "" {
		return nil, common.InvalidArgumentError("owner_id is required")
	}

	stats, err := s.stats.UserStatistics(ctx, ownerID)
	if err != nil {
		s.logger.Error("load user statistics failed", "owner_id", ownerID, "error", err)
		return nil, common.InternalError("load user statistics failed")
	}

	resp := &studyv1.GetUserStatisticsResponse{
		TotalQuizzes:     int32(stats.TotalQuizzes),
		AverageScore:     stats.AverageScore,
		TotalTimeSeconds: int32(stats.TotalTimeSeconds),
		BestScore:        stats.BestScore,
		WorstScore:       stats.WorstScore,
	}
	for _, a := range stats.RecentAttempts {
		resp.RecentAttempts = append(resp.RecentAttempts, utils.ToPBQuizAttempt(a))
	}
	return resp, nil
}

func (s *StudyService) GetQuizStatistics(ctx context.Context, req *studyv1.GetQuizStatisticsRequest) (*studyv1.GetQuizStatisticsResponse, error) {
	quizID, err := uuid.Parse(strings.TrimSpace(req.GetQuizId()))
	if err != nil {
		return nil, common.InvalidArgumentError("quiz_id must be a UUID")
	}

	stats, err := s.stats.QuizStatistics(ctx, quizID)
	if err != nil {
		s.logger.Error("load quiz statistics failed", "quiz_id", quizID, "error", err)
		return nil, common.InternalError("load quiz statistics failed")
	}

	resp := &studyv1.GetQuizStatisticsResponse{
		TotalAttempts: int32(stats.TotalAttempts),
		AverageScore:  stats.AverageScore,
		PassRate:      stats.PassRate,
	}
	for _, q := range stats.DifficultQuestions {
		resp.DifficultQuestions = append(resp.DifficultQuestions, &studyv1.DifficultQuestion{
			QuestionId:   q.QuestionID.String(),
			QuestionText: q.QuestionText,
			ErrorRate:    q.ErrorRate,
		})
	}
	return resp, nil
}
