package utils

import (
	"time"

	"studydeck/constants"
	"studydeck/gen/ent"
	studyv1 "studydeck/gen/studydeck/v1"
	"studydeck/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func intOrZero(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func ToSubject(e *ent.Subject) *entity.Subject {
	return &entity.Subject{
		ID:          e.ID,
		OwnerID:     e.OwnerID,
		Name:        e.Name,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToDocument(e *ent.Document) *entity.Document {
	return &entity.Document{
		ID:               e.ID,
		SubjectID:        e.SubjectID,
		Filename:         e.Filename,
		Title:            e.Title,
		FilePath:         e.FilePath,
		Status:           constants.DocStatus(e.Status),
		ExtractedText:    e.ExtractedText,
		LowQualityText:   e.LowQualityText,
		ExtractionMethod: e.ExtractionMethod,
		PageCount:        e.PageCount,
		ExtractedPages:   e.ExtractedPages,
		Author:           e.Author,
		Creator:          e.Creator,
		Producer:         e.Producer,
		ErrorMessage:     e.ErrorMessage,
		UploadedAt:       e.UploadedAt,
		ProcessedAt:      e.ProcessedAt,
	}
}

func ToSummary(e *ent.Summary) *entity.Summary {
	return &entity.Summary{
		ID:          e.ID,
		DocumentID:  e.DocumentID,
		Content:     e.Content,
		ModelName:   e.ModelName,
		TotalTokens: e.TotalTokens,
		CreatedAt:   e.CreatedAt,
	}
}

func ToFlashcard(e *ent.Flashcard) entity.Flashcard {
	return entity.Flashcard{
		ID:         e.ID,
		DocumentID: e.DocumentID,
		Subject:    e.Subject,
		Definition: e.Definition,
		Position:   e.Position,
		CreatedAt:  e.CreatedAt,
	}
}

// ToQuiz converts a quiz row; questions must be loaded on the edge.
func ToQuiz(e *ent.Quiz) *entity.Quiz {
	q := &entity.Quiz{
		ID:         e.ID,
		DocumentID: e.DocumentID,
		Title:      e.Title,
		ModelName:  e.ModelName,
		CreatedAt:  e.CreatedAt,
	}
	for _, question := range e.Edges.Questions {
		q.Questions = append(q.Questions, ToQuizQuestion(question))
	}
	return q
}

func ToQuizQuestion(e *ent.QuizQuestion) entity.QuizQuestion {
	return entity.QuizQuestion{
		ID:            e.ID,
		QuizID:        e.QuizID,
		QuestionText:  e.QuestionText,
		Options:       e.Options,
		CorrectOption: e.CorrectOption,
		Position:      e.Position,
	}
}

func ToPBSubject(s *ent.Subject) *studyv1.Subject {
	return &studyv1.Subject{
		Id:          s.ID.String(),
		OwnerId:     s.OwnerID,
		Name:        s.Name,
		Description: strOrEmpty(s.Description),
		CreatedAt:   s.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   s.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBDocument(d *ent.Document) *studyv1.Document {
	pb := &studyv1.Document{
		Id:               d.ID.String(),
		SubjectId:        d.SubjectID.String(),
		Filename:         d.Filename,
		Title:            d.Title,
		Status:           d.Status,
		LowQualityText:   d.LowQualityText,
		ExtractionMethod: strOrEmpty(d.ExtractionMethod),
		PageCount:        int32(intOrZero(d.PageCount)),
		ExtractedPages:   int32(intOrZero(d.ExtractedPages)),
		Author:           strOrEmpty(d.Author),
		ErrorMessage:     strOrEmpty(d.ErrorMessage),
		UploadedAt:       d.UploadedAt.UTC().Format(time.RFC3339),
	}
	if d.ProcessedAt != nil {
		pb.ProcessedAt = d.ProcessedAt.UTC().Format(time.RFC3339)
	}
	return pb
}

func ToPBSummary(s *entity.Summary) *studyv1.Summary {
	return &studyv1.Summary{
		Id:          s.ID.String(),
		DocumentId:  s.DocumentID.String(),
		Content:     s.Content,
		ModelName:   strOrEmpty(s.ModelName),
		TotalTokens: int32(intOrZero(s.TotalTokens)),
		CreatedAt:   s.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBFlashcard(c entity.Flashcard) *studyv1.Flashcard {
	return &studyv1.Flashcard{
		Id:         c.ID.String(),
		DocumentId: c.DocumentID.String(),
		Subject:    c.Subject,
		Definition: c.Definition,
		Position:   int32(c.Position),
	}
}

func ToPBQuiz(q *entity.Quiz) *studyv1.Quiz {
	pb := &studyv1.Quiz{
		Id:         q.ID.String(),
		DocumentId: q.DocumentID.String(),
		Title:      q.Title,
	}
	for _, question := range q.Questions {
		pb.Questions = append(pb.Questions, &studyv1.QuizQuestion{
			Id:            question.ID.String(),
			QuestionText:  question.QuestionText,
			Options:       question.Options,
			CorrectOption: question.CorrectOption,
			Position:      int32(question.Position),
		})
	}
	return pb
}

func ToPBChatMessage(m entity.ChatMessage) *studyv1.ChatMessage {
	return &studyv1.ChatMessage{
		Id:         m.ID.String(),
		DocumentId: m.DocumentID.String(),
		Role:       string(m.Role),
		Content:    m.Content,
		CreatedAt:  m.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func ToQuizAttempt(e *ent.QuizAttempt) entity.QuizAttempt {
	return entity.QuizAttempt{
		ID:               e.ID,
		QuizID:           e.QuizID,
		OwnerID:          e.OwnerID,
		TotalQuestions:   e.TotalQuestions,
		CorrectAnswers:   e.CorrectAnswers,
		Score:            e.Score,
		TimeTakenSeconds: e.TimeTakenSeconds,
		CompletedAt:      e.CompletedAt,
	}
}

func ToQuizAnswer(e *ent.QuizAnswer) entity.QuizAnswer {
	return entity.QuizAnswer{
		ID:             e.ID,
		AttemptID:      e.AttemptID,
		QuestionID:     e.QuestionID,
		SelectedOption: e.SelectedOption,
		IsCorrect:      e.IsCorrect,
	}
}

func ToPBQuizAttempt(a entity.QuizAttempt) *studyv1.QuizAttempt {
	return &studyv1.QuizAttempt{
		Id:               a.ID.String(),
		QuizId:           a.QuizID.String(),
		OwnerId:          a.OwnerID,
		TotalQuestions:   int32(a.TotalQuestions),
		CorrectAnswers:   int32(a.CorrectAnswers),
		Score:            a.Score,
		TimeTakenSeconds: int32(intOrZero(a.TimeTakenSeconds)),
		CompletedAt:      a.CompletedAt.UTC().Format(time.RFC3339),
	}
}

func ToChatMessage(e *ent.ChatMessage) entity.ChatMessage {
	return entity.ChatMessage{
		ID:         e.ID,
		DocumentID: e.DocumentID,
		Role:       constants.ChatRole(e.Role),
		Content:    e.Content,
		CreatedAt:  e.CreatedAt,
	}
}
