package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"studydeck/gen/ent"
	"studydeck/gen/ent/flashcard"
	"studydeck/gen/ent/quiz"
	"studydeck/gen/ent/quizanswer"
	"studydeck/gen/ent/quizattempt"
	"studydeck/gen/ent/quizquestion"
	"studydeck/gen/ent/summary"
	"studydeck/internal/entity"
	"studydeck/internal/studygen"
	"studydeck/internal/utils"
)

type ArtifactRepository interface {
	SaveStudySet(ctx context.Context, documentID uuid.UUID, set *studygen.StudySet) error
	GetStudySet(ctx context.Context, documentID uuid.UUID) (*entity.StudySet, error)
	ListFlashcards(ctx context.Context, documentID uuid.UUID) ([]entity.Flashcard, error)
	GetQuiz(ctx context.Context, documentID uuid.UUID) (*entity.Quiz, error)
}

type artifactRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewArtifactRepository(client *ent.Client, logger *slog.Logger) ArtifactRepository {
	return &artifactRepository{
		client: client,
		logger: logger,
	}
}

// SaveStudySet persists all three artifacts in one transaction, replacing any
// artifacts from an earlier generation run for the same document.
func (r *artifactRepository) SaveStudySet(ctx context.Context, documentID uuid.UUID, set *studygen.StudySet) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := r.saveStudySetTx(ctx, tx, documentID, set); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			r.logger.Error("failed to roll back study set tx", "document_id", documentID, "error", rerr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit study set: %w", err)
	}
	return nil
}

func (r *artifactRepository) saveStudySetTx(ctx context.Context, tx *ent.Tx, documentID uuid.UUID, set *studygen.StudySet) error {
	// clear a previous run, leaves before branches: answers and attempts
	// hang off the quizzes just like the questions do
	if _, err := tx.QuizAnswer.Delete().
		Where(quizanswer.HasAttemptWith(quizattempt.HasQuizWith(quiz.DocumentID(documentID)))).
		Exec(ctx); err != nil {
		return fmt.Errorf("clear quiz answers: %w", err)
	}
	if _, err := tx.QuizAttempt.Delete().
		Where(quizattempt.HasQuizWith(quiz.DocumentID(documentID))).
		Exec(ctx); err != nil {
		return fmt.Errorf("clear quiz attempts: %w", err)
	}
	if _, err := tx.QuizQuestion.Delete().
		Where(quizquestion.HasQuizWith(quiz.DocumentID(documentID))).
		Exec(ctx); err != nil {
		return fmt.Errorf("clear quiz questions: %w", err)
	}
	if _, err := tx.Quiz.Delete().Where(quiz.DocumentID(documentID)).Exec(ctx); err != nil {
		return fmt.Errorf("clear quizzes: %w", err)
	}
	if _, err := tx.Flashcard.Delete().Where(flashcard.DocumentID(documentID)).Exec(ctx); err != nil {
		return fmt.Errorf("clear flashcards: %w", err)
	}
	if _, err := tx.Summary.Delete().Where(summary.DocumentID(documentID)).Exec(ctx); err != nil {
		return fmt.Errorf("clear summaries: %w", err)
	}

	summaryBuilder := tx.Summary.Create().
		SetDocumentID(documentID).
		SetContent(set.Summary).
		SetTotalTokens(set.Meta.Usage.TotalTokens)
	if set.Meta.Model != "" {
		summaryBuilder = summaryBuilder.SetModelName(set.Meta.Model)
	}
	if _, err := summaryBuilder.Save(ctx); err != nil {
		return fmt.Errorf("save summary: %w", err)
	}

	cards := make([]*ent.FlashcardCreate, len(set.Flashcards))
	for i, card := range set.Flashcards {
		cards[i] = tx.Flashcard.Create().
			SetDocumentID(documentID).
			SetSubject(card.Subject).
			SetDefinition(card.Definition).
			SetPosition(i)
	}
	if _, err := tx.Flashcard.CreateBulk(cards...).Save(ctx); err != nil {
		return fmt.Errorf("save flashcards: %w", err)
	}

	title := set.Quiz.Title
	if title == "" {
		title = "Quiz"
	}
	quizBuilder := tx.Quiz.Create().
		SetDocumentID(documentID).
		SetTitle(title)
	if set.Meta.Model != "" {
		quizBuilder = quizBuilder.SetModelName(set.Meta.Model)
	}
	q, err := quizBuilder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save quiz: %w", err)
	}

	questions := make([]*ent.QuizQuestionCreate, len(set.Quiz.Questions))
	for i, question := range set.Quiz.Questions {
		questions[i] = tx.QuizQuestion.Create().
			SetQuizID(q.ID).
			SetQuestionText(question.QuestionText).
			SetOptions(question.Options).
			SetCorrectOption(question.CorrectOption).
			SetPosition(i)
	}
	if _, err := tx.QuizQuestion.CreateBulk(questions...).Save(ctx); err != nil {
		return fmt.Errorf("save quiz questions: %w", err)
	}
	return nil
}

func (r *artifactRepository) GetStudySet(ctx context.Context, documentID uuid.UUID) (*entity.StudySet, error) {
	set := &entity.StudySet{}

	s, err := r.client.Summary.Query().
		Where(summary.DocumentID(documentID)).
		Order(summary.ByCreatedAt()).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		r.logger.Error("failed to load summary", "document_id", documentID, "error", err)
		return nil, err
	}
	if s != nil {
		set.Summary = utils.ToSummary(s)
	}

	set.Flashcards, err = r.ListFlashcards(ctx, documentID)
	if err != nil {
		return nil, err
	}

	set.Quiz, err = r.GetQuiz(ctx, documentID)
	if err != nil {
		return nil, err
	}
	return set, nil
}

func (r *artifactRepository) ListFlashcards(ctx context.Context, documentID uuid.UUID) ([]entity.Flashcard, error) {
	rows, err := r.client.Flashcard.Query().
		Where(flashcard.DocumentID(documentID)).
		Order(flashcard.ByPosition()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list flashcards", "document_id", documentID, "error", err)
		return nil, err
	}
	cards := make([]entity.Flashcard, len(rows))
	for i, row := range rows {
		cards[i] = utils.ToFlashcard(row)
	}
	return cards, nil
}

// GetQuiz returns the document's quiz with questions, or nil when absent.
func (r *artifactRepository) GetQuiz(ctx context.Context, documentID uuid.UUID) (*entity.Quiz, error) {
	q, err := r.client.Quiz.Query().
		Where(quiz.DocumentID(documentID)).
		WithQuestions(func(qq *ent.QuizQuestionQuery) {
			qq.Order(quizquestion.ByPosition())
		}).
		Order(quiz.ByCreatedAt()).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("failed to load quiz", "document_id", documentID, "error", err)
		return nil, err
	}
	return utils.ToQuiz(q), nil
}
