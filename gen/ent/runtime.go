// Code generated by ent, DO NOT EDIT.

package ent

import (
	"studydeck/db/ent/schema"
	"studydeck/gen/ent/chatmessage"
	"studydeck/gen/ent/document"
	"studydeck/gen/ent/flashcard"
	"studydeck/gen/ent/quiz"
	"studydeck/gen/ent/quizanswer"
	"studydeck/gen/ent/quizattempt"
	"studydeck/gen/ent/quizquestion"
	"studydeck/gen/ent/subject"
	"studydeck/gen/ent/summary"
	"time"

	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	chatmessageFields := schema.ChatMessage{}.Fields()
	_ = chatmessageFields
	// chatmessageDescRole is the schema descriptor for role field.
	chatmessageDescRole := chatmessageFields[2].Descriptor()
	// chatmessage.RoleValidator is a validator for the "role" field. It is called by the builders before save.
	chatmessage.RoleValidator = func() func(string) error {
		validators := chatmessageDescRole.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(role string) error {
			for _, fn := range fns {
				if err := fn(role); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// chatmessageDescContent is the schema descriptor for content field.
	chatmessageDescContent := chatmessageFields[3].Descriptor()
	// chatmessage.ContentValidator is a validator for the "content" field. It is called by the builders before save.
	chatmessage.ContentValidator = chatmessageDescContent.Validators[0].(func(string) error)
	// chatmessageDescCreatedAt is the schema descriptor for created_at field.
	chatmessageDescCreatedAt := chatmessageFields[4].Descriptor()
	// chatmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	chatmessage.DefaultCreatedAt = chatmessageDescCreatedAt.Default.(func() time.Time)
	// chatmessageDescID is the schema descriptor for id field.
	chatmessageDescID := chatmessageFields[0].Descriptor()
	// chatmessage.DefaultID holds the default value on creation for the id field.
	chatmessage.DefaultID = chatmessageDescID.Default.(func() uuid.UUID)
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescFilename is the schema descriptor for filename field.
	documentDescFilename := documentFields[2].Descriptor()
	// document.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	document.FilenameValidator = documentDescFilename.Validators[0].(func(string) error)
	// documentDescTitle is the schema descriptor for title field.
	documentDescTitle := documentFields[3].Descriptor()
	// document.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	document.TitleValidator = documentDescTitle.Validators[0].(func(string) error)
	// documentDescFilePath is the schema descriptor for file_path field.
	documentDescFilePath := documentFields[4].Descriptor()
	// document.FilePathValidator is a validator for the "file_path" field. It is called by the builders before save.
	document.FilePathValidator = documentDescFilePath.Validators[0].(func(string) error)
	// documentDescStatus is the schema descriptor for status field.
	documentDescStatus := documentFields[6].Descriptor()
	// document.DefaultStatus holds the default value on creation for the status field.
	document.DefaultStatus = documentDescStatus.Default.(string)
	// document.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	document.StatusValidator = documentDescStatus.Validators[0].(func(string) error)
	// documentDescLowQualityText is the schema descriptor for low_quality_text field.
	documentDescLowQualityText := documentFields[8].Descriptor()
	// document.DefaultLowQualityText holds the default value on creation for the low_quality_text field.
	document.DefaultLowQualityText = documentDescLowQualityText.Default.(bool)
	// documentDescExtractionMethod is the schema descriptor for extraction_method field.
	documentDescExtractionMethod := documentFields[9].Descriptor()
	// document.ExtractionMethodValidator is a validator for the "extraction_method" field. It is called by the builders before save.
	document.ExtractionMethodValidator = documentDescExtractionMethod.Validators[0].(func(string) error)
	// documentDescUploadedAt is the schema descriptor for uploaded_at field.
	documentDescUploadedAt := documentFields[16].Descriptor()
	// document.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	document.DefaultUploadedAt = documentDescUploadedAt.Default.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	flashcardFields := schema.Flashcard{}.Fields()
	_ = flashcardFields
	// flashcardDescSubject is the schema descriptor for subject field.
	flashcardDescSubject := flashcardFields[2].Descriptor()
	// flashcard.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	flashcard.SubjectValidator = flashcardDescSubject.Validators[0].(func(string) error)
	// flashcardDescDefinition is the schema descriptor for definition field.
	flashcardDescDefinition := flashcardFields[3].Descriptor()
	// flashcard.DefinitionValidator is a validator for the "definition" field. It is called by the builders before save.
	flashcard.DefinitionValidator = flashcardDescDefinition.Validators[0].(func(string) error)
	// flashcardDescPosition is the schema descriptor for position field.
	flashcardDescPosition := flashcardFields[4].Descriptor()
	// flashcard.DefaultPosition holds the default value on creation for the position field.
	flashcard.DefaultPosition = flashcardDescPosition.Default.(int)
	// flashcardDescCreatedAt is the schema descriptor for created_at field.
	flashcardDescCreatedAt := flashcardFields[5].Descriptor()
	// flashcard.DefaultCreatedAt holds the default value on creation for the created_at field.
	flashcard.DefaultCreatedAt = flashcardDescCreatedAt.Default.(func() time.Time)
	// flashcardDescID is the schema descriptor for id field.
	flashcardDescID := flashcardFields[0].Descriptor()
	// flashcard.DefaultID holds the default value on creation for the id field.
	flashcard.DefaultID = flashcardDescID.Default.(func() uuid.UUID)
	quizFields := schema.Quiz{}.Fields()
	_ = quizFields
	// quizDescTitle is the schema descriptor for title field.
	quizDescTitle := quizFields[2].Descriptor()
	// quiz.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	quiz.TitleValidator = quizDescTitle.Validators[0].(func(string) error)
	// quizDescCreatedAt is the schema descriptor for created_at field.
	quizDescCreatedAt := quizFields[4].Descriptor()
	// quiz.DefaultCreatedAt holds the default value on creation for the created_at field.
	quiz.DefaultCreatedAt = quizDescCreatedAt.Default.(func() time.Time)
	// quizDescID is the schema descriptor for id field.
	quizDescID := quizFields[0].Descriptor()
	// quiz.DefaultID holds the default value on creation for the id field.
	quiz.DefaultID = quizDescID.Default.(func() uuid.UUID)
	quizanswerFields := schema.QuizAnswer{}.Fields()
	_ = quizanswerFields
	// quizanswerDescSelectedOption is the schema descriptor for selected_option field.
	quizanswerDescSelectedOption := quizanswerFields[3].Descriptor()
	// quizanswer.SelectedOptionValidator is a validator for the "selected_option" field. It is called by the builders before save.
	quizanswer.SelectedOptionValidator = quizanswerDescSelectedOption.Validators[0].(func(string) error)
	// quizanswerDescIsCorrect is the schema descriptor for is_correct field.
	quizanswerDescIsCorrect := quizanswerFields[4].Descriptor()
	// quizanswer.DefaultIsCorrect holds the default value on creation for the is_correct field.
	quizanswer.DefaultIsCorrect = quizanswerDescIsCorrect.Default.(bool)
	// quizanswerDescID is the schema descriptor for id field.
	quizanswerDescID := quizanswerFields[0].Descriptor()
	// quizanswer.DefaultID holds the default value on creation for the id field.
	quizanswer.DefaultID = quizanswerDescID.Default.(func() uuid.UUID)
	quizattemptFields := schema.QuizAttempt{}.Fields()
	_ = quizattemptFields
	// quizattemptDescOwnerID is the schema descriptor for owner_id field.
	quizattemptDescOwnerID := quizattemptFields[2].Descriptor()
	// quizattempt.OwnerIDValidator is a validator for the "owner_id" field. It is called by the builders before save.
	quizattempt.OwnerIDValidator = quizattemptDescOwnerID.Validators[0].(func(string) error)
	// quizattemptDescTotalQuestions is the schema descriptor for total_questions field.
	quizattemptDescTotalQuestions := quizattemptFields[3].Descriptor()
	// quizattempt.DefaultTotalQuestions holds the default value on creation for the total_questions field.
	quizattempt.DefaultTotalQuestions = quizattemptDescTotalQuestions.Default.(int)
	// quizattemptDescCorrectAnswers is the schema descriptor for correct_answers field.
	quizattemptDescCorrectAnswers := quizattemptFields[4].Descriptor()
	// quizattempt.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	quizattempt.DefaultCorrectAnswers = quizattemptDescCorrectAnswers.Default.(int)
	// quizattemptDescScore is the schema descriptor for score field.
	quizattemptDescScore := quizattemptFields[5].Descriptor()
	// quizattempt.DefaultScore holds the default value on creation for the score field.
	quizattempt.DefaultScore = quizattemptDescScore.Default.(float64)
	// quizattemptDescCompletedAt is the schema descriptor for completed_at field.
	quizattemptDescCompletedAt := quizattemptFields[7].Descriptor()
	// quizattempt.DefaultCompletedAt holds the default value on creation for the completed_at field.
	quizattempt.DefaultCompletedAt = quizattemptDescCompletedAt.Default.(func() time.Time)
	// quizattemptDescID is the schema descriptor for id field.
	quizattemptDescID := quizattemptFields[0].Descriptor()
	// quizattempt.DefaultID holds the default value on creation for the id field.
	quizattempt.DefaultID = quizattemptDescID.Default.(func() uuid.UUID)
	quizquestionFields := schema.QuizQuestion{}.Fields()
	_ = quizquestionFields
	// quizquestionDescQuestionText is the schema descriptor for question_text field.
	quizquestionDescQuestionText := quizquestionFields[2].Descriptor()
	// quizquestion.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	quizquestion.QuestionTextValidator = quizquestionDescQuestionText.Validators[0].(func(string) error)
	// quizquestionDescCorrectOption is the schema descriptor for correct_option field.
	quizquestionDescCorrectOption := quizquestionFields[4].Descriptor()
	// quizquestion.CorrectOptionValidator is a validator for the "correct_option" field. It is called by the builders before save.
	quizquestion.CorrectOptionValidator = quizquestionDescCorrectOption.Validators[0].(func(string) error)
	// quizquestionDescPosition is the schema descriptor for position field.
	quizquestionDescPosition := quizquestionFields[5].Descriptor()
	// quizquestion.DefaultPosition holds the default value on creation for the position field.
	quizquestion.DefaultPosition = quizquestionDescPosition.Default.(int)
	// quizquestionDescID is the schema descriptor for id field.
	quizquestionDescID := quizquestionFields[0].Descriptor()
	// quizquestion.DefaultID holds the default value on creation for the id field.
	quizquestion.DefaultID = quizquestionDescID.Default.(func() uuid.UUID)
	subjectFields := schema.Subject{}.Fields()
	_ = subjectFields
	// subjectDescOwnerID is the schema descriptor for owner_id field.
	subjectDescOwnerID := subjectFields[1].Descriptor()
	// subject.OwnerIDValidator is a validator for the "owner_id" field. It is called by the builders before save.
	subject.OwnerIDValidator = subjectDescOwnerID.Validators[0].(func(string) error)
	// subjectDescName is the schema descriptor for name field.
	subjectDescName := subjectFields[2].Descriptor()
	// subject.NameValidator is a validator for the "name" field. It is called by the builders before save.
	subject.NameValidator = subjectDescName.Validators[0].(func(string) error)
	// subjectDescCreatedAt is the schema descriptor for created_at field.
	subjectDescCreatedAt := subjectFields[4].Descriptor()
	// subject.DefaultCreatedAt holds the default value on creation for the created_at field.
	subject.DefaultCreatedAt = subjectDescCreatedAt.Default.(func() time.Time)
	// subjectDescUpdatedAt is the schema descriptor for updated_at field.
	subjectDescUpdatedAt := subjectFields[5].Descriptor()
	// subject.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	subject.DefaultUpdatedAt = subjectDescUpdatedAt.Default.(func() time.Time)
	// subject.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	subject.UpdateDefaultUpdatedAt = subjectDescUpdatedAt.UpdateDefault.(func() time.Time)
	// subjectDescID is the schema descriptor for id field.
	subjectDescID := subjectFields[0].Descriptor()
	// subject.DefaultID holds the default value on creation for the id field.
	subject.DefaultID = subjectDescID.Default.(func() uuid.UUID)
	summaryFields := schema.Summary{}.Fields()
	_ = summaryFields
	// summaryDescContent is the schema descriptor for content field.
	summaryDescContent := summaryFields[2].Descriptor()
	// summary.ContentValidator is a validator for the "content" field. It is called by the builders before save.
	summary.ContentValidator = summaryDescContent.Validators[0].(func(string) error)
	// summaryDescCreatedAt is the schema descriptor for created_at field.
	summaryDescCreatedAt := summaryFields[5].Descriptor()
	// summary.DefaultCreatedAt holds the default value on creation for the created_at field.
	summary.DefaultCreatedAt = summaryDescCreatedAt.Default.(func() time.Time)
	// summaryDescID is the schema descriptor for id field.
	summaryDescID := summaryFields[0].Descriptor()
	// summary.DefaultID holds the default value on creation for the id field.
	summary.DefaultID = summaryDescID.Default.(func() uuid.UUID)
}
