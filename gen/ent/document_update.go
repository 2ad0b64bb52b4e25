// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"studydeck/gen/ent/chatmessage"
	"studydeck/gen/ent/document"
	"studydeck/gen/ent/flashcard"
	"studydeck/gen/ent/predicate"
	"studydeck/gen/ent/quiz"
	"studydeck/gen/ent/subject"
	"studydeck/gen/ent/summary"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// DocumentUpdate is the builder for updating Document entities.
type DocumentUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentMutation
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdate) Where(ps ...predicate.Document) *DocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *DocumentUpdate) SetSubjectID(v uuid.UUID) *DocumentUpdate {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableSubjectID(v *uuid.UUID) *DocumentUpdate {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *DocumentUpdate) SetFilename(v string) *DocumentUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFilename(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *DocumentUpdate) SetTitle(v string) *DocumentUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableTitle(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *DocumentUpdate) SetFilePath(v string) *DocumentUpdate {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFilePath(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *DocumentUpdate) SetContentHash(v string) *DocumentUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableContentHash(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// ClearContentHash clears the value of the "content_hash" field.
func (_u *DocumentUpdate) ClearContentHash() *DocumentUpdate {
	_u.mutation.ClearContentHash()
	return _u
}

// SetStatus sets the "status" field.
func (_u *DocumentUpdate) SetStatus(v string) *DocumentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableStatus(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExtractedText sets the "extracted_text" field.
func (_u *DocumentUpdate) SetExtractedText(v string) *DocumentUpdate {
	_u.mutation.SetExtractedText(v)
	return _u
}

// SetNillableExtractedText sets the "extracted_text" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableExtractedText(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetExtractedText(*v)
	}
	return _u
}

// ClearExtractedText clears the value of the "extracted_text" field.
func (_u *DocumentUpdate) ClearExtractedText() *DocumentUpdate {
	_u.mutation.ClearExtractedText()
	return _u
}

// SetLowQualityText sets the "low_quality_text" field.
func (_u *DocumentUpdate) SetLowQualityText(v bool) *DocumentUpdate {
	_u.mutation.SetLowQualityText(v)
	return _u
}

// SetNillableLowQualityText sets the "low_quality_text" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableLowQualityText(v *bool) *DocumentUpdate {
	if v != nil {
		_u.SetLowQualityText(*v)
	}
	return _u
}

// SetExtractionMethod sets the "extraction_method" field.
func (_u *DocumentUpdate) SetExtractionMethod(v string) *DocumentUpdate {
	_u.mutation.SetExtractionMethod(v)
	return _u
}

// SetNillableExtractionMethod sets the "extraction_method" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableExtractionMethod(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetExtractionMethod(*v)
	}
	return _u
}

// ClearExtractionMethod clears the value of the "extraction_method" field.
func (_u *DocumentUpdate) ClearExtractionMethod() *DocumentUpdate {
	_u.mutation.ClearExtractionMethod()
	return _u
}

// SetPageCount sets the "page_count" field.
func (_u *DocumentUpdate) SetPageCount(v int) *DocumentUpdate {
	_u.mutation.ResetPageCount()
	_u.mutation.SetPageCount(v)
	return _u
}

// SetNillablePageCount sets the "page_count" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillablePageCount(v *int) *DocumentUpdate {
	if v != nil {
		_u.SetPageCount(*v)
	}
	return _u
}

// AddPageCount adds value to the "page_count" field.
func (_u *DocumentUpdate) AddPageCount(v int) *DocumentUpdate {
	_u.mutation.AddPageCount(v)
	return _u
}

// ClearPageCount clears the value of the "page_count" field.
func (_u *DocumentUpdate) ClearPageCount() *DocumentUpdate {
	_u.mutation.ClearPageCount()
	return _u
}

// SetExtractedPages sets the "extracted_pages" field.
func (_u *DocumentUpdate) SetExtractedPages(v int) *DocumentUpdate {
	_u.mutation.ResetExtractedPages()
	_u.mutation.SetExtractedPages(v)
	return _u
}

// SetNillableExtractedPages sets the "extracted_pages" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableExtractedPages(v *int) *DocumentUpdate {
	if v != nil {
		_u.SetExtractedPages(*v)
	}
	return _u
}

// AddExtractedPages adds value to the "extracted_pages" field.
func (_u *DocumentUpdate) AddExtractedPages(v int) *DocumentUpdate {
	_u.mutation.AddExtractedPages(v)
	return _u
}

// ClearExtractedPages clears the value of the "extracted_pages" field.
func (_u *DocumentUpdate) ClearExtractedPages() *DocumentUpdate {
	_u.mutation.ClearExtractedPages()
	return _u
}

// SetAuthor sets the "author" field.
func (_u *DocumentUpdate) SetAuthor(v string) *DocumentUpdate {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableAuthor(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// ClearAuthor clears the value of the "author" field.
func (_u *DocumentUpdate) ClearAuthor() *DocumentUpdate {
	_u.mutation.ClearAuthor()
	return _u
}

// SetCreator sets the "creator" field.
func (_u *DocumentUpdate) SetCreator(v string) *DocumentUpdate {
	_u.mutation.SetCreator(v)
	return _u
}

// SetNillableCreator sets the "creator" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableCreator(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetCreator(*v)
	}
	return _u
}

// ClearCreator clears the value of the "creator" field.
func (_u *DocumentUpdate) ClearCreator() *DocumentUpdate {
	_u.mutation.ClearCreator()
	return _u
}

// SetProducer sets the "producer" field.
func (_u *DocumentUpdate) SetProducer(v string) *DocumentUpdate {
	_u.mutation.SetProducer(v)
	return _u
}

// SetNillableProducer sets the "producer" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableProducer(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetProducer(*v)
	}
	return _u
}

// ClearProducer clears the value of the "producer" field.
func (_u *DocumentUpdate) ClearProducer() *DocumentUpdate {
	_u.mutation.ClearProducer()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *DocumentUpdate) SetErrorMessage(v string) *DocumentUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableErrorMessage(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *DocumentUpdate) ClearErrorMessage() *DocumentUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *DocumentUpdate) SetUploadedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableUploadedAt(v *time.Time) *DocumentUpdate {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *DocumentUpdate) SetProcessedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableProcessedAt(v *time.Time) *DocumentUpdate {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *DocumentUpdate) ClearProcessedAt() *DocumentUpdate {
	_u.mutation.ClearProcessedAt()
	return _u
}

// SetSubject sets the "subject" edge to the Subject entity.
func (_u *DocumentUpdate) SetSubject(v *Subject) *DocumentUpdate {
	return _u.SetSubjectID(v.ID)
}

// AddSummaryIDs adds the "summaries" edge to the Summary entity by IDs.
func (_u *DocumentUpdate) AddSummaryIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.AddSummaryIDs(ids...)
	return _u
}

// AddSummaries adds the "summaries" edges to the Summary entity.
func (_u *DocumentUpdate) AddSummaries(v ...*Summary) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSummaryIDs(ids...)
}

// AddFlashcardIDs adds the "flashcards" edge to the Flashcard entity by IDs.
func (_u *DocumentUpdate) AddFlashcardIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.AddFlashcardIDs(ids...)
	return _u
}

// AddFlashcards adds the "flashcards" edges to the Flashcard entity.
func (_u *DocumentUpdate) AddFlashcards(v ...*Flashcard) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFlashcardIDs(ids...)
}

// AddQuizIDs adds the "quizzes" edge to the Quiz entity by IDs.
func (_u *DocumentUpdate) AddQuizIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.AddQuizIDs(ids...)
	return _u
}

// AddQuizzes adds the "quizzes" edges to the Quiz entity.
func (_u *DocumentUpdate) AddQuizzes(v ...*Quiz) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQuizIDs(ids...)
}

// AddMessageIDs adds the "messages" edge to the ChatMessage entity by IDs.
func (_u *DocumentUpdate) AddMessageIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the ChatMessage entity.
func (_u *DocumentUpdate) AddMessages(v ...*ChatMessage) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdate) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearSubject clears the "subject" edge to the Subject entity.
func (_u *DocumentUpdate) ClearSubject() *DocumentUpdate {
	_u.mutation.ClearSubject()
	return _u
}

// ClearSummaries clears all "summaries" edges to the Summary entity.
func (_u *DocumentUpdate) ClearSummaries() *DocumentUpdate {
	_u.mutation.ClearSummaries()
	return _u
}

// RemoveSummaryIDs removes the "summaries" edge to Summary entities by IDs.
func (_u *DocumentUpdate) RemoveSummaryIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.RemoveSummaryIDs(ids...)
	return _u
}

// RemoveSummaries removes "summaries" edges to Summary entities.
func (_u *DocumentUpdate) RemoveSummaries(v ...*Summary) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSummaryIDs(ids...)
}

// ClearFlashcards clears all "flashcards" edges to the Flashcard entity.
func (_u *DocumentUpdate) ClearFlashcards() *DocumentUpdate {
	_u.mutation.ClearFlashcards()
	return _u
}

// RemoveFlashcardIDs removes the "flashcards" edge to Flashcard entities by IDs.
func (_u *DocumentUpdate) RemoveFlashcardIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.RemoveFlashcardIDs(ids...)
	return _u
}

// RemoveFlashcards removes "flashcards" edges to Flashcard entities.
func (_u *DocumentUpdate) RemoveFlashcards(v ...*Flashcard) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFlashcardIDs(ids...)
}

// ClearQuizzes clears all "quizzes" edges to the Quiz entity.
func (_u *DocumentUpdate) ClearQuizzes() *DocumentUpdate {
	_u.mutation.ClearQuizzes()
	return _u
}

// RemoveQuizIDs removes the "quizzes" edge to Quiz entities by IDs.
func (_u *DocumentUpdate) RemoveQuizIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.RemoveQuizIDs(ids...)
	return _u
}

// RemoveQuizzes removes "quizzes" edges to Quiz entities.
func (_u *DocumentUpdate) RemoveQuizzes(v ...*Quiz) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQuizIDs(ids...)
}

// ClearMessages clears all "messages" edges to the ChatMessage entity.
func (_u *DocumentUpdate) ClearMessages() *DocumentUpdate {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to ChatMessage entities by IDs.
func (_u *DocumentUpdate) RemoveMessageIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to ChatMessage entities.
func (_u *DocumentUpdate) RemoveMessages(v ...*ChatMessage) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdate) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := document.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Document.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := document.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Document.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FilePath(); ok {
		if err := document.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "Document.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := document.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Document.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExtractionMethod(); ok {
		if err := document.ExtractionMethodValidator(v); err != nil {
			return &ValidationError{Name: "extraction_method", err: fmt.Errorf(`ent: validator failed for field "Document.extraction_method": %w`, err)}
		}
	}
	if _u.mutation.SubjectCleared() && len(_u.mutation.SubjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Document.subject"`)
	}
	return nil
}

func (_u *DocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(document.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(document.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(document.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(document.FieldContentHash, field.TypeString, value)
	}
	if _u.mutation.ContentHashCleared() {
		_spec.ClearField(document.FieldContentHash, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(document.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractedText(); ok {
		_spec.SetField(document.FieldExtractedText, field.TypeString, value)
	}
	if _u.mutation.ExtractedTextCleared() {
		_spec.ClearField(document.FieldExtractedText, field.TypeString)
	}
	if value, ok := _u.mutation.LowQualityText(); ok {
		_spec.SetField(document.FieldLowQualityText, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ExtractionMethod(); ok {
		_spec.SetField(document.FieldExtractionMethod, field.TypeString, value)
	}
	if _u.mutation.ExtractionMethodCleared() {
		_spec.ClearField(document.FieldExtractionMethod, field.TypeString)
	}
	if value, ok := _u.mutation.PageCount(); ok {
		_spec.SetField(document.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageCount(); ok {
		_spec.AddField(document.FieldPageCount, field.TypeInt, value)
	}
	if _u.mutation.PageCountCleared() {
		_spec.ClearField(document.FieldPageCount, field.TypeInt)
	}
	if value, ok := _u.mutation.ExtractedPages(); ok {
		_spec.SetField(document.FieldExtractedPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExtractedPages(); ok {
		_spec.AddField(document.FieldExtractedPages, field.TypeInt, value)
	}
	if _u.mutation.ExtractedPagesCleared() {
		_spec.ClearField(document.FieldExtractedPages, field.TypeInt)
	}
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(document.FieldAuthor, field.TypeString, value)
	}
	if _u.mutation.AuthorCleared() {
		_spec.ClearField(document.FieldAuthor, field.TypeString)
	}
	if value, ok := _u.mutation.Creator(); ok {
		_spec.SetField(document.FieldCreator, field.TypeString, value)
	}
	if _u.mutation.CreatorCleared() {
		_spec.ClearField(document.FieldCreator, field.TypeString)
	}
	if value, ok := _u.mutation.Producer(); ok {
		_spec.SetField(document.FieldProducer, field.TypeString, value)
	}
	if _u.mutation.ProducerCleared() {
		_spec.ClearField(document.FieldProducer, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(document.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(document.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(document.FieldUploadedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(document.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(document.FieldProcessedAt, field.TypeTime)
	}
	if _u.mutation.SubjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.SubjectTable,
			Columns: []string{document.SubjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subject.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.SubjectTable,
			Columns: []string{document.SubjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subject.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SummariesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.SummariesTable,
			Columns: []string{document.SummariesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(summary.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSummariesIDs(); len(nodes) > 0 && !_u.mutation.SummariesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.SummariesTable,
			Columns: []string{document.SummariesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(summary.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SummariesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.SummariesTable,
			Columns: []string{document.SummariesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(summary.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FlashcardsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.FlashcardsTable,
			Columns: []string{document.FlashcardsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(flashcard.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFlashcardsIDs(); len(nodes) > 0 && !_u.mutation.FlashcardsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.FlashcardsTable,
			Columns: []string{document.FlashcardsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(flashcard.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FlashcardsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.FlashcardsTable,
			Columns: []string{document.FlashcardsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(flashcard.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.QuizzesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.QuizzesTable,
			Columns: []string{document.QuizzesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quiz.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQuizzesIDs(); len(nodes) > 0 && !_u.mutation.QuizzesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.QuizzesTable,
			Columns: []string{document.QuizzesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quiz.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuizzesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.QuizzesTable,
			Columns: []string{document.QuizzesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quiz.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.MessagesTable,
			Columns: []string{document.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.MessagesTable,
			Columns: []string{document.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.MessagesTable,
			Columns: []string{document.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentUpdateOne is the builder for updating a single Document entity.
type DocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentMutation
}

// SetSubjectID sets the "subject_id" field.
func (_u *DocumentUpdateOne) SetSubjectID(v uuid.UUID) *DocumentUpdateOne {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableSubjectID(v *uuid.UUID) *DocumentUpdateOne {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *DocumentUpdateOne) SetFilename(v string) *DocumentUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFilename(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *DocumentUpdateOne) SetTitle(v string) *DocumentUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableTitle(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *DocumentUpdateOne) SetFilePath(v string) *DocumentUpdateOne {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFilePath(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *DocumentUpdateOne) SetContentHash(v string) *DocumentUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableContentHash(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// ClearContentHash clears the value of the "content_hash" field.
func (_u *DocumentUpdateOne) ClearContentHash() *DocumentUpdateOne {
	_u.mutation.ClearContentHash()
	return _u
}

// SetStatus sets the "status" field.
func (_u *DocumentUpdateOne) SetStatus(v string) *DocumentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableStatus(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExtractedText sets the "extracted_text" field.
func (_u *DocumentUpdateOne) SetExtractedText(v string) *DocumentUpdateOne {
	_u.mutation.SetExtractedText(v)
	return _u
}

// SetNillableExtractedText sets the "extracted_text" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableExtractedText(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetExtractedText(*v)
	}
	return _u
}

// ClearExtractedText clears the value of the "extracted_text" field.
func (_u *DocumentUpdateOne) ClearExtractedText() *DocumentUpdateOne {
	_u.mutation.ClearExtractedText()
	return _u
}

// SetLowQualityText sets the "low_quality_text" field.
func (_u *DocumentUpdateOne) SetLowQualityText(v bool) *DocumentUpdateOne {
	_u.mutation.SetLowQualityText(v)
	return _u
}

// SetNillableLowQualityText sets the "low_quality_text" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableLowQualityText(v *bool) *DocumentUpdateOne {
	if v != nil {
		_u.SetLowQualityText(*v)
	}
	return _u
}

// SetExtractionMethod sets the "extraction_method" field.
func (_u *DocumentUpdateOne) SetExtractionMethod(v string) *DocumentUpdateOne {
	_u.mutation.SetExtractionMethod(v)
	return _u
}

// SetNillableExtractionMethod sets the "extraction_method" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableExtractionMethod(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetExtractionMethod(*v)
	}
	return _u
}

// ClearExtractionMethod clears the value of the "extraction_method" field.
func (_u *DocumentUpdateOne) ClearExtractionMethod() *DocumentUpdateOne {
	_u.mutation.ClearExtractionMethod()
	return _u
}

// SetPageCount sets the "page_count" field.
func (_u *DocumentUpdateOne) SetPageCount(v int) *DocumentUpdateOne {
	_u.mutation.ResetPageCount()
	_u.mutation.SetPageCount(v)
	return _u
}

// SetNillablePageCount sets the "page_count" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillablePageCount(v *int) *DocumentUpdateOne {
	if v != nil {
		_u.SetPageCount(*v)
	}
	return _u
}

// AddPageCount adds value to the "page_count" field.
func (_u *DocumentUpdateOne) AddPageCount(v int) *DocumentUpdateOne {
	_u.mutation.AddPageCount(v)
	return _u
}

// ClearPageCount clears the value of the "page_count" field.
func (_u *DocumentUpdateOne) ClearPageCount() *DocumentUpdateOne {
	_u.mutation.ClearPageCount()
	return _u
}

// SetExtractedPages sets the "extracted_pages" field.
func (_u *DocumentUpdateOne) SetExtractedPages(v int) *DocumentUpdateOne {
	_u.mutation.ResetExtractedPages()
	_u.mutation.SetExtractedPages(v)
	return _u
}

// SetNillableExtractedPages sets the "extracted_pages" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableExtractedPages(v *int) *DocumentUpdateOne {
	if v != nil {
		_u.SetExtractedPages(*v)
	}
	return _u
}

// AddExtractedPages adds value to the "extracted_pages" field.
func (_u *DocumentUpdateOne) AddExtractedPages(v int) *DocumentUpdateOne {
	_u.mutation.AddExtractedPages(v)
	return _u
}

// ClearExtractedPages clears the value of the "extracted_pages" field.
func (_u *DocumentUpdateOne) ClearExtractedPages() *DocumentUpdateOne {
	_u.mutation.ClearExtractedPages()
	return _u
}

// SetAuthor sets the "author" field.
func (_u *DocumentUpdateOne) SetAuthor(v string) *DocumentUpdateOne {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableAuthor(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// ClearAuthor clears the value of the "author" field.
func (_u *DocumentUpdateOne) ClearAuthor() *DocumentUpdateOne {
	_u.mutation.ClearAuthor()
	return _u
}

// SetCreator sets the "creator" field.
func (_u *DocumentUpdateOne) SetCreator(v string) *DocumentUpdateOne {
	_u.mutation.SetCreator(v)
	return _u
}

// SetNillableCreator sets the "creator" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableCreator(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetCreator(*v)
	}
	return _u
}

// ClearCreator clears the value of the "creator" field.
func (_u *DocumentUpdateOne) ClearCreator() *DocumentUpdateOne {
	_u.mutation.ClearCreator()
	return _u
}

// SetProducer sets the "producer" field.
func (_u *DocumentUpdateOne) SetProducer(v string) *DocumentUpdateOne {
	_u.mutation.SetProducer(v)
	return _u
}

// SetNillableProducer sets the "producer" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableProducer(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetProducer(*v)
	}
	return _u
}

// ClearProducer clears the value of the "producer" field.
func (_u *DocumentUpdateOne) ClearProducer() *DocumentUpdateOne {
	_u.mutation.ClearProducer()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *DocumentUpdateOne) SetErrorMessage(v string) *DocumentUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableErrorMessage(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *DocumentUpdateOne) ClearErrorMessage() *DocumentUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *DocumentUpdateOne) SetUploadedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableUploadedAt(v *time.Time) *DocumentUpdateOne {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *DocumentUpdateOne) SetProcessedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableProcessedAt(v *time.Time) *DocumentUpdateOne {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *DocumentUpdateOne) ClearProcessedAt() *DocumentUpdateOne {
	_u.mutation.ClearProcessedAt()
	return _u
}

// SetSubject sets the "subject" edge to the Subject entity.
func (_u *DocumentUpdateOne) SetSubject(v *Subject) *DocumentUpdateOne {
	return _u.SetSubjectID(v.ID)
}

// AddSummaryIDs adds the "summaries" edge to the Summary entity by IDs.
func (_u *DocumentUpdateOne) AddSummaryIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.AddSummaryIDs(ids...)
	return _u
}

// AddSummaries adds the "summaries" edges to the Summary entity.
func (_u *DocumentUpdateOne) AddSummaries(v ...*Summary) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSummaryIDs(ids...)
}

// AddFlashcardIDs adds the "flashcards" edge to the Flashcard entity by IDs.
func (_u *DocumentUpdateOne) AddFlashcardIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.AddFlashcardIDs(ids...)
	return _u
}

// AddFlashcards adds the "flashcards" edges to the Flashcard entity.
func (_u *DocumentUpdateOne) AddFlashcards(v ...*Flashcard) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFlashcardIDs(ids...)
}

// AddQuizIDs adds the "quizzes" edge to the Quiz entity by IDs.
func (_u *DocumentUpdateOne) AddQuizIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.AddQuizIDs(ids...)
	return _u
}

// AddQuizzes adds the "quizzes" edges to the Quiz entity.
func (_u *DocumentUpdateOne) AddQuizzes(v ...*Quiz) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQuizIDs(ids...)
}

// AddMessageIDs adds the "messages" edge to the ChatMessage entity by IDs.
func (_u *DocumentUpdateOne) AddMessageIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the ChatMessage entity.
func (_u *DocumentUpdateOne) AddMessages(v ...*ChatMessage) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdateOne) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearSubject clears the "subject" edge to the Subject entity.
func (_u *DocumentUpdateOne) ClearSubject() *DocumentUpdateOne {
	_u.mutation.ClearSubject()
	return _u
}

// ClearSummaries clears all "summaries" edges to the Summary entity.
func (_u *DocumentUpdateOne) ClearSummaries() *DocumentUpdateOne {
	_u.mutation.ClearSummaries()
	return _u
}

// RemoveSummaryIDs removes the "summaries" edge to Summary entities by IDs.
func (_u *DocumentUpdateOne) RemoveSummaryIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.RemoveSummaryIDs(ids...)
	return _u
}

// RemoveSummaries removes "summaries" edges to Summary entities.
func (_u *DocumentUpdateOne) RemoveSummaries(v ...*Summary) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSummaryIDs(ids...)
}

// ClearFlashcards clears all "flashcards" edges to the Flashcard entity.
func (_u *DocumentUpdateOne) ClearFlashcards() *DocumentUpdateOne {
	_u.mutation.ClearFlashcards()
	return _u
}

// RemoveFlashcardIDs removes the "flashcards" edge to Flashcard entities by IDs.
func (_u *DocumentUpdateOne) RemoveFlashcardIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.RemoveFlashcardIDs(ids...)
	return _u
}

// RemoveFlashcards removes "flashcards" edges to Flashcard entities.
func (_u *DocumentUpdateOne) RemoveFlashcards(v ...*Flashcard) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFlashcardIDs(ids...)
}

// ClearQuizzes clears all "quizzes" edges to the Quiz entity.
func (_u *DocumentUpdateOne) ClearQuizzes() *DocumentUpdateOne {
	_u.mutation.ClearQuizzes()
	return _u
}

// RemoveQuizIDs removes the "quizzes" edge to Quiz entities by IDs.
func (_u *DocumentUpdateOne) RemoveQuizIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.RemoveQuizIDs(ids...)
	return _u
}

// RemoveQuizzes removes "quizzes" edges to Quiz entities.
func (_u *DocumentUpdateOne) RemoveQuizzes(v ...*Quiz) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQuizIDs(ids...)
}

// ClearMessages clears all "messages" edges to the ChatMessage entity.
func (_u *DocumentUpdateOne) ClearMessages() *DocumentUpdateOne {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to ChatMessage entities by IDs.
func (_u *DocumentUpdateOne) RemoveMessageIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to ChatMessage entities.
func (_u *DocumentUpdateOne) RemoveMessages(v ...*ChatMessage) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdateOne) Where(ps ...predicate.Document) *DocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentUpdateOne) Select(field string, fields ...string) *DocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Document entity.
func (_u *DocumentUpdateOne) Save(ctx context.Context) (*Document, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdateOne) SaveX(ctx context.Context) *Document {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdateOne) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := document.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Document.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := document.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Document.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FilePath(); ok {
		if err := document.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "Document.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := document.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Document.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExtractionMethod(); ok {
		if err := document.ExtractionMethodValidator(v); err != nil {
			return &ValidationError{Name: "extraction_method", err: fmt.Errorf(`ent: validator failed for field "Document.extraction_method": %w`, err)}
		}
	}
	if _u.mutation.SubjectCleared() && len(_u.mutation.SubjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Document.subject"`)
	}
	return nil
}

func (_u *DocumentUpdateOne) sqlSave(ctx context.Context) (_node *Document, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Document.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, document.FieldID)
		for _, f := range fields {
			if !document.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != document.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(document.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(document.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(document.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(document.FieldContentHash, field.TypeString, value)
	}
	if _u.mutation.ContentHashCleared() {
		_spec.ClearField(document.FieldContentHash, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(document.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractedText(); ok {
		_spec.SetField(document.FieldExtractedText, field.TypeString, value)
	}
	if _u.mutation.ExtractedTextCleared() {
		_spec.ClearField(document.FieldExtractedText, field.TypeString)
	}
	if value, ok := _u.mutation.LowQualityText(); ok {
		_spec.SetField(document.FieldLowQualityText, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ExtractionMethod(); ok {
		_spec.SetField(document.FieldExtractionMethod, field.TypeString, value)
	}
	if _u.mutation.ExtractionMethodCleared() {
		_spec.ClearField(document.FieldExtractionMethod, field.TypeString)
	}
	if value, ok := _u.mutation.PageCount(); ok {
		_spec.SetField(document.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageCount(); ok {
		_spec.AddField(document.FieldPageCount, field.TypeInt, value)
	}
	if _u.mutation.PageCountCleared() {
		_spec.ClearField(document.FieldPageCount, field.TypeInt)
	}
	if value, ok := _u.mutation.ExtractedPages(); ok {
		_spec.SetField(document.FieldExtractedPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExtractedPages(); ok {
		_spec.AddField(document.FieldExtractedPages, field.TypeInt, value)
	}
	if _u.mutation.ExtractedPagesCleared() {
		_spec.ClearField(document.FieldExtractedPages, field.TypeInt)
	}
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(document.FieldAuthor, field.TypeString, value)
	}
	if _u.mutation.AuthorCleared() {
		_spec.ClearField(document.FieldAuthor, field.TypeString)
	}
	if value, ok := _u.mutation.Creator(); ok {
		_spec.SetField(document.FieldCreator, field.TypeString, value)
	}
	if _u.mutation.CreatorCleared() {
		_spec.ClearField(document.FieldCreator, field.TypeString)
	}
	if value, ok := _u.mutation.Producer(); ok {
		_spec.SetField(document.FieldProducer, field.TypeString, value)
	}
	if _u.mutation.ProducerCleared() {
		_spec.ClearField(document.FieldProducer, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(document.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(document.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(document.FieldUploadedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(document.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(document.FieldProcessedAt, field.TypeTime)
	}
	if _u.mutation.SubjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.SubjectTable,
			Columns: []string{document.SubjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subject.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.SubjectTable,
			Columns: []string{document.SubjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subject.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SummariesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.SummariesTable,
			Columns: []string{document.SummariesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(summary.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSummariesIDs(); len(nodes) > 0 && !_u.mutation.SummariesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.SummariesTable,
			Columns: []string{document.SummariesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(summary.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SummariesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.SummariesTable,
			Columns: []string{document.SummariesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(summary.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FlashcardsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.FlashcardsTable,
			Columns: []string{document.FlashcardsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(flashcard.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFlashcardsIDs(); len(nodes) > 0 && !_u.mutation.FlashcardsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.FlashcardsTable,
			Columns: []string{document.FlashcardsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(flashcard.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FlashcardsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.FlashcardsTable,
			Columns: []string{document.FlashcardsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(flashcard.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.QuizzesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.QuizzesTable,
			Columns: []string{document.QuizzesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quiz.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQuizzesIDs(); len(nodes) > 0 && !_u.mutation.QuizzesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.QuizzesTable,
			Columns: []string{document.QuizzesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quiz.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuizzesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.QuizzesTable,
			Columns: []string{document.QuizzesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quiz.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.MessagesTable,
			Columns: []string{document.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.MessagesTable,
			Columns: []string{document.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.MessagesTable,
			Columns: []string{document.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Document{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
