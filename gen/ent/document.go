// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"studydeck/gen/ent/document"
	"studydeck/gen/ent/subject"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// Document is the model entity for the Document schema.
type Document struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// SubjectID holds the value of the "subject_id" field.
	SubjectID uuid.UUID `json:"subject_id,omitempty"`
	// Filename holds the value of the "filename" field.
	Filename string `json:"filename,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// FilePath holds the value of the "file_path" field.
	FilePath string `json:"file_path,omitempty"`
	// ContentHash holds the value of the "content_hash" field.
	ContentHash string `json:"content_hash,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// ExtractedText holds the value of the "extracted_text" field.
	ExtractedText string `json:"extracted_text,omitempty"`
	// LowQualityText holds the value of the "low_quality_text" field.
	LowQualityText bool `json:"low_quality_text,omitempty"`
	// ExtractionMethod holds the value of the "extraction_method" field.
	ExtractionMethod *string `json:"extraction_method,omitempty"`
	// PageCount holds the value of the "page_count" field.
	PageCount *int `json:"page_count,omitempty"`
	// ExtractedPages holds the value of the "extracted_pages" field.
	ExtractedPages *int `json:"extracted_pages,omitempty"`
	// Author holds the value of the "author" field.
	Author *string `json:"author,omitempty"`
	// Creator holds the value of the "creator" field.
	Creator *string `json:"creator,omitempty"`
	// Producer holds the value of the "producer" field.
	Producer *string `json:"producer,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// UploadedAt holds the value of the "uploaded_at" field.
	UploadedAt time.Time `json:"uploaded_at,omitempty"`
	// ProcessedAt holds the value of the "processed_at" field.
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DocumentQuery when eager-loading is set.
	Edges        DocumentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DocumentEdges holds the relations/edges for other nodes in the graph.
type DocumentEdges struct {
	// Subject holds the value of the subject edge.
	Subject *Subject `json:"subject,omitempty"`
	// Summaries holds the value of the summaries edge.
	Summaries []*Summary `json:"summaries,omitempty"`
	// Flashcards holds the value of the flashcards edge.
	Flashcards []*Flashcard `json:"flashcards,omitempty"`
	// Quizzes holds the value of the quizzes edge.
	Quizzes []*Quiz `json:"quizzes,omitempty"`
	// Messages holds the value of the messages edge.
	Messages []*ChatMessage `json:"messages,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// SubjectOrErr returns the Subject value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DocumentEdges) SubjectOrErr() (*Subject, error) {
	if e.Subject != nil {
		return e.Subject, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: subject.Label}
	}
	return nil, &NotLoadedError{edge: "subject"}
}

// SummariesOrErr returns the Summaries value or an error if the edge
// was not loaded in eager-loading.
func (e DocumentEdges) SummariesOrErr() ([]*Summary, error) {
	if e.loadedTypes[1] {
		return e.Summaries, nil
	}
	return nil, &NotLoadedError{edge: "summaries"}
}

// FlashcardsOrErr returns the Flashcards value or an error if the edge
// was not loaded in eager-loading.
func (e DocumentEdges) FlashcardsOrErr() ([]*Flashcard, error) {
	if e.loadedTypes[2] {
		return e.Flashcards, nil
	}
	return nil, &NotLoadedError{edge: "flashcards"}
}

// QuizzesOrErr returns the Quizzes value or an error if the edge
// was not loaded in eager-loading.
func (e DocumentEdges) QuizzesOrErr() ([]*Quiz, error) {
	if e.loadedTypes[3] {
		return e.Quizzes, nil
	}
	return nil, &NotLoadedError{edge: "quizzes"}
}

// MessagesOrErr returns the Messages value or an error if the edge
// was not loaded in eager-loading.
func (e DocumentEdges) MessagesOrErr() ([]*ChatMessage, error) {
	if e.loadedTypes[4] {
		return e.Messages, nil
	}
	return nil, &NotLoadedError{edge: "messages"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Document) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case document.FieldLowQualityText:
			values[i] = new(sql.NullBool)
		case document.FieldPageCount, document.FieldExtractedPages:
			values[i] = new(sql.NullInt64)
		case document.FieldFilename, document.FieldTitle, document.FieldFilePath, document.FieldContentHash, document.FieldStatus, document.FieldExtractedText, document.FieldExtractionMethod, document.FieldAuthor, document.FieldCreator, document.FieldProducer, document.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case document.FieldUploadedAt, document.FieldProcessedAt:
			values[i] = new(sql.NullTime)
		case document.FieldID, document.FieldSubjectID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Document fields.
func (_m *Document) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case document.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case document.FieldSubjectID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field subject_id", values[i])
			} else if value != nil {
				_m.SubjectID = *value
			}
		case document.FieldFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filename", values[i])
			} else if value.Valid {
				_m.Filename = value.String
			}
		case document.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case document.FieldFilePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_path", values[i])
			} else if value.Valid {
				_m.FilePath = value.String
			}
		case document.FieldContentHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_hash", values[i])
			} else if value.Valid {
				_m.ContentHash = value.String
			}
		case document.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case document.FieldExtractedText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_text", values[i])
			} else if value.Valid {
				_m.ExtractedText = value.String
			}
		case document.FieldLowQualityText:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field low_quality_text", values[i])
			} else if value.Valid {
				_m.LowQualityText = value.Bool
			}
		case document.FieldExtractionMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extraction_method", values[i])
			} else if value.Valid {
				_m.ExtractionMethod = new(string)
				*_m.ExtractionMethod = value.String
			}
		case document.FieldPageCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field page_count", values[i])
			} else if value.Valid {
				_m.PageCount = new(int)
				*_m.PageCount = int(value.Int64)
			}
		case document.FieldExtractedPages:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_pages", values[i])
			} else if value.Valid {
				_m.ExtractedPages = new(int)
				*_m.ExtractedPages = int(value.Int64)
			}
		case document.FieldAuthor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field author", values[i])
			} else if value.Valid {
				_m.Author = new(string)
				*_m.Author = value.String
			}
		case document.FieldCreator:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field creator", values[i])
			} else if value.Valid {
				_m.Creator = new(string)
				*_m.Creator = value.String
			}
		case document.FieldProducer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field producer", values[i])
			} else if value.Valid {
				_m.Producer = new(string)
				*_m.Producer = value.String
			}
		case document.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case document.FieldUploadedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field uploaded_at", values[i])
			} else if value.Valid {
				_m.UploadedAt = value.Time
			}
		case document.FieldProcessedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field processed_at", values[i])
			} else if value.Valid {
				_m.ProcessedAt = new(time.Time)
				*_m.ProcessedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Document.
// This includes values selected through modifiers, order, etc.
func (_m *Document) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySubject queries the "subject" edge of the Document entity.
func (_m *Document) QuerySubject() *SubjectQuery {
	return NewDocumentClient(_m.config).QuerySubject(_m)
}

// QuerySummaries queries the "summaries" edge of the Document entity.
func (_m *Document) QuerySummaries() *SummaryQuery {
	return NewDocumentClient(_m.config).QuerySummaries(_m)
}

// QueryFlashcards queries the "flashcards" edge of the Document entity.
func (_m *Document) QueryFlashcards() *FlashcardQuery {
	return NewDocumentClient(_m.config).QueryFlashcards(_m)
}

// QueryQuizzes queries the "quizzes" edge of the Document entity.
func (_m *Document) QueryQuizzes() *QuizQuery {
	return NewDocumentClient(_m.config).QueryQuizzes(_m)
}

// QueryMessages queries the "messages" edge of the Document entity.
func (_m *Document) QueryMessages() *ChatMessageQuery {
	return NewDocumentClient(_m.config).QueryMessages(_m)
}

// Update returns a builder for updating this Document.
// Note that you need to call Document.Unwrap() before calling this method if this Document
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Document) Update() *DocumentUpdateOne {
	return NewDocumentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Document entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Document) Unwrap() *Document {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Document is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Document) String() string {
	var builder strings.Builder
	builder.WriteString("Document(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("subject_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SubjectID))
	builder.WriteString(", ")
	builder.WriteString("filename=")
	builder.WriteString(_m.Filename)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("file_path=")
	builder.WriteString(_m.FilePath)
	builder.WriteString(", ")
	builder.WriteString("content_hash=")
	builder.WriteString(_m.ContentHash)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("extracted_text=")
	builder.WriteString(_m.ExtractedText)
	builder.WriteString(", ")
	builder.WriteString("low_quality_text=")
	builder.WriteString(fmt.Sprintf("%v", _m.LowQualityText))
	builder.WriteString(", ")
	if v := _m.ExtractionMethod; v != nil {
		builder.WriteString("extraction_method=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PageCount; v != nil {
		builder.WriteString("page_count=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ExtractedPages; v != nil {
		builder.WriteString("extracted_pages=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Author; v != nil {
		builder.WriteString("author=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Creator; v != nil {
		builder.WriteString("creator=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Producer; v != nil {
		builder.WriteString("producer=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("uploaded_at=")
	builder.WriteString(_m.UploadedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ProcessedAt; v != nil {
		builder.WriteString("processed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Documents is a parsable slice of Document.
type Documents []*Document
