// Code generated by ent, DO NOT EDIT.

package document

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the document type in the database.
	Label = "document"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSubjectID holds the string denoting the subject_id field in the database.
	FieldSubjectID = "subject_id"
	// FieldFilename holds the string denoting the filename field in the database.
	FieldFilename = "filename"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldFilePath holds the string denoting the file_path field in the database.
	FieldFilePath = "file_path"
	// FieldContentHash holds the string denoting the content_hash field in the database.
	FieldContentHash = "content_hash"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldExtractedText holds the string denoting the extracted_text field in the database.
	FieldExtractedText = "extracted_text"
	// FieldLowQualityText holds the string denoting the low_quality_text field in the database.
	FieldLowQualityText = "low_quality_text"
	// FieldExtractionMethod holds the string denoting the extraction_method field in the database.
	FieldExtractionMethod = "extraction_method"
	// FieldPageCount holds the string denoting the page_count field in the database.
	FieldPageCount = "page_count"
	// FieldExtractedPages holds the string denoting the extracted_pages field in the database.
	FieldExtractedPages = "extracted_pages"
	// FieldAuthor holds the string denoting the author field in the database.
	FieldAuthor = "author"
	// FieldCreator holds the string denoting the creator field in the database.
	FieldCreator = "creator"
	// FieldProducer holds the string denoting the producer field in the database.
	FieldProducer = "producer"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldUploadedAt holds the string denoting the uploaded_at field in the database.
	FieldUploadedAt = "uploaded_at"
	// FieldProcessedAt holds the string denoting the processed_at field in the database.
	FieldProcessedAt = "processed_at"
	// EdgeSubject holds the string denoting the subject edge name in mutations.
	EdgeSubject = "subject"
	// EdgeSummaries holds the string denoting the summaries edge name in mutations.
	EdgeSummaries = "summaries"
	// EdgeFlashcards holds the string denoting the flashcards edge name in mutations.
	EdgeFlashcards = "flashcards"
	// EdgeQuizzes holds the string denoting the quizzes edge name in mutations.
	EdgeQuizzes = "quizzes"
	// EdgeMessages holds the string denoting the messages edge name in mutations.
	EdgeMessages = "messages"
	// Table holds the table name of the document in the database.
	Table = "documents"
	// SubjectTable is the table that holds the subject relation/edge.
	SubjectTable = "documents"
	// SubjectInverseTable is the table name for the Subject entity.
	// It exists in this package in order to avoid circular dependency with the "subject" package.
	SubjectInverseTable = "subjects"
	// SubjectColumn is the table column denoting the subject relation/edge.
	SubjectColumn = "subject_id"
	// SummariesTable is the table that holds the summaries relation/edge.
	SummariesTable = "summaries"
	// SummariesInverseTable is the table name for the Summary entity.
	// It exists in this package in order to avoid circular dependency with the "summary" package.
	SummariesInverseTable = "summaries"
	// SummariesColumn is the table column denoting the summaries relation/edge.
	SummariesColumn = "document_id"
	// FlashcardsTable is the table that holds the flashcards relation/edge.
	FlashcardsTable = "flashcards"
	// FlashcardsInverseTable is the table name for the Flashcard entity.
	// It exists in this package in order to avoid circular dependency with the "flashcard" package.
	FlashcardsInverseTable = "flashcards"
	// FlashcardsColumn is the table column denoting the flashcards relation/edge.
	FlashcardsColumn = "document_id"
	// QuizzesTable is the table that holds the quizzes relation/edge.
	QuizzesTable = "quizzes"
	// QuizzesInverseTable is the table name for the Quiz entity.
	// It exists in this package in order to avoid circular dependency with the "quiz" package.
	QuizzesInverseTable = "quizzes"
	// QuizzesColumn is the table column denoting the quizzes relation/edge.
	QuizzesColumn = "document_id"
	// MessagesTable is the table that holds the messages relation/edge.
	MessagesTable = "chat_messages"
	// MessagesInverseTable is the table name for the ChatMessage entity.
	// It exists in this package in order to avoid circular dependency with the "chatmessage" package.
	MessagesInverseTable = "chat_messages"
	// MessagesColumn is the table column denoting the messages relation/edge.
	MessagesColumn = "document_id"
)

// Columns holds all SQL columns for document fields.
var Columns = []string{
	FieldID,
	FieldSubjectID,
	FieldFilename,
	FieldTitle,
	FieldFilePath,
	FieldContentHash,
	FieldStatus,
	FieldExtractedText,
	FieldLowQualityText,
	FieldExtractionMethod,
	FieldPageCount,
	FieldExtractedPages,
	FieldAuthor,
	FieldCreator,
	FieldProducer,
	FieldErrorMessage,
	FieldUploadedAt,
	FieldProcessedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	FilenameValidator func(string) error
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// FilePathValidator is a validator for the "file_path" field. It is called by the builders before save.
	FilePathValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultLowQualityText holds the default value on creation for the "low_quality_text" field.
	DefaultLowQualityText bool
	// ExtractionMethodValidator is a validator for the "extraction_method" field. It is called by the builders before save.
	ExtractionMethodValidator func(string) error
	// DefaultUploadedAt holds the default value on creation for the "uploaded_at" field.
	DefaultUploadedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Document queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySubjectID orders the results by the subject_id field.
func BySubjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubjectID, opts...).ToFunc()
}

// ByFilename orders the results by the filename field.
func ByFilename(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilename, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByFilePath orders the results by the file_path field.
func ByFilePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilePath, opts...).ToFunc()
}

// ByContentHash orders the results by the content_hash field.
func ByContentHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentHash, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByExtractedText orders the results by the extracted_text field.
func ByExtractedText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractedText, opts...).ToFunc()
}

// ByLowQualityText orders the results by the low_quality_text field.
func ByLowQualityText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLowQualityText, opts...).ToFunc()
}

// ByExtractionMethod orders the results by the extraction_method field.
func ByExtractionMethod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractionMethod, opts...).ToFunc()
}

// ByPageCount orders the results by the page_count field.
func ByPageCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPageCount, opts...).ToFunc()
}

// ByExtractedPages orders the results by the extracted_pages field.
func ByExtractedPages(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractedPages, opts...).ToFunc()
}

// ByAuthor orders the results by the author field.
func ByAuthor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuthor, opts...).ToFunc()
}

// ByCreator orders the results by the creator field.
func ByCreator(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreator, opts...).ToFunc()
}

// ByProducer orders the results by the producer field.
func ByProducer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProducer, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByUploadedAt orders the results by the uploaded_at field.
func ByUploadedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUploadedAt, opts...).ToFunc()
}

// ByProcessedAt orders the results by the processed_at field.
func ByProcessedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessedAt, opts...).ToFunc()
}

// BySubjectField orders the results by subject field.
func BySubjectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSubjectStep(), sql.OrderByField(field, opts...))
	}
}

// BySummariesCount orders the results by summaries count.
func BySummariesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSummariesStep(), opts...)
	}
}

// BySummaries orders the results by summaries terms.
func BySummaries(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSummariesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByFlashcardsCount orders the results by flashcards count.
func ByFlashcardsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newFlashcardsStep(), opts...)
	}
}

// ByFlashcards orders the results by flashcards terms.
func ByFlashcards(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFlashcardsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByQuizzesCount orders the results by quizzes count.
func ByQuizzesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newQuizzesStep(), opts...)
	}
}

// ByQuizzes orders the results by quizzes terms.
func ByQuizzes(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newQuizzesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByMessagesCount orders the results by messages count.
func ByMessagesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMessagesStep(), opts...)
	}
}

// ByMessages orders the results by messages terms.
func ByMessages(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMessagesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSubjectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SubjectInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SubjectTable, SubjectColumn),
	)
}
func newSummariesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SummariesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SummariesTable, SummariesColumn),
	)
}
func newFlashcardsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FlashcardsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, FlashcardsTable, FlashcardsColumn),
	)
}
func newQuizzesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(QuizzesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, QuizzesTable, QuizzesColumn),
	)
}
func newMessagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MessagesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
	)
}
