// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ChatMessagesColumns holds the columns for the "chat_messages" table.
	ChatMessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "role", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// ChatMessagesTable holds the schema information for the "chat_messages" table.
	ChatMessagesTable = &schema.Table{
		Name:       "chat_messages",
		Columns:    ChatMessagesColumns,
		PrimaryKey: []*schema.Column{ChatMessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "chat_messages_documents_messages",
				Columns:    []*schema.Column{ChatMessagesColumns[4]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "chatmessage_document_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ChatMessagesColumns[4], ChatMessagesColumns[3]},
			},
		},
	}
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "file_path", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "QUEUED"},
		{Name: "extracted_text", Type: field.TypeString, Nullable: true, Size: 2147483647, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "low_quality_text", Type: field.TypeBool, Default: false},
		{Name: "extraction_method", Type: field.TypeString, Nullable: true},
		{Name: "page_count", Type: field.TypeInt, Nullable: true},
		{Name: "extracted_pages", Type: field.TypeInt, Nullable: true},
		{Name: "author", Type: field.TypeString, Nullable: true},
		{Name: "creator", Type: field.TypeString, Nullable: true},
		{Name: "producer", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "processed_at", Type: field.TypeTime, Nullable: true},
		{Name: "subject_id", Type: field.TypeUUID},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "documents_subjects_documents",
				Columns:    []*schema.Column{DocumentsColumns[17]},
				RefColumns: []*schema.Column{SubjectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "document_subject_id_status_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[17], DocumentsColumns[5], DocumentsColumns[15]},
			},
			{
				Name:    "document_subject_id_content_hash",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[17], DocumentsColumns[4]},
			},
		},
	}
	// FlashcardsColumns holds the columns for the "flashcards" table.
	FlashcardsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "subject", Type: field.TypeString},
		{Name: "definition", Type: field.TypeString, Size: 2147483647, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "position", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// FlashcardsTable holds the schema information for the "flashcards" table.
	FlashcardsTable = &schema.Table{
		Name:       "flashcards",
		Columns:    FlashcardsColumns,
		PrimaryKey: []*schema.Column{FlashcardsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "flashcards_documents_flashcards",
				Columns:    []*schema.Column{FlashcardsColumns[5]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "flashcard_document_id_position",
				Unique:  false,
				Columns: []*schema.Column{FlashcardsColumns[5], FlashcardsColumns[3]},
			},
		},
	}
	// QuizzesColumns holds the columns for the "quizzes" table.
	QuizzesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString},
		{Name: "model_name", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// QuizzesTable holds the schema information for the "quizzes" table.
	QuizzesTable = &schema.Table{
		Name:       "quizzes",
		Columns:    QuizzesColumns,
		PrimaryKey: []*schema.Column{QuizzesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "quizzes_documents_quizzes",
				Columns:    []*schema.Column{QuizzesColumns[4]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "quiz_document_id",
				Unique:  false,
				Columns: []*schema.Column{QuizzesColumns[4]},
			},
		},
	}
	// QuizAnswersColumns holds the columns for the "quiz_answers" table.
	QuizAnswersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "selected_option", Type: field.TypeString},
		{Name: "is_correct", Type: field.TypeBool, Default: false},
		{Name: "attempt_id", Type: field.TypeUUID},
		{Name: "question_id", Type: field.TypeUUID},
	}
	// QuizAnswersTable holds the schema information for the "quiz_answers" table.
	QuizAnswersTable = &schema.Table{
		Name:       "quiz_answers",
		Columns:    QuizAnswersColumns,
		PrimaryKey: []*schema.Column{QuizAnswersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "quiz_answers_quiz_attempts_answers",
				Columns:    []*schema.Column{QuizAnswersColumns[3]},
				RefColumns: []*schema.Column{QuizAttemptsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "quiz_answers_quiz_questions_answers",
				Columns:    []*schema.Column{QuizAnswersColumns[4]},
				RefColumns: []*schema.Column{QuizQuestionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "quizanswer_attempt_id",
				Unique:  false,
				Columns: []*schema.Column{QuizAnswersColumns[3]},
			},
			{
				Name:    "quizanswer_question_id",
				Unique:  false,
				Columns: []*schema.Column{QuizAnswersColumns[4]},
			},
		},
	}
	// QuizAttemptsColumns holds the columns for the "quiz_attempts" table.
	QuizAttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "total_questions", Type: field.TypeInt, Default: 0},
		{Name: "correct_answers", Type: field.TypeInt, Default: 0},
		{Name: "score", Type: field.TypeFloat64, Default: 0},
		{Name: "time_taken_seconds", Type: field.TypeInt, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime},
		{Name: "quiz_id", Type: field.TypeUUID},
	}
	// QuizAttemptsTable holds the schema information for the "quiz_attempts" table.
	QuizAttemptsTable = &schema.Table{
		Name:       "quiz_attempts",
		Columns:    QuizAttemptsColumns,
		PrimaryKey: []*schema.Column{QuizAttemptsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "quiz_attempts_quizzes_attempts",
				Columns:    []*schema.Column{QuizAttemptsColumns[7]},
				RefColumns: []*schema.Column{QuizzesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "quizattempt_owner_id_completed_at",
				Unique:  false,
				Columns: []*schema.Column{QuizAttemptsColumns[1], QuizAttemptsColumns[6]},
			},
			{
				Name:    "quizattempt_quiz_id",
				Unique:  false,
				Columns: []*schema.Column{QuizAttemptsColumns[7]},
			},
		},
	}
	// QuizQuestionsColumns holds the columns for the "quiz_questions" table.
	QuizQuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "question_text", Type: field.TypeString, Size: 2147483647, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "options", Type: field.TypeJSON},
		{Name: "correct_option", Type: field.TypeString},
		{Name: "position", Type: field.TypeInt, Default: 0},
		{Name: "quiz_id", Type: field.TypeUUID},
	}
	// QuizQuestionsTable holds the schema information for the "quiz_questions" table.
	QuizQuestionsTable = &schema.Table{
		Name:       "quiz_questions",
		Columns:    QuizQuestionsColumns,
		PrimaryKey: []*schema.Column{QuizQuestionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "quiz_questions_quizzes_questions",
				Columns:    []*schema.Column{QuizQuestionsColumns[5]},
				RefColumns: []*schema.Column{QuizzesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "quizquestion_quiz_id_position",
				Unique:  false,
				Columns: []*schema.Column{QuizQuestionsColumns[5], QuizQuestionsColumns[4]},
			},
		},
	}
	// SubjectsColumns holds the columns for the "subjects" table.
	SubjectsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SubjectsTable holds the schema information for the "subjects" table.
	SubjectsTable = &schema.Table{
		Name:       "subjects",
		Columns:    SubjectsColumns,
		PrimaryKey: []*schema.Column{SubjectsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "subject_owner_id",
				Unique:  false,
				Columns: []*schema.Column{SubjectsColumns[1]},
			},
			{
				Name:    "subject_owner_id_name",
				Unique:  true,
				Columns: []*schema.Column{SubjectsColumns[1], SubjectsColumns[2]},
			},
		},
	}
	// SummariesColumns holds the columns for the "summaries" table.
	SummariesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "content", Type: field.TypeString, Size: 2147483647, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "model_name", Type: field.TypeString, Nullable: true},
		{Name: "total_tokens", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// SummariesTable holds the schema information for the "summaries" table.
	SummariesTable = &schema.Table{
		Name:       "summaries",
		Columns:    SummariesColumns,
		PrimaryKey: []*schema.Column{SummariesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "summaries_documents_summaries",
				Columns:    []*schema.Column{SummariesColumns[5]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "summary_document_id",
				Unique:  false,
				Columns: []*schema.Column{SummariesColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ChatMessagesTable,
		DocumentsTable,
		FlashcardsTable,
		QuizzesTable,
		QuizAnswersTable,
		QuizAttemptsTable,
		QuizQuestionsTable,
		SubjectsTable,
		SummariesTable,
	}
)

func init() {
	ChatMessagesTable.ForeignKeys[0].RefTable = DocumentsTable
	ChatMessagesTable.Annotation = &entsql.Annotation{
		Table: "chat_messages",
	}
	DocumentsTable.ForeignKeys[0].RefTable = SubjectsTable
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	FlashcardsTable.ForeignKeys[0].RefTable = DocumentsTable
	FlashcardsTable.Annotation = &entsql.Annotation{
		Table: "flashcards",
	}
	QuizzesTable.ForeignKeys[0].RefTable = DocumentsTable
	QuizzesTable.Annotation = &entsql.Annotation{
		Table: "quizzes",
	}
	QuizAnswersTable.ForeignKeys[0].RefTable = QuizAttemptsTable
	QuizAnswersTable.ForeignKeys[1].RefTable = QuizQuestionsTable
	QuizAnswersTable.Annotation = &entsql.Annotation{
		Table: "quiz_answers",
	}
	QuizAttemptsTable.ForeignKeys[0].RefTable = QuizzesTable
	QuizAttemptsTable.Annotation = &entsql.Annotation{
		Table: "quiz_attempts",
	}
	QuizQuestionsTable.ForeignKeys[0].RefTable = QuizzesTable
	QuizQuestionsTable.Annotation = &entsql.Annotation{
		Table: "quiz_questions",
	}
	SubjectsTable.Annotation = &entsql.Annotation{
		Table: "subjects",
	}
	SummariesTable.ForeignKeys[0].RefTable = DocumentsTable
	SummariesTable.Annotation = &entsql.Annotation{
		Table: "summaries",
	}
}
