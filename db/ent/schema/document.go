package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"studydeck/constants"
	"studydeck/utils"
)

type Document struct{ ent.Schema }

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("subject_id", uuid.UUID{}),
		field.String("filename").NotEmpty(),
		field.String("title").NotEmpty(),
		field.String("file_path").NotEmpty(),
		field.String("content_hash").Optional(),
		field.String("status").
			Default(string(constants.DocStatusQueued)).
			Validate(utils.EnumValidator(constants.DocStatusValues...)),
		field.Text("extracted_text").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Bool("low_quality_text").Default(false),
		field.String("extraction_method").Optional().Nillable().
			Validate(utils.EnumValidator(constants.ExtractionMethodValues...)),
		field.Int("page_count").Optional().Nillable(),
		field.Int("extracted_pages").Optional().Nillable(),
		field.String("author").Optional().Nillable(),
		field.String("creator").Optional().Nillable(),
		field.String("producer").Optional().Nillable(),
		field.String("error_message").Optional().Nillable(),
		field.Time("uploaded_at").Default(time.Now),
		field.Time("processed_at").Optional().Nillable(),
	}
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY documents -> ONE subject (FK: documents.subject_id)
		edge.From("subject", Subject.Type).
			Ref("documents").
			Field("subject_id").
			Required().
			Unique(),
		edge.To("summaries", Summary.Type),
		edge.To("flashcards", Flashcard.Type),
		edge.To("quizzes", Quiz.Type),
		edge.To("messages", ChatMessage.Type),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subject_id", "status", "uploaded_at"),
		index.Fields("subject_id", "content_hash"),
	}
}
