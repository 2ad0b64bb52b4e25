package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Quiz struct{ ent.Schema }

func (Quiz) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "quizzes"},
	}
}

func (Quiz) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("document_id", uuid.UUID{}),
		field.String("title").NotEmpty(),
		field.String("model_name").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
	}
}

func (Quiz) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("quizzes").
			Field("document_id").
			Required().
			Unique(),
		edge.To("questions", QuizQuestion.Type),
		edge.To("attempts", QuizAttempt.Type),
	}
}

func (Quiz) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id"),
	}
}
