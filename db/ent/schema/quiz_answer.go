package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type QuizAnswer struct{ ent.Schema }

func (QuizAnswer) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "quiz_answers"},
	}
}

func (QuizAnswer) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("attempt_id", uuid.UUID{}),
		field.UUID("question_id", uuid.UUID{}),
		field.String("selected_option").NotEmpty(),
		field.Bool("is_correct").Default(false),
	}
}

func (QuizAnswer) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("attempt", QuizAttempt.Type).
			Ref("answers").
			Field("attempt_id").
			Required().
			Unique(),
		edge.From("question", QuizQuestion.Type).
			Ref("answers").
			Field("question_id").
			Required().
			Unique(),
	}
}

func (QuizAnswer) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("attempt_id"),
		index.Fields("question_id"),
	}
}
