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

type QuizAttempt struct{ ent.Schema }

func (QuizAttempt) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "quiz_attempts"},
	}
}

func (QuizAttempt) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("quiz_id", uuid.UUID{}),
		field.String("owner_id").NotEmpty(),
		field.Int("total_questions").Default(0),
		field.Int("correct_answers").Default(0),
		field.Float("score").Default(0),
		field.Int("time_taken_seconds").Optional().Nillable(),
		field.Time("completed_at").Default(time.Now),
	}
}

func (QuizAttempt) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("quiz", Quiz.Type).
			Ref("attempts").
			Field("quiz_id").
			Required().
			Unique(),
		edge.To("answers", QuizAnswer.Type),
	}
}

func (QuizAttempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "completed_at"),
		index.Fields("quiz_id"),
	}
}
