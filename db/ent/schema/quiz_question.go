package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type QuizQuestion struct{ ent.Schema }

func (QuizQuestion) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "quiz_questions"},
	}
}

func (QuizQuestion) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("quiz_id", uuid.UUID{}),
		field.Text("question_text").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.JSON("options", []string{}),
		field.String("correct_option").NotEmpty(),
		field.Int("position").Default(0),
	}
}

func (QuizQuestion) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("quiz", Quiz.Type).
			Ref("questions").
			Field("quiz_id").
			Required().
			Unique(),
		edge.To("answers", QuizAnswer.Type),
	}
}

func (QuizQuestion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("quiz_id", "position"),
	}
}
