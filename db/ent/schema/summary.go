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
)

type Summary struct{ ent.Schema }

func (Summary) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "summaries"},
	}
}

func (Summary) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("document_id", uuid.UUID{}),
		field.Text("content").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("model_name").Optional().Nillable(),
		field.Int("total_tokens").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
	}
}

func (Summary) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("summaries").
			Field("document_id").
			Required().
			Unique(),
	}
}

func (Summary) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id"),
	}
}
