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

type Flashcard struct{ ent.Schema }

func (Flashcard) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "flashcards"},
	}
}

func (Flashcard) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("document_id", uuid.UUID{}),
		field.String("subject").NotEmpty(),
		field.Text("definition").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Int("position").Default(0),
		field.Time("created_at").Default(time.Now),
	}
}

func (Flashcard) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("flashcards").
			Field("document_id").
			Required().
			Unique(),
	}
}

func (Flashcard) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id", "position"),
	}
}
