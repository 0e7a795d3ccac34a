package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Quiz holds a generated quiz. Questions are stored as a JSON document.
type Quiz struct {
	ent.Schema
}

func (Quiz) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "quizzes"},
	}
}

func (Quiz) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable().
			Comment("ULID, sortable by creation time"),
		field.String("title"),
		field.String("topic"),
		field.String("format"),
		field.String("difficulty"),
		field.Int("question_count").
			Default(0),
		field.JSON("questions", json.RawMessage{}),
		field.String("model").
			Default("").
			Comment("Model that generated the quiz, empty for imports"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Quiz) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic"),
		index.Fields("created_at"),
	}
}
