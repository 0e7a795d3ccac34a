package schema

import (
	"encoding/json"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Attempt records one graded run through a quiz.
type Attempt struct {
	ent.Schema
}

func (Attempt) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "attempts"},
	}
}

func (Attempt) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (Attempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			Unique().
			Comment("UUID assigned when the attempt starts"),
		field.String("quiz_id"),
		field.String("title"),
		field.String("topic"),
		field.String("format"),
		field.String("difficulty"),
		field.Int("correct").
			Default(0),
		field.Int("total").
			Default(0),
		field.Int64("duration_ms").
			Default(0),
		field.JSON("answers", json.RawMessage{}).
			Comment("Per-question results"),
	}
}

func (Attempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("quiz_id"),
		index.Fields("topic"),
	}
}
