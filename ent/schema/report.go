package schema

import (
	"encoding/json"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

// Report stores a performance analysis produced from attempt history.
type Report struct {
	ent.Schema
}

func (Report) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "reports"},
	}
}

func (Report) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (Report) Fields() []ent.Field {
	return []ent.Field{
		field.Text("summary"),
		field.JSON("strengths", json.RawMessage{}),
		field.JSON("weaknesses", json.RawMessage{}),
		field.JSON("recommendations", json.RawMessage{}),
		field.Int("attempt_count").
			Default(0).
			Comment("Number of attempts the analysis covered"),
		field.String("model").
			Default(""),
	}
}
