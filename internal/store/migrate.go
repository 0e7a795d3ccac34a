package store

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	sqlschema "entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"

	entschema "github.com/abhisek/quizai/ent/schema"
)

// Table names, taken from the entsql annotations on each schema.
const (
	tableQuizzes        = "quizzes"
	tableAttempts       = "attempts"
	tableReports        = "reports"
	tableLLMEvents      = "llm_request_events"
	tableGlobalSequence = "global_sequence"
)

// entities lists every ent schema the store persists.
var entities = []ent.Interface{
	entschema.Quiz{},
	entschema.Attempt{},
	entschema.Report{},
	entschema.LLMRequestEvent{},
	entschema.GlobalSequence{},
}

// migrate creates or updates all tables declared in ent/schema.
func migrate(ctx context.Context, drv dialect.Driver) error {
	tables := make([]*sqlschema.Table, 0, len(entities))
	for _, e := range entities {
		t, err := tableFromSchema(e)
		if err != nil {
			return err
		}
		tables = append(tables, t)
	}

	m, err := sqlschema.NewMigrate(drv)
	if err != nil {
		return fmt.Errorf("new migrate: %w", err)
	}
	if err := m.Create(ctx, tables...); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}
	return nil
}

// tableFromSchema converts an ent schema definition into a migration table.
// Mixin fields come first. A field named "id" becomes the primary key;
// otherwise an auto-increment integer id is added, matching ent's default.
func tableFromSchema(e ent.Interface) (*sqlschema.Table, error) {
	name := tableName(e)
	if name == "" {
		return nil, fmt.Errorf("schema %T has no table annotation", e)
	}

	var fields []ent.Field
	var indexes []ent.Index
	for _, mx := range e.Mixin() {
		fields = append(fields, mx.Fields()...)
		indexes = append(indexes, mx.Indexes()...)
	}
	fields = append(fields, e.Fields()...)
	indexes = append(indexes, e.Indexes()...)

	t := sqlschema.NewTable(name)
	hasID := false
	for _, f := range fields {
		d := f.Descriptor()
		if d.Err != nil {
			return nil, fmt.Errorf("%s.%s: %w", name, d.Name, d.Err)
		}
		col := columnFromDescriptor(d)
		if col.Name == "id" {
			hasID = true
			col.Unique = false
			t.AddPrimary(col)
			continue
		}
		t.AddColumn(col)
	}
	if !hasID {
		t.AddPrimary(&sqlschema.Column{Name: "id", Type: field.TypeInt, Increment: true})
	}

	for _, idx := range indexes {
		d := idx.Descriptor()
		idxName := d.StorageKey
		if idxName == "" {
			idxName = strings.ToLower(name + "_" + strings.Join(d.Fields, "_"))
		}
		t.AddIndex(idxName, d.Unique, d.Fields)
	}
	return t, nil
}

func columnFromDescriptor(d *field.Descriptor) *sqlschema.Column {
	name := d.Name
	if d.StorageKey != "" {
		name = d.StorageKey
	}
	col := &sqlschema.Column{
		Name:     name,
		Type:     d.Info.Type,
		Size:     int64(d.Size),
		Unique:   d.Unique,
		Nullable: d.Optional,
		Comment:  d.Comment,
	}
	if d.Info.Type == field.TypeString && d.Size == 0 {
		col.Size = 255
	}
	// Only literal defaults can be expressed in DDL; function defaults such as
	// time.Now are applied by the repositories on insert.
	if d.Default != nil && reflect.TypeOf(d.Default).Kind() != reflect.Func {
		col.Default = d.Default
	}
	return col
}

func tableName(e ent.Interface) string {
	for _, a := range e.Annotations() {
		switch a := a.(type) {
		case entsql.Annotation:
			return a.Table
		case *entsql.Annotation:
			return a.Table
		}
	}
	return ""
}
