package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.5-flash"},
		{"gemini-flash-lite", "gemini-2.5-flash-lite"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"title": map[string]any{"type": "string"},
			"questions": map[string]any{
				"type":     "array",
				"minItems": 1,
				"maxItems": float64(25),
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":   map[string]any{"type": "integer"},
						"type": map[string]any{"type": "string", "enum": []any{"multiple-choice", "true-false"}},
						"options": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
					},
					"required": []any{"id", "type", "options"},
				},
			},
		},
		"required": []any{"title", "questions"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 2 {
		t.Fatalf("expected 2 properties, got %d", len(schema.Properties))
	}
	questions := schema.Properties["questions"]
	if questions.Type != "ARRAY" {
		t.Fatalf("expected ARRAY for questions, got %s", questions.Type)
	}
	if questions.MinItems == nil || *questions.MinItems != 1 {
		t.Fatalf("expected minItems 1, got %v", questions.MinItems)
	}
	if questions.MaxItems == nil || *questions.MaxItems != 25 {
		t.Fatalf("expected maxItems 25, got %v", questions.MaxItems)
	}
	item := questions.Items
	if item.Properties["id"].Type != "INTEGER" {
		t.Fatalf("expected INTEGER for id, got %s", item.Properties["id"].Type)
	}
	if len(item.Properties["type"].Enum) != 2 {
		t.Fatalf("expected 2 enum values, got %d", len(item.Properties["type"].Enum))
	}
	if item.Properties["options"].Items.Type != "STRING" {
		t.Fatalf("expected STRING for option items, got %s", item.Properties["options"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
	if len(item.PropertyOrdering) != 3 || item.PropertyOrdering[0] != "id" {
		t.Fatalf("expected property ordering to follow required, got %v", item.PropertyOrdering)
	}
}
