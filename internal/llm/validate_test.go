package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func questionSchema() *Schema {
	return &Schema{
		Name:        "test-question",
		Description: "A single quiz question",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id":       map[string]any{"type": "integer", "minimum": 1},
				"question": map[string]any{"type": "string", "minLength": 1},
				"type":     map[string]any{"type": "string", "enum": []any{"multiple-choice", "true-false", "short-answer"}},
				"options": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"id", "question", "type"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"id":1,"question":"Is Go compiled?","type":"true-false","options":["True","False"]}`, false},
		{"optional omitted", `{"id":2,"question":"Name a Go keyword","type":"short-answer"}`, false},
		{"missing required", `{"id":3,"type":"short-answer"}`, true},
		{"wrong type", `{"id":"four","question":"q","type":"short-answer"}`, true},
		{"invalid enum", `{"id":5,"question":"q","type":"essay"}`, true},
		{"fractional integer", `{"id":1.5,"question":"q","type":"short-answer"}`, true},
		{"below minimum", `{"id":0,"question":"q","type":"short-answer"}`, true},
		{"bad array item", `{"id":6,"question":"q","type":"multiple-choice","options":[1,2]}`, true},
		{"malformed JSON", `{not json}`, true},
		{"empty", ``, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(questionSchema(), json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("validateResponse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var invErr *ErrInvalidResponse
				if !errors.As(err, &invErr) {
					t.Fatalf("expected ErrInvalidResponse, got: %T", err)
				}
			}
		})
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_NestedObjects(t *testing.T) {
	schema := &Schema{
		Name:        "test-report",
		Description: "Nested report",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"summary": map[string]any{"type": "string"},
				"strengths": map[string]any{
					"type":     "array",
					"minItems": 1,
					"items":    map[string]any{"type": "string"},
				},
			},
			"required":             []any{"summary", "strengths"},
			"additionalProperties": false,
		},
	}

	valid := json.RawMessage(`{"summary":"Solid","strengths":["recall","speed"]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	for _, invalid := range []string{
		`{"summary":"Solid","strengths":[]}`,
		`{"summary":"Solid","strengths":["a"],"extra":true}`,
	} {
		if err := validateResponse(schema, json.RawMessage(invalid)); err == nil {
			t.Fatalf("expected error for %s", invalid)
		}
	}
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`{"a":1}`, `{"a":1}`},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"  ```\n{\"a\":1}```  ", `{"a":1}`},
		{"```{\"a\":1}```", "```{\"a\":1}```"},
	}
	for _, tt := range tests {
		if got := string(stripFences(json.RawMessage(tt.in))); got != tt.want {
			t.Errorf("stripFences(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFinish(t *testing.T) {
	fenced := json.RawMessage("```json\n{\"id\":1,\"question\":\"q\",\"type\":\"short-answer\"}\n```")
	resp, err := finish(Request{Schema: questionSchema()}, fenced, StopEnd, Usage{TotalTokens: 3}, "m")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Content[0] != '{' || resp.Model != "m" || resp.Usage.TotalTokens != 3 {
		t.Fatalf("unexpected response: %+v", resp)
	}

	_, err = finish(Request{}, json.RawMessage(`{"partial`), StopMaxTokens, Usage{}, "m")
	var trunc *ErrMaxTokensExceeded
	if !errors.As(err, &trunc) {
		t.Fatalf("expected ErrMaxTokensExceeded, got %v", err)
	}

	// Without a schema the content is passed through untouched.
	resp, err = finish(Request{}, fenced, StopEnd, Usage{}, "m")
	if err != nil || string(resp.Content) != string(fenced) {
		t.Fatalf("raw content changed: %s, %v", resp.Content, err)
	}
}
