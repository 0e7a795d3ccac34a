package llm

import (
	"context"
	"encoding/json"
)

// Provider sends one structured request to a model.
type Provider interface {
	// Generate returns the model output. When req.Schema is set the provider
	// asks for JSON in that shape and Content is the validated document.
	Generate(ctx context.Context, req Request) (*Response, error)

	ModelID() string

	// Name is the provider label stored on LLM events, e.g. "gemini".
	Name() string
}

// Request is a single-turn prompt. Quiz generation and history analysis
// both send one system prompt and one user message.
type Request struct {
	System   string
	Messages []Message

	// Schema, when set, switches the provider to its native structured
	// output mode. Without it Content holds raw text.
	Schema *Schema

	MaxTokens int

	// Temperature in 0.0-1.0. Zero leaves the provider default.
	Temperature float64
}

type Message struct {
	Role    Role
	Content string
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// UserPrompt builds the one-message conversation used by single-turn calls.
func UserPrompt(text string) []Message {
	return []Message{{Role: RoleUser, Content: text}}
}

// Schema is a named JSON Schema. Name doubles as the OpenAI schema name and
// the key of the compiled-validator cache, so it must be unique per shape.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Normalized stop reasons.
const (
	StopEnd       = "end"
	StopMaxTokens = "max_tokens"
)

type Response struct {
	Content    json.RawMessage
	Usage      Usage
	Model      string
	StopReason string
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// finish applies the checks every provider runs on raw output: truncated
// output is an error, and schema requests are validated.
func finish(req Request, content json.RawMessage, stop string, usage Usage, model string) (*Response, error) {
	if stop == StopMaxTokens {
		return nil, &ErrMaxTokensExceeded{Content: content}
	}
	if req.Schema != nil {
		content = stripFences(content)
	}
	if err := validateResponse(req.Schema, content); err != nil {
		return nil, err
	}
	return &Response{
		Content:    content,
		Usage:      usage,
		Model:      model,
		StopReason: stop,
	}, nil
}
