package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/quizai/internal/llm"
)

// PurposeHistoryAnalysis labels analysis requests in the LLM event log.
const PurposeHistoryAnalysis = "history-analysis"

// LLMAnalyzer implements Analyzer using the LLM provider.
type LLMAnalyzer struct {
	provider llm.Provider
	cfg      Config
}

// NewLLMAnalyzer creates an analyzer backed by provider.
func NewLLMAnalyzer(provider llm.Provider, cfg Config) *LLMAnalyzer {
	return &LLMAnalyzer{provider: provider, cfg: cfg}
}

type reportOutput struct {
	Summary         string   `json:"summary"`
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	Recommendations []string `json:"recommendations"`
}

// Analyze sends the compacted history to the model. An empty history
// yields an empty report without a model call.
func (a *LLMAnalyzer) Analyze(ctx context.Context, h History) (*Report, error) {
	if len(h.Attempts) == 0 {
		return &Report{}, nil
	}
	ctx = llm.WithPurpose(ctx, PurposeHistoryAnalysis)

	userMsg, err := buildUserMessage(compact(h, a.cfg))
	if err != nil {
		return nil, fmt.Errorf("render history: %w", err)
	}

	req := llm.Request{
		System:      systemPrompt,
		Messages:    llm.UserPrompt(userMsg),
		Schema:      ReportSchema,
		MaxTokens:   a.cfg.MaxTokens,
		Temperature: a.cfg.Temperature,
	}

	resp, err := a.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("history analysis: %w", err)
	}

	var out reportOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse analysis response: %w", err)
	}

	r := &Report{
		Summary:         strings.TrimSpace(out.Summary),
		Strengths:       cleanList(out.Strengths),
		Weaknesses:      cleanList(out.Weaknesses),
		Recommendations: cleanList(out.Recommendations),
	}
	if verr := validateReport(r); verr != nil {
		return nil, verr
	}
	return r, nil
}

// compact keeps the most recent attempts and caps the misses listed for each.
func compact(h History, cfg Config) History {
	attempts := h.Attempts
	if cfg.MaxAttempts > 0 && len(attempts) > cfg.MaxAttempts {
		attempts = attempts[len(attempts)-cfg.MaxAttempts:]
	}
	out := History{Attempts: make([]AttemptSummary, len(attempts))}
	for i, at := range attempts {
		if cfg.MaxMissedPerAttempt > 0 && len(at.Missed) > cfg.MaxMissedPerAttempt {
			at.Missed = at.Missed[:cfg.MaxMissedPerAttempt]
		}
		out.Attempts[i] = at
	}
	return out
}

func cleanList(items []string) []string {
	var out []string
	for _, s := range items {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func validateReport(r *Report) *ValidationError {
	if r.Summary == "" {
		return &ValidationError{Validator: "report", Message: "summary is empty", Retryable: true}
	}
	lists := []struct {
		name  string
		items []string
	}{
		{"strengths", r.Strengths},
		{"weaknesses", r.Weaknesses},
		{"recommendations", r.Recommendations},
	}
	for _, l := range lists {
		if len(l.items) == 0 || len(l.items) > MaxListItems {
			return &ValidationError{
				Validator: "report",
				Message:   fmt.Sprintf("%s must have 1-%d items, got %d", l.name, MaxListItems, len(l.items)),
				Retryable: true,
			}
		}
	}
	return nil
}
