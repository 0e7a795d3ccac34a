package quiz

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/abhisek/quizai/internal/llm"
	"github.com/abhisek/quizai/internal/logger"
)

// PurposeQuizGen labels quiz generation requests in the LLM event log.
const PurposeQuizGen = "quiz-gen"

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
	now      func() time.Time
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg, now: time.Now}
}

// quizOutput is the raw LLM response before normalization.
type quizOutput struct {
	Title     string           `json:"title"`
	Questions []questionOutput `json:"questions"`
}

type questionOutput struct {
	ID            int      `json:"id"`
	Question      string   `json:"question"`
	Type          string   `json:"type"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// maxGenerations bounds how often one Generate call asks the model: the
// first answer plus one regeneration after a retryable validation failure.
const maxGenerations = 2

// Generate produces a quiz for the given input.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (*Quiz, error) {
	input = input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}
	// Only the questions shown to the model can be held against it.
	input.PriorQuestions = recentPrior(input.PriorQuestions, g.config.MaxPriorQuestions)

	ctx = llm.WithPurpose(ctx, PurposeQuizGen)

	var verr *ValidationError
	for i := 0; i < maxGenerations; i++ {
		q, model, err := g.generateOnce(ctx, input)
		if err != nil {
			return nil, err
		}
		verr = g.validate(q, input)
		if verr == nil {
			q.ID = NewID(g.now())
			q.Topic = input.Topic
			q.Format = input.Format
			q.Difficulty = input.Difficulty
			q.Model = model
			return q, nil
		}
		if !verr.Retryable {
			break
		}
		logger.Get().Debug("regenerating quiz",
			zap.String("validator", verr.Validator),
			zap.String("reason", verr.Message))
	}
	return nil, verr
}

func (g *LLMGenerator) generateOnce(ctx context.Context, input GenerateInput) (*Quiz, string, error) {
	req := llm.Request{
		System:      systemPrompt,
		Messages:    llm.UserPrompt(buildUserMessage(input, g.config)),
		Schema:      QuizSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, "", fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw quizOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, "", fmt.Errorf("failed to parse LLM response: %w", err)
	}
	return normalizeOutput(raw), resp.Model, nil
}

// validate runs the validator chain in order and stops at the first failure.
func (g *LLMGenerator) validate(q *Quiz, input GenerateInput) *ValidationError {
	for _, v := range g.config.Validators {
		if verr := v.Validate(q, input); verr != nil {
			return verr
		}
	}
	return nil
}

// normalizeOutput converts the raw model output and normalizes it.
func normalizeOutput(raw quizOutput) *Quiz {
	q := &Quiz{Title: raw.Title}
	for _, r := range raw.Questions {
		q.Questions = append(q.Questions, Question{
			Question:      r.Question,
			Type:          QuestionType(r.Type),
			Options:       r.Options,
			CorrectAnswer: r.CorrectAnswer,
			Explanation:   r.Explanation,
		})
	}
	normalizeQuiz(q)
	return q
}

// normalizeQuiz trims strings, drops blank options, renumbers questions
// from 1 and canonicalizes true-false answers. Grading keys answers by
// question id, so ids must be unique.
func normalizeQuiz(q *Quiz) {
	q.Title = strings.TrimSpace(q.Title)
	for i := range q.Questions {
		qq := &q.Questions[i]
		qq.ID = i + 1
		qq.Question = strings.TrimSpace(qq.Question)
		qq.Type = QuestionType(strings.TrimSpace(string(qq.Type)))
		qq.CorrectAnswer = strings.TrimSpace(qq.CorrectAnswer)
		qq.Explanation = strings.TrimSpace(qq.Explanation)

		var opts []string
		for _, o := range qq.Options {
			if o = strings.TrimSpace(o); o != "" {
				opts = append(opts, o)
			}
		}
		qq.Options = opts

		if qq.Type == TypeTrueFalse {
			if b, ok := parseBool(qq.CorrectAnswer); ok {
				qq.CorrectAnswer = boolText(b)
			}
			qq.Options = []string{"True", "False"}
		}
	}
}

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

// NewID returns a time-sortable quiz id.
func NewID(t time.Time) string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(t), entropy).String()
}
