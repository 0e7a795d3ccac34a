package quiz

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxQuestions caps how many questions a single quiz may hold.
const MaxQuestions = 25

// MaxTopicLength is the longest topic accepted, in characters.
const MaxTopicLength = 200

// Format selects which question types a quiz may contain.
type Format string

const (
	FormatMultipleChoice Format = "multiple-choice"
	FormatTrueFalse      Format = "true-false"
	FormatShortAnswer    Format = "short-answer"
	FormatMixed          Format = "mixed"
)

// Formats lists every format in display order.
var Formats = []Format{FormatMixed, FormatMultipleChoice, FormatTrueFalse, FormatShortAnswer}

// Valid reports whether f is a known format.
func (f Format) Valid() bool {
	switch f {
	case FormatMultipleChoice, FormatTrueFalse, FormatShortAnswer, FormatMixed:
		return true
	}
	return false
}

// Allows reports whether a question of type t may appear in a quiz of format f.
func (f Format) Allows(t QuestionType) bool {
	if f == FormatMixed {
		return t.Valid()
	}
	return string(f) == string(t)
}

// Difficulty is the requested difficulty level.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists every difficulty in ascending order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// Valid reports whether d is a known difficulty.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// QuestionType describes how a question is answered.
type QuestionType string

const (
	TypeMultipleChoice QuestionType = "multiple-choice"
	TypeTrueFalse      QuestionType = "true-false"
	TypeShortAnswer    QuestionType = "short-answer"
)

// Valid reports whether t is a known question type.
func (t QuestionType) Valid() bool {
	switch t {
	case TypeMultipleChoice, TypeTrueFalse, TypeShortAnswer:
		return true
	}
	return false
}

// Question is a single quiz question.
type Question struct {
	// ID is the 1-based position of the question within its quiz.
	ID int `json:"id" yaml:"id"`

	// Question is the prompt shown to the player.
	Question string `json:"question" yaml:"question"`

	Type QuestionType `json:"type" yaml:"type"`

	// Options holds the choices for multiple-choice and true-false
	// questions. Short-answer questions have none.
	Options []string `json:"options,omitempty" yaml:"options,omitempty"`

	// CorrectAnswer is the option text for choice questions, "True" or
	// "False" for true-false, and the expected text for short answers.
	CorrectAnswer string `json:"correctAnswer" yaml:"correctAnswer"`

	Explanation string `json:"explanation,omitempty" yaml:"explanation,omitempty"`
}

// Quiz is a titled, ordered list of questions. The zero value is the empty
// quiz and marshals to {}.
type Quiz struct {
	ID         string     `json:"id,omitempty" yaml:"id,omitempty"`
	Title      string     `json:"title,omitempty" yaml:"title,omitempty"`
	Topic      string     `json:"topic,omitempty" yaml:"topic,omitempty"`
	Format     Format     `json:"format,omitempty" yaml:"format,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`
	Model      string     `json:"model,omitempty" yaml:"model,omitempty"`
	Questions  []Question `json:"questions,omitempty" yaml:"questions,omitempty"`
}

// IsEmpty reports whether the quiz has neither a title nor questions.
func (q *Quiz) IsEmpty() bool {
	return q == nil || (q.Title == "" && len(q.Questions) == 0)
}

// WithoutAnswers returns a copy with answers and explanations removed.
func (q *Quiz) WithoutAnswers() *Quiz {
	if q == nil {
		return nil
	}
	out := *q
	out.Questions = make([]Question, len(q.Questions))
	for i, qq := range q.Questions {
		qq.CorrectAnswer = ""
		qq.Explanation = ""
		out.Questions[i] = qq
	}
	return &out
}

// GenerateInput holds everything needed to generate a quiz.
type GenerateInput struct {
	Topic      string
	Format     Format
	Difficulty Difficulty
	Count      int

	// PriorQuestions contains question texts the player has already seen
	// on this topic. Used for deduplication in the prompt.
	PriorQuestions []string
}

// Normalize trims the topic and fills unset fields with defaults.
func (in GenerateInput) Normalize() GenerateInput {
	in.Topic = strings.TrimSpace(in.Topic)
	if in.Format == "" {
		in.Format = FormatMixed
	}
	if in.Difficulty == "" {
		in.Difficulty = DifficultyMedium
	}
	if in.Count == 0 {
		in.Count = 5
	}
	return in
}

// Validate checks the input after normalization.
func (in GenerateInput) Validate() error {
	topic := strings.TrimSpace(in.Topic)
	if topic == "" {
		return &InputError{Field: "topic", Message: "must not be empty"}
	}
	if utf8.RuneCountInString(topic) > MaxTopicLength {
		return &InputError{Field: "topic", Message: fmt.Sprintf("must be at most %d characters", MaxTopicLength)}
	}
	if !in.Format.Valid() {
		return &InputError{Field: "format", Message: fmt.Sprintf("unknown format %q", in.Format)}
	}
	if !in.Difficulty.Valid() {
		return &InputError{Field: "difficulty", Message: fmt.Sprintf("unknown difficulty %q", in.Difficulty)}
	}
	if in.Count < 1 || in.Count > MaxQuestions {
		return &InputError{Field: "count", Message: fmt.Sprintf("must be between 1 and %d", MaxQuestions)}
	}
	return nil
}

// InputError reports a bad generate request.
type InputError struct {
	Field   string
	Message string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}
