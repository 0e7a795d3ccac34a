package quiz

import (
	"fmt"
	"unicode/utf8"
)

const (
	maxTitleLength       = 200
	maxQuestionLength    = 1000
	maxExplanationLength = 1500
)

// StructuralValidator checks that required fields are present, within
// length limits, and that the quiz has the requested number of questions.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Quiz, input GenerateInput) *ValidationError {
	if q.Title == "" {
		return v.fail("title is empty")
	}
	if utf8.RuneCountInString(q.Title) > maxTitleLength {
		return v.fail(fmt.Sprintf("title exceeds %d characters", maxTitleLength))
	}
	if input.Count > 0 && len(q.Questions) != input.Count {
		return v.fail(fmt.Sprintf("expected %d questions, got %d", input.Count, len(q.Questions)))
	}
	for _, qq := range q.Questions {
		if qq.Question == "" {
			return v.fail(fmt.Sprintf("question %d has no text", qq.ID))
		}
		if utf8.RuneCountInString(qq.Question) > maxQuestionLength {
			return v.fail(fmt.Sprintf("question %d exceeds %d characters", qq.ID, maxQuestionLength))
		}
		if utf8.RuneCountInString(qq.Explanation) > maxExplanationLength {
			return v.fail(fmt.Sprintf("explanation for question %d exceeds %d characters", qq.ID, maxExplanationLength))
		}
	}
	return nil
}

func (v *StructuralValidator) fail(msg string) *ValidationError {
	return &ValidationError{Validator: v.Name(), Message: msg, Retryable: true}
}
