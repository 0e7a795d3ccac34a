package quiz

import (
	"fmt"
	"strings"
)

const (
	minOptions = 2
	maxOptions = 6
)

// TypeValidator checks each question against its declared type and the
// quiz format: option counts, answer membership and true/false answers.
type TypeValidator struct{}

func (v *TypeValidator) Name() string { return "type" }

func (v *TypeValidator) Validate(q *Quiz, input GenerateInput) *ValidationError {
	for _, qq := range q.Questions {
		if !qq.Type.Valid() {
			return v.fail(fmt.Sprintf("question %d has unknown type %q", qq.ID, qq.Type))
		}
		if input.Format != "" && !input.Format.Allows(qq.Type) {
			return v.fail(fmt.Sprintf("question %d is %s but the quiz format is %s", qq.ID, qq.Type, input.Format))
		}

		switch qq.Type {
		case TypeMultipleChoice:
			if err := v.checkChoices(qq); err != nil {
				return err
			}
		case TypeTrueFalse:
			if qq.CorrectAnswer != "True" && qq.CorrectAnswer != "False" {
				return v.fail(fmt.Sprintf("question %d: true-false answer must be True or False, got %q", qq.ID, qq.CorrectAnswer))
			}
		case TypeShortAnswer:
			if len(qq.Options) > 0 {
				return v.fail(fmt.Sprintf("question %d: short-answer must have no options", qq.ID))
			}
			if qq.CorrectAnswer == "" {
				return v.fail(fmt.Sprintf("question %d: short-answer has no answer", qq.ID))
			}
		}
	}
	return nil
}

func (v *TypeValidator) checkChoices(qq Question) *ValidationError {
	if len(qq.Options) < minOptions || len(qq.Options) > maxOptions {
		return v.fail(fmt.Sprintf("question %d: multiple-choice needs %d-%d options, got %d", qq.ID, minOptions, maxOptions, len(qq.Options)))
	}
	seen := make(map[string]bool, len(qq.Options))
	for i, o := range qq.Options {
		if o == "" {
			return v.fail(fmt.Sprintf("question %d: option %d is empty", qq.ID, i+1))
		}
		key := strings.ToLower(o)
		if seen[key] {
			return v.fail(fmt.Sprintf("question %d: duplicate option %q", qq.ID, o))
		}
		seen[key] = true
	}
	if !seen[strings.ToLower(qq.CorrectAnswer)] {
		return v.fail(fmt.Sprintf("question %d: answer %q not found in options", qq.ID, qq.CorrectAnswer))
	}
	return nil
}

func (v *TypeValidator) fail(msg string) *ValidationError {
	return &ValidationError{Validator: v.Name(), Message: msg, Retryable: true}
}
