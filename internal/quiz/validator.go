package quiz

import "fmt"

// Validator checks a generated quiz.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier used in error messages,
	// e.g. "structural" or "type".
	Name() string

	// Validate returns nil if the quiz passes.
	Validate(q *Quiz, input GenerateInput) *ValidationError
}

// ValidationError describes why a generated quiz failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
	Retryable bool   // Whether regeneration is likely to fix this
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}
