package analysis

import (
	"context"
	"fmt"
)

// Analyzer turns an attempt history into a Report.
type Analyzer interface {
	Analyze(ctx context.Context, h History) (*Report, error)
}

// NoopAnalyzer is used when no model is configured. It returns an empty
// report and never fails.
type NoopAnalyzer struct{}

func (NoopAnalyzer) Analyze(context.Context, History) (*Report, error) {
	return &Report{}, nil
}

// ValidationError describes why a generated report was rejected.
type ValidationError struct {
	Validator string
	Message   string
	Retryable bool
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}
