package llm

import "context"

type purposeKey struct{}

// PurposeUnknown labels calls made without WithPurpose.
const PurposeUnknown = "unknown"

// WithPurpose tags ctx with the reason for an LLM call, e.g. "quiz-gen".
// The logging decorator stores it on the event.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

func PurposeFrom(ctx context.Context) string {
	if v, _ := ctx.Value(purposeKey{}).(string); v != "" {
		return v
	}
	return PurposeUnknown
}
