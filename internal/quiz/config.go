package quiz

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// Validators run in order on every generated quiz. The first
	// failure stops the pipeline.
	Validators []Validator

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxPriorQuestions is the maximum number of prior questions
	// to include in the prompt for deduplication.
	MaxPriorQuestions int
}

// DefaultConfig returns a Config with the standard validator chain
// and recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&TypeValidator{},
			&DuplicateValidator{},
		},
		MaxTokens:         8192,
		Temperature:       0.7,
		MaxPriorQuestions: 20,
	}
}
