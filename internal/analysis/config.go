package analysis

// Config holds analysis settings.
type Config struct {
	MaxTokens   int
	Temperature float64

	// MaxAttempts is how many of the most recent attempts are sent.
	MaxAttempts int

	// MaxMissedPerAttempt caps the missed questions listed per attempt.
	MaxMissedPerAttempt int
}

// DefaultConfig returns sensible defaults for analysis.
func DefaultConfig() Config {
	return Config{
		MaxTokens:           2048,
		Temperature:         0.4,
		MaxAttempts:         20,
		MaxMissedPerAttempt: 5,
	}
}
