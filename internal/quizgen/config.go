package quizgen

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxContentChars truncates the user-supplied content blob before it
	// is embedded in the prompt.
	MaxContentChars int

	// MaxQuestions caps the requested question count.
	MaxQuestions int
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:       4096,
		Temperature:     0.7,
		MaxContentChars: 8000,
		MaxQuestions:    20,
	}
}
