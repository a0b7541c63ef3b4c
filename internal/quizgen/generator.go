package quizgen

import (
	"context"

	"github.com/arjun/quizgen/internal/quiz"
)

// Generator produces quiz questions for a session configuration.
type Generator interface {
	// Generate returns a non-empty ordered question list for the given
	// configuration. Generation failures of any kind (network, malformed
	// response, extraction, validation) degrade to a single placeholder
	// question rather than an error; the only propagated error is context
	// cancellation.
	Generate(ctx context.Context, cfg quiz.Config) ([]quiz.Question, error)
}
