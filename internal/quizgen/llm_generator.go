package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/arjun/quizgen/internal/llm"
	"github.com/arjun/quizgen/internal/quiz"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// rawQuestion is one element of the model's JSON array before conversion.
type rawQuestion struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
}

// Generate produces the question list for the given configuration. Every
// failure class short of context cancellation degrades to the placeholder
// question list.
func (g *LLMGenerator) Generate(ctx context.Context, cfg quiz.Config) ([]quiz.Question, error) {
	ctx = llm.WithPurpose(ctx, "quiz-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(cfg, g.config)},
		},
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return g.fallback(fmt.Errorf("LLM generation failed: %w", err)), nil
	}

	questions, err := parseQuestions(string(resp.Content))
	if err != nil {
		return g.fallback(err), nil
	}
	return questions, nil
}

// parseQuestions extracts, validates, and converts the model response.
func parseQuestions(raw string) ([]quiz.Question, error) {
	span, err := ExtractArray(raw)
	if err != nil {
		return nil, err
	}
	if err := validateArray(json.RawMessage(span)); err != nil {
		return nil, err
	}

	var parsed []rawQuestion
	if err := json.Unmarshal([]byte(span), &parsed); err != nil {
		return nil, fmt.Errorf("parse question array: %w", err)
	}

	questions := make([]quiz.Question, 0, len(parsed))
	for _, rq := range parsed {
		if !answerInOptions(rq.Answer, rq.Options) {
			return nil, fmt.Errorf("answer %q matches no option", rq.Answer)
		}
		questions = append(questions, quiz.Question{
			ID:          len(questions) + 1,
			Text:        rq.Question,
			Options:     rq.Options,
			Answer:      rq.Answer,
			Explanation: rq.Explanation,
		})
	}
	if len(questions) == 0 {
		return nil, errors.New("quizgen: empty question array")
	}
	return questions, nil
}

func answerInOptions(answer string, options []string) bool {
	for _, o := range options {
		if o == answer {
			return true
		}
	}
	return false
}

// fallback logs the failure and returns the placeholder question list.
func (g *LLMGenerator) fallback(err error) []quiz.Question {
	fmt.Fprintf(os.Stderr, "warning: quiz generation degraded to placeholder: %v\n", err)
	return fallbackQuestions()
}
