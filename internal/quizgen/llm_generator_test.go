package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arjun/quizgen/internal/llm"
	"github.com/arjun/quizgen/internal/quiz"
)

func testConfig() quiz.Config {
	cfg := quiz.DefaultConfig()
	cfg.Topic = "Go concurrency"
	cfg.Count = 2
	return cfg
}

func wellFormedResponse() json.RawMessage {
	return json.RawMessage(`Here you go:
[
  {"question": "What starts a goroutine?", "options": ["go", "run", "spawn", "fork"], "answer": "go", "explanation": "The go keyword."},
  {"question": "Channels are typed?", "options": ["True", "False"], "answer": "True", "explanation": "Each channel carries one element type."}
]
Enjoy!`)
}

func TestLLMGenerator_HappyPath(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: wellFormedResponse()})
	g := New(mock, DefaultConfig())

	questions, err := g.Generate(context.Background(), testConfig())
	require.NoError(t, err)
	require.Len(t, questions, 2)

	assert.Equal(t, 1, questions[0].ID)
	assert.Equal(t, 2, questions[1].ID)
	assert.Equal(t, "go", questions[0].Answer)
	assert.Contains(t, questions[0].Options, questions[0].Answer)
}

func TestLLMGenerator_PromptCarriesConfig(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: wellFormedResponse()})
	g := New(mock, DefaultConfig())

	cfg := testConfig()
	cfg.Content = "Goroutines are lightweight threads."
	_, err := g.Generate(context.Background(), cfg)
	require.NoError(t, err)

	require.Equal(t, 1, mock.CallCount())
	msg := mock.Calls[0].Messages[0].Content
	assert.Contains(t, msg, "Go concurrency")
	assert.Contains(t, msg, "Medium")
	assert.Contains(t, msg, "Number of questions: 2")
	assert.Contains(t, msg, "Goroutines are lightweight threads.")
}

func TestLLMGenerator_ProviderErrorFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	g := New(mock, DefaultConfig())

	questions, err := g.Generate(context.Background(), testConfig())
	require.NoError(t, err, "generation failures must not propagate")
	require.Len(t, questions, 1, "fallback is exactly one question")
	assert.Contains(t, questions[0].Text, "shorter content")
	assert.Contains(t, questions[0].Options, questions[0].Answer)
}

func TestLLMGenerator_MalformedResponseFallsBack(t *testing.T) {
	cases := map[string]string{
		"no brackets":       "I cannot produce a quiz right now.",
		"broken json":       "[{question: unquoted}]",
		"empty array":       "[]",
		"missing fields":    `[{"question": "Q?"}]`,
		"answer not option": `[{"question": "Q?", "options": ["A", "B"], "answer": "C"}]`,
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(raw)})
			g := New(mock, DefaultConfig())

			questions, err := g.Generate(context.Background(), testConfig())
			require.NoError(t, err)
			require.Len(t, questions, 1)
			assert.Contains(t, questions[0].Text, "try again")
		})
	}
}

func TestLLMGenerator_ContextCancellationPropagates(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: context.Canceled})
	g := New(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), testConfig())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 10))
	assert.Equal(t, "abc", truncate("abc", 0))

	got := truncate("abcdefgh", 4)
	assert.Contains(t, got, "abcd")
	assert.Contains(t, got, "[content truncated]")
}
