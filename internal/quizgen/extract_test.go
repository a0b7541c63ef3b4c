package quizgen

import (
	"encoding/json"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validArray = `[{"question":"Q?","options":["A","B"],"answer":"A"}]`

func TestExtractArray_PureJSON(t *testing.T) {
	got, err := ExtractArray(validArray)
	require.NoError(t, err)
	assert.Equal(t, validArray, got)
}

func TestExtractArray_WrappedInProse(t *testing.T) {
	raw := "Sure! Here is your quiz:\n\n" + validArray + "\n\nLet me know if you need more."
	got, err := ExtractArray(raw)
	require.NoError(t, err)
	assert.Equal(t, validArray, got)
}

func TestExtractArray_MarkdownFence(t *testing.T) {
	raw := "```json\n" + validArray + "\n```"
	got, err := ExtractArray(raw)
	require.NoError(t, err)
	assert.Equal(t, validArray, got)
}

func TestExtractArray_NoBrackets(t *testing.T) {
	for _, raw := range []string{"", "no json here", "{\"an\":\"object\"}"} {
		_, err := ExtractArray(raw)
		assert.ErrorIs(t, err, ErrNoArray, "input %q", raw)
	}
}

func TestExtractArray_ClosingBeforeOpening(t *testing.T) {
	_, err := ExtractArray("] oops [")
	assert.ErrorIs(t, err, ErrNoArray)
}

// Property: any bracket-free prefix and suffix around a valid array must
// still extract a span that parses to the same value.
func TestExtractArray_ArbitraryWrapping(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	const chars = "abcdefghijklmnop qrstuvwxyz.,:;!\n\t`*#"

	randText := func(n int) string {
		var b strings.Builder
		for range n {
			b.WriteByte(chars[rng.IntN(len(chars))])
		}
		return b.String()
	}

	var want any
	require.NoError(t, json.Unmarshal([]byte(validArray), &want))

	for range 200 {
		raw := randText(rng.IntN(80)) + validArray + randText(rng.IntN(80))
		span, err := ExtractArray(raw)
		require.NoError(t, err, "input %q", raw)

		var got any
		require.NoError(t, json.Unmarshal([]byte(span), &got), "span %q", span)
		assert.Equal(t, want, got)
	}
}
