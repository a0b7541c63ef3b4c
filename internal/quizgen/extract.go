package quizgen

import (
	"errors"
	"strings"
)

// ErrNoArray is returned when no JSON array span can be found in a raw
// model response.
var ErrNoArray = errors.New("quizgen: no JSON array in response")

// ExtractArray returns the first-'['-to-last-']' span of raw. The model is
// asked for strictly a JSON array, but in practice it may wrap the array in
// prose or markdown fences, so the surrounding text is stripped by bracket
// position rather than trusting the response to be pure JSON. The span is
// not parsed here; callers unmarshal it and treat a parse failure the same
// as a missing array.
func ExtractArray(raw string) (string, error) {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start == -1 || end == -1 || end < start {
		return "", ErrNoArray
	}
	return raw[start : end+1], nil
}
