package quizgen

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// quizArrayDefinition is the JSON Schema the extracted array must conform
// to. The answer-matches-an-option constraint cannot be expressed here and
// is checked separately.
var quizArrayDefinition = map[string]any{
	"type":     "array",
	"minItems": 1,
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"options": map[string]any{
				"type":     "array",
				"minItems": 2,
				"items":    map[string]any{"type": "string"},
			},
			"answer": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"explanation": map[string]any{
				"type": "string",
			},
		},
		"required": []any{"question", "options", "answer"},
	},
}

var (
	compileOnce   sync.Once
	compiledArray *jsonschema.Schema
	compileErr    error
)

// validateArray checks the extracted JSON against the quiz array schema.
func validateArray(raw json.RawMessage) error {
	compileOnce.Do(func() {
		defBytes, err := json.Marshal(quizArrayDefinition)
		if err != nil {
			compileErr = err
			return
		}
		var def any
		if err := json.Unmarshal(defBytes, &def); err != nil {
			compileErr = err
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://quiz-array.json", def); err != nil {
			compileErr = err
			return
		}
		compiledArray, compileErr = c.Compile("schema://quiz-array.json")
	})
	if compileErr != nil {
		return fmt.Errorf("compile quiz schema: %w", compileErr)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := compiledArray.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
