package provider

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Response schemas for the remote quiz service. Validation runs before
// decoding so a missing or mistyped field surfaces as a single
// ValidationError instead of a half-populated struct.

var newSentenceSchema = map[string]any{
	"type": "object",
	"required": []any{
		"gameSessionId", "sentenceId", "fullSentence", "difficulty",
	},
	"properties": map[string]any{
		"gameSessionId":  map[string]any{"type": "string", "minLength": 1},
		"sentenceId":     map[string]any{"type": "integer", "minimum": 1},
		"fullSentence":   map[string]any{"type": "string", "minLength": 1},
		"difficulty":     map[string]any{"enum": []any{"easy", "medium", "hard"}},
		"totalSentences": map[string]any{"type": "integer", "minimum": 1},
	},
}

var checkAnswerSchema = map[string]any{
	"type":     "object",
	"required": []any{"correct"},
	"properties": map[string]any{
		"correct":       map[string]any{"type": "boolean"},
		"correctAnswer": map[string]any{"type": "string"},
		"explanation":   map[string]any{"type": "string"},
		"nextSentence": map[string]any{
			"type": []any{"object", "null"},
			"required": []any{
				"sentenceId", "fullSentence", "difficulty",
			},
			"properties": map[string]any{
				"sentenceId":   map[string]any{"type": "integer", "minimum": 1},
				"fullSentence": map[string]any{"type": "string", "minLength": 1},
				"difficulty":   map[string]any{"enum": []any{"easy", "medium", "hard"}},
			},
		},
	},
}

var hintSchema = map[string]any{
	"type":     "object",
	"required": []any{"hintCursor", "hintLimit"},
	"properties": map[string]any{
		"hintText":   map[string]any{"type": "string"},
		"hintCursor": map[string]any{"type": "integer", "minimum": 0},
		"hintLimit":  map[string]any{"type": "integer", "minimum": 0},
	},
}

// schemaCache caches compiled schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// validatePayload checks raw JSON against the named schema definition.
// Returns a *ValidationError on any failure.
func validatePayload(name string, definition map[string]any, raw json.RawMessage) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ValidationError{Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	compiled, err := compiledSchema(name, definition)
	if err != nil {
		return &ValidationError{Err: fmt.Errorf("compile schema %q: %w", name, err)}
	}

	if err := compiled.Validate(parsed); err != nil {
		return &ValidationError{Err: err}
	}
	return nil
}

// compiledSchema returns a cached compiled schema or compiles and
// caches it.
func compiledSchema(name string, definition map[string]any) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The compiler wants a parsed JSON value; round-trip the Go map to
	// normalize its types.
	defBytes, err := json.Marshal(definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(name, compiled)
	return compiled, nil
}
