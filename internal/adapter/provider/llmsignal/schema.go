package llmsignal

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema is a named JSON schema the model output must satisfy.
type Schema struct {
	Name       string
	Definition map[string]any
}

var sentimentSchema = &Schema{
	Name: "text_sentiment",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score":     map[string]any{"type": "number", "minimum": -1, "maximum": 1},
			"magnitude": map[string]any{"type": "number", "minimum": 0},
		},
		"required":             []any{"score", "magnitude"},
		"additionalProperties": false,
	},
}

var entitiesSchema = &Schema{
	Name: "text_entities",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"entities": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name": map[string]any{"type": "string", "minLength": 1},
						"type": map[string]any{
							"type": "string",
							"enum": []any{
								"PERSON", "ORGANIZATION", "LOCATION", "EVENT", "WORK_OF_ART",
								"CONSUMER_GOOD", "PHONE_NUMBER", "ADDRESS", "DATE", "NUMBER",
								"PRICE", "OTHER", "UNKNOWN",
							},
						},
						"salience": map[string]any{"type": "number", "minimum": 0, "maximum": 1},
					},
					"required":             []any{"name", "type", "salience"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"entities"},
		"additionalProperties": false,
	},
}

var syntaxSchema = &Schema{
	Name: "text_syntax",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"sentences": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"tokens":    map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		},
		"required":             []any{"sentences", "tokens"},
		"additionalProperties": false,
	},
}

// schemaCache caches compiled schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// validateResponse checks raw model output against schema.
// Returns *ErrInvalidResponse on failure.
func validateResponse(schema *Schema, raw json.RawMessage) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	compiled, err := compiledSchema(schema)
	if err != nil {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("compile schema %q: %w", schema.Name, err)}
	}

	if err := compiled.Validate(parsed); err != nil {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("schema validation failed: %w", err)}
	}

	return nil
}

func compiledSchema(schema *Schema) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(schema.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The compiler wants a decoded JSON value with float64 numbers and []any.
	defBytes, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var def any
	if err := json.Unmarshal(defBytes, &def); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", schema.Name)
	if err := c.AddResource(url, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(schema.Name, compiled)
	return compiled, nil
}

// extractJSON returns the outermost JSON object in s. Models sometimes wrap
// output in prose or markdown fences.
func extractJSON(s string) (json.RawMessage, error) {
	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start == -1 || end == -1 || end <= start {
		return nil, fmt.Errorf("no JSON object found in response")
	}
	return json.RawMessage(s[start : end+1]), nil
}
