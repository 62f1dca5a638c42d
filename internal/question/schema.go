package question

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// recordSchemas holds the JSON Schema of a question record per kind.
var recordSchemas = map[Kind]string{
	KindShortAnswer: `{
		"type": "object",
		"properties": {
			"type": {"const": "shortanswer"},
			"question": {"type": "string"},
			"correct_answer": {"type": "string"},
			"case_sensitive": {"type": ["boolean", "null"]}
		},
		"required": ["question", "correct_answer"]
	}`,
	KindTrueFalse: `{
		"type": "object",
		"properties": {
			"type": {"const": "truefalse"},
			"question": {"type": "string"},
			"correct_answer": {"type": "boolean"},
			"explanation": {"type": ["string", "null"]}
		},
		"required": ["question", "correct_answer"]
	}`,
}

// schemaCache caches compiled record schemas by kind.
var schemaCache sync.Map // map[Kind]*jsonschema.Schema

// compiledSchema returns the compiled schema for kind, compiling it on
// first use. The boolean is false for kinds with no schema.
func compiledSchema(kind Kind) (*jsonschema.Schema, bool, error) {
	if cached, ok := schemaCache.Load(kind); ok {
		return cached.(*jsonschema.Schema), true, nil
	}

	def, ok := recordSchemas[kind]
	if !ok {
		return nil, false, nil
	}

	// The jsonschema library expects a parsed JSON value (any), not raw bytes.
	var parsed any
	if err := json.Unmarshal([]byte(def), &parsed); err != nil {
		return nil, true, fmt.Errorf("parse %s schema: %w", kind, err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://question/%s.json", kind)
	if err := c.AddResource(schemaURL, parsed); err != nil {
		return nil, true, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, true, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(kind, compiled)
	return compiled, true, nil
}
